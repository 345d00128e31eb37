// @title Engagement API
// @description Streaks, experience points and progress over an append-only event ledger
// @BasePath /api/v1
// @schemes http
package main

import (
	"context"
	"errors"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/limbo/engagement/internal/api"
	"github.com/limbo/engagement/internal/repository"
	"github.com/limbo/engagement/internal/repository/sqlitestore"
	"github.com/limbo/engagement/internal/service"
	"github.com/limbo/engagement/pkg/cleanup"
	"github.com/limbo/engagement/pkg/config"
	jwtservice "github.com/limbo/engagement/pkg/jwt_service"
	"golang.org/x/time/rate"
)

func init() {
	service.InitValidator()
}

type repositories struct {
	events   repository.EventsRepositoryI
	freezes  repository.FreezesRepositoryI
	xp       repository.XPRepositoryI
	progress repository.ProgressRepositoryI
}

func main() {
	cfg := config.New()
	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, nil)))
	defer cleanup.CleanUp()

	dbCfg := repository.PGCfg{
		Address:  cfg.GetString("POSTGRES_DB_ADDRESS"),
		Username: cfg.GetString("POSTGRES_USER"),
		Password: cfg.GetString("POSTGRES_PASSWORD"),
		DB:       cfg.GetString("POSTGRES_DB"),
	}
	pool := repository.Connect(&dbCfg)
	userService := service.NewUserService(repository.NewUsersRepoWithConn(pool))

	var repos repositories
	switch storage := cfg.GetStringOr("LEDGER_STORAGE", "postgres"); storage {
	case "postgres":
		repos = repositories{
			events:   repository.NewEventsRepoWithConn(pool),
			freezes:  repository.NewFreezesRepoWithConn(pool),
			xp:       repository.NewXPRepoWithConn(pool),
			progress: repository.NewProgressRepoWithConn(pool),
		}
	case "sqlite":
		db, err := sqlitestore.OpenWithCleanup(cfg.GetStringOr("SQLITE_DIR", "./data"))
		if err != nil {
			log.Fatal("opening sqlite ledger: " + err.Error())
		}
		repos = repositories{events: db.Events(), freezes: db.Freezes(), xp: db.XP(), progress: db.Progress()}
	default:
		log.Fatal("unknown LEDGER_STORAGE: " + storage)
	}

	streams := config.DefaultStreams()
	if path := cfg.GetString("STREAMS_CONFIG"); path != "" {
		loaded, err := config.LoadStreams(path)
		if err != nil {
			log.Fatal(err)
		}
		streams = loaded
	}
	streakService, err := service.NewStreakService(repos.events, repos.freezes, streams.Streaks)
	if err != nil {
		log.Fatal("configuring streaks: " + err.Error())
	}
	xpService, err := service.NewXPService(repos.xp, streams.Experiences)
	if err != nil {
		log.Fatal("configuring experience: " + err.Error())
	}
	progressService, err := service.NewProgressService(repos.progress, streams.Progress)
	if err != nil {
		log.Fatal("configuring progress: " + err.Error())
	}

	serv := api.New(&api.ServicesList{
		UserService:     userService,
		StreakService:   streakService,
		XPService:       xpService,
		ProgressService: progressService,
		JwtService:      jwtservice.New(cfg.GetString("JWT_SECRET"), cfg.GetDuration("JWT_TTL", time.Hour)),
		WriteRate:       rate.Limit(cfg.GetFloat("WRITE_RATE_PER_SECOND", 5)),
		WriteBurst:      cfg.GetInt("WRITE_BURST", 20),
	})

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := serv.Shutdown(shutdownCtx); err != nil {
			slog.Error("server shutdown error", slog.String("error", err.Error()))
		}
	}()

	addr := cfg.GetStringOr("API_ADDRESS", ":8080")
	slog.Info("server started", slog.String("address", addr))
	if err := serv.Run(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
		slog.Error("server error", slog.String("error", err.Error()))
	}
}
