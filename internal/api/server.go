package api

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/limbo/engagement/internal/metrics"
	"github.com/limbo/engagement/internal/service"
	"golang.org/x/time/rate"
)

const (
	defaultWriteRate  = rate.Limit(5)
	defaultWriteBurst = 20
	maxBodyBytes      = 64 << 10
)

type Server struct {
	mx              *chi.Mux
	srv             *http.Server
	userService     service.UserServiceI
	streakService   service.StreakServiceI
	xpService       service.XPServiceI
	progressService service.ProgressServiceI
	jwtService      JWTServiceI
	limiters        *userLimiters
}

type ServicesList struct {
	UserService     service.UserServiceI
	StreakService   service.StreakServiceI
	XPService       service.XPServiceI
	ProgressService service.ProgressServiceI
	JwtService      JWTServiceI
	// Per user write requests per second, default when zero
	WriteRate  rate.Limit
	WriteBurst int
}

func New(servicesOptions *ServicesList) *Server {
	writeRate, writeBurst := servicesOptions.WriteRate, servicesOptions.WriteBurst
	if writeRate == 0 {
		writeRate = defaultWriteRate
	}
	if writeBurst == 0 {
		writeBurst = defaultWriteBurst
	}
	mx := chi.NewMux()
	return &Server{
		mx:              mx,
		userService:     servicesOptions.UserService,
		streakService:   servicesOptions.StreakService,
		xpService:       servicesOptions.XPService,
		progressService: servicesOptions.ProgressService,
		jwtService:      servicesOptions.JwtService,
		limiters:        newUserLimiters(writeRate, writeBurst),
		srv: &http.Server{
			Handler:           mx,
			ReadHeaderTimeout: 5 * time.Second,
		},
	}
}

func (s *Server) MountRoutes() {
	s.mx.Use(s.RequestIDMiddleware, s.SettingUpLoggerMiddleware, s.BodyLimitMiddleware)
	s.mx.Handle("/metrics", metrics.Handler())
	s.mx.Route("/api/v1", func(r chi.Router) {
		r.Post("/auth/register", s.Register)
		r.Post("/auth/login", s.Login)
		r.Group(func(r chi.Router) {
			r.Use(s.AuthMiddleware, s.LoggerExtensionMiddleware, s.RateLimitMiddleware)
			r.Route("/streaks/{key}", func(r chi.Router) {
				r.Get("/", s.GetStreak)
				r.Get("/calendar", s.GetCalendar)
				r.Post("/events", s.AddStreakEvent)
				r.Get("/events", s.GetStreakEvents)
				r.Delete("/events", s.DeleteStreakEvents)
				r.Get("/freezes", s.GetFreezes)
				r.Post("/freezes", s.AddFreeze)
				r.Post("/freezes/use", s.UseFreezes)
			})
			r.Route("/xp/{key}", func(r chi.Router) {
				r.Get("/", s.GetXP)
				r.Post("/events", s.AddXPEvent)
				r.Get("/events", s.GetXPEvents)
				r.Delete("/events", s.DeleteXPEvents)
			})
			r.Route("/progress/{key}", func(r chi.Router) {
				r.Get("/", s.ListProgress)
				r.Delete("/", s.DeleteAllProgress)
				r.Get("/max", s.GetMaxProgress)
				r.Put("/{id}", s.SetProgress)
				r.Get("/{id}", s.GetProgress)
				r.Delete("/{id}", s.DeleteProgress)
			})
		})
	})
}

func (s *Server) Handler() http.Handler {
	return s.mx
}

// Run mounts the routes and blocks until the server stops. After Shutdown it
// returns http.ErrServerClosed.
func (s *Server) Run(addr string) error {
	s.MountRoutes()
	s.srv.Addr = addr
	return s.srv.ListenAndServe()
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.srv.Shutdown(ctx)
}
