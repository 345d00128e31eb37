package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/limbo/engagement/pkg/entity"
)

type UsersRepositoryI interface {
	// Creates new user in database
	Create(ctx context.Context, user *entity.User) error
	// Looks up user by name. Can be used for login
	FindByName(ctx context.Context, name string) (*entity.User, error)
	// Looks up user by uid. Can be used for authorization middleware
	FindByID(ctx context.Context, uid uuid.UUID) (*entity.User, error)
	// Updates user's info
	Update(ctx context.Context, user *entity.User) error
	// Deletes user
	Delete(ctx context.Context, uid uuid.UUID) error
}

type EventsRepositoryI interface {
	// Appends event to the stream log. ID, UserID, StreamKey and OccurredAt are necessary
	Create(ctx context.Context, event *entity.EngagementEvent) error
	// Lists every event of the stream in insertion order
	ListByStream(ctx context.Context, userID, streamKey string) ([]entity.EngagementEvent, error)
	// Deletes every event of the stream, returns count of deleted events
	DeleteByStream(ctx context.Context, userID, streamKey string) (int64, error)
}

type FreezesRepositoryI interface {
	// Adds freeze to the stream inventory
	Create(ctx context.Context, freeze *entity.FreezeToken) error
	// Searches freeze with given id inside the stream
	GetByID(ctx context.Context, userID, streamKey, id string) (*entity.FreezeToken, error)
	// Lists freezes of the stream, oldest first
	ListByStream(ctx context.Context, userID, streamKey string) ([]entity.FreezeToken, error)
	// Marks freeze consumed if it is still available at the given instant
	Consume(ctx context.Context, userID, streamKey, id string, at time.Time) error
	// Consumes every freeze and appends its coverage event in one transaction
	ApplyFreezes(ctx context.Context, userID, streamKey string, at time.Time, apps []entity.FreezeApplication) error
}

type XPRepositoryI interface {
	// Appends experience points event
	Create(ctx context.Context, event *entity.XPEvent) error
	// Lists events of the experience key in insertion order
	ListByKey(ctx context.Context, userID, experienceKey string) ([]entity.XPEvent, error)
	// Deletes every event of the experience key
	DeleteByKey(ctx context.Context, userID, experienceKey string) (int64, error)
}

type ProgressRepositoryI interface {
	// Creates or replaces progress item. DateCreated is kept on replace
	Upsert(ctx context.Context, item *entity.ProgressItem) error
	// Searches progress item with given id
	GetByID(ctx context.Context, userID, progressKey, id string) (*entity.ProgressItem, error)
	// Lists progress items of the key ordered by id
	ListByKey(ctx context.Context, userID, progressKey string) ([]entity.ProgressItem, error)
	// Deletes progress item with given id
	Delete(ctx context.Context, userID, progressKey, id string) error
	// Deletes every progress item of the key
	DeleteByKey(ctx context.Context, userID, progressKey string) (int64, error)
}

type DBConfig interface {
	ConnString() string
}

type PgConnection interface {
	Ping(ctx context.Context) error
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	Begin(ctx context.Context) (pgx.Tx, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// querier is satisfied by both a connection and a transaction.
type querier interface {
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

type PGCfg struct {
	Address  string
	Username string
	Password string
	DB       string
}

func (pgcfg *PGCfg) ConnString() string {
	return fmt.Sprintf("postgresql://%s:%s@%s/%s", pgcfg.Username, pgcfg.Password, pgcfg.Address, pgcfg.DB)
}
