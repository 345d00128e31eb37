package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/limbo/engagement/internal/streak"
	"github.com/limbo/engagement/pkg/entity"
)

type RegisterRequest struct {
	Name     string `validate:"required,alphanum_underscore,min=3,max=100"`
	Password string `validate:"required,min=8,max=72"`
}

type UserServiceI interface {
	// Validates user's credentials, creates new row in database. Returns user's data with ID
	Register(ctx context.Context, req *RegisterRequest) (*entity.User, error)
	// Compares given credentials. If ok, give back user's data with ID.
	Login(ctx context.Context, name, password string) (*entity.User, error)
	GetByID(ctx context.Context, id uuid.UUID) (*entity.User, error)
	GetByName(ctx context.Context, name string) (*entity.User, error)
	DeleteAccount(ctx context.Context, id uuid.UUID, password string) error
}

type AddEventRequest struct {
	// Generated when empty
	ID string `json:"id" validate:"omitempty,max=128"`
	// Now when nil
	OccurredAt *time.Time      `json:"occurred_at"`
	Metadata   entity.Metadata `json:"metadata"`
}

type AddFreezeRequest struct {
	ID          string     `json:"id" validate:"omitempty,max=128"`
	DateExpires *time.Time `json:"date_expires"`
}

type AddXPRequest struct {
	ID         string          `json:"id" validate:"omitempty,max=128"`
	Points     int             `json:"points"`
	OccurredAt *time.Time      `json:"occurred_at"`
	Metadata   entity.Metadata `json:"metadata"`
}

type SetProgressRequest struct {
	ID       string          `json:"id" validate:"required,max=128"`
	Value    float64         `json:"value"`
	Metadata entity.Metadata `json:"metadata"`
}

type StreakServiceI interface {
	// Appends a real engagement event to the stream
	AddEvent(ctx context.Context, userID, streamKey string, req *AddEventRequest) (*entity.EngagementEvent, error)
	// Adds freeze token to the stream inventory
	AddFreeze(ctx context.Context, userID, streamKey string, req *AddFreezeRequest) (*entity.FreezeToken, error)
	ListFreezes(ctx context.Context, userID, streamKey string) ([]entity.FreezeToken, error)
	// Bridges the gap at the break point with available freezes
	UseFreezes(ctx context.Context, userID, streamKey string) (*entity.StreakSnapshot, error)
	// Computes the snapshot, consuming freezes under auto consume behavior
	Recalculate(ctx context.Context, userID, streamKey string) (*entity.StreakSnapshot, error)
	// Lists events in insertion order filtered by metadata equality, empty field matches all
	GetEvents(ctx context.Context, userID, streamKey, field string, equals any) ([]entity.EngagementEvent, error)
	DeleteAllEvents(ctx context.Context, userID, streamKey string) (int64, error)
	// Day buckets of the last days, today included
	Calendar(ctx context.Context, userID, streamKey string, days int) ([]streak.DayBucket, error)
}

type XPServiceI interface {
	AddXP(ctx context.Context, userID, experienceKey string, req *AddXPRequest) (*entity.XPEvent, error)
	Recalculate(ctx context.Context, userID, experienceKey string) (*entity.XPSnapshot, error)
	GetEvents(ctx context.Context, userID, experienceKey, field string, equals any) ([]entity.XPEvent, error)
	DeleteAllEvents(ctx context.Context, userID, experienceKey string) (int64, error)
}

type ProgressServiceI interface {
	// Clamps value into [0, 1] and creates or replaces the item
	SetProgress(ctx context.Context, userID, progressKey string, req *SetProgressRequest) (*entity.ProgressItem, error)
	GetProgress(ctx context.Context, userID, progressKey, id string) (*entity.ProgressItem, error)
	ListProgress(ctx context.Context, userID, progressKey string) ([]entity.ProgressItem, error)
	// Max value among items whose metadata matches, 0 when nothing matches
	MaxProgress(ctx context.Context, userID, progressKey, field string, equals any) (float64, error)
	DeleteProgress(ctx context.Context, userID, progressKey, id string) error
	DeleteAllProgress(ctx context.Context, userID, progressKey string) (int64, error)
}
