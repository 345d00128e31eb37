package api

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/limbo/engagement/internal/service"
	"github.com/limbo/engagement/internal/streak"
	"github.com/limbo/engagement/pkg/entity"
	"github.com/limbo/engagement/pkg/httputil"
)

const defaultCalendarDays = 30

type AddEventRequest struct {
	ID         string          `json:"id"`
	OccurredAt *time.Time      `json:"occurred_at"`
	Metadata   entity.Metadata `json:"metadata"`
}

type AddFreezeRequest struct {
	ID          string     `json:"id"`
	DateExpires *time.Time `json:"date_expires"`
}

type GetEventsResponse struct {
	StreakKey string                   `json:"streak_key"`
	Events    []entity.EngagementEvent `json:"events"`
}

type GetFreezesResponse struct {
	StreakKey string               `json:"streak_key"`
	Freezes   []entity.FreezeToken `json:"freezes"`
}

type CalendarResponse struct {
	StreakKey string             `json:"streak_key"`
	Days      []streak.DayBucket `json:"days"`
}

func (s *Server) GetStreak(w http.ResponseWriter, r *http.Request) {
	uid, key, ok := requestScope(w, r, "get streak")
	if !ok {
		return
	}
	logger := GetLoggerFromCtx(r.Context())
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()
	snapshot, err := s.streakService.Recalculate(ctx, uid.String(), key)
	if err != nil {
		writeServiceError(w, logger, "get streak", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, snapshot)
}

func (s *Server) GetCalendar(w http.ResponseWriter, r *http.Request) {
	uid, key, ok := requestScope(w, r, "get calendar")
	if !ok {
		return
	}
	logger := GetLoggerFromCtx(r.Context())
	days := defaultCalendarDays
	if raw := r.URL.Query().Get("days"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			logger.Error("get calendar error: invalid days")
			httputil.WriteErrorResponse(w, http.StatusBadRequest, "days must be a number", nil)
			return
		}
		days = parsed
	}
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()
	buckets, err := s.streakService.Calendar(ctx, uid.String(), key, days)
	if err != nil {
		writeServiceError(w, logger, "get calendar", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, CalendarResponse{StreakKey: key, Days: buckets})
}

func (s *Server) AddStreakEvent(w http.ResponseWriter, r *http.Request) {
	uid, key, ok := requestScope(w, r, "add event")
	if !ok {
		return
	}
	logger := GetLoggerFromCtx(r.Context())
	var req AddEventRequest
	if err := decodeOptionalBody(r, &req); err != nil {
		logger.Error("add event error: invalid request body")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()
	event, err := s.streakService.AddEvent(ctx, uid.String(), key, &service.AddEventRequest{
		ID:         req.ID,
		OccurredAt: req.OccurredAt,
		Metadata:   req.Metadata,
	})
	if err != nil {
		writeServiceError(w, logger, "add event", err)
		return
	}
	snapshot, err := s.streakService.Recalculate(ctx, uid.String(), key)
	if err != nil {
		writeServiceError(w, logger, "add event", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusCreated, map[string]any{
		"event":  event,
		"streak": snapshot,
	})
	logger.Info("event added")
}

func (s *Server) GetStreakEvents(w http.ResponseWriter, r *http.Request) {
	uid, key, ok := requestScope(w, r, "get events")
	if !ok {
		return
	}
	logger := GetLoggerFromCtx(r.Context())
	field, equals := metadataFilter(r)
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()
	events, err := s.streakService.GetEvents(ctx, uid.String(), key, field, equals)
	if err != nil {
		writeServiceError(w, logger, "get events", err)
		return
	}
	if events == nil {
		events = []entity.EngagementEvent{}
	}
	httputil.WriteJSONResponse(w, http.StatusOK, GetEventsResponse{StreakKey: key, Events: events})
}

func (s *Server) DeleteStreakEvents(w http.ResponseWriter, r *http.Request) {
	uid, key, ok := requestScope(w, r, "delete events")
	if !ok {
		return
	}
	logger := GetLoggerFromCtx(r.Context())
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()
	n, err := s.streakService.DeleteAllEvents(ctx, uid.String(), key)
	if err != nil {
		writeServiceError(w, logger, "delete events", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, map[string]any{"deleted": n})
	logger.Info("events deleted", "count", n)
}

func (s *Server) GetFreezes(w http.ResponseWriter, r *http.Request) {
	uid, key, ok := requestScope(w, r, "get freezes")
	if !ok {
		return
	}
	logger := GetLoggerFromCtx(r.Context())
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()
	freezes, err := s.streakService.ListFreezes(ctx, uid.String(), key)
	if err != nil {
		writeServiceError(w, logger, "get freezes", err)
		return
	}
	if freezes == nil {
		freezes = []entity.FreezeToken{}
	}
	httputil.WriteJSONResponse(w, http.StatusOK, GetFreezesResponse{StreakKey: key, Freezes: freezes})
}

func (s *Server) AddFreeze(w http.ResponseWriter, r *http.Request) {
	uid, key, ok := requestScope(w, r, "add freeze")
	if !ok {
		return
	}
	logger := GetLoggerFromCtx(r.Context())
	var req AddFreezeRequest
	if err := decodeOptionalBody(r, &req); err != nil {
		logger.Error("add freeze error: invalid request body")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()
	freeze, err := s.streakService.AddFreeze(ctx, uid.String(), key, &service.AddFreezeRequest{
		ID:          req.ID,
		DateExpires: req.DateExpires,
	})
	if err != nil {
		writeServiceError(w, logger, "add freeze", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusCreated, freeze)
	logger.Info("freeze added")
}

func (s *Server) UseFreezes(w http.ResponseWriter, r *http.Request) {
	uid, key, ok := requestScope(w, r, "use freezes")
	if !ok {
		return
	}
	logger := GetLoggerFromCtx(r.Context())
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()
	snapshot, err := s.streakService.UseFreezes(ctx, uid.String(), key)
	if err != nil {
		writeServiceError(w, logger, "use freezes", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, snapshot)
	logger.Info("freezes used")
}
