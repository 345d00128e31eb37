package api

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/limbo/engagement/internal/service"
	"github.com/limbo/engagement/pkg/entity"
	"github.com/limbo/engagement/pkg/httputil"
)

type AddXPRequest struct {
	ID         string          `json:"id"`
	Points     int             `json:"points"`
	OccurredAt *time.Time      `json:"occurred_at"`
	Metadata   entity.Metadata `json:"metadata"`
}

type SetProgressRequest struct {
	Value    *float64        `json:"value"`
	Metadata entity.Metadata `json:"metadata"`
}

type ListProgressResponse struct {
	ProgressKey string                `json:"progress_key"`
	Items       []entity.ProgressItem `json:"items"`
}

func (s *Server) GetXP(w http.ResponseWriter, r *http.Request) {
	uid, key, ok := requestScope(w, r, "get xp")
	if !ok {
		return
	}
	logger := GetLoggerFromCtx(r.Context())
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()
	snapshot, err := s.xpService.Recalculate(ctx, uid.String(), key)
	if err != nil {
		writeServiceError(w, logger, "get xp", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, snapshot)
}

func (s *Server) AddXPEvent(w http.ResponseWriter, r *http.Request) {
	uid, key, ok := requestScope(w, r, "add xp")
	if !ok {
		return
	}
	logger := GetLoggerFromCtx(r.Context())
	var req AddXPRequest
	if err := decodeOptionalBody(r, &req); err != nil {
		logger.Error("add xp error: invalid request body")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()
	event, err := s.xpService.AddXP(ctx, uid.String(), key, &service.AddXPRequest{
		ID:         req.ID,
		Points:     req.Points,
		OccurredAt: req.OccurredAt,
		Metadata:   req.Metadata,
	})
	if err != nil {
		writeServiceError(w, logger, "add xp", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusCreated, event)
	logger.Info("xp added")
}

func (s *Server) GetXPEvents(w http.ResponseWriter, r *http.Request) {
	uid, key, ok := requestScope(w, r, "get xp events")
	if !ok {
		return
	}
	logger := GetLoggerFromCtx(r.Context())
	field, equals := metadataFilter(r)
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()
	events, err := s.xpService.GetEvents(ctx, uid.String(), key, field, equals)
	if err != nil {
		writeServiceError(w, logger, "get xp events", err)
		return
	}
	if events == nil {
		events = []entity.XPEvent{}
	}
	httputil.WriteJSONResponse(w, http.StatusOK, map[string]any{
		"experience_key": key,
		"events":         events,
	})
}

func (s *Server) DeleteXPEvents(w http.ResponseWriter, r *http.Request) {
	uid, key, ok := requestScope(w, r, "delete xp events")
	if !ok {
		return
	}
	logger := GetLoggerFromCtx(r.Context())
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()
	n, err := s.xpService.DeleteAllEvents(ctx, uid.String(), key)
	if err != nil {
		writeServiceError(w, logger, "delete xp events", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, map[string]any{"deleted": n})
}

func (s *Server) ListProgress(w http.ResponseWriter, r *http.Request) {
	uid, key, ok := requestScope(w, r, "list progress")
	if !ok {
		return
	}
	logger := GetLoggerFromCtx(r.Context())
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()
	items, err := s.progressService.ListProgress(ctx, uid.String(), key)
	if err != nil {
		writeServiceError(w, logger, "list progress", err)
		return
	}
	if items == nil {
		items = []entity.ProgressItem{}
	}
	httputil.WriteJSONResponse(w, http.StatusOK, ListProgressResponse{ProgressKey: key, Items: items})
}

func (s *Server) GetMaxProgress(w http.ResponseWriter, r *http.Request) {
	uid, key, ok := requestScope(w, r, "max progress")
	if !ok {
		return
	}
	logger := GetLoggerFromCtx(r.Context())
	field, equals := metadataFilter(r)
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()
	best, err := s.progressService.MaxProgress(ctx, uid.String(), key, field, equals)
	if err != nil {
		writeServiceError(w, logger, "max progress", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, map[string]any{"max": best})
}

func (s *Server) SetProgress(w http.ResponseWriter, r *http.Request) {
	uid, key, ok := requestScope(w, r, "set progress")
	if !ok {
		return
	}
	logger := GetLoggerFromCtx(r.Context())
	var req SetProgressRequest
	if err := decodeOptionalBody(r, &req); err != nil || req.Value == nil {
		logger.Error("set progress error: invalid request body")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()
	item, err := s.progressService.SetProgress(ctx, uid.String(), key, &service.SetProgressRequest{
		ID:       chi.URLParam(r, "id"),
		Value:    *req.Value,
		Metadata: req.Metadata,
	})
	if err != nil {
		writeServiceError(w, logger, "set progress", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, item)
}

func (s *Server) GetProgress(w http.ResponseWriter, r *http.Request) {
	uid, key, ok := requestScope(w, r, "get progress")
	if !ok {
		return
	}
	logger := GetLoggerFromCtx(r.Context())
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()
	item, err := s.progressService.GetProgress(ctx, uid.String(), key, chi.URLParam(r, "id"))
	if err != nil {
		writeServiceError(w, logger, "get progress", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, item)
}

func (s *Server) DeleteProgress(w http.ResponseWriter, r *http.Request) {
	uid, key, ok := requestScope(w, r, "delete progress")
	if !ok {
		return
	}
	logger := GetLoggerFromCtx(r.Context())
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()
	if err := s.progressService.DeleteProgress(ctx, uid.String(), key, chi.URLParam(r, "id")); err != nil {
		writeServiceError(w, logger, "delete progress", err)
		return
	}
	httputil.WriteNoContent(w)
}

func (s *Server) DeleteAllProgress(w http.ResponseWriter, r *http.Request) {
	uid, key, ok := requestScope(w, r, "delete all progress")
	if !ok {
		return
	}
	logger := GetLoggerFromCtx(r.Context())
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()
	n, err := s.progressService.DeleteAllProgress(ctx, uid.String(), key)
	if err != nil {
		writeServiceError(w, logger, "delete all progress", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, map[string]any{"deleted": n})
}
