package api

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/bytedance/sonic"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	errorvalues "github.com/limbo/engagement/internal/error_values"
	"github.com/limbo/engagement/internal/service"
	"github.com/limbo/engagement/pkg/httputil"
)

const requestTimeout = 10 * time.Second

type RegisterRequest struct {
	Name     string `json:"name"`
	Password string `json:"password"`
}

type LoginRequest struct {
	Name     string `json:"name"`
	Password string `json:"password"`
}

func (s *Server) Register(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	var req RegisterRequest
	defer r.Body.Close()
	err := sonic.ConfigDefault.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		logger.Error("registering error: invalid body")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()
	user, err := s.userService.Register(ctx, &service.RegisterRequest{
		Name:     req.Name,
		Password: req.Password,
	})
	if err != nil {
		switch {
		case errors.Is(err, errorvalues.ErrUserExists):
			logger.Error("registering error: existed user")
			httputil.WriteErrorResponse(w, http.StatusConflict, "user with such name already exists", nil)
		case errors.Is(err, errorvalues.ErrValidation):
			logger.Error("registering error: invalid credentials format")
			httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid name or password format", err)
		default:
			logger.Error("registering error: service error", slog.String("error", err.Error()))
			httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error during registration", nil)
		}
		return
	}
	httputil.WriteJSONResponse(w, http.StatusCreated, map[string]any{
		"uid": user.ID.String(),
	})
	logger.Info("successful registration")
}

func (s *Server) Login(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	var req LoginRequest
	defer r.Body.Close()
	err := sonic.ConfigDefault.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		logger.Error("login error: invalid body")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()
	user, err := s.userService.Login(ctx, req.Name, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, errorvalues.ErrWrongCredentials):
			logger.Error("login error: wrong credentials")
			httputil.WriteErrorResponse(w, http.StatusForbidden, "invalid username or password", nil)
		default:
			logger.Error("login error: service error", slog.String("error", err.Error()))
			httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error during login", nil)
		}
		return
	}
	token, err := s.jwtService.GenerateToken(user)
	if err != nil {
		logger.Error("login error: generating token error", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusInternalServerError, "error creating token", nil)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, map[string]any{
		"uid":   user.ID.String(),
		"token": token,
	})
	logger.Info("successful login")
}

// writeServiceError maps an engine error onto a status code. Validation
// details are returned to the caller, storage failures are only logged.
func writeServiceError(w http.ResponseWriter, logger *slog.Logger, op string, err error) {
	var insufficient *errorvalues.InsufficientFreezesError
	switch {
	case errors.As(err, &insufficient):
		logger.Warn(op+" error: not enough freezes", slog.Int("needed", insufficient.Needed), slog.Int("available", insufficient.Available))
		httputil.WriteErrorResponse(w, http.StatusConflict, "not enough freezes", err)
	case errors.Is(err, errorvalues.ErrNothingToBridge),
		errors.Is(err, errorvalues.ErrFreezeAlreadyConsumed),
		errors.Is(err, errorvalues.ErrFreezeExpired):
		logger.Warn(op + " error: " + err.Error())
		httputil.WriteErrorResponse(w, http.StatusConflict, "freezes can't be applied", err)
	case errors.Is(err, errorvalues.ErrEventExists),
		errors.Is(err, errorvalues.ErrXPEventExists),
		errors.Is(err, errorvalues.ErrFreezeExists):
		logger.Error(op + " error: duplicate id")
		httputil.WriteErrorResponse(w, http.StatusConflict, "item with such id already exists", nil)
	case errors.Is(err, errorvalues.ErrUnknownStream):
		logger.Warn(op+" error: unknown stream", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusNotFound, "no such stream", err)
	case errors.Is(err, errorvalues.ErrNotFound):
		logger.Error(op + " error: not found")
		httputil.WriteErrorResponse(w, http.StatusNotFound, "not found", err)
	case errors.Is(err, errorvalues.ErrValidation):
		logger.Error(op+" error: invalid request", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request", err)
	default:
		logger.Error(op+" error: service error", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error", nil)
	}
}

// requestScope extracts the authenticated user and the stream key from the path.
func requestScope(w http.ResponseWriter, r *http.Request, op string) (uid uuid.UUID, key string, ok bool) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error(op + " error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return uuid.UUID{}, "", false
	}
	key = chi.URLParam(r, "key")
	if key == "" {
		logger.Error(op + " error: empty key in path")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "key is required", nil)
		return uuid.UUID{}, "", false
	}
	return uid, key, true
}

// decodeOptionalBody leaves dst untouched when the body is empty.
func decodeOptionalBody(r *http.Request, dst any) error {
	defer r.Body.Close()
	raw, err := io.ReadAll(r.Body)
	if err != nil {
		return err
	}
	if len(raw) == 0 {
		return nil
	}
	return sonic.ConfigDefault.Unmarshal(raw, dst)
}

// metadataFilter reads ?field=&equals= query parameters.
func metadataFilter(r *http.Request) (string, any) {
	q := r.URL.Query()
	field := q.Get("field")
	if field == "" {
		return "", nil
	}
	return field, q.Get("equals")
}
