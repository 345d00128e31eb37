package sqlitestore

import (
	"context"
	"database/sql"
	"errors"

	errorvalues "github.com/limbo/engagement/internal/error_values"
	"github.com/limbo/engagement/internal/repository"
	"github.com/limbo/engagement/pkg/entity"
)

type XPRepository struct {
	db *sql.DB
}

func (xr *XPRepository) Create(ctx context.Context, event *entity.XPEvent) error {
	if event == nil {
		return errors.New("xp event is nil")
	}
	if event.UserID == "" {
		return errorvalues.ErrEmptyUserID
	}
	metadata, err := repository.EncodeMetadata(event.Metadata)
	if err != nil {
		return errorvalues.ErrInvalidMetadata
	}
	_, err = xr.db.ExecContext(ctx,
		`INSERT INTO xp_events (id, user_id, experience_key, points, occurred_at, metadata) VALUES (?, ?, ?, ?, ?, ?)`,
		event.ID, event.UserID, event.ExperienceKey, event.Points, toUnix(event.OccurredAt), string(metadata),
	)
	if err != nil {
		if isUniqueViolation(err) {
			return errorvalues.ErrXPEventExists
		}
		return errorvalues.Storage("creating xp event", err)
	}
	return nil
}

func (xr *XPRepository) ListByKey(ctx context.Context, userID, experienceKey string) ([]entity.XPEvent, error) {
	rows, err := xr.db.QueryContext(ctx,
		`SELECT id, user_id, experience_key, points, occurred_at, metadata
		 FROM xp_events WHERE user_id = ? AND experience_key = ? ORDER BY seq`,
		userID, experienceKey,
	)
	if err != nil {
		return nil, errorvalues.Storage("listing xp events", err)
	}
	defer rows.Close()
	events := make([]entity.XPEvent, 0)
	for rows.Next() {
		var (
			e          entity.XPEvent
			occurredAt int64
			metadata   string
		)
		if err := rows.Scan(&e.ID, &e.UserID, &e.ExperienceKey, &e.Points, &occurredAt, &metadata); err != nil {
			return nil, errorvalues.Storage("xp event row parsing", err)
		}
		e.OccurredAt = fromUnix(occurredAt)
		if e.Metadata, err = repository.DecodeMetadata([]byte(metadata)); err != nil {
			return nil, errorvalues.Storage("xp event metadata parsing", err)
		}
		events = append(events, e)
	}
	if err := rows.Err(); err != nil {
		return nil, errorvalues.Storage("unexpected xp event rows", err)
	}
	return events, nil
}

func (xr *XPRepository) DeleteByKey(ctx context.Context, userID, experienceKey string) (int64, error) {
	result, err := xr.db.ExecContext(ctx,
		`DELETE FROM xp_events WHERE user_id = ? AND experience_key = ?`, userID, experienceKey)
	if err != nil {
		return 0, errorvalues.Storage("deleting xp events", err)
	}
	n, _ := result.RowsAffected()
	return n, nil
}

type ProgressRepository struct {
	db *sql.DB
}

func (pr *ProgressRepository) Upsert(ctx context.Context, item *entity.ProgressItem) error {
	if item == nil {
		return errors.New("progress item is nil")
	}
	if item.UserID == "" {
		return errorvalues.ErrEmptyUserID
	}
	metadata, err := repository.EncodeMetadata(item.Metadata)
	if err != nil {
		return errorvalues.ErrInvalidMetadata
	}
	_, err = pr.db.ExecContext(ctx,
		`INSERT INTO progress_items (id, user_id, progress_key, value, metadata, date_created, date_modified)
		 VALUES (?, ?, ?, ?, ?, ?, ?)
		 ON CONFLICT(user_id, progress_key, id) DO UPDATE SET
			value=excluded.value,
			metadata=excluded.metadata,
			date_modified=excluded.date_modified`,
		item.ID, item.UserID, item.ProgressKey, item.Value, string(metadata),
		toUnix(item.DateCreated), toUnix(item.DateModified),
	)
	if err != nil {
		return errorvalues.Storage("upserting progress", err)
	}
	return nil
}

func (pr *ProgressRepository) GetByID(ctx context.Context, userID, progressKey, id string) (*entity.ProgressItem, error) {
	item := entity.ProgressItem{
		ID:          id,
		UserID:      userID,
		ProgressKey: progressKey,
	}
	var (
		metadata          string
		created, modified int64
	)
	row := pr.db.QueryRowContext(ctx,
		`SELECT value, metadata, date_created, date_modified FROM progress_items WHERE user_id = ? AND progress_key = ? AND id = ?`,
		userID, progressKey, id,
	)
	if err := row.Scan(&item.Value, &metadata, &created, &modified); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, errorvalues.ErrProgressNotFound
		}
		return nil, errorvalues.Storage("getting progress by id", err)
	}
	item.DateCreated = fromUnix(created)
	item.DateModified = fromUnix(modified)
	var err error
	if item.Metadata, err = repository.DecodeMetadata([]byte(metadata)); err != nil {
		return nil, errorvalues.Storage("progress metadata parsing", err)
	}
	return &item, nil
}

func (pr *ProgressRepository) ListByKey(ctx context.Context, userID, progressKey string) ([]entity.ProgressItem, error) {
	rows, err := pr.db.QueryContext(ctx,
		`SELECT id, user_id, progress_key, value, metadata, date_created, date_modified
		 FROM progress_items WHERE user_id = ? AND progress_key = ? ORDER BY id`,
		userID, progressKey,
	)
	if err != nil {
		return nil, errorvalues.Storage("listing progress", err)
	}
	defer rows.Close()
	items := make([]entity.ProgressItem, 0)
	for rows.Next() {
		var (
			item              entity.ProgressItem
			metadata          string
			created, modified int64
		)
		if err := rows.Scan(&item.ID, &item.UserID, &item.ProgressKey, &item.Value, &metadata, &created, &modified); err != nil {
			return nil, errorvalues.Storage("progress row parsing", err)
		}
		item.DateCreated = fromUnix(created)
		item.DateModified = fromUnix(modified)
		if item.Metadata, err = repository.DecodeMetadata([]byte(metadata)); err != nil {
			return nil, errorvalues.Storage("progress metadata parsing", err)
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, errorvalues.Storage("unexpected progress rows", err)
	}
	return items, nil
}

func (pr *ProgressRepository) Delete(ctx context.Context, userID, progressKey, id string) error {
	result, err := pr.db.ExecContext(ctx,
		`DELETE FROM progress_items WHERE user_id = ? AND progress_key = ? AND id = ?`, userID, progressKey, id)
	if err != nil {
		return errorvalues.Storage("deleting progress", err)
	}
	if n, _ := result.RowsAffected(); n == 0 {
		return errorvalues.ErrProgressNotFound
	}
	return nil
}

func (pr *ProgressRepository) DeleteByKey(ctx context.Context, userID, progressKey string) (int64, error) {
	result, err := pr.db.ExecContext(ctx,
		`DELETE FROM progress_items WHERE user_id = ? AND progress_key = ?`, userID, progressKey)
	if err != nil {
		return 0, errorvalues.Storage("deleting progress items", err)
	}
	n, _ := result.RowsAffected()
	return n, nil
}
