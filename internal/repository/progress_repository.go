package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	errorvalues "github.com/limbo/engagement/internal/error_values"
	"github.com/limbo/engagement/pkg/entity"
)

type ProgressRepository struct {
	conn PgConnection
}

func NewProgressRepoWithConn(conn PgConnection) *ProgressRepository {
	mustPing(conn, "progressRepo")
	return &ProgressRepository{
		conn: conn,
	}
}

func (pr *ProgressRepository) Upsert(ctx context.Context, item *entity.ProgressItem) error {
	if item == nil {
		return errors.New("progress item is nil")
	}
	if item.UserID == "" {
		return errorvalues.ErrEmptyUserID
	}
	metadata, err := EncodeMetadata(item.Metadata)
	if err != nil {
		return errorvalues.ErrInvalidMetadata
	}
	_, err = pr.conn.Exec(ctx,
		`INSERT INTO progress_items (id, user_id, progress_key, value, metadata, date_created, date_modified)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (user_id, progress_key, id) DO UPDATE SET value = EXCLUDED.value, metadata = EXCLUDED.metadata, date_modified = EXCLUDED.date_modified;`,
		item.ID,
		item.UserID,
		item.ProgressKey,
		item.Value,
		metadata,
		item.DateCreated,
		item.DateModified,
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
	var metadata []byte
	row := pr.conn.QueryRow(ctx,
		`SELECT value, metadata, date_created, date_modified FROM progress_items WHERE user_id = $1 AND progress_key = $2 AND id = $3;`,
		userID, progressKey, id,
	)
	if err := row.Scan(&item.Value, &metadata, &item.DateCreated, &item.DateModified); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errorvalues.ErrProgressNotFound
		}
		return nil, errorvalues.Storage("getting progress by id", err)
	}
	var err error
	if item.Metadata, err = DecodeMetadata(metadata); err != nil {
		return nil, errorvalues.Storage("progress metadata parsing", err)
	}
	return &item, nil
}

func (pr *ProgressRepository) ListByKey(ctx context.Context, userID, progressKey string) ([]entity.ProgressItem, error) {
	rows, err := pr.conn.Query(ctx, `SELECT id, user_id, progress_key, value, metadata, date_created, date_modified
		FROM progress_items WHERE user_id = $1 AND progress_key = $2 ORDER BY id;`, userID, progressKey)
	if err != nil {
		return nil, errorvalues.Storage("listing progress", err)
	}
	defer rows.Close()
	items := make([]entity.ProgressItem, 0)
	for rows.Next() {
		var (
			item     entity.ProgressItem
			metadata []byte
		)
		err = rows.Scan(&item.ID, &item.UserID, &item.ProgressKey, &item.Value, &metadata, &item.DateCreated, &item.DateModified)
		if err != nil {
			return nil, errorvalues.Storage("progress row parsing", err)
		}
		if item.Metadata, err = DecodeMetadata(metadata); err != nil {
			return nil, errorvalues.Storage("progress metadata parsing", err)
		}
		items = append(items, item)
	}
	if err = rows.Err(); err != nil {
		return nil, errorvalues.Storage("unexpected progress rows", err)
	}
	return items, nil
}

func (pr *ProgressRepository) Delete(ctx context.Context, userID, progressKey, id string) error {
	ct, err := pr.conn.Exec(ctx, `DELETE FROM progress_items WHERE user_id = $1 AND progress_key = $2 AND id = $3;`, userID, progressKey, id)
	if err != nil {
		return errorvalues.Storage("deleting progress", err)
	}
	if ct.RowsAffected() == 0 {
		return errorvalues.ErrProgressNotFound
	}
	return nil
}

func (pr *ProgressRepository) DeleteByKey(ctx context.Context, userID, progressKey string) (int64, error) {
	ct, err := pr.conn.Exec(ctx, `DELETE FROM progress_items WHERE user_id = $1 AND progress_key = $2;`, userID, progressKey)
	if err != nil {
		return 0, errorvalues.Storage("deleting progress items", err)
	}
	return ct.RowsAffected(), nil
}
