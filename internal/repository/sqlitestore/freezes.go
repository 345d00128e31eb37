package sqlitestore

import (
	"context"
	"database/sql"
	"errors"
	"time"

	errorvalues "github.com/limbo/engagement/internal/error_values"
	"github.com/limbo/engagement/pkg/entity"
)

type FreezesRepository struct {
	db *sql.DB
}

func (fr *FreezesRepository) Create(ctx context.Context, freeze *entity.FreezeToken) error {
	if freeze == nil {
		return errors.New("freeze is nil")
	}
	if freeze.UserID == "" {
		return errorvalues.ErrEmptyUserID
	}
	_, err := fr.db.ExecContext(ctx,
		`INSERT INTO streak_freezes (id, user_id, stream_key, date_created, date_expires) VALUES (?, ?, ?, ?, ?)`,
		freeze.ID, freeze.UserID, freeze.StreamKey, toUnix(freeze.DateCreated), nullableUnix(freeze.DateExpires),
	)
	if err != nil {
		if isUniqueViolation(err) {
			return errorvalues.ErrFreezeExists
		}
		return errorvalues.Storage("creating freeze", err)
	}
	return nil
}

func (fr *FreezesRepository) GetByID(ctx context.Context, userID, streamKey, id string) (*entity.FreezeToken, error) {
	freeze := entity.FreezeToken{
		ID:        id,
		UserID:    userID,
		StreamKey: streamKey,
	}
	var (
		created           int64
		expires, consumed sql.NullInt64
	)
	row := fr.db.QueryRowContext(ctx,
		`SELECT date_created, date_expires, date_consumed FROM streak_freezes WHERE user_id = ? AND stream_key = ? AND id = ?`,
		userID, streamKey, id,
	)
	if err := row.Scan(&created, &expires, &consumed); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, errorvalues.ErrFreezeNotFound
		}
		return nil, errorvalues.Storage("getting freeze by id", err)
	}
	freeze.DateCreated = fromUnix(created)
	freeze.DateExpires = fromNullable(expires)
	freeze.DateConsumed = fromNullable(consumed)
	return &freeze, nil
}

func (fr *FreezesRepository) ListByStream(ctx context.Context, userID, streamKey string) ([]entity.FreezeToken, error) {
	rows, err := fr.db.QueryContext(ctx,
		`SELECT id, user_id, stream_key, date_created, date_expires, date_consumed
		 FROM streak_freezes WHERE user_id = ? AND stream_key = ? ORDER BY date_created, seq`,
		userID, streamKey,
	)
	if err != nil {
		return nil, errorvalues.Storage("listing freezes", err)
	}
	defer rows.Close()
	freezes := make([]entity.FreezeToken, 0)
	for rows.Next() {
		var (
			f                 entity.FreezeToken
			created           int64
			expires, consumed sql.NullInt64
		)
		if err := rows.Scan(&f.ID, &f.UserID, &f.StreamKey, &created, &expires, &consumed); err != nil {
			return nil, errorvalues.Storage("freeze row parsing", err)
		}
		f.DateCreated = fromUnix(created)
		f.DateExpires = fromNullable(expires)
		f.DateConsumed = fromNullable(consumed)
		freezes = append(freezes, f)
	}
	if err := rows.Err(); err != nil {
		return nil, errorvalues.Storage("unexpected freeze rows", err)
	}
	return freezes, nil
}

func (fr *FreezesRepository) Consume(ctx context.Context, userID, streamKey, id string, at time.Time) error {
	return consumeFreeze(ctx, fr.db, userID, streamKey, id, at)
}

func (fr *FreezesRepository) ApplyFreezes(ctx context.Context, userID, streamKey string, at time.Time, apps []entity.FreezeApplication) error {
	if len(apps) == 0 {
		return nil
	}
	tx, err := fr.db.BeginTx(ctx, nil)
	if err != nil {
		return errorvalues.Storage("beginning freeze transaction", err)
	}
	for _, app := range apps {
		if err = consumeFreeze(ctx, tx, userID, streamKey, app.TokenID, at); err == nil {
			coverage := app.Coverage
			err = insertEvent(ctx, tx, &coverage)
		}
		if err != nil {
			_ = tx.Rollback()
			return err
		}
	}
	if err = tx.Commit(); err != nil {
		return errorvalues.Storage("committing freeze transaction", err)
	}
	return nil
}

func consumeFreeze(ctx context.Context, q execer, userID, streamKey, id string, at time.Time) error {
	result, err := q.ExecContext(ctx,
		`UPDATE streak_freezes SET date_consumed = ?
		 WHERE user_id = ? AND stream_key = ? AND id = ? AND date_consumed IS NULL AND (date_expires IS NULL OR date_expires > ?)`,
		toUnix(at), userID, streamKey, id, toUnix(at),
	)
	if err != nil {
		return errorvalues.Storage("consuming freeze", err)
	}
	if n, _ := result.RowsAffected(); n == 1 {
		return nil
	}
	var consumed sql.NullInt64
	row := q.QueryRowContext(ctx,
		`SELECT date_consumed FROM streak_freezes WHERE user_id = ? AND stream_key = ? AND id = ?`,
		userID, streamKey, id,
	)
	if err := row.Scan(&consumed); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return errorvalues.ErrFreezeNotFound
		}
		return errorvalues.Storage("inspecting freeze", err)
	}
	if consumed.Valid {
		return errorvalues.ErrFreezeAlreadyConsumed
	}
	return errorvalues.ErrFreezeExpired
}
