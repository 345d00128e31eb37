package repository_test

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	errorvalues "github.com/limbo/engagement/internal/error_values"
	"github.com/limbo/engagement/internal/repository"
	"github.com/limbo/engagement/pkg/entity"
	"github.com/pashagolub/pgxmock/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	consumeQuery = regexp.QuoteMeta(`UPDATE streak_freezes SET date_consumed = $4
	WHERE user_id = $1 AND stream_key = $2 AND id = $3 AND date_consumed IS NULL AND (date_expires IS NULL OR date_expires > $4);`)
	inspectQuery = regexp.QuoteMeta(`SELECT date_expires, date_consumed FROM streak_freezes WHERE user_id = $1 AND stream_key = $2 AND id = $3;`)
	insertQuery  = regexp.QuoteMeta(`INSERT INTO engagement_events (id, user_id, stream_key, occurred_at, metadata, is_freeze_consumption, freeze_id) VALUES ($1, $2, $3, $4, $5, $6, $7);`)
)

func TestCreateFreeze(t *testing.T) {
	mock, err := pgxmock.NewPool()
	if err != nil {
		t.Fatal(err)
	}
	repo := repository.NewFreezesRepoWithConn(mock)
	ctx := context.Background()
	freeze := entity.FreezeToken{
		ID:          "freeze_1",
		UserID:      testUserID,
		StreamKey:   testStream,
		DateCreated: testTime,
	}
	query := regexp.QuoteMeta(`INSERT INTO streak_freezes (id, user_id, stream_key, date_created, date_expires) VALUES ($1, $2, $3, $4, $5);`)
	args := []any{freeze.ID, freeze.UserID, freeze.StreamKey, freeze.DateCreated, (*time.Time)(nil)}
	t.Run("successfully created", func(t *testing.T) {
		mock.ExpectExec(query).WithArgs(args...).WillReturnResult(pgxmock.NewResult("INSERT", 1))
		assert.NoError(t, repo.Create(ctx, &freeze))
	})
	t.Run("unique violation", func(t *testing.T) {
		mock.ExpectExec(query).WithArgs(args...).WillReturnError(&pgconn.PgError{Code: "23505"})
		assert.ErrorIs(t, repo.Create(ctx, &freeze), errorvalues.ErrFreezeExists)
	})
	t.Run("db error", func(t *testing.T) {
		mock.ExpectExec(query).WithArgs(args...).WillReturnError(errors.New("db error"))
		assert.ErrorIs(t, repo.Create(ctx, &freeze), errorvalues.ErrStorage)
	})
}

func TestGetFreezeByID(t *testing.T) {
	mock, err := pgxmock.NewPool()
	if err != nil {
		t.Fatal(err)
	}
	repo := repository.NewFreezesRepoWithConn(mock)
	ctx := context.Background()
	query := regexp.QuoteMeta(`SELECT date_created, date_expires, date_consumed FROM streak_freezes WHERE user_id = $1 AND stream_key = $2 AND id = $3;`)
	expires := testTime.Add(48 * time.Hour)
	t.Run("found", func(t *testing.T) {
		mock.ExpectQuery(query).
			WithArgs(testUserID, testStream, "freeze_1").
			WillReturnRows(pgxmock.NewRows([]string{"date_created", "date_expires", "date_consumed"}).
				AddRow(testTime, &expires, (*time.Time)(nil)))
		freeze, err := repo.GetByID(ctx, testUserID, testStream, "freeze_1")
		require.NoError(t, err)
		assert.Equal(t, "freeze_1", freeze.ID)
		assert.Equal(t, expires, *freeze.DateExpires)
		assert.Nil(t, freeze.DateConsumed)
	})
	t.Run("not found", func(t *testing.T) {
		mock.ExpectQuery(query).
			WithArgs(testUserID, testStream, "freeze_1").
			WillReturnError(pgx.ErrNoRows)
		_, err := repo.GetByID(ctx, testUserID, testStream, "freeze_1")
		assert.ErrorIs(t, err, errorvalues.ErrFreezeNotFound)
		assert.ErrorIs(t, err, errorvalues.ErrNotFound)
	})
}

func TestListFreezesByStream(t *testing.T) {
	mock, err := pgxmock.NewPool()
	if err != nil {
		t.Fatal(err)
	}
	repo := repository.NewFreezesRepoWithConn(mock)
	ctx := context.Background()
	query := regexp.QuoteMeta(`SELECT id, user_id, stream_key, date_created, date_expires, date_consumed
		FROM streak_freezes WHERE user_id = $1 AND stream_key = $2 ORDER BY date_created, seq;`)
	columns := []string{"id", "user_id", "stream_key", "date_created", "date_expires", "date_consumed"}
	consumed := testTime.Add(time.Hour)
	mock.ExpectQuery(query).
		WithArgs(testUserID, testStream).
		WillReturnRows(pgxmock.NewRows(columns).
			AddRow("freeze_1", testUserID, testStream, testTime, (*time.Time)(nil), &consumed).
			AddRow("freeze_2", testUserID, testStream, testTime.Add(time.Minute), (*time.Time)(nil), (*time.Time)(nil)))
	freezes, err := repo.ListByStream(ctx, testUserID, testStream)
	require.NoError(t, err)
	require.Len(t, freezes, 2)
	assert.False(t, freezes[0].IsAvailable(testTime.Add(2*time.Hour)))
	assert.True(t, freezes[1].IsAvailable(testTime.Add(2*time.Hour)))
}

func TestConsumeFreeze(t *testing.T) {
	mock, err := pgxmock.NewPool()
	if err != nil {
		t.Fatal(err)
	}
	repo := repository.NewFreezesRepoWithConn(mock)
	ctx := context.Background()
	at := testTime.Add(time.Hour)
	tests := []struct {
		Desc         string
		MockPrepFunc func()
		Error        error
	}{
		{
			Desc: "consumed",
			MockPrepFunc: func() {
				mock.ExpectExec(consumeQuery).
					WithArgs(testUserID, testStream, "freeze_1", at).
					WillReturnResult(pgxmock.NewResult("UPDATE", 1))
			},
		},
		{
			Desc: "not found",
			MockPrepFunc: func() {
				mock.ExpectExec(consumeQuery).
					WithArgs(testUserID, testStream, "freeze_1", at).
					WillReturnResult(pgxmock.NewResult("UPDATE", 0))
				mock.ExpectQuery(inspectQuery).
					WithArgs(testUserID, testStream, "freeze_1").
					WillReturnError(pgx.ErrNoRows)
			},
			Error: errorvalues.ErrFreezeNotFound,
		},
		{
			Desc: "already consumed",
			MockPrepFunc: func() {
				mock.ExpectExec(consumeQuery).
					WithArgs(testUserID, testStream, "freeze_1", at).
					WillReturnResult(pgxmock.NewResult("UPDATE", 0))
				mock.ExpectQuery(inspectQuery).
					WithArgs(testUserID, testStream, "freeze_1").
					WillReturnRows(pgxmock.NewRows([]string{"date_expires", "date_consumed"}).
						AddRow((*time.Time)(nil), &testTime))
			},
			Error: errorvalues.ErrFreezeAlreadyConsumed,
		},
		{
			Desc: "expired",
			MockPrepFunc: func() {
				mock.ExpectExec(consumeQuery).
					WithArgs(testUserID, testStream, "freeze_1", at).
					WillReturnResult(pgxmock.NewResult("UPDATE", 0))
				mock.ExpectQuery(inspectQuery).
					WithArgs(testUserID, testStream, "freeze_1").
					WillReturnRows(pgxmock.NewRows([]string{"date_expires", "date_consumed"}).
						AddRow(&testTime, (*time.Time)(nil)))
			},
			Error: errorvalues.ErrFreezeExpired,
		},
		{
			Desc: "db error",
			MockPrepFunc: func() {
				mock.ExpectExec(consumeQuery).
					WithArgs(testUserID, testStream, "freeze_1", at).
					WillReturnError(errors.New("db error"))
			},
			Error: errorvalues.ErrStorage,
		},
	}
	for _, tc := range tests {
		t.Run(tc.Desc, func(t *testing.T) {
			tc.MockPrepFunc()
			err := repo.Consume(ctx, testUserID, testStream, "freeze_1", at)
			if tc.Error != nil {
				assert.ErrorIs(t, err, tc.Error)
			} else {
				assert.NoError(t, err)
			}
		})
	}
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestApplyFreezes(t *testing.T) {
	mock, err := pgxmock.NewPool()
	if err != nil {
		t.Fatal(err)
	}
	repo := repository.NewFreezesRepoWithConn(mock)
	ctx := context.Background()
	at := testTime
	coverageAt := time.Date(2026, time.March, 13, 12, 0, 0, 0, time.UTC)
	app := entity.FreezeApplication{
		TokenID: "freeze_1",
		Coverage: entity.EngagementEvent{
			ID:                  "freeze_freeze_1",
			UserID:              testUserID,
			StreamKey:           testStream,
			OccurredAt:          coverageAt,
			IsFreezeConsumption: true,
			FreezeID:            "freeze_1",
		},
	}
	freezeID := "freeze_1"
	insertArgs := []any{"freeze_freeze_1", testUserID, testStream, coverageAt, []byte("{}"), true, &freezeID}
	t.Run("applied", func(t *testing.T) {
		mock.ExpectBegin()
		mock.ExpectExec(consumeQuery).
			WithArgs(testUserID, testStream, "freeze_1", at).
			WillReturnResult(pgxmock.NewResult("UPDATE", 1))
		mock.ExpectExec(insertQuery).
			WithArgs(insertArgs...).
			WillReturnResult(pgxmock.NewResult("INSERT", 1))
		mock.ExpectCommit()
		err := repo.ApplyFreezes(ctx, testUserID, testStream, at, []entity.FreezeApplication{app})
		assert.NoError(t, err)
	})
	t.Run("rolled back on consumed freeze", func(t *testing.T) {
		mock.ExpectBegin()
		mock.ExpectExec(consumeQuery).
			WithArgs(testUserID, testStream, "freeze_1", at).
			WillReturnResult(pgxmock.NewResult("UPDATE", 0))
		mock.ExpectQuery(inspectQuery).
			WithArgs(testUserID, testStream, "freeze_1").
			WillReturnRows(pgxmock.NewRows([]string{"date_expires", "date_consumed"}).
				AddRow((*time.Time)(nil), &testTime))
		mock.ExpectRollback()
		err := repo.ApplyFreezes(ctx, testUserID, testStream, at, []entity.FreezeApplication{app})
		assert.ErrorIs(t, err, errorvalues.ErrFreezeAlreadyConsumed)
	})
	t.Run("rolled back on insert error", func(t *testing.T) {
		mock.ExpectBegin()
		mock.ExpectExec(consumeQuery).
			WithArgs(testUserID, testStream, "freeze_1", at).
			WillReturnResult(pgxmock.NewResult("UPDATE", 1))
		mock.ExpectExec(insertQuery).
			WithArgs(insertArgs...).
			WillReturnError(errors.New("db error"))
		mock.ExpectRollback()
		err := repo.ApplyFreezes(ctx, testUserID, testStream, at, []entity.FreezeApplication{app})
		assert.ErrorIs(t, err, errorvalues.ErrStorage)
	})
	t.Run("nothing to apply", func(t *testing.T) {
		assert.NoError(t, repo.ApplyFreezes(ctx, testUserID, testStream, at, nil))
	})
	assert.NoError(t, mock.ExpectationsWereMet())
}
