package repository

import (
	"context"
	"log"

	"github.com/bytedance/sonic"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/limbo/engagement/pkg/cleanup"
	"github.com/limbo/engagement/pkg/entity"
)

// Connect opens the pool shared by every repository. The pool is closed by
// the cleanup jobs on shutdown.
func Connect(cfg DBConfig) *pgxpool.Pool {
	pool, err := pgxpool.New(context.Background(), cfg.ConnString())
	if err != nil {
		log.Fatal("creating pgxpool error: " + err.Error())
	}
	err = pool.Ping(context.Background())
	if err != nil {
		log.Fatal("error while pinging pgxpool: " + err.Error())
	}
	cleanup.Register(&cleanup.Job{
		Name: "closing pgxpool",
		F: func() error {
			pool.Close()
			return nil
		},
	})
	return pool
}

func mustPing(conn PgConnection, repoName string) {
	err := conn.Ping(context.Background())
	if err != nil {
		log.Fatal("error while pinging connection for " + repoName + ": " + err.Error())
	}
}

// EncodeMetadata renders metadata as JSON with sorted keys, "{}" when empty.
func EncodeMetadata(m entity.Metadata) ([]byte, error) {
	if len(m) == 0 {
		return []byte("{}"), nil
	}
	normalized, err := m.Normalize()
	if err != nil {
		return nil, err
	}
	return sonic.ConfigStd.Marshal(normalized)
}

func DecodeMetadata(raw []byte) (entity.Metadata, error) {
	if len(raw) == 0 {
		return nil, nil
	}
	var m entity.Metadata
	if err := sonic.ConfigStd.Unmarshal(raw, &m); err != nil {
		return nil, err
	}
	if len(m) == 0 {
		return nil, nil
	}
	return m, nil
}
