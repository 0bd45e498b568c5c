// Package store is the Postgres persistence layer behind the catalog
// reader, quote engine, order converter, session store, and support desk.
package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/pgdialect"
	"github.com/uptrace/bun/driver/pgdriver"
)

type Config struct {
	DSN             string        `envconfig:"DSN" split_words:"true" required:"true"`
	QueryTimeout    time.Duration `envconfig:"QUERY_TIMEOUT" split_words:"true" default:"5s"`
	MaxOpenConns    int           `envconfig:"MAX_OPEN_CONNS" split_words:"true" default:"25"`
	MaxIdleConns    int           `envconfig:"MAX_IDLE_CONNS" split_words:"true" default:"5"`
	ConnMaxLifetime time.Duration `envconfig:"CONN_MAX_LIFETIME" split_words:"true" default:"5m"`
}

// Postgres implements every persistence contract of the agent packages on a
// single bun connection pool. All calls carry a bounded timeout so a stalled
// store fails fast instead of hanging the conversation.
type Postgres struct {
	db           *bun.DB
	queryTimeout time.Duration
}

func NewPostgres(cfg Config) (*Postgres, error) {
	sqldb := sql.OpenDB(pgdriver.NewConnector(pgdriver.WithDSN(cfg.DSN)))
	sqldb.SetMaxOpenConns(cfg.MaxOpenConns)
	sqldb.SetMaxIdleConns(cfg.MaxIdleConns)
	sqldb.SetConnMaxLifetime(cfg.ConnMaxLifetime)

	db := bun.NewDB(sqldb, pgdialect.New())

	timeout := cfg.QueryTimeout
	if timeout <= 0 {
		timeout = 5 * time.Second
	}

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()
	if err := db.PingContext(ctx); err != nil {
		return nil, fmt.Errorf("ping database: %w", err)
	}

	return &Postgres{db: db, queryTimeout: timeout}, nil
}

func MustNewPostgres(cfg Config) *Postgres {
	p, err := NewPostgres(cfg)
	if err != nil {
		panic(err)
	}
	return p
}

func (p *Postgres) Close() error {
	return p.db.Close()
}

func (p *Postgres) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, p.queryTimeout)
}
