package postgres

import (
	"context"
	"fmt"
	"log"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"

	"github.com/s21platform/messenger-service/internal/config"
)

type key string

const keyTx = key("pg_tx")

// Conn is satisfied by both *sqlx.DB and *sqlx.Tx.
type Conn interface {
	sqlx.ExtContext
	GetContext(ctx context.Context, dest interface{}, query string, args ...interface{}) error
	SelectContext(ctx context.Context, dest interface{}, query string, args ...interface{}) error
}

type Repository struct {
	connection *sqlx.DB
}

func New(cfg *config.Config) *Repository {
	conStr := fmt.Sprintf("user=%s password=%s dbname=%s host=%s port=%s sslmode=%s",
		cfg.Postgres.User, cfg.Postgres.Password, cfg.Postgres.Database, cfg.Postgres.Host, cfg.Postgres.Port, cfg.Postgres.SSLMode)

	conn, err := sqlx.Connect("postgres", conStr)
	if err != nil {
		log.Fatal("error connect: ", err)
	}

	return &Repository{
		connection: conn,
	}
}

func (r *Repository) Close() {
	_ = r.connection.Close()
}

// Chk returns the transaction bound to ctx, or the pool when none is active.
func (r *Repository) Chk(ctx context.Context) Conn {
	if t, ok := ctx.Value(keyTx).(*sqlx.Tx); ok {
		return t
	}
	return r.connection
}

func (r *Repository) WithTx(ctx context.Context, cb func(ctx context.Context) error) error {
	t, err := r.connection.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %v", err)
	}

	if err := cb(context.WithValue(ctx, keyTx, t)); err != nil {
		_ = t.Rollback()
		return err
	}

	if err := t.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %v", err)
	}

	return nil
}
