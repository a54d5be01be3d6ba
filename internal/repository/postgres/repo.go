package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"log"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"

	"github.com/nasafacts/community-service/internal/config"
)

type Repository struct {
	connection *sqlx.DB
}

type executor interface {
	SelectContext(ctx context.Context, dest interface{}, query string, args ...interface{}) error
	GetContext(ctx context.Context, dest interface{}, query string, args ...interface{}) error
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
}

type txKey struct{}

func ConnString(cfg *config.Config) string {
	return fmt.Sprintf("user=%s password=%s dbname=%s host=%s port=%s sslmode=disable",
		cfg.Postgres.User, cfg.Postgres.Password, cfg.Postgres.Database, cfg.Postgres.Host, cfg.Postgres.Port)
}

func New(cfg *config.Config) *Repository {
	conn, err := sqlx.Connect("postgres", ConnString(cfg))
	if err != nil {
		log.Fatal("error connect: ", err)
	}

	return &Repository{
		connection: conn,
	}
}

// NewFromDB wraps an already opened connection.
func NewFromDB(db *sqlx.DB) *Repository {
	return &Repository{connection: db}
}

func (r *Repository) Close() {
	_ = r.connection.Close()
}

func (r *Repository) DB() *sql.DB {
	return r.connection.DB
}

// Chk returns the transaction stored in ctx, or the pool when there is none.
func (r *Repository) Chk(ctx context.Context) executor {
	if tx, ok := ctx.Value(txKey{}).(*sqlx.Tx); ok {
		return tx
	}
	return r.connection
}

// WithTx runs cb inside a transaction. Nested calls join the outer transaction.
func (r *Repository) WithTx(ctx context.Context, cb func(ctx context.Context) error) (err error) {
	if _, ok := ctx.Value(txKey{}).(*sqlx.Tx); ok {
		return cb(ctx)
	}

	tx, err := r.connection.BeginTxx(ctx, nil)
	if err != nil {
		return mapError(err, "begin tx")
	}

	defer func() {
		if p := recover(); p != nil {
			_ = tx.Rollback()
			panic(p)
		}
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	if err = cb(context.WithValue(ctx, txKey{}, tx)); err != nil {
		return err
	}

	if err = tx.Commit(); err != nil {
		return mapError(err, "commit tx")
	}

	return nil
}
