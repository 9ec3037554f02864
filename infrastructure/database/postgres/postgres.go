package postgres

import (
	"context"
	"database/sql"

	"github.com/JohnnyAlysson/store-manager-api/internal/config"
	_ "github.com/lib/pq"
)

type Conn interface {
	Queryer
	TransactionManager
	Close() error
	Ping(context.Context) error
}

type Connection struct {
	db *sql.DB
}

func NewConnection(
	ctx context.Context,
	cfg config.Database,
) (*Connection, error) {
	db, err := sql.Open("postgres", cfg.DSN)
	if err != nil {
		return nil, err
	}

	if err := db.PingContext(ctx); err != nil {
		return nil, err
	}

	return &Connection{db: db}, nil
}

// NewConnectionFromDB embrulha um *sql.DB já aberto. Usado nos testes com sqlmock.
func NewConnectionFromDB(db *sql.DB) *Connection {
	return &Connection{db: db}
}

func (c *Connection) Ping(ctx context.Context) error {
	return c.db.PingContext(ctx)
}

func (c *Connection) Close() error {
	return c.db.Close()
}

func (c *Connection) Exec(ctx context.Context, sql string, args ...interface{}) (sql.Result, error) {
	return c.db.ExecContext(ctx, sql, args...)
}

func (c *Connection) Query(ctx context.Context, sql string, args ...interface{}) (*sql.Rows, error) {
	return c.db.QueryContext(ctx, sql, args...)
}

func (c *Connection) QueryRow(ctx context.Context, sql string, args ...interface{}) *sql.Row {
	return c.db.QueryRowContext(ctx, sql, args...)
}

// RunInTransaction executa fn dentro de uma transação. Commit apenas se fn
// retornar nil; erro ou panic desfazem todas as escritas.
func (c *Connection) RunInTransaction(ctx context.Context, fn func(Queryer) error) error {
	tx, err := c.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}

	defer func() {
		if err := recover(); err != nil {
			_ = tx.Rollback()
			panic(err)
		}
	}()

	if err := fn(&Tx{tx: tx}); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil {
			return rbErr
		}
		return err
	}

	return tx.Commit()
}

// Tx adapta *sql.Tx à interface Queryer.
type Tx struct {
	tx *sql.Tx
}

func (t *Tx) Exec(ctx context.Context, sql string, args ...interface{}) (sql.Result, error) {
	return t.tx.ExecContext(ctx, sql, args...)
}

func (t *Tx) Query(ctx context.Context, sql string, args ...interface{}) (*sql.Rows, error) {
	return t.tx.QueryContext(ctx, sql, args...)
}

func (t *Tx) QueryRow(ctx context.Context, sql string, args ...interface{}) *sql.Row {
	return t.tx.QueryRowContext(ctx, sql, args...)
}
