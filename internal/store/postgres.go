package store

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Postgres keeps cart identifiers server-side, keyed by session. Used by
// the HTTP API's session cart routes so a shopper's cart follows their
// session cookie instead of living in browser storage.
type Postgres struct {
	pool *pgxpool.Pool
}

func NewPostgres(pool *pgxpool.Pool) *Postgres {
	return &Postgres{pool: pool}
}

func (p *Postgres) Get(ctx context.Context, key string) (string, error) {
	const q = `SELECT cart_id FROM cart_sessions WHERE key = $1`
	var cartID string
	if err := p.pool.QueryRow(ctx, q, key).Scan(&cartID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", ErrNotFound
		}
		return "", err
	}
	return cartID, nil
}

func (p *Postgres) Set(ctx context.Context, key, value string) error {
	const q = `
INSERT INTO cart_sessions (key, cart_id, updated_at)
VALUES ($1, $2, now())
ON CONFLICT (key) DO UPDATE SET cart_id = EXCLUDED.cart_id, updated_at = now()
`
	_, err := p.pool.Exec(ctx, q, key, value)
	return err
}

func (p *Postgres) Remove(ctx context.Context, key string) error {
	const q = `DELETE FROM cart_sessions WHERE key = $1`
	_, err := p.pool.Exec(ctx, q, key)
	return err
}
