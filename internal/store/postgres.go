package store

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/serroba/tinyurl/internal/shortener"
)

// PostgresMappingStore is a PostgreSQL implementation of shortener.Store.
// ON CONFLICT DO NOTHING gives the same set-if-absent contract as the
// Redis store: a zero-row insert means the code is taken.
type PostgresMappingStore struct {
	pool *pgxpool.Pool
}

// NewPostgresMappingStore creates a PostgreSQL-backed mapping store.
func NewPostgresMappingStore(pool *pgxpool.Pool) *PostgresMappingStore {
	return &PostgresMappingStore{pool: pool}
}

func (p *PostgresMappingStore) Reserve(ctx context.Context, code shortener.Code, mapping *shortener.Mapping) error {
	query := `
		INSERT INTO tiny_urls (code, long_url, user_name)
		VALUES ($1, $2, NULLIF($3, ''))
		ON CONFLICT (code) DO NOTHING
	`

	tag, err := p.pool.Exec(ctx, query, string(code), mapping.LongURL, mapping.UserName)
	if err != nil {
		return err
	}

	if tag.RowsAffected() == 0 {
		return shortener.ErrCodeTaken
	}

	return nil
}

func (p *PostgresMappingStore) Lookup(ctx context.Context, code shortener.Code) (*shortener.Mapping, error) {
	query := `
		SELECT long_url, COALESCE(user_name, '')
		FROM tiny_urls
		WHERE code = $1
	`

	var mapping shortener.Mapping

	err := p.pool.QueryRow(ctx, query, string(code)).Scan(&mapping.LongURL, &mapping.UserName)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, shortener.ErrNotFound
		}

		return nil, err
	}

	return &mapping, nil
}

// Compile-time check.
var _ shortener.Store = (*PostgresMappingStore)(nil)
