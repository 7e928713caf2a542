// postgres предоставляет реализацию storage.Storage на базе PostgreSQL.
// Схема - migrations/1_init_search_terms.up.sql.
package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/pribylovaa/hacker-stories/internal/storage"
)

type Storage struct {
	db  *pgxpool.Pool
	now func() time.Time
}

// New создает и инициализирует пул соединений к PostgreSQL.
func New(ctx context.Context, dbURL string) (*Storage, error) {
	const op = "storage.postgres.New"

	config, err := pgxpool.ParseConfig(dbURL)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	db, err := pgxpool.NewWithConfig(ctx, config)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if err := db.Ping(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return &Storage{db: db, now: time.Now}, nil
}

// Term возвращает строку по ключу. Нет строки - storage.ErrNotFound.
func (s *Storage) Term(ctx context.Context, key string) (string, error) {
	const op = "storage.postgres.Term"

	var term string
	err := s.db.QueryRow(ctx, `SELECT term FROM search_terms WHERE key = $1`, key).Scan(&term)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", fmt.Errorf("%s: %w", op, storage.ErrNotFound)
		}
		return "", fmt.Errorf("%s: %w", op, err)
	}

	return term, nil
}

// SaveTerm делает upsert по ключу; updated_at обновляется всегда.
func (s *Storage) SaveTerm(ctx context.Context, key, term string) error {
	const op = "storage.postgres.SaveTerm"

	_, err := s.db.Exec(ctx, `
	INSERT INTO search_terms (key, term, updated_at)
	VALUES ($1, $2, $3)
	ON CONFLICT (key) DO UPDATE
	SET term = EXCLUDED.term,
	    updated_at = EXCLUDED.updated_at
	`, key, term, s.now().UTC())
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

// Close закрывает пул соединений.
// Должен вызываться при остановке приложения.
func (s *Storage) Close() {
	s.db.Close()
}

// Проверка выполнения контракта верхнего уровня.
var _ storage.Storage = (*Storage)(nil)
