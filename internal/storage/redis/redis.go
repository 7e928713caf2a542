// redis - реализация storage.Storage поверх Redis.
//
// Поисковая строка хранится как Redis Hash <prefix><key> с полями:
//   - term - значение;
//   - updated_at - unix-время последней записи.
package redis

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	goredis "github.com/redis/go-redis/v9"

	"github.com/pribylovaa/hacker-stories/internal/storage"
)

const defaultPrefix = "stories:term:"

type Storage struct {
	rdb    *goredis.Client
	prefix string
	now    func() time.Time
}

// New создаёт клиент Redis из URL (например, redis://:pass@host:6379/0)
// и делает fail-fast Ping. Пустой prefix заменяется на "stories:term:".
func New(ctx context.Context, redisURL, prefix string) (*Storage, error) {
	const op = "storage.redis.New"

	opt, err := goredis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	rdb := goredis.NewClient(opt)
	if err := rdb.Ping(ctx).Err(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("%s: ping: %w", op, err)
	}

	return newWithClient(rdb, prefix), nil
}

func newWithClient(rdb *goredis.Client, prefix string) *Storage {
	if prefix == "" {
		prefix = defaultPrefix
	}

	return &Storage{
		rdb:    rdb,
		prefix: prefix,
		now:    time.Now,
	}
}

func (s *Storage) key(k string) string { return s.prefix + k }

// Term возвращает сохранённую строку или storage.ErrNotFound.
func (s *Storage) Term(ctx context.Context, key string) (string, error) {
	const op = "storage.redis.Term"

	term, err := s.rdb.HGet(ctx, s.key(key), "term").Result()
	if err != nil {
		if errors.Is(err, goredis.Nil) {
			return "", fmt.Errorf("%s: %w", op, storage.ErrNotFound)
		}
		return "", fmt.Errorf("%s: %w", op, err)
	}

	return term, nil
}

// SaveTerm записывает строку и время обновления одной транзакцией.
func (s *Storage) SaveTerm(ctx context.Context, key, term string) error {
	const op = "storage.redis.SaveTerm"

	pipe := s.rdb.TxPipeline()
	pipe.HSet(ctx, s.key(key), map[string]string{
		"term":       term,
		"updated_at": strconv.FormatInt(s.now().UTC().Unix(), 10),
	})

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

// Close закрывает клиент Redis.
func (s *Storage) Close() {
	_ = s.rdb.Close()
}

var _ storage.Storage = (*Storage)(nil)
