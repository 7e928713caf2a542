// storage определяет контракты хранилища поисковой строки для stories-service.
package storage

import (
	"context"
	"errors"
)

var (
	// ErrNotFound - значение по ключу не сохранялось.
	ErrNotFound = errors.New("not found")
)

//go:generate mockgen -destination=../../mocks/storage.go -package=mocks github.com/pribylovaa/hacker-stories/internal/storage TermStorage

// TermStorage хранит последнюю поисковую строку по ключу (аналог localStorage["search"]).
type TermStorage interface {
	// Term возвращает сохранённую строку. Если ключа нет - ErrNotFound.
	Term(ctx context.Context, key string) (string, error)
	// SaveTerm сохраняет строку (upsert по ключу). Пустая строка - допустимое значение.
	SaveTerm(ctx context.Context, key, term string) error
}

// Storage задаёт контракт доступа к хранилищу для stories-service.
type Storage interface {
	TermStorage
	Close()
}
