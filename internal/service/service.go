// service содержит бизнес-логику stories-service: владение FetchState,
// историю запросов и цикл загрузки историй из API поиска.
package service

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/pribylovaa/hacker-stories/internal/config"
	"github.com/pribylovaa/hacker-stories/internal/models"
	"github.com/pribylovaa/hacker-stories/internal/sorting"
	"github.com/pribylovaa/hacker-stories/internal/storage"
)

var (
	// ErrInvalidArgument - некорректные входные аргументы.
	// Транспорт: codes.InvalidArgument.
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrNoHistory - ещё не было ни одного запроса.
	// Транспорт: codes.FailedPrecondition.
	ErrNoHistory = errors.New("no search history")
	// ErrFetchInProgress - загрузка уже идёт, следующая страница пока не определена.
	// Транспорт: codes.FailedPrecondition.
	ErrFetchInProgress = errors.New("fetch in progress")
	// ErrNoMorePages - загружена последняя страница поиска.
	// Транспорт: codes.FailedPrecondition.
	ErrNoMorePages = errors.New("no more pages")
	// ErrFetchFailed - API поиска вернул ошибку, состояние переведено в IsError.
	// Транспорт: codes.Unavailable.
	ErrFetchFailed = errors.New("fetch failed")
	// ErrSuperseded - ответ устарел: после него уже был выпущен более новый запрос.
	// Транспорт: codes.Aborted.
	ErrSuperseded = errors.New("request superseded")
	// ErrUnknownField - неизвестное поле сортировки.
	// Транспорт: codes.InvalidArgument.
	ErrUnknownField = sorting.ErrUnknownField
)

//go:generate mockgen -destination=../../mocks/searcher.go -package=mocks github.com/pribylovaa/hacker-stories/internal/service Searcher

// Searcher выполняет запрос к API поиска по готовому URL.
type Searcher interface {
	Search(ctx context.Context, rawURL string) (models.PagedList, error)
}

// Recorder получает события для метрик.
type Recorder interface {
	FetchDone(outcome string, d time.Duration)
	ActionApplied(action string, items int)
}

type nopRecorder struct{}

func (nopRecorder) FetchDone(string, time.Duration) {}
func (nopRecorder) ActionApplied(string, int)       {}

// Service владеет одним FetchState и всем, что его меняет.
//
// Под mu живут состояние, история запросов, переключатели сортировки
// и счётчик запросов. Сетевой вызов выполняется вне блокировки.
//
// loadedURL - запрос, ответ на который последним попал в состояние.
// По нему LoadMore понимает, к какому поиску относится текущий список.
type Service struct {
	searcher Searcher
	terms    storage.TermStorage
	rec      Recorder
	cfg      config.Config

	mu        sync.Mutex
	state     models.FetchState
	history   history
	toggles   *sorting.Toggles
	seq       uint64
	loadedURL string
}

// New создает новый экземпляр Service. rec может быть nil.
func New(searcher Searcher, terms storage.TermStorage, cfg config.Config, rec Recorder) *Service {
	if rec == nil {
		rec = nopRecorder{}
	}

	return &Service{
		searcher: searcher,
		terms:    terms,
		rec:      rec,
		cfg:      cfg,
		state:    models.NewFetchState(),
		toggles:  sorting.NewToggles(),
	}
}
