package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/pribylovaa/hacker-stories/internal/hnapi"
	"github.com/pribylovaa/hacker-stories/internal/metrics"
	"github.com/pribylovaa/hacker-stories/internal/models"
	"github.com/pribylovaa/hacker-stories/internal/reducer"
	"github.com/pribylovaa/hacker-stories/internal/storage"
	"github.com/pribylovaa/hacker-stories/pkg/log"
)

// Start - первичная загрузка: берёт сохранённую поисковую строку
// (или search.default_term) и выполняет по ней Search.
//
// Ошибка чтения хранилища не фатальна: используется строка по умолчанию.
func (s *Service) Start(ctx context.Context) (models.FetchState, error) {
	const op = "service.fetch.Start"

	lg := log.From(ctx)

	term, err := s.Term(ctx)
	if err != nil {
		lg.Warn("start_term_fallback",
			slog.String("op", op),
			slog.String("err", err.Error()),
		)
		term = s.cfg.Search.DefaultTerm
	}

	if validateTerm(term) != nil {
		lg.Warn("start_stored_term_invalid",
			slog.String("op", op),
			slog.String("term", term),
		)
		term = s.cfg.Search.DefaultTerm
	}

	lg.Info("start",
		slog.String("op", op),
		slog.String("term", term),
	)

	state, err := s.Search(ctx, term)
	if err != nil {
		return state, fmt.Errorf("%s: %w", op, err)
	}

	return state, nil
}

// Term возвращает сохранённую поисковую строку.
// Пустое или отсутствующее значение заменяется на search.default_term.
func (s *Service) Term(ctx context.Context) (string, error) {
	const op = "service.fetch.Term"

	term, err := s.terms.Term(ctx, s.cfg.Search.StorageKey)
	if err != nil && !errors.Is(err, storage.ErrNotFound) {
		return "", fmt.Errorf("%s: %w", op, err)
	}

	if term == "" {
		term = s.cfg.Search.DefaultTerm
	}

	return term, nil
}

// Search - отправка поисковой формы: URL первой страницы уходит в историю,
// строка сохраняется в хранилище, затем выполняется Refetch.
//
// Ошибки:
//   - ErrInvalidArgument - пустая строка или символы '?', '&', '#';
//   - ошибки Refetch.
func (s *Service) Search(ctx context.Context, term string) (models.FetchState, error) {
	const op = "service.fetch.Search"

	lg := log.From(ctx)
	lg.Info("search_request",
		slog.String("op", op),
		slog.String("term", term),
	)

	if err := validateTerm(term); err != nil {
		lg.Warn("search_invalid_term",
			slog.String("op", op),
			slog.String("err", err.Error()),
		)
		return s.State(), fmt.Errorf("%s: %w", op, err)
	}

	ctx = log.With(ctx, slog.String("term", term))
	lg = log.From(ctx)

	url := hnapi.BuildURL(s.cfg.API.BaseURL, term, 0)

	s.mu.Lock()
	s.history.push(url)
	s.mu.Unlock()

	if err := s.terms.SaveTerm(ctx, s.cfg.Search.StorageKey, term); err != nil {
		lg.Warn("save_term_failed",
			slog.String("op", op),
			slog.String("err", err.Error()),
		)
	}

	state, err := s.Refetch(ctx)
	if err != nil {
		return state, fmt.Errorf("%s: %w", op, err)
	}

	return state, nil
}

// LoadMore запрашивает следующую страницу для последнего поиска.
// Номер страницы - текущий Data.Page + 1, если список в состоянии получен
// по той же поисковой строке. Иначе (первая страница нового поиска
// ещё не загружена, например после ошибки) запрашивается страница 0.
//
// Ошибки:
//   - ErrNoHistory - ещё не было ни одного поиска;
//   - ErrFetchInProgress - идёт загрузка, номер следующей страницы неизвестен;
//   - ErrNoMorePages - источник сообщил, что страниц больше нет;
//   - ошибки Refetch.
func (s *Service) LoadMore(ctx context.Context) (models.FetchState, error) {
	const op = "service.fetch.LoadMore"

	s.mu.Lock()
	last, ok := s.history.latest()
	if !ok {
		state := s.state.Clone()
		s.mu.Unlock()
		return state, fmt.Errorf("%s: %w", op, ErrNoHistory)
	}

	if s.state.IsLoading {
		state := s.state.Clone()
		s.mu.Unlock()
		return state, fmt.Errorf("%s: %w", op, ErrFetchInProgress)
	}

	term := hnapi.ExtractSearchTerm(last)
	page := 0
	if s.loadedURL != "" && hnapi.ExtractSearchTerm(s.loadedURL) == term {
		page = s.state.Data.Page + 1
		if pages := s.state.Data.Pages; pages > 0 && page >= pages {
			state := s.state.Clone()
			s.mu.Unlock()
			return state, fmt.Errorf("%s: %w: page %d of %d", op, ErrNoMorePages, page, pages)
		}
	}

	url := hnapi.BuildURL(s.cfg.API.BaseURL, term, page)
	s.history.push(url)
	s.mu.Unlock()

	ctx = log.With(ctx, slog.String("term", term))
	log.From(ctx).Info("load_more_request",
		slog.String("op", op),
		slog.Int("page", page),
	)

	state, err := s.Refetch(ctx)
	if err != nil {
		return state, fmt.Errorf("%s: %w", op, err)
	}

	return state, nil
}

// Refetch выполняет запрос по последнему URL из истории.
//
// Цикл: FetchInit → вызов Searcher → ровно одно из FetchSuccess/FetchFailure.
// Если за время запроса был выпущен более новый Refetch, ответ отбрасывается
// без изменения состояния и возвращается ErrSuperseded.
//
// Ошибки:
//   - ErrNoHistory - история пуста;
//   - ErrFetchFailed - ошибка API (состояние при этом IsError=true);
//   - ErrSuperseded - ответ устарел.
func (s *Service) Refetch(ctx context.Context) (models.FetchState, error) {
	const op = "service.fetch.Refetch"

	lg := log.From(ctx)

	s.mu.Lock()
	url, ok := s.history.latest()
	if !ok {
		state := s.state.Clone()
		s.mu.Unlock()
		return state, fmt.Errorf("%s: %w", op, ErrNoHistory)
	}
	s.seq++
	seq := s.seq
	s.dispatchLocked(reducer.FetchInit{})
	s.mu.Unlock()

	reqPage, _ := hnapi.ExtractPage(url)
	lg.Debug("fetch_start",
		slog.String("op", op),
		slog.String("url", url),
		slog.Int("page", reqPage),
		slog.Uint64("seq", seq),
	)

	start := time.Now()
	list, fetchErr := s.searcher.Search(ctx, url)
	elapsed := time.Since(start)

	s.mu.Lock()
	defer s.mu.Unlock()

	if seq != s.seq {
		s.rec.FetchDone(metrics.OutcomeStale, elapsed)
		lg.Info("fetch_superseded",
			slog.String("op", op),
			slog.Uint64("seq", seq),
			slog.Uint64("latest_seq", s.seq),
		)
		return s.state.Clone(), fmt.Errorf("%s: %w", op, ErrSuperseded)
	}

	if fetchErr != nil {
		s.rec.FetchDone(metrics.OutcomeFailure, elapsed)
		lg.Warn("fetch_failed",
			slog.String("op", op),
			slog.String("url", url),
			slog.String("err", fetchErr.Error()),
		)
		return s.dispatchLocked(reducer.FetchFailure{}), fmt.Errorf("%s: %w: %w", op, ErrFetchFailed, fetchErr)
	}

	var known []models.Story
	if list.Page > 0 {
		known = s.state.Data.Items
	}
	list.Items = finalizeStories(list.Items, known)
	s.loadedURL = url

	s.rec.FetchDone(metrics.OutcomeSuccess, elapsed)
	state := s.dispatchLocked(reducer.FetchSuccess{Payload: list})

	lg.Info("fetch_ok",
		slog.String("op", op),
		slog.Int("page", list.Page),
		slog.Int("received", len(list.Items)),
		slog.Int("total", len(state.Data.Items)),
		slog.Duration("elapsed", elapsed),
	)

	return state, nil
}

// validateTerm проверяет, что строку можно встроить в URL запроса
// и восстановить обратно через hnapi.ExtractSearchTerm.
func validateTerm(term string) error {
	if strings.TrimSpace(term) == "" {
		return fmt.Errorf("%w: empty search term", ErrInvalidArgument)
	}
	if strings.ContainsAny(term, "?&#") {
		return fmt.Errorf("%w: search term must not contain '?', '&' or '#'", ErrInvalidArgument)
	}
	return nil
}
