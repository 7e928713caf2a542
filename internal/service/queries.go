package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/pribylovaa/hacker-stories/internal/hnapi"
	"github.com/pribylovaa/hacker-stories/internal/models"
	"github.com/pribylovaa/hacker-stories/internal/reducer"
	"github.com/pribylovaa/hacker-stories/internal/sorting"
	"github.com/pribylovaa/hacker-stories/pkg/log"
)

// Stories возвращает снимок состояния; непустой filter оставляет только
// истории, в заголовке которых он встречается (без учёта регистра).
// Само состояние фильтр не меняет.
func (s *Service) Stories(filter string) models.FetchState {
	state := s.State()
	if filter != "" {
		state.Data.Items = sorting.FilterByTitle(state.Data.Items, filter)
	}
	return state
}

// History возвращает URL выданных запросов от старых к новым (не более 5).
func (s *Service) History() []string {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.history.entries()
}

// LastSearches возвращает поисковые строки всех запросов истории, кроме последнего.
// Подряд идущие одинаковые строки (например, несколько страниц одного поиска)
// схлопываются в одну.
func (s *Service) LastSearches() []string {
	urls := s.History()

	out := make([]string, 0, len(urls))
	if len(urls) < 2 {
		return out
	}

	for _, u := range urls[:len(urls)-1] {
		term := hnapi.ExtractSearchTerm(u)
		if len(out) > 0 && out[len(out)-1] == term {
			continue
		}
		out = append(out, term)
	}

	return out
}

// Sort пересортировывает текущий список по полю и переключает направление
// для следующего вызова. Возвращает новое состояние и применённое направление.
//
// Ошибки:
//   - ErrUnknownField - поле не из sorting.Fields.
func (s *Service) Sort(ctx context.Context, name string) (models.FetchState, bool, error) {
	const op = "service.queries.Sort"

	lg := log.From(ctx)

	field, err := sorting.ParseField(name)
	if err != nil {
		lg.Warn("sort_unknown_field",
			slog.String("op", op),
			slog.String("field", name),
		)
		return s.State(), false, fmt.Errorf("%s: %w", op, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	ascending := s.toggles.Next(field)
	sorted := sorting.SortBy(field, s.state.Data.Items, ascending)
	state := s.dispatchLocked(reducer.SetStories{
		Payload: models.PagedList{Items: sorted, Page: s.state.Data.Page, Pages: s.state.Data.Pages},
	})

	lg.Info("sort_ok",
		slog.String("op", op),
		slog.String("field", string(field)),
		slog.Bool("ascending", ascending),
	)

	return state, ascending, nil
}

// Remove удаляет историю по ID. Отсутствующий ID - не ошибка.
//
// Ошибки:
//   - ErrInvalidArgument - пустой ID.
func (s *Service) Remove(ctx context.Context, id string) (models.FetchState, error) {
	const op = "service.queries.Remove"

	id = strings.TrimSpace(id)
	if id == "" {
		return s.State(), fmt.Errorf("%s: %w: empty id", op, ErrInvalidArgument)
	}

	state := s.Dispatch(reducer.RemoveStory{ID: id})

	log.From(ctx).Info("remove_ok",
		slog.String("op", op),
		slog.String("id", id),
		slog.Int("items", len(state.Data.Items)),
	)

	return state, nil
}
