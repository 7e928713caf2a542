package service

import (
	"github.com/pribylovaa/hacker-stories/internal/models"
	"github.com/pribylovaa/hacker-stories/internal/reducer"
)

// Dispatch применяет действие к состоянию и возвращает снимок нового состояния.
// Вызовы сериализуются: редьюсер никогда не работает конкурентно сам с собой.
//
// nil action - нарушение инварианта, редьюсер паникует.
func (s *Service) Dispatch(action reducer.Action) models.FetchState {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.dispatchLocked(action)
}

// State возвращает снимок текущего состояния (read-модель).
func (s *Service) State() models.FetchState {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.state.Clone()
}

// dispatchLocked требует удержания s.mu.
func (s *Service) dispatchLocked(action reducer.Action) models.FetchState {
	s.state = reducer.Reduce(s.state, action)
	s.rec.ActionApplied(actionName(action), len(s.state.Data.Items))

	return s.state.Clone()
}

// actionName - имя действия для логов и метрик.
func actionName(action reducer.Action) string {
	switch action.(type) {
	case reducer.FetchInit:
		return "fetch_init"
	case reducer.FetchSuccess:
		return "fetch_success"
	case reducer.FetchFailure:
		return "fetch_failure"
	case reducer.SetStories:
		return "set_stories"
	case reducer.RemoveStory:
		return "remove_story"
	default:
		return "unknown"
	}
}
