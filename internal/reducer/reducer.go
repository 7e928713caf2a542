// reducer реализует чистый переход состояния FetchState по Action.
//
// Таблица переходов:
//   - FetchInit    -> IsLoading=true, IsError=false, данные без изменений;
//   - FetchSuccess -> флаги сброшены; Page==0 заменяет список, Page>0 дописывает в конец;
//   - FetchFailure -> IsLoading=false, IsError=true, данные без изменений;
//   - SetStories   -> Data = Payload как есть;
//   - RemoveStory  -> из списка убираются истории с данным ID, страница и флаги не меняются.
package reducer

import (
	"fmt"

	"github.com/pribylovaa/hacker-stories/internal/models"
)

// Reduce возвращает следующее состояние. Функция не делает I/O и не модифицирует
// аргументы: слайсы результата никогда не разделяют память со state или action.
//
// Неизвестное действие (на практике только nil) - нарушение инварианта, panic.
func Reduce(state models.FetchState, action Action) models.FetchState {
	switch a := action.(type) {
	case FetchInit:
		next := state.Clone()
		next.IsLoading = true
		next.IsError = false
		return next

	case FetchSuccess:
		var items []models.Story
		if a.Payload.Page == 0 {
			items = models.CloneStories(a.Payload.Items)
		} else {
			items = make([]models.Story, 0, len(state.Data.Items)+len(a.Payload.Items))
			items = append(items, state.Data.Items...)
			items = append(items, a.Payload.Items...)
		}

		return models.FetchState{
			Data:      models.PagedList{Items: items, Page: a.Payload.Page, Pages: a.Payload.Pages},
			IsLoading: false,
			IsError:   false,
		}

	case FetchFailure:
		next := state.Clone()
		next.IsLoading = false
		next.IsError = true
		return next

	case SetStories:
		next := state
		next.Data = models.PagedList{
			Items: models.CloneStories(a.Payload.Items),
			Page:  a.Payload.Page,
			Pages: a.Payload.Pages,
		}
		return next

	case RemoveStory:
		next := state
		items := make([]models.Story, 0, len(state.Data.Items))
		for _, story := range state.Data.Items {
			if story.ID != a.ID {
				items = append(items, story)
			}
		}
		next.Data = models.PagedList{Items: items, Page: state.Data.Page, Pages: state.Data.Pages}
		return next

	default:
		panic(fmt.Sprintf("reducer: unknown action %T", action))
	}
}
