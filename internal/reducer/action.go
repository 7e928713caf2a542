package reducer

import "github.com/pribylovaa/hacker-stories/internal/models"

// Action - закрытый набор инструкций для Reduce.
// Реализации вне пакета невозможны: интерфейс запечатан неэкспортируемым методом.
type Action interface {
	action()
}

// FetchInit - запрос ушёл в сеть.
type FetchInit struct{}

// FetchSuccess - запрос завершился, Payload - разобранная страница ответа.
type FetchSuccess struct {
	Payload models.PagedList
}

// FetchFailure - запрос завершился ошибкой.
type FetchFailure struct{}

// SetStories - внешняя замена данных целиком (например, после сортировки).
type SetStories struct {
	Payload models.PagedList
}

// RemoveStory - удаление истории по ID.
type RemoveStory struct {
	ID string
}

func (FetchInit) action()    {}
func (FetchSuccess) action() {}
func (FetchFailure) action() {}
func (SetStories) action()   {}
func (RemoveStory) action()  {}
