// models содержит доменные сущности stories-service.
// Эти типы используются редьюсером, сервисным слоем и транспортом.
package models

// Story - одна запись из выдачи поиска Hacker News.
//
// Особенности:
//   - ID уникален в пределах одного списка (objectID из Algolia);
//   - значения неизменяемы: слои копируют Story, а не правят её на месте.
type Story struct {
	// ID - идентификатор истории (objectID).
	ID string `json:"id"`
	// Title - заголовок.
	Title string `json:"title"`
	// URL - ссылка на материал.
	URL string `json:"url"`
	// Author - автор публикации.
	Author string `json:"author"`
	// NumComments - число комментариев (>= 0).
	NumComments int `json:"num_comments"`
	// Points - рейтинг.
	Points int `json:"points"`
}

// PagedList - упорядоченный список историй и индекс последней влитой страницы.
//
// Порядок Items - порядок получения от источника (ответ API или результат сортировки).
// Pages - число страниц у поиска по данным источника; 0 - неизвестно.
type PagedList struct {
	Items []Story `json:"items"`
	Page  int     `json:"page"`
	Pages int     `json:"pages"`
}

// FetchState - состояние, которым владеет редьюсер: данные + флаги загрузки/ошибки.
type FetchState struct {
	Data      PagedList `json:"data"`
	IsLoading bool      `json:"is_loading"`
	IsError   bool      `json:"is_error"`
}

// NewFetchState возвращает начальное состояние: пустой список, страница 0, флаги сброшены.
func NewFetchState() FetchState {
	return FetchState{
		Data: PagedList{Items: []Story{}, Page: 0},
	}
}

// CloneStories возвращает независимую копию слайса.
// Результат никогда не nil, чтобы read-модель сериализовалась как [] а не null.
func CloneStories(items []Story) []Story {
	return append(make([]Story, 0, len(items)), items...)
}

// Clone возвращает глубокую копию состояния (слайс историй не разделяется).
func (s FetchState) Clone() FetchState {
	s.Data.Items = CloneStories(s.Data.Items)
	return s
}
