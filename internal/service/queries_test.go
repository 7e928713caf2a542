package service

import (
	"context"
	"testing"

	"github.com/pribylovaa/hacker-stories/internal/models"
	"github.com/pribylovaa/hacker-stories/internal/reducer"
	"github.com/stretchr/testify/require"
)

func sortSample() models.PagedList {
	return models.PagedList{
		Items: []models.Story{
			{ID: "a", Title: "redux", Points: 5, NumComments: 2},
			{ID: "b", Title: "React", Points: 4, NumComments: 3},
			{ID: "c", Title: "Angular", Points: 5, NumComments: 1},
		},
		Page: 2,
	}
}

// TestSort_TogglesDirection - повторная сортировка по полю разворачивает порядок.
func TestSort_TogglesDirection(t *testing.T) {
	t.Parallel()

	f := newFixture(t)
	f.svc.Dispatch(setStories(sortSample()))

	state, asc, err := f.svc.Sort(context.Background(), "points")
	require.NoError(t, err)
	require.True(t, asc)
	require.Equal(t, []string{"b", "a", "c"}, storyIDs(state))
	require.Equal(t, 2, state.Data.Page)

	state, asc, err = f.svc.Sort(context.Background(), "points")
	require.NoError(t, err)
	require.False(t, asc)
	require.Equal(t, []string{"c", "a", "b"}, storyIDs(state))

	// Другое поле стартует по возрастанию и сортирует текущий список.
	state, asc, err = f.svc.Sort(context.Background(), "title")
	require.NoError(t, err)
	require.True(t, asc)
	require.Equal(t, []string{"c", "b", "a"}, storyIDs(state))
}

// TestSort_UnknownField - неизвестное поле, состояние не меняется.
func TestSort_UnknownField(t *testing.T) {
	t.Parallel()

	f := newFixture(t)
	f.svc.Dispatch(setStories(sortSample()))

	state, _, err := f.svc.Sort(context.Background(), "author")
	require.ErrorIs(t, err, ErrUnknownField)
	require.Equal(t, []string{"a", "b", "c"}, storyIDs(state))
}

// TestRemove - удаление по ID, отсутствующий ID - no-op, пустой ID - ошибка.
func TestRemove(t *testing.T) {
	t.Parallel()

	f := newFixture(t)
	f.svc.Dispatch(setStories(sortSample()))

	state, err := f.svc.Remove(context.Background(), "b")
	require.NoError(t, err)
	require.Equal(t, []string{"a", "c"}, storyIDs(state))
	require.Equal(t, 2, state.Data.Page)

	state, err = f.svc.Remove(context.Background(), "missing")
	require.NoError(t, err)
	require.Equal(t, []string{"a", "c"}, storyIDs(state))

	_, err = f.svc.Remove(context.Background(), " ")
	require.ErrorIs(t, err, ErrInvalidArgument)
}

// TestStories_Filter - фильтр не меняет состояние сервиса.
func TestStories_Filter(t *testing.T) {
	t.Parallel()

	f := newFixture(t)
	f.svc.Dispatch(setStories(sortSample()))

	filtered := f.svc.Stories("RE")
	require.Equal(t, []string{"a", "b"}, storyIDs(filtered))
	require.Equal(t, []string{"a", "b", "c"}, storyIDs(f.svc.Stories("")))
}

// TestLastSearches - все запросы кроме последнего, подряд идущие повторы схлопнуты.
func TestLastSearches(t *testing.T) {
	t.Parallel()

	f := newFixture(t)
	require.Empty(t, f.svc.LastSearches())

	f.svc.history.push(urlFor("React", 0))
	require.Empty(t, f.svc.LastSearches())

	f.svc.history.push(urlFor("React", 1))
	f.svc.history.push(urlFor("Vue", 0))
	f.svc.history.push(urlFor("React", 0))
	f.svc.history.push(urlFor("Go", 0))

	require.Equal(t, []string{"React", "Vue", "React"}, f.svc.LastSearches())
}

// TestState_IsSnapshot - изменение снимка не влияет на состояние сервиса.
func TestState_IsSnapshot(t *testing.T) {
	t.Parallel()

	f := newFixture(t)
	f.svc.Dispatch(setStories(sortSample()))

	snap := f.svc.State()
	snap.Data.Items[0].Title = "mutated"

	require.Equal(t, "redux", f.svc.State().Data.Items[0].Title)
}

// TestDispatch_NilPanics - nil-действие - нарушение инварианта.
func TestDispatch_NilPanics(t *testing.T) {
	t.Parallel()

	f := newFixture(t)
	require.Panics(t, func() { f.svc.Dispatch(nil) })

	// Блокировка освобождена, сервис продолжает работать.
	state := f.svc.Dispatch(reducer.FetchInit{})
	require.True(t, state.IsLoading)
}
