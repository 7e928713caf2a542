// sorting содержит чистые преобразования списка историй:
// стабильную сортировку по полю, политику переключения направления и фильтр по заголовку.
package sorting

import (
	"cmp"
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/pribylovaa/hacker-stories/internal/models"
)

// ErrUnknownField - поле сортировки не поддерживается.
var ErrUnknownField = errors.New("unknown sort field")

// Field - поле, по которому сортируется список.
type Field string

const (
	FieldTitle    Field = "title"
	FieldPoints   Field = "points"
	FieldComments Field = "comments"
)

// Fields - все поддерживаемые поля в порядке отображения.
var Fields = []Field{FieldTitle, FieldPoints, FieldComments}

// ParseField разбирает имя поля из транспорта.
func ParseField(s string) (Field, error) {
	f := Field(strings.ToLower(strings.TrimSpace(s)))
	if !slices.Contains(Fields, f) {
		return "", fmt.Errorf("%w: %q", ErrUnknownField, s)
	}

	return f, nil
}

// SortBy возвращает новый список, отсортированный по field.
//
// Особенности:
//   - сортировка стабильная, входной слайс не меняется;
//   - title сравнивается побайтно, с учётом регистра;
//   - ascending=false - это ровно развёрнутый результат ascending=true
//     (порядок равных ключей тоже разворачивается).
//
// Неизвестное поле возвращает копию списка без изменения порядка.
func SortBy(field Field, items []models.Story, ascending bool) []models.Story {
	out := models.CloneStories(items)

	less := comparator(field)
	if less == nil {
		return out
	}

	slices.SortStableFunc(out, less)
	if !ascending {
		slices.Reverse(out)
	}

	return out
}

func comparator(field Field) func(a, b models.Story) int {
	switch field {
	case FieldTitle:
		return func(a, b models.Story) int { return cmp.Compare(a.Title, b.Title) }
	case FieldPoints:
		return func(a, b models.Story) int { return cmp.Compare(a.Points, b.Points) }
	case FieldComments:
		return func(a, b models.Story) int { return cmp.Compare(a.NumComments, b.NumComments) }
	default:
		return nil
	}
}

// FilterByTitle оставляет истории, в заголовке которых встречается term (без учёта регистра).
// Пустой term возвращает копию всего списка. Порядок сохраняется.
func FilterByTitle(items []models.Story, term string) []models.Story {
	term = strings.ToLower(strings.TrimSpace(term))
	if term == "" {
		return models.CloneStories(items)
	}

	out := make([]models.Story, 0, len(items))
	for _, s := range items {
		if strings.Contains(strings.ToLower(s.Title), term) {
			out = append(out, s)
		}
	}

	return out
}
