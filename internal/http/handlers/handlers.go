// handlers реализует REST-эндпойнты stories-service поверх service.Service.
package handlers

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/pribylovaa/hacker-stories/internal/models"
	"github.com/pribylovaa/hacker-stories/internal/service"
)

// StoriesService - операции сервисного слоя, нужные хендлерам.
type StoriesService interface {
	Stories(filter string) models.FetchState
	Search(ctx context.Context, term string) (models.FetchState, error)
	LoadMore(ctx context.Context) (models.FetchState, error)
	Refetch(ctx context.Context) (models.FetchState, error)
	Sort(ctx context.Context, field string) (models.FetchState, bool, error)
	Remove(ctx context.Context, id string) (models.FetchState, error)
	History() []string
	LastSearches() []string
	Term(ctx context.Context) (string, error)
}

// Handlers агрегирует зависимости.
type Handlers struct {
	Service StoriesService
}

func New(s StoriesService) *Handlers {
	return &Handlers{Service: s}
}

// writeJSON - единый ответ JSON с нужным Content-Type.
// Ошибки выводим через apierrors.WriteError.
func writeJSON(w http.ResponseWriter, status int, value any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(value)
}

// maxRequestBytes ограничивает тело запроса: поисковой строке хватает с запасом.
const maxRequestBytes = 64 << 10

// decodeStrict - строгий JSON-декодер: запрещаем неизвестные поля,
// тело длиннее maxRequestBytes - ошибка разбора.
func decodeStrict(w http.ResponseWriter, r *http.Request, value any) error {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxRequestBytes))
	dec.DisallowUnknownFields()
	return dec.Decode(value)
}

// errInvalidArgument - локальная ошибка разбора запроса.
func errInvalidArgument(reason string) error {
	return fmt.Errorf("%w: %s", service.ErrInvalidArgument, reason)
}
