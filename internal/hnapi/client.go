// hnapi - клиент поиска Hacker News (Algolia) и сборка URL запросов.
//
// Client реализует service.Searcher: по готовому URL делает GET,
// разбирает {hits, page} и возвращает models.PagedList.
package hnapi

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/pribylovaa/hacker-stories/internal/models"
	"github.com/pribylovaa/hacker-stories/pkg/log"
)

// maxBodyBytes ограничивает размер читаемого ответа.
const maxBodyBytes = 4 << 20

// Client - HTTP-клиент поиска. Таймауты/прокси настраиваются через *http.Client извне.
type Client struct {
	client *http.Client
}

// New создаёт клиент. nil client заменяется клиентом с таймаутом 15s.
func New(client *http.Client) *Client {
	if client == nil {
		client = &http.Client{Timeout: 15 * time.Second}
	}

	return &Client{client: client}
}

// Search выполняет GET по rawURL и возвращает страницу историй.
//
// Ошибки: транспорт, статус != 200, битый JSON. Дедупликация и нормализация
// полей выполняются на стороне сервиса.
func (c *Client) Search(ctx context.Context, rawURL string) (models.PagedList, error) {
	const op = "hnapi.Search"

	lg := log.From(ctx)

	target, err := requestURL(rawURL)
	if err != nil {
		return models.PagedList{}, fmt.Errorf("%s: parse_url: %w", op, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return models.PagedList{}, fmt.Errorf("%s: new_request: %w", op, err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		lg.Warn("http_error",
			slog.String("op", op),
			slog.String("url", rawURL),
			slog.String("err", err.Error()),
		)
		return models.PagedList{}, fmt.Errorf("%s: do: %w", op, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		_, _ = io.Copy(io.Discard, resp.Body)
		return models.PagedList{}, fmt.Errorf("%s: status=%d", op, resp.StatusCode)
	}

	var body searchResponse
	if err := json.NewDecoder(io.LimitReader(resp.Body, maxBodyBytes)).Decode(&body); err != nil {
		return models.PagedList{}, fmt.Errorf("%s: decode: %w", op, err)
	}

	items := make([]models.Story, 0, len(body.Hits))
	for _, hit := range body.Hits {
		items = append(items, hit.toStory())
	}

	lg.Debug("search_fetched",
		slog.String("op", op),
		slog.String("url", rawURL),
		slog.Int("hits", len(items)),
		slog.Int("page", body.Page),
		slog.Int("pages", body.NbPages),
	)

	return models.PagedList{Items: items, Page: body.Page, Pages: body.NbPages}, nil
}

func (r rawStory) toStory() models.Story {
	return models.Story{
		ID:          r.ObjectID,
		Title:       deref(r.Title),
		URL:         deref(r.URL),
		Author:      r.Author,
		NumComments: deref(r.NumComments),
		Points:      deref(r.Points),
	}
}

func deref[T any](p *T) T {
	var zero T
	if p == nil {
		return zero
	}

	return *p
}

// requestURL экранирует значения query-параметров: в истории URL хранятся
// с поисковой строкой «как есть», а на провод должны уходить валидные.
// Порядок параметров сохраняется.
func requestURL(rawURL string) (string, error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return "", err
	}

	if u.RawQuery == "" {
		return u.String(), nil
	}

	pairs := strings.Split(u.RawQuery, "&")
	for i, pair := range pairs {
		key, value, found := strings.Cut(pair, "=")
		if !found {
			pairs[i] = url.QueryEscape(key)
			continue
		}
		pairs[i] = url.QueryEscape(key) + "=" + url.QueryEscape(value)
	}
	u.RawQuery = strings.Join(pairs, "&")

	return u.String(), nil
}
