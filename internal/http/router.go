package http

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/pribylovaa/hacker-stories/internal/http/handlers"
	"github.com/pribylovaa/hacker-stories/internal/http/middleware"
)

// Options - параметры сборки HTTP-роутера.
type Options struct {
	Logger   *slog.Logger
	Timeout  time.Duration
	BasePath string // например, "/api"; если пустой - роуты регистрируются на корне.
	// Metrics - наблюдатель REST-запросов; nil отключает метрики.
	Metrics middleware.HTTPObserver
}

// NewRouter собирает http.Handler с chi и подключёнными middleware/роутами.
func NewRouter(svc handlers.StoriesService, opts Options) http.Handler {
	root := chi.NewRouter()

	// Middleware (внешний -> внутренний).
	root.Use(
		middleware.Recover(),            // безопасно ловим паники
		middleware.RequestID(),          // формируем/прокидываем X-Request-Id (до логирования!)
		middleware.Logging(opts.Logger), // кладём request-scoped логгер в контекст и логируем
		middleware.Metrics(opts.Metrics),
	)
	if opts.Timeout > 0 {
		root.Use(middleware.Timeout(opts.Timeout)) // общий дедлайн запроса
	}

	h := handlers.New(svc)

	if opts.BasePath != "" {
		sub := chi.NewRouter()
		registerRoutes(sub, h)
		root.Mount(opts.BasePath, sub)
		return root
	}

	registerRoutes(root, h)
	return root
}

// registerRoutes - единая точка регистрации всех REST-эндпойнтов.
func registerRoutes(r chi.Router, h *handlers.Handlers) {
	// read model
	r.Get("/stories", h.ListStories)
	r.Get("/feed.rss", h.Feed)

	// search
	r.Post("/search", h.Search)
	r.Get("/search/term", h.Term)
	r.Get("/history", h.History)

	// list actions
	r.Post("/stories/more", h.LoadMore)
	r.Post("/stories/refetch", h.Refetch)
	r.Post("/stories/sort/{field}", h.Sort)
	r.Delete("/stories/{id}", h.RemoveStory)
}
