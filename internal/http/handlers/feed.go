package handlers

import (
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/gorilla/feeds"
	"github.com/pribylovaa/hacker-stories/internal/hnapi"
	"github.com/pribylovaa/hacker-stories/pkg/log"
)

const hnItemURL = "https://news.ycombinator.com/item?id="

// Feed отдаёт текущий список историй как RSS 2.0.
// Ссылка канала - последний выданный запрос к API поиска.
func (h *Handlers) Feed(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.feed.Feed"

	lg := log.From(r.Context())

	link := "https://news.ycombinator.com"
	title := "Hacker Stories"
	if urls := h.Service.History(); len(urls) > 0 {
		link = urls[len(urls)-1]
		title = fmt.Sprintf("Hacker Stories: %s", hnapi.ExtractSearchTerm(link))
	}

	feed := &feeds.Feed{
		Title:       title,
		Link:        &feeds.Link{Href: link},
		Description: "Stories from the Hacker News search API",
		Created:     time.Now(),
	}

	state := h.Service.Stories(r.URL.Query().Get("filter"))
	for _, st := range state.Data.Items {
		href := st.URL
		if href == "" {
			href = hnItemURL + st.ID
		}

		feed.Items = append(feed.Items, &feeds.Item{
			Id:          st.ID,
			IsPermaLink: "false",
			Title:       st.Title,
			Link:        &feeds.Link{Href: href},
			Description: fmt.Sprintf("points: %d, comments: %d", st.Points, st.NumComments),
			Author:      &feeds.Author{Name: st.Author},
		})
	}

	rss, err := feed.ToRss()
	if err != nil {
		lg.Error("feed_render_failed",
			slog.String("op", op),
			slog.String("err", err.Error()),
		)
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/rss+xml; charset=utf-8")
	if _, err := w.Write([]byte(rss)); err != nil {
		lg.Warn("feed_write_failed",
			slog.String("op", op),
			slog.String("err", err.Error()),
		)
	}
}
