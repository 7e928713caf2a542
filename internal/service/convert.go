package service

import (
	"strings"

	"github.com/pribylovaa/hacker-stories/internal/models"
)

// finalizeStories доводит выдачу API до инвариантов домена:
//   - ID/Title/URL/Author обрезаются по пробелам;
//   - записи без ID отбрасываются;
//   - повтор ID в пределах выдачи или среди known отбрасывается (остаётся первый);
//   - отрицательное NumComments приводится к 0.
//
// Порядок оставшихся записей сохраняется. Результат никогда не nil.
func finalizeStories(items []models.Story, known []models.Story) []models.Story {
	seen := make(map[string]struct{}, len(items)+len(known))
	for _, st := range known {
		seen[st.ID] = struct{}{}
	}

	out := make([]models.Story, 0, len(items))
	for _, st := range items {
		st.ID = strings.TrimSpace(st.ID)
		if st.ID == "" {
			continue
		}
		if _, dup := seen[st.ID]; dup {
			continue
		}
		seen[st.ID] = struct{}{}

		st.Title = strings.TrimSpace(st.Title)
		st.URL = strings.TrimSpace(st.URL)
		st.Author = strings.TrimSpace(st.Author)
		if st.NumComments < 0 {
			st.NumComments = 0
		}

		out = append(out, st)
	}

	return out
}
