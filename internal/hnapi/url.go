package hnapi

import (
	"strconv"
	"strings"
)

// Параметры поискового запроса. Порядок query -> page фиксирован:
// на нём держится ExtractSearchTerm.
const (
	DefaultBaseURL = "https://hn.algolia.com/api/v1"

	pathSearch  = "/search"
	paramSearch = "query="
	paramPage   = "page="
)

// BuildURL собирает URL поиска вида <base>/search?query=<term>&page=<page>.
// term встраивается как есть, без экранирования.
func BuildURL(base, term string, page int) string {
	base = strings.TrimRight(base, "/")

	var b strings.Builder
	b.Grow(len(base) + len(pathSearch) + len(term) + 20)
	b.WriteString(base)
	b.WriteString(pathSearch)
	b.WriteByte('?')
	b.WriteString(paramSearch)
	b.WriteString(term)
	b.WriteByte('&')
	b.WriteString(paramPage)
	b.WriteString(strconv.Itoa(page))

	return b.String()
}

// ExtractSearchTerm достаёт поисковую строку из URL, собранного BuildURL:
// подстрока между последним '?' и последним '&' без первого вхождения "query=".
//
// Левая обратная к BuildURL только для term без '?' и '&'.
// Если маркеры не найдены или идут в обратном порядке, возвращается "".
func ExtractSearchTerm(rawURL string) string {
	q := strings.LastIndexByte(rawURL, '?')
	amp := strings.LastIndexByte(rawURL, '&')
	if q < 0 || amp < 0 || amp <= q {
		return ""
	}

	return strings.Replace(rawURL[q+1:amp], paramSearch, "", 1)
}

// ExtractPage возвращает номер страницы из URL, собранного BuildURL.
// ok=false, если параметр отсутствует или не число.
func ExtractPage(rawURL string) (page int, ok bool) {
	amp := strings.LastIndexByte(rawURL, '&')
	if amp < 0 {
		return 0, false
	}

	rest, found := strings.CutPrefix(rawURL[amp+1:], paramPage)
	if !found {
		return 0, false
	}

	page, err := strconv.Atoi(rest)
	if err != nil || page < 0 {
		return 0, false
	}

	return page, true
}
