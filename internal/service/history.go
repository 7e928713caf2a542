package service

// historyCapacity - сколько последних URL запросов помнит сервис.
const historyCapacity = 5

// history - кольцевой буфер URL запросов фиксированной ёмкости.
// При переполнении вытесняется самый старый элемент.
type history struct {
	buf   [historyCapacity]string
	start int
	n     int
}

func (h *history) push(url string) {
	if h.n < historyCapacity {
		h.buf[(h.start+h.n)%historyCapacity] = url
		h.n++
		return
	}

	h.buf[h.start] = url
	h.start = (h.start + 1) % historyCapacity
}

func (h *history) latest() (string, bool) {
	if h.n == 0 {
		return "", false
	}
	return h.buf[(h.start+h.n-1)%historyCapacity], true
}

// entries возвращает копию от старых к новым.
func (h *history) entries() []string {
	out := make([]string, 0, h.n)
	for i := 0; i < h.n; i++ {
		out = append(out, h.buf[(h.start+i)%historyCapacity])
	}
	return out
}
