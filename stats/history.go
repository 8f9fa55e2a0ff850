package stats

// History is a fixed-capacity ring of samples, oldest first.
type History struct {
	buf   []Sample
	start int
	n     int
}

// NewHistory creates a history holding at most capacity samples.
func NewHistory(capacity int) *History {
	if capacity < 1 {
		capacity = 1
	}
	return &History{buf: make([]Sample, capacity)}
}

// Push appends a sample, evicting the oldest when full.
func (h *History) Push(s Sample) {
	if h.n < len(h.buf) {
		h.buf[(h.start+h.n)%len(h.buf)] = s
		h.n++
		return
	}
	h.buf[h.start] = s
	h.start = (h.start + 1) % len(h.buf)
}

// Len returns the number of stored samples.
func (h *History) Len() int { return h.n }

// At returns the i-th sample, 0 being the oldest.
func (h *History) At(i int) Sample {
	return h.buf[(h.start+i)%len(h.buf)]
}

// Last returns the newest sample.
func (h *History) Last() (Sample, bool) {
	if h.n == 0 {
		return Sample{}, false
	}
	return h.At(h.n - 1), true
}

// Series extracts one value per stored sample, oldest first, into dst.
func (h *History) Series(dst []float64, f Field) []float64 {
	dst = dst[:0]
	for i := 0; i < h.n; i++ {
		dst = append(dst, f(h.At(i)))
	}
	return dst
}
