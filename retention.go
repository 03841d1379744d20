package rlog

// retention is a fixed-capacity ring of entries, oldest at head.
// Not safe for concurrent use; Logger guards it.
type retention struct {
	buf  []Entry
	head int
	n    int
}

func newRetention(capacity int) *retention {
	return &retention{buf: make([]Entry, capacity)}
}

func (r *retention) len() int { return r.n }
func (r *retention) cap() int { return len(r.buf) }

// push appends at the tail, evicting the head when full, and reports how
// many entries were evicted.
func (r *retention) push(e Entry) (evicted int) {
	if r.n == len(r.buf) {
		r.buf[r.head] = Entry{}
		r.head = (r.head + 1) % len(r.buf)
		r.n--
		evicted = 1
	}
	i := (r.head + r.n) % len(r.buf)
	r.buf[i] = e
	r.n++
	return evicted
}

// resize keeps the newest min(len, n) entries in order.
func (r *retention) resize(n int) (evicted int) {
	if n == len(r.buf) {
		return 0
	}
	keep := r.n
	if keep > n {
		evicted = keep - n
		keep = n
	}
	nb := make([]Entry, n)
	for i := 0; i < keep; i++ {
		nb[i] = r.buf[(r.head+evicted+i)%len(r.buf)]
	}
	r.buf = nb
	r.head = 0
	r.n = keep
	return evicted
}

// snapshot copies entries oldest first.
func (r *retention) snapshot() []Entry {
	out := make([]Entry, r.n)
	for i := 0; i < r.n; i++ {
		out[i] = r.buf[(r.head+i)%len(r.buf)]
	}
	return out
}
