package pprint

/*
BSD 3-Clause License

Copyright (c) 2020–21, Norbert Pillmayer

Please refer to the License file in the repository root.

*/

// Token kinds as they travel from the scanner to the printer.
const (
	tokText  tokenKind = iota // literal text fragment
	tokBreak                  // breakable position, possibly a forced newline
	tokBegin                  // opens a group
	tokEnd                    // closes the innermost group
)

type tokenKind uint8

// maxWidth is the largest legal line width. A break wider than maxWidth
// cannot be laid out flat on any line, which is how forced newlines are
// encoded.
const maxWidth = 65536

// sizeInfinity is larger than any group that could fit a line. It is both
// the flat width of a hard break and the sentinel assigned when the scanner
// declares a pending token "too wide" without waiting for its resolution.
const sizeInfinity = maxWidth + 1

// token is one item in the ring of pending output.
//
// For text tokens, size equals the fragment's column width and is known at
// creation. Breaks and group openings start out with an unresolved size: the
// scanner stores the negated running total of columns seen so far (a strictly
// negative number) and later resolves the size in place by adding the then
// current total. A non-negative size means "resolved".
type token struct {
	kind   tokenKind
	text   string // tokText only
	width  int    // tokText: column count; tokBreak: width when rendered flat
	offset int    // tokBreak, tokBegin: indentation delta
	size   int    // see above
	hard   bool   // tokBreak: forced newline
}

func (t token) resolved() bool {
	return t.size >= 0
}

// ring is a circular buffer of pending tokens, addressed by monotonically
// increasing logical indices. The physical slot of logical index i is
// i mod cap. Entries live between tail (oldest) and head (next free).
//
// The scanner guarantees O(line width) occupancy for documents made of
// tokens with nonzero width; degenerate streams of zero-width tokens (long
// runs of empty groups) may exceed the initial capacity, in which case the
// ring grows by doubling rather than corrupting its window.
type ring struct {
	buf  []token
	tail int // logical index of oldest live entry
	head int // logical index one past the newest live entry

	// peak occupancy, instrumentation for the memory bound
	peakLen   int
	peakBytes int
	liveBytes int
}

// ringCapacity returns the initial ring allocation for a given margin.
// Three tokens per column is Oppen's classic sizing.
func ringCapacity(margin int) int {
	c := 16
	for c < 3*margin {
		c <<= 1
	}
	return c
}

func newRing(margin int) *ring {
	return &ring{buf: make([]token, ringCapacity(margin))}
}

func (r *ring) len() int {
	return r.head - r.tail
}

func (r *ring) empty() bool {
	return r.head == r.tail
}

// push appends a token and returns its logical index.
func (r *ring) push(t token) int {
	if r.len() == len(r.buf) {
		r.grow()
	}
	i := r.head
	r.buf[i%len(r.buf)] = t
	r.head++
	if t.kind == tokText {
		r.liveBytes += len(t.text)
	}
	if r.len() > r.peakLen {
		r.peakLen = r.len()
	}
	if r.liveBytes > r.peakBytes {
		r.peakBytes = r.liveBytes
	}
	return i
}

// at returns the live token at logical index i for in-place mutation.
func (r *ring) at(i int) *token {
	assert(i >= r.tail && i < r.head, "ring index out of window")
	return &r.buf[i%len(r.buf)]
}

// first returns the oldest live token.
func (r *ring) first() *token {
	assert(!r.empty(), "first on empty ring")
	return &r.buf[r.tail%len(r.buf)]
}

// firstIndex returns the logical index of the oldest live token.
func (r *ring) firstIndex() int {
	return r.tail
}

// popFirst removes and returns the oldest live token.
func (r *ring) popFirst() token {
	assert(!r.empty(), "pop on empty ring")
	t := r.buf[r.tail%len(r.buf)]
	r.buf[r.tail%len(r.buf)] = token{} // drop the text reference
	r.tail++
	if t.kind == tokText {
		r.liveBytes -= len(t.text)
	}
	return t
}

func (r *ring) grow() {
	next := make([]token, 2*len(r.buf))
	for i := r.tail; i < r.head; i++ {
		next[i%len(next)] = r.buf[i%len(r.buf)]
	}
	tracer().Debugf("token ring grows from %d to %d slots", len(r.buf), len(next))
	r.buf = next
}
