package pprint

/*
BSD 3-Clause License

Copyright (c) 2020–21, Norbert Pillmayer

Please refer to the License file in the repository root.

*/

// scanner is the lookahead half of the pretty-printer. It receives events
// from the facade, buffers them as tokens in a ring, and resolves each
// break's and group's horizontal size as soon as enough input has been seen.
// Tokens whose size is final leave the ring in FIFO order towards the
// emitter.
//
// Invariants:
//   - scanStack holds the logical ring indices of exactly those tokens whose
//     size is still unresolved, oldest at the bottom; entries are always
//     breaks or group openings.
//   - rightTotal - leftTotal bounds the columns' worth of material pending
//     in the ring; checkStream caps it at the margin by force-resolving the
//     oldest entries as "too wide".
type scanner struct {
	ring       *ring
	scanStack  []int // logical ring indices, bottom..top
	leftTotal  int   // columns drained past the ring's left edge
	rightTotal int   // columns ever scanned
	out        *emitter
}

func newScanner(out *emitter, margin int) *scanner {
	return &scanner{
		ring:       newRing(margin),
		leftTotal:  1,
		rightTotal: 1,
		out:        out,
	}
}

// scanText processes a text fragment of width w columns.
func (sc *scanner) scanText(s string, w int) error {
	if len(sc.scanStack) == 0 {
		// No pending decisions, the fragment can go straight through.
		assert(sc.ring.empty(), "ring must be drained when scan stack is empty")
		sc.leftTotal += w
		sc.rightTotal += w
		return sc.out.text(s, w)
	}
	sc.ring.push(token{kind: tokText, text: s, width: w, size: w})
	sc.rightTotal += w
	return sc.checkStream()
}

// scanBreak processes a breakable position with flat width w and indentation
// delta offset. A hard break is encoded with an infinite flat width, which
// inflates the size of every unresolved enclosing group past the margin and
// thereby forces them all to break.
func (sc *scanner) scanBreak(w int, offset int, hard bool) error {
	if hard {
		w = sizeInfinity
	}
	if len(sc.scanStack) == 0 {
		// Ring is drained, restart the window so totals stay small.
		sc.leftTotal, sc.rightTotal = 1, 1
	} else if top := sc.top(); top.kind == tokBreak {
		// The previous break now spans up to this one.
		top.size += sc.rightTotal
		sc.popTop()
	}
	i := sc.ring.push(token{kind: tokBreak, width: w, offset: offset, size: -sc.rightTotal, hard: hard})
	sc.scanStack = append(sc.scanStack, i)
	sc.rightTotal += w
	return sc.checkStream()
}

// scanBegin processes a group opening with indentation delta offset.
func (sc *scanner) scanBegin(offset int) {
	if len(sc.scanStack) == 0 {
		sc.leftTotal, sc.rightTotal = 1, 1
	}
	i := sc.ring.push(token{kind: tokBegin, offset: offset, size: -sc.rightTotal})
	sc.scanStack = append(sc.scanStack, i)
}

// scanEnd processes a group closing. The group's size—and the size of its
// trailing break, if one is still open—becomes the distance scanned since
// the respective token was pushed.
func (sc *scanner) scanEnd() error {
	if len(sc.scanStack) == 0 {
		// The group's opening has been forced out already; its mode is
		// decided and the closing travels directly.
		return sc.out.end()
	}
	sc.ring.push(token{kind: tokEnd})
	for len(sc.scanStack) > 0 {
		top := sc.top()
		kind := top.kind
		top.size += sc.rightTotal
		sc.popTop()
		if kind == tokBegin {
			break
		}
		// A pending break: its size now reaches to the end of the group.
		// If the stack underneath is already empty, the matching opening
		// was force-resolved earlier.
	}
	return sc.advanceLeft()
}

// checkStream keeps the window bounded: while more than a line's worth of
// material is pending, the oldest unresolved token cannot fit flat no matter
// what follows, so it is stamped "too wide" and drained.
func (sc *scanner) checkStream() error {
	for sc.rightTotal-sc.leftTotal > sc.out.margin && !sc.ring.empty() {
		if len(sc.scanStack) > 0 && sc.scanStack[0] == sc.ring.firstIndex() {
			tracer().Debugf("forcing pending token to 'too wide', window = %d columns",
				sc.rightTotal-sc.leftTotal)
			sc.scanStack = sc.scanStack[1:]
			sc.ring.first().size = sizeInfinity
		}
		if err := sc.advanceLeft(); err != nil {
			return err
		}
	}
	return nil
}

// advanceLeft drains the resolved prefix of the ring to the emitter.
func (sc *scanner) advanceLeft() error {
	for !sc.ring.empty() && sc.ring.first().resolved() {
		t := sc.ring.popFirst()
		var err error
		switch t.kind {
		case tokText:
			sc.leftTotal += t.width
			err = sc.out.text(t.text, t.width)
		case tokBreak:
			sc.leftTotal += t.width
			err = sc.out.brk(t)
		case tokBegin:
			err = sc.out.begin(t)
		case tokEnd:
			err = sc.out.end()
		}
		if err != nil {
			return err
		}
	}
	return nil
}

func (sc *scanner) top() *token {
	return sc.ring.at(sc.scanStack[len(sc.scanStack)-1])
}

func (sc *scanner) popTop() {
	sc.scanStack = sc.scanStack[:len(sc.scanStack)-1]
}
