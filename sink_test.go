package pprint

import (
	"bytes"
	"errors"
	"testing"
)

func TestStringSinkZeroValue(t *testing.T) {
	var ss StringSink
	ss.WriteString("a")
	ss.WriteSpaces(3)
	ss.WriteString("b")
	if ss.String() != "a   b" {
		t.Errorf("unexpected sink content %q", ss.String())
	}
}

func TestStringSinkManySpaces(t *testing.T) {
	var ss StringSink
	ss.WriteSpaces(200)
	if got := ss.String(); len(got) != 200 {
		t.Errorf("expected 200 spaces, got %d bytes", len(got))
	}
}

func TestWriterSink(t *testing.T) {
	var buf bytes.Buffer
	pp := New(NewWriterSink(&buf), 5)
	pp.Group(2, func(pp *Printer) error {
		pp.Text("foo")
		pp.Space()
		return pp.Text("bar")
	})
	if _, err := pp.Finish(); err != nil {
		t.Fatal(err)
	}
	if buf.String() != "foo\n  bar" {
		t.Errorf("unexpected output %q", buf.String())
	}
}

// failingWriter accepts a fixed number of writes, then fails forever.
type failingWriter struct {
	left int
	err  error
}

func (fw *failingWriter) Write(p []byte) (int, error) {
	if fw.left <= 0 {
		return 0, fw.err
	}
	fw.left--
	return len(p), nil
}

func TestSinkErrorSurfaces(t *testing.T) {
	boom := errors.New("device full")
	pp := New(NewWriterSink(&failingWriter{left: 0, err: boom}), 10)
	err := pp.Text("does not fit anywhere")
	if !errors.Is(err, boom) {
		t.Fatalf("expected the writer's error, got %v", err)
	}
}

func TestSinkErrorPoisonsPrinter(t *testing.T) {
	boom := errors.New("pipe closed")
	pp := New(NewWriterSink(&failingWriter{left: 1, err: boom}), 4)
	var first error
	for i := 0; i < 20 && first == nil; i++ {
		// Small margin and long words guarantee the sink is hit early.
		first = pp.Text("overflowing")
		if first == nil {
			first = pp.Space()
		}
	}
	if !errors.Is(first, boom) {
		t.Fatalf("expected the writer's error, got %v", first)
	}
	if err := pp.Text("more"); !errors.Is(err, boom) {
		t.Errorf("expected poisoned printer to re-report %v, got %v", boom, err)
	}
	if err := pp.HardBreak(); !errors.Is(err, boom) {
		t.Errorf("expected poisoned printer to re-report %v, got %v", boom, err)
	}
	if _, err := pp.Finish(); !errors.Is(err, boom) {
		t.Errorf("expected Finish to re-report %v, got %v", boom, err)
	}
	if _, err := pp.Finish(); !errors.Is(err, boom) {
		t.Errorf("expected repeated Finish to re-report %v, got %v", boom, err)
	}
}

func TestSinkErrorInsideGroupStillCloses(t *testing.T) {
	boom := errors.New("gone")
	pp := New(NewWriterSink(&failingWriter{left: 0, err: boom}), 2)
	err := pp.Group(0, func(pp *Printer) error {
		return pp.Text("xxxx") // wider than the margin, reaches the sink
	})
	if !errors.Is(err, boom) {
		t.Fatalf("expected sink error from Group, got %v", err)
	}
}
