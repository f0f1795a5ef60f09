package lzss

import (
	"bytes"
	"errors"
	"testing"
)

// sliceSource is a Source over an in-memory byte slice, handing back up
// to max bytes per call and signalling EOF with (nil, nil).
type sliceSource struct {
	data []byte
	pos  int
	err  error
}

func (s *sliceSource) Read(max int) ([]byte, error) {
	if s.err != nil {
		return nil, s.err
	}
	if s.pos >= len(s.data) {
		return nil, nil
	}
	end := s.pos + max
	if end > len(s.data) {
		end = len(s.data)
	}
	b := s.data[s.pos:end]
	s.pos = end
	return b, nil
}

func mustConfig(t *testing.T, c Config) *Config {
	t.Helper()
	cfg, err := NewConfig(c)
	if err != nil {
		t.Fatalf("NewConfig: %v", err)
	}
	return cfg
}

func TestDecodeSingleLiteralImmediateEOF(t *testing.T) {
	cfg := mustConfig(t, Config{
		WindowSize:           16,
		LengthWidth:          4,
		DistanceWidth:        4,
		FlagWidth:            1,
		FlagZeroMeansLiteral: false,
	})
	src := &sliceSource{data: []byte{0xA0, 0x80}}
	var out bytes.Buffer
	if err := Decode(cfg, src, &out); err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if got := out.String(); got != "A" {
		t.Errorf("got %q, want %q", got, "A")
	}
}

func TestDecodeLiteralThenSelfRepeat(t *testing.T) {
	cfg := mustConfig(t, Config{
		WindowSize:           8,
		LengthWidth:          3,
		DistanceWidth:        3,
		FlagWidth:            1,
		FlagZeroMeansLiteral: false,
	})
	src := &sliceSource{data: []byte{0xA0, 0x82}}
	var out bytes.Buffer
	if err := Decode(cfg, src, &out); err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if got := out.String(); got != "AAA" {
		t.Errorf("got %q, want %q", got, "AAA")
	}
}

func TestDecodeFrontOriginReferenceToPriorLiterals(t *testing.T) {
	cfg := mustConfig(t, Config{
		WindowSize:           8,
		LengthWidth:          3,
		DistanceWidth:        3,
		FlagWidth:            1,
		FlagZeroMeansLiteral: false,
	})
	src := &sliceSource{data: []byte{0xA0, 0xD0, 0xA8, 0x6C, 0x80}}
	var out bytes.Buffer
	if err := Decode(cfg, src, &out); err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if got := out.String(); got != "ABCBC" {
		t.Errorf("got %q, want %q", got, "ABCBC")
	}
}

func TestDecodeBackOriginReferenceToPriorLiterals(t *testing.T) {
	cfg := mustConfig(t, Config{
		WindowSize:           8,
		LengthWidth:          3,
		DistanceWidth:        3,
		FlagWidth:            1,
		FlagZeroMeansLiteral: false,
		DistanceFromEnd:      true,
	})
	src := &sliceSource{data: []byte{0xA0, 0xD0, 0xA8, 0x60, 0x80}}
	var out bytes.Buffer
	if err := Decode(cfg, src, &out); err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if got := out.String(); got != "ABCCA" {
		t.Errorf("got %q, want %q", got, "ABCCA")
	}
}

func TestDecodeLengthBias(t *testing.T) {
	cfg := mustConfig(t, Config{
		WindowSize:           8,
		LengthWidth:          2,
		DistanceWidth:        3,
		LengthBias:           3,
		FlagWidth:            1,
		FlagZeroMeansLiteral: false,
	})
	src := &sliceSource{data: []byte{0xA0, 0xD0, 0x80}}
	var out bytes.Buffer
	if err := Decode(cfg, src, &out); err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if got := out.String(); got != "ABAAA" {
		t.Errorf("got %q, want %q", got, "ABAAA")
	}
}

func TestDecodeWrapAround(t *testing.T) {
	cfg := mustConfig(t, Config{
		WindowSize:           4,
		LengthWidth:          3,
		DistanceWidth:        2,
		FlagWidth:            1,
		FlagZeroMeansLiteral: false,
	})
	src := &sliceSource{data: []byte{0xA0, 0xD0, 0xA8, 0x74, 0x4A, 0x28, 0x80}}
	var out bytes.Buffer
	if err := Decode(cfg, src, &out); err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if got := out.String(); got != "ABCDEBCDE" {
		t.Errorf("got %q, want %q", got, "ABCDEBCDE")
	}
}

func TestDecodeBenignEOFAtMinWordWidthBoundary(t *testing.T) {
	// MinWordWidth is 8 here (the reference word), one more than the 7
	// bits left over after the leading literal: decoding must stop
	// cleanly rather than attempt to parse another word.
	cfg := mustConfig(t, Config{
		WindowSize:           16,
		LengthWidth:          3,
		DistanceWidth:        4,
		FlagWidth:            1,
		FlagZeroMeansLiteral: false,
	})
	if cfg.MinWordWidth != 8 {
		t.Fatalf("test fixture assumption broken: MinWordWidth = %d, want 8", cfg.MinWordWidth)
	}
	src := &sliceSource{data: []byte{0xA0, 0x80}}
	var out bytes.Buffer
	if err := Decode(cfg, src, &out); err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if got := out.String(); got != "A" {
		t.Errorf("got %q, want %q", got, "A")
	}
}

func TestDecodeRejectsNonLiteralLeadingWord(t *testing.T) {
	cfg := mustConfig(t, Config{
		WindowSize:           16,
		LengthWidth:          4,
		DistanceWidth:        4,
		FlagWidth:            1,
		FlagZeroMeansLiteral: false,
	})
	src := &sliceSource{data: []byte{0x00, 0x00}}
	var out bytes.Buffer
	err := Decode(cfg, src, &out)
	var fe *FormatError
	if !errors.As(err, &fe) {
		t.Fatalf("got %v (%T), want *FormatError", err, err)
	}
}

func TestDecodeTooShortForLeadingLiteral(t *testing.T) {
	cfg := mustConfig(t, Config{
		WindowSize:           16,
		LengthWidth:          4,
		DistanceWidth:        4,
		FlagWidth:            1,
		FlagZeroMeansLiteral: false,
	})
	src := &sliceSource{data: []byte{0x80}}
	var out bytes.Buffer
	err := Decode(cfg, src, &out)
	var fe *FormatError
	if !errors.As(err, &fe) {
		t.Fatalf("got %v (%T), want *FormatError", err, err)
	}
}

func TestDecodeTruncatedCodeWord(t *testing.T) {
	// MinWordWidth (3) leaves the 7 trailing bits past the leading
	// literal enough to attempt a word, but the flag they start with
	// selects the 9-bit literal encoding, which doesn't fit.
	cfg := mustConfig(t, Config{
		WindowSize:           2,
		LengthWidth:          1,
		DistanceWidth:        1,
		FlagWidth:            1,
		FlagZeroMeansLiteral: false,
	})
	src := &sliceSource{data: []byte{0xA0, 0xC0}}
	var out bytes.Buffer
	err := Decode(cfg, src, &out)
	var fe *FormatError
	if !errors.As(err, &fe) {
		t.Fatalf("got %v (%T), want *FormatError", err, err)
	}
}

func TestDecodeFlagWidthGreaterThanOne(t *testing.T) {
	cfg := mustConfig(t, Config{
		WindowSize:           8,
		LengthWidth:          2,
		DistanceWidth:        3,
		LengthBias:           1,
		FlagWidth:            2,
		FlagZeroMeansLiteral: true,
	})
	src := &sliceSource{data: []byte{0x10, 0x44, 0x24, 0x20}}
	var out bytes.Buffer
	if err := Decode(cfg, src, &out); err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if got := out.String(); got != "ABAA" {
		t.Errorf("got %q, want %q", got, "ABAA")
	}
}

func TestDecodeInternalBugOnOversizeReference(t *testing.T) {
	cfg := mustConfig(t, Config{
		WindowSize:           4,
		LengthWidth:          3,
		DistanceWidth:        2,
		FlagWidth:            1,
		FlagZeroMeansLiteral: false,
	})
	src := &sliceSource{data: []byte{0xA0, 0x8E}}
	var out bytes.Buffer
	err := Decode(cfg, src, &out)
	var bug *InternalBug
	if !errors.As(err, &bug) {
		t.Fatalf("got %v (%T), want *InternalBug", err, err)
	}
}

func TestDecodeWrapsSourceReadError(t *testing.T) {
	cfg := mustConfig(t, Config{
		WindowSize:           16,
		LengthWidth:          4,
		DistanceWidth:        4,
		FlagWidth:            1,
		FlagZeroMeansLiteral: false,
	})
	wantErr := errors.New("disk exploded")
	src := &sliceSource{err: wantErr}
	var out bytes.Buffer
	err := Decode(cfg, src, &out)
	var ioErr *IoError
	if !errors.As(err, &ioErr) {
		t.Fatalf("got %v (%T), want *IoError", err, err)
	}
	if !errors.Is(err, wantErr) {
		t.Errorf("IoError does not unwrap to the source error")
	}
}

// failingSink always reports an error, to exercise the write-side
// IoError path.
type failingSink struct{ err error }

func (s *failingSink) Write(p []byte) (int, error) { return 0, s.err }

func TestDecodeWrapsSinkWriteError(t *testing.T) {
	cfg := mustConfig(t, Config{
		WindowSize:           16,
		LengthWidth:          4,
		DistanceWidth:        4,
		FlagWidth:            1,
		FlagZeroMeansLiteral: false,
	})
	wantErr := errors.New("pipe closed")
	src := &sliceSource{data: []byte{0xA0, 0x80}}
	sink := &failingSink{err: wantErr}
	err := Decode(cfg, src, sink)
	var ioErr *IoError
	if !errors.As(err, &ioErr) {
		t.Fatalf("got %v (%T), want *IoError", err, err)
	}
	if !errors.Is(err, wantErr) {
		t.Errorf("IoError does not unwrap to the sink error")
	}
}

func TestDecodeTracedInvokesCallback(t *testing.T) {
	cfg := mustConfig(t, Config{
		WindowSize:           8,
		LengthWidth:          3,
		DistanceWidth:        3,
		FlagWidth:            1,
		FlagZeroMeansLiteral: false,
	})
	src := &sliceSource{data: []byte{0xA0, 0x82}}
	var out bytes.Buffer
	var calls int
	trace := func(format string, args ...interface{}) { calls++ }
	if err := DecodeTraced(cfg, src, &out, trace); err != nil {
		t.Fatalf("DecodeTraced: %v", err)
	}
	if calls != 2 {
		t.Errorf("trace called %d times, want 2 (seed literal + one reference)", calls)
	}
}
