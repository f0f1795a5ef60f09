/*
Copyright 2024 The lzssdecode Authors.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

	http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

// Package lzss implements a configurable LZSS sliding-window decoder:
// a byte-exact decompressor that reads a bit-packed stream of code
// words and reconstructs the original byte stream. A single Config
// parameterizes window size, reference field widths, flag polarity,
// length bias, and distance addressing direction, so one driver can
// decode many dialects of LZSS.
package lzss

import (
	"fmt"

	"github.com/mechiko/lzssdecode/bitstream"
	"github.com/mechiko/lzssdecode/window"
)

// DefaultChunkSize is the number of bytes requested per Source.Read
// call when the driver needs more input.
const DefaultChunkSize = 4096

// Source is a pull byte source. Read returns up to max bytes; it
// signals end-of-source by returning zero bytes with a nil error.
// Any non-nil error is surfaced to the caller wrapped as IoError.
type Source interface {
	Read(max int) ([]byte, error)
}

// Sink is a push byte consumer. Write reports the number of bytes
// written; implementations that cannot write atomically must loop
// internally until the whole slice is written or an error occurs.
type Sink interface {
	Write(p []byte) (int, error)
}

// Decode reads a complete LZSS stream from src, parameterized by cfg,
// and writes the reconstructed bytes to sink. It returns when src is
// exhausted (fewer than cfg.MinWordWidth bits remain before a flag) or
// on the first error. Decode is not re-entrant on shared state: each
// call owns its own Reader and Window.
func Decode(cfg *Config, src Source, sink Sink) error {
	return decode(cfg, src, sink, DefaultChunkSize, nil)
}

// DecodeTraced behaves like Decode but invokes trace for each decoded
// symbol, for --debug style diagnostics. trace may be nil.
func DecodeTraced(cfg *Config, src Source, sink Sink, trace func(string, ...interface{})) error {
	return decode(cfg, src, sink, DefaultChunkSize, trace)
}

func decode(cfg *Config, src Source, sink Sink, chunkSize int, trace func(string, ...interface{})) (err error) {
	defer func() {
		if r := recover(); r != nil {
			if bug, ok := r.(*InternalBug); ok {
				err = bug
				return
			}
			err = &InternalBug{Msg: fmt.Sprint(r)}
		}
	}()

	r := bitstream.NewReader()

	// Ensure the first literal word is available before reading it.
	if err := fill(r, src, cfg.LiteralWordWidth, chunkSize); err != nil {
		return err
	}
	if r.RemainingBits() < cfg.LiteralWordWidth {
		return &FormatError{Msg: "stream too short for leading literal"}
	}

	flag, err := takeBits(r, cfg.FlagWidth)
	if err != nil {
		return &FormatError{Msg: "truncated leading flag"}
	}
	if !cfg.IsLiteral(flag) {
		return &FormatError{Msg: "leading word must be literal"}
	}

	seed, err := takeBits(r, 8)
	if err != nil {
		return &FormatError{Msg: "truncated leading literal"}
	}
	win := window.New(cfg.WindowSize, byte(seed), cfg.DistanceFromEnd)

	if trace != nil {
		trace("lzss: seed literal %#02x", byte(seed))
	}
	if err := writeAll(sink, []byte{byte(seed)}); err != nil {
		return err
	}

	for {
		if err := fill(r, src, cfg.MaxWordWidth, chunkSize); err != nil {
			return err
		}
		if r.RemainingBits() < cfg.MinWordWidth {
			return nil // benign end of stream
		}

		flag, ferr := takeBits(r, cfg.FlagWidth)
		if ferr != nil {
			return &FormatError{Msg: "truncated flag"}
		}

		if cfg.IsLiteral(flag) {
			lit, lerr := takeBits(r, 8)
			if lerr != nil {
				return &FormatError{Msg: "truncated code word"}
			}
			b := byte(lit)
			win.Insert(b)
			if trace != nil {
				trace("lzss: literal %#02x", b)
			}
			if err := writeAll(sink, []byte{b}); err != nil {
				return err
			}
			continue
		}

		distance, derr := takeBits(r, cfg.DistanceWidth)
		if derr != nil {
			return &FormatError{Msg: "truncated code word"}
		}
		lengthRaw, lerr := takeBits(r, cfg.LengthWidth)
		if lerr != nil {
			return &FormatError{Msg: "truncated code word"}
		}

		effectiveLength := int(lengthRaw) + int(cfg.LengthBias)
		if effectiveLength > win.Len() {
			panic(&InternalBug{Msg: fmt.Sprintf("reference length %d exceeds window size %d", effectiveLength, win.Len())})
		}

		copied := win.Read(int(distance), effectiveLength)
		win.InsertAll(copied)
		if trace != nil {
			trace("lzss: reference distance=%d length=%d -> %q", distance, effectiveLength, copied)
		}
		if err := writeAll(sink, copied); err != nil {
			return err
		}
	}
}

// fill requests chunks from src until at least want bits are buffered
// or src is exhausted.
func fill(r *bitstream.Reader, src Source, want uint, chunkSize int) error {
	for r.RemainingBits() < want {
		b, err := src.Read(chunkSize)
		if err != nil {
			return &IoError{Op: "read", Err: err}
		}
		if len(b) == 0 {
			return nil // source exhausted
		}
		r.Feed(b)
	}
	return nil
}

// feedChunk requests a single bounded chunk from src, if any remains.
func feedChunk(r *bitstream.Reader, src Source, chunkSize int) error {
	b, err := src.Read(chunkSize)
	if err != nil {
		return &IoError{Op: "read", Err: err}
	}
	if len(b) > 0 {
		r.Feed(b)
	}
	return nil
}

// takeBits is a thin call-through to bitstream.Reader.TakeBits; callers
// all turn a non-nil error into their own *FormatError instead of
// propagating it, since TakeBits failing mid-stream always means the
// code word was truncated.
func takeBits(r *bitstream.Reader, n uint) (uint32, error) {
	return r.TakeBits(n)
}

// writeAll writes p to sink, surfacing any error (or a short write) as
// an IoError.
func writeAll(sink Sink, p []byte) error {
	n, err := sink.Write(p)
	if err != nil {
		return &IoError{Op: "write", Err: err}
	}
	if n != len(p) {
		return &IoError{Op: "write", Err: fmt.Errorf("short write: wrote %d of %d bytes", n, len(p))}
	}
	return nil
}
