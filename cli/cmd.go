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

// Package cli wraps the lzss decoder in the Command/Process dispatch
// shape the rest of the corpus uses for its command-line entry points:
// callers build a Command value describing one unit of work, then hand
// it to Process, which runs it and turns any failure — including an
// unexpected panic — into a returned error.
package cli

import (
	"io"

	"github.com/mechiko/lzssdecode/lzss"
)

// Command describes one decode invocation.
type Command struct {
	// Input is the compressed byte stream to decode.
	Input io.Reader

	// Output receives the reconstructed byte stream.
	Output io.Writer

	// Config fixes the LZSS dialect. Required.
	Config *lzss.Config

	// Debug routes a trace line to log.Debug for every decoded symbol.
	Debug bool
}

// readerSource adapts an io.Reader to lzss.Source.
type readerSource struct {
	r io.Reader
}

func (s readerSource) Read(max int) ([]byte, error) {
	buf := make([]byte, max)
	n, err := s.r.Read(buf)
	if n > 0 {
		return buf[:n], nil
	}
	if err == io.EOF {
		return nil, nil
	}
	return nil, err
}
