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

package lzss

import "math/bits"

// Config is an immutable record of the parameters that fix the LZSS
// grammar for one decode session. Construct it with NewConfig, which
// validates arguments and derives DistanceWidth eagerly; once built, a
// Config is frozen and safe to share read-only across sessions.
type Config struct {
	// WindowSize is the capacity of the sliding dictionary, in bytes.
	WindowSize int

	// LengthWidth is the bit width of the length field in a reference
	// code word.
	LengthWidth uint

	// LengthBias is added to every decoded length.
	LengthBias uint

	// DistanceWidth is the bit width of the distance field. Pass 0 to
	// NewConfig to derive ceil(log2(WindowSize)).
	DistanceWidth uint

	// FlagWidth is the bit width of the flag field.
	FlagWidth uint

	// FlagZeroMeansLiteral selects flag polarity: if true, a
	// zero-valued flag marks a literal; otherwise zero marks a
	// reference.
	FlagZeroMeansLiteral bool

	// DistanceFromEnd selects the addressing mode: if true, distance
	// counts backward from the most recent insert; otherwise from the
	// logical start of the window.
	DistanceFromEnd bool

	// Derived parameters, computed once by NewConfig.
	LiteralWordWidth   uint
	ReferenceWordWidth uint
	MinWordWidth       uint
	MaxWordWidth       uint
}

// NewConfig validates opts and returns a frozen Config, deriving
// DistanceWidth when it is given as 0.
func NewConfig(opts Config) (*Config, error) {
	c := opts

	if c.WindowSize < 1 {
		return nil, &ConfigError{Msg: "window_size must be >= 1"}
	}
	if c.LengthWidth < 1 {
		return nil, &ConfigError{Msg: "length_width must be >= 1"}
	}
	if c.FlagWidth < 1 {
		return nil, &ConfigError{Msg: "flag_width must be >= 1"}
	}

	if c.DistanceWidth == 0 {
		c.DistanceWidth = ceilLog2(c.WindowSize)
	}

	c.LiteralWordWidth = c.FlagWidth + 8
	c.ReferenceWordWidth = c.FlagWidth + c.LengthWidth + c.DistanceWidth

	c.MinWordWidth = c.LiteralWordWidth
	c.MaxWordWidth = c.ReferenceWordWidth
	if c.ReferenceWordWidth < c.LiteralWordWidth {
		c.MinWordWidth = c.ReferenceWordWidth
		c.MaxWordWidth = c.LiteralWordWidth
	}

	return &c, nil
}

// ceilLog2 returns ceil(log2(n)) for n >= 1.
func ceilLog2(n int) uint {
	if n <= 1 {
		return 0
	}
	return uint(bits.Len(uint(n - 1)))
}

// IsLiteral reports whether the given flag value (a FlagWidth-bit
// field) marks a literal code word under this Config's polarity.
func (c *Config) IsLiteral(flag uint32) bool {
	return (flag == 0) == c.FlagZeroMeansLiteral
}
