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

package bitstream

import "errors"

// ErrInsufficientData is returned by TakeBits when fewer than the
// requested number of bits are currently buffered; the caller (the
// decode driver) decides whether that is benign end-of-stream or a
// truncated code word. The only other error TakeBits returns is for a
// request wider than MaxBits.
var ErrInsufficientData = errors.New("bitstream: insufficient data buffered")
