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

package cli

import (
	"github.com/mechiko/lzssdecode/log"
	"github.com/mechiko/lzssdecode/lzss"
	"github.com/pkg/errors"
)

// Process runs cmd to completion, decoding Input into Output under
// Config. It never panics: an internal invariant violation surfaces as
// a regular *lzss.InternalBug error instead of crashing the caller.
func Process(cmd *Command) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = errors.Errorf("cli: unrecovered panic: %v", r)
		}
	}()

	if cmd.Config == nil {
		return &lzss.ConfigError{Msg: "Command.Config is required"}
	}

	src := readerSource{r: cmd.Input}

	if cmd.Debug {
		return lzss.DecodeTraced(cmd.Config, src, cmd.Output, log.Debug.Printf)
	}
	return lzss.Decode(cmd.Config, src, cmd.Output)
}
