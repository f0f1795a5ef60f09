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

package main

import (
	"io"
	"os"

	"github.com/mechiko/lzssdecode/cli"
	"github.com/mechiko/lzssdecode/lzss"
	"github.com/mechiko/lzssdecode/profiles"
	"github.com/spf13/cobra"
)

func runDecode(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd.Flags())
	if err != nil {
		return err
	}

	in, closeIn, err := openInput(args)
	if err != nil {
		return err
	}
	defer closeIn()

	out, closeOut, err := openOutput(args)
	if err != nil {
		return err
	}
	defer closeOut()

	return cli.Process(&cli.Command{
		Input:  in,
		Output: out,
		Config: cfg,
		Debug:  debug,
	})
}

// resolveConfig builds an lzss.Config starting from --profile (if any),
// then overriding each field explicitly set on the command line.
func resolveConfig(flags interface{ Changed(string) bool }) (*lzss.Config, error) {
	opts := lzss.Config{
		LengthWidth:          lengthWidth,
		LengthBias:           lengthBias,
		DistanceWidth:        distanceWidth,
		FlagWidth:            flagWidth,
		FlagZeroMeansLiteral: !invertFlag,
		DistanceFromEnd:      backDistance,
		WindowSize:           windowSize,
	}

	if profileName != "" {
		reg, err := profiles.NewRegistry()
		if err != nil {
			return nil, err
		}
		if profilesFile != "" {
			data, err := os.ReadFile(profilesFile)
			if err != nil {
				return nil, err
			}
			if err := reg.Load(data); err != nil {
				return nil, err
			}
		}
		p, ok := reg.Lookup(profileName)
		if !ok {
			return nil, &lzss.ConfigError{Msg: "unknown profile " + profileName}
		}
		opts = applyProfile(opts, p, flags)
	}

	return lzss.NewConfig(opts)
}

// applyProfile fills in opts from p for every field the user did not
// explicitly set on the command line, so an explicit flag always wins
// over the selected profile.
func applyProfile(opts lzss.Config, p profiles.Profile, flags interface{ Changed(string) bool }) lzss.Config {
	if !flags.Changed("window-size") {
		opts.WindowSize = p.WindowSize
	}
	if !flags.Changed("length-width") {
		opts.LengthWidth = p.LengthWidth
	}
	if !flags.Changed("length-bias") {
		opts.LengthBias = p.LengthBias
	}
	if !flags.Changed("distance-width") {
		opts.DistanceWidth = p.DistanceWidth
	}
	if !flags.Changed("flag-width") {
		opts.FlagWidth = p.FlagWidth
	}
	if !flags.Changed("invert-flag") {
		opts.FlagZeroMeansLiteral = p.FlagZeroMeansLiteral
	}
	if !flags.Changed("back-distance") {
		opts.DistanceFromEnd = p.DistanceFromEnd
	}
	return opts
}

func openInput(args []string) (io.Reader, func(), error) {
	if len(args) >= 1 && args[0] != "-" {
		f, err := os.Open(args[0])
		if err != nil {
			return nil, nil, err
		}
		return f, func() { f.Close() }, nil
	}
	return os.Stdin, func() {}, nil
}

func openOutput(args []string) (io.Writer, func(), error) {
	if len(args) >= 2 && args[1] != "-" {
		f, err := os.Create(args[1])
		if err != nil {
			return nil, nil, err
		}
		return f, func() { f.Close() }, nil
	}
	return os.Stdout, func() {}, nil
}
