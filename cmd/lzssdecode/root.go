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
	"github.com/mechiko/lzssdecode/log"
	"github.com/spf13/cobra"
)

var (
	windowSize    int
	lengthWidth   uint
	lengthBias    uint
	distanceWidth uint
	flagWidth     uint
	invertFlag    bool
	backDistance  bool
	debug         bool
	profileName   string
	profilesFile  string
)

var rootCmd = &cobra.Command{
	Use:   "lzssdecode [input] [output]",
	Short: "Decode a configurable LZSS sliding-window stream",
	Long: `lzssdecode reconstructs the original byte stream from an LZSS-encoded
input, for any dialect describable by window size, reference field
widths, flag polarity, length bias, and distance addressing direction.

Select a dialect either with --profile, naming a preset loaded from the
built-in or a user-supplied YAML file, or by spelling out the
individual --window-size/--length-width/--distance-width/... flags.
Flags override whatever a selected profile sets.`,
	Args:          cobra.MaximumNArgs(2),
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runDecode,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initLogging)

	rootCmd.Flags().IntVarP(&windowSize, "window-size", "w", 256, "sliding window size in bytes")
	rootCmd.Flags().UintVarP(&lengthWidth, "length-width", "l", 8, "bit width of the length field")
	rootCmd.Flags().UintVarP(&lengthBias, "length-bias", "b", 0, "value added to every decoded length")
	rootCmd.Flags().UintVar(&distanceWidth, "distance-width", 0, "bit width of the distance field (0: derive from window size)")
	rootCmd.Flags().UintVar(&flagWidth, "flag-width", 1, "bit width of the flag field")
	rootCmd.Flags().BoolVar(&invertFlag, "invert-flag", false, "a zero flag bit marks a reference instead of a literal")
	rootCmd.Flags().BoolVar(&backDistance, "back-distance", false, "address distance from the most recently inserted byte")
	rootCmd.Flags().BoolVar(&debug, "debug", false, "trace every decoded symbol to stderr")
	rootCmd.Flags().StringVar(&profileName, "profile", "", "decode using a named dialect preset instead of individual flags")
	rootCmd.Flags().StringVar(&profilesFile, "profiles-file", "", "YAML file of additional profile definitions, merged over the built-ins")
}

func initLogging() {
	if debug {
		log.SetDefaultDebugLogger()
		return
	}
	log.DisableLoggers()
}
