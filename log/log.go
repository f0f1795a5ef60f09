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

// Package log provides a logging abstraction so that lower layers never
// depend on a concrete logging library directly.
package log

import (
	"go.uber.org/zap"
)

// Logger defines an interface for logging messages.
type Logger interface {

	// Printf logs a formatted string.
	Printf(format string, args ...interface{})

	// Println logs a line.
	Println(args ...interface{})
}

type logger struct {
	log Logger
}

// The three package-level loggers. Debug receives the per-symbol trace
// that cli.Process emits when Command.Debug is set; nothing in this
// module writes to Info or Stats.
var (
	Debug = &logger{}
	Info  = &logger{}
	Stats = &logger{}
)

// SetDebugLogger sets the debug logger.
func SetDebugLogger(log Logger) {
	Debug.log = log
}

// SetInfoLogger sets the info logger.
func SetInfoLogger(log Logger) {
	Info.log = log
}

// SetStatsLogger sets the stats logger.
func SetStatsLogger(log Logger) {
	Stats.log = log
}

// zapAdapter satisfies Logger on top of a *zap.SugaredLogger, so the
// package's default loggers get structured, leveled output instead of a
// bare stdlib *log.Logger.
type zapAdapter struct {
	s *zap.SugaredLogger
}

func (a zapAdapter) Printf(format string, args ...interface{}) {
	a.s.Infof(format, args...)
}

func (a zapAdapter) Println(args ...interface{}) {
	a.s.Info(args...)
}

func newZapAdapter(nameField string) Logger {
	zl, err := zap.NewDevelopment()
	if err != nil {
		// zap.NewDevelopment only fails on a broken encoder config; a
		// nop logger keeps DisableLoggers-style callers working instead
		// of crashing a decode session over logging setup.
		zl = zap.NewNop()
	}
	return zapAdapter{s: zl.Sugar().Named(nameField)}
}

// SetDefaultDebugLogger sets the default debug logger.
func SetDefaultDebugLogger() {
	SetDebugLogger(newZapAdapter("debug"))
}

// SetDefaultInfoLogger sets the default info logger.
func SetDefaultInfoLogger() {
	SetInfoLogger(newZapAdapter("info"))
}

// SetDefaultStatsLogger sets the default stats logger.
func SetDefaultStatsLogger() {
	SetStatsLogger(newZapAdapter("stats"))
}

// SetDefaultLoggers sets all loggers to their default logger.
func SetDefaultLoggers() {
	SetDefaultDebugLogger()
	SetDefaultInfoLogger()
	SetDefaultStatsLogger()
}

// DisableLoggers turns off all logging.
func DisableLoggers() {
	SetDebugLogger(nil)
	SetInfoLogger(nil)
	SetStatsLogger(nil)
}

// Printf writes a formatted message to the log.
func (l *logger) Printf(format string, args ...interface{}) {

	if l.log == nil {
		return
	}

	l.log.Printf(format, args...)
}

// Println writes a line to the log.
func (l *logger) Println(args ...interface{}) {

	if l.log == nil {
		return
	}

	l.log.Println(args...)
}
