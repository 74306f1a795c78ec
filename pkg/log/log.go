// Copyright 2025 walteh LLC
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package log

import (
	"context"
	"fmt"
	"io"
	"sync"

	"github.com/fatih/color"
	"github.com/rs/zerolog"
)

// 🎨 Display configuration
const (
	opIndent     = 4  // spaces to indent operation entries
	opWidth      = 50 // Base width for operation description
	outcomeWidth = 10 // Width for outcome text
)

// 🎯 OperationLine represents one applied operation for logging
type OperationLine struct {
	Op           string // Operation description
	Outcome      string // applied / skipped / failed
	Reason       string // Skip or failure reason
	Replacements int    // Number of replacements made
}

// 📦 FileRun represents one file-patch run for logging
type FileRun struct {
	Path       string // Target file path
	Operations int    // Number of operations submitted
	DryRun     bool   // Whether this is a plan-only run
}

// 🎯 Logger handles structured logging with console output
type Logger struct {
	zlog       zerolog.Logger
	console    io.Writer
	mu         sync.Mutex
	currentRun *FileRun
	lines      []OperationLine
}

// 🏭 New creates a new logger
func New(console io.Writer, level zerolog.Level) *Logger {
	zlog := zerolog.New(zerolog.NewConsoleWriter()).With().Timestamp().Logger().Level(level)
	return &Logger{
		zlog:    zlog,
		console: console,
		mu:      sync.Mutex{},
	}
}

// 🔑 contextKey is the type for context values
type contextKey struct{}

// 🎯 FromContext gets the logger from context
func FromContext(ctx context.Context) *Logger {
	logger, ok := ctx.Value(contextKey{}).(*Logger)
	if !ok {
		panic("logger not found in context")
	}
	return logger
}

// 🎯 NewContext adds the logger to context
func NewContext(ctx context.Context, l *Logger) context.Context {
	return context.WithValue(ctx, contextKey{}, l)
}

// 📝 formatOperationLine formats one operation outcome for display
func (l *Logger) formatOperationLine(line OperationLine) string {
	// Determine symbol and color
	var symbol rune
	var symbolColor color.Attribute
	switch line.Outcome {
	case "applied":
		symbol = '✓'
		symbolColor = color.FgGreen
	case "failed":
		symbol = '✗'
		symbolColor = color.FgRed
	default:
		symbol = '-'
		symbolColor = color.FgYellow
	}

	suffix := line.Reason
	if suffix == "" && line.Replacements > 0 {
		suffix = fmt.Sprintf("%d replacement(s)", line.Replacements)
	}

	return fmt.Sprintf("%s%s %s %s %s",
		fmt.Sprintf("%*s", opIndent, ""),
		color.New(symbolColor).Sprint(string(symbol)),
		fmt.Sprintf("%-*s", opWidth, line.Op),
		color.New(symbolColor).Sprint(fmt.Sprintf("%-*s", outcomeWidth, line.Outcome)),
		color.New(color.Faint).Sprint(suffix))
}

// 📝 LogOperation logs one operation outcome
func (l *Logger) LogOperation(ctx context.Context, line OperationLine) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.lines = append(l.lines, line)

	fmt.Fprintln(l.console, l.formatOperationLine(line))

	l.zlog.Info().
		Str("op", line.Op).
		Str("outcome", line.Outcome).
		Str("reason", line.Reason).
		Int("replacements", line.Replacements).
		Msg("operation")
}

// 📝 StartFileRun starts a new file-patch run
func (l *Logger) StartFileRun(ctx context.Context, run FileRun) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.currentRun = &run
	l.lines = nil

	verb := "patching"
	if run.DryRun {
		verb = "planning"
	}
	fmt.Fprintf(l.console, "[%s %s]\n", verb,
		color.New(color.FgCyan).Sprint(run.Path))

	l.zlog.Info().
		Str("file", run.Path).
		Int("operations", run.Operations).
		Bool("dry_run", run.DryRun).
		Msg("starting file run")
}

// 📝 EndFileRun ends the current file-patch run
func (l *Logger) EndFileRun(ctx context.Context) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.currentRun == nil {
		return
	}

	l.zlog.Info().
		Str("file", l.currentRun.Path).
		Int("operations", len(l.lines)).
		Msg("file run complete")

	l.currentRun = nil
	l.lines = nil
}

// 📝 LogNewline logs a newline
func (l *Logger) LogNewline() {
	l.mu.Lock()
	defer l.mu.Unlock()
	fmt.Fprintln(l.console)
}

// 📝 Header logs a header
func (l *Logger) Header(msg string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	patchrcText := color.New(color.Bold, color.FgCyan).Sprint("patchrc")
	fmt.Fprintf(l.console, "\n%s %s\n\n", patchrcText, color.New(color.Faint).Sprint("• "+msg))
	l.zlog.Info().Msg(msg)
}

// 📝 Success logs a success message
func (l *Logger) Success(msg string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	fmt.Fprintf(l.console, "✅ %s\n", color.New(color.FgGreen).Sprint(msg))
	l.zlog.Info().Msg(msg)
}

// 📝 Warning logs a warning message
func (l *Logger) Warning(msg string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	fmt.Fprintf(l.console, "⚠️  %s\n", color.New(color.FgYellow).Sprint(msg))
	l.zlog.Warn().Msg(msg)
}

// 📝 Error logs an error message
func (l *Logger) Error(msg string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	fmt.Fprintf(l.console, "❌ %s\n", color.New(color.FgRed).Sprint(msg))
	l.zlog.Error().Msg(msg)
}

// 📝 Info logs an info message
func (l *Logger) Info(msg string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	fmt.Fprintf(l.console, "ℹ️  %s\n", color.New(color.FgCyan).Sprint(msg))
	l.zlog.Info().Msg(msg)
}

// 📝 Infof logs a formatted info message
func (l *Logger) Infof(format string, args ...interface{}) {
	l.Info(fmt.Sprintf(format, args...))
}

// 📝 Warningf logs a formatted warning message
func (l *Logger) Warningf(format string, args ...interface{}) {
	l.Warning(fmt.Sprintf(format, args...))
}

// 📝 Errorf logs a formatted error message
func (l *Logger) Errorf(format string, args ...interface{}) {
	l.Error(fmt.Sprintf(format, args...))
}

// 📝 Successf logs a formatted success message
func (l *Logger) Successf(format string, args ...interface{}) {
	l.Success(fmt.Sprintf(format, args...))
}
