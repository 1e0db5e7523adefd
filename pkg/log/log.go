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
	fileIndent  = 4  // spaces to indent entry lines
	nameWidth   = 40 // base width for the entry path
	typeWidth   = 8  // width for the entry type
	statusWidth = 12 // width for the status text
)

// 🎯 EntryOperation represents one processed directory entry for logging
type EntryOperation struct {
	Path         string // Path relative to the source root
	Type         string // Entry type (dir/text/binary)
	Status       string // Operation status (created/rewritten/copied/skipped)
	IsDir        bool   // Whether this is a directory
	IsRewritten  bool   // Whether text content was rewritten
	IsRaw        bool   // Whether the file was copied byte-for-byte
	IsSkipped    bool   // Whether the entry was skipped
	IsDryRun     bool   // Whether this was a planned (not executed) operation
	Replacements int    // Number of name replacements made in the content
}

// 📦 RenameOperation represents one whole-project rename for logging
type RenameOperation struct {
	OldName     string // Detected old project name
	NewName     string // Requested new project name
	Source      string // Source directory
	Destination string // Destination directory
	DryRun      bool   // Whether this is a preview
}

// 🎯 Logger handles structured logging with console output
type Logger struct {
	zlog       zerolog.Logger
	console    io.Writer
	mu         sync.Mutex
	currentOp  *RenameOperation
	operations []EntryOperation
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

// 🎯 FromContext gets the logger from context, falling back to a discarding
// logger so library callers never have to carry one.
func FromContext(ctx context.Context) *Logger {
	logger, ok := ctx.Value(contextKey{}).(*Logger)
	if !ok {
		return New(io.Discard, zerolog.Disabled)
	}
	return logger
}

// 🎯 NewContext adds the logger to context
func NewContext(ctx context.Context, l *Logger) context.Context {
	return context.WithValue(ctx, contextKey{}, l)
}

// 📝 formatEntryOperation formats an entry operation for display
func (l *Logger) formatEntryOperation(op EntryOperation) string {
	// Determine symbol and color
	var symbol rune
	var symbolColor color.Attribute
	switch {
	case op.IsSkipped:
		symbol = '-'
		symbolColor = color.FgYellow
	case op.IsDir:
		symbol = '•'
		symbolColor = color.FgCyan
	case op.IsRaw:
		symbol = '='
		symbolColor = color.FgMagenta
	case op.IsRewritten:
		symbol = '⟳'
		symbolColor = color.FgBlue
	default:
		symbol = '✓'
		symbolColor = color.FgGreen
	}

	// Format type with color
	var typeColor color.Attribute
	switch op.Type {
	case "dir":
		typeColor = color.FgCyan
	case "binary":
		typeColor = color.FgMagenta
	default:
		typeColor = color.FgBlue
	}

	status := op.Status
	if op.IsDryRun {
		status = "would " + status
	}

	// Build the line
	return fmt.Sprintf("%s%s %s %s %s",
		fmt.Sprintf("%*s", fileIndent, ""),
		color.New(symbolColor).Sprint(string(symbol)),
		fmt.Sprintf("%-*s", nameWidth, op.Path),
		color.New(typeColor).Sprint(fmt.Sprintf("%-*s", typeWidth, op.Type)),
		fmt.Sprintf("%-*s", statusWidth, status))
}

// 📝 LogEntryOperation logs a processed directory entry
func (l *Logger) LogEntryOperation(ctx context.Context, op EntryOperation) {
	l.mu.Lock()
	defer l.mu.Unlock()

	// Add to operations list
	l.operations = append(l.operations, op)

	// Format and print
	fmt.Fprintln(l.console, l.formatEntryOperation(op))

	// Log to zerolog
	l.zlog.Info().
		Str("path", op.Path).
		Str("type", op.Type).
		Str("status", op.Status).
		Bool("is_dir", op.IsDir).
		Bool("is_rewritten", op.IsRewritten).
		Bool("is_raw", op.IsRaw).
		Bool("is_skipped", op.IsSkipped).
		Bool("dry_run", op.IsDryRun).
		Int("replacements", op.Replacements).
		Msg("entry operation")
}

// 📝 StartRenameOperation starts a new project rename
func (l *Logger) StartRenameOperation(ctx context.Context, op RenameOperation) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.currentOp = &op
	l.operations = nil

	verb := "renaming"
	if op.DryRun {
		verb = "previewing"
	}

	// Print rename header
	fmt.Fprintf(l.console, "[%s %s]\n", verb,
		color.New(color.FgCyan).Sprint(op.Source))

	fmt.Fprintf(l.console, "%s %s %s %s\n",
		color.New(color.FgMagenta).Sprint("◆"),
		color.New(color.Bold).Sprint(op.OldName),
		color.New(color.Faint).Sprint("→"),
		color.New(color.FgYellow).Sprint(op.NewName))

	// Log to zerolog
	l.zlog.Info().
		Str("old_name", op.OldName).
		Str("new_name", op.NewName).
		Str("source", op.Source).
		Str("destination", op.Destination).
		Bool("dry_run", op.DryRun).
		Msg("starting rename operation")
}

// 📝 EndRenameOperation ends the current rename
func (l *Logger) EndRenameOperation(ctx context.Context) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.currentOp == nil {
		return
	}

	// Log summary
	l.zlog.Info().
		Str("old_name", l.currentOp.OldName).
		Str("new_name", l.currentOp.NewName).
		Int("entries", len(l.operations)).
		Msg("rename operation complete")

	l.currentOp = nil
	l.operations = nil
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
	renamercText := color.New(color.Bold, color.FgCyan).Sprint("renamerc")
	fmt.Fprintf(l.console, "\n%s %s\n\n", renamercText, color.New(color.Faint).Sprint("• "+msg))
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
