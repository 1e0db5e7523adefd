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
	"bytes"
	"context"
	"io"
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogger(t *testing.T) {
	// Disable color for testing
	color.NoColor = true
	defer func() { color.NoColor = false }()

	tests := []struct {
		name     string
		op       func(t *testing.T, logger *Logger)
		wantLogs []string
	}{
		{
			name: "log_entry_operation",
			op: func(t *testing.T, logger *Logger) {
				logger.LogEntryOperation(context.Background(), EntryOperation{
					Path:         "test-file-1.txt",
					Type:         "text",
					Status:       "rewritten",
					IsRewritten:  true,
					Replacements: 2,
				})
			},
			wantLogs: []string{
				"⟳ test-file-1.txt",
			},
		},
		{
			name: "log_rename_operation",
			op: func(t *testing.T, logger *Logger) {
				logger.StartRenameOperation(context.Background(), RenameOperation{
					OldName:     "test-project",
					NewName:     "copied-project",
					Source:      "/tmp/test-project",
					Destination: "/tmp/copied-project",
				})
			},
			wantLogs: []string{
				"[renaming /tmp/test-project]",
				"◆ test-project → copied-project",
			},
		},
		{
			name: "log_messages",
			op: func(t *testing.T, logger *Logger) {
				logger.Info("info message")
				logger.Warning("warning message")
				logger.Error("error message")
				logger.Success("success message")
			},
			wantLogs: []string{
				"ℹ️  info message",
				"⚠️  warning message",
				"❌ error message",
				"✅ success message",
			},
		},
		{
			name: "log_formatted_messages",
			op: func(t *testing.T, logger *Logger) {
				logger.Infof("info %s", "test")
				logger.Successf("success %s", "test")
			},
			wantLogs: []string{
				"ℹ️  info test",
				"✅ success test",
			},
		},
		{
			name: "log_header",
			op: func(t *testing.T, logger *Logger) {
				logger.Header("renaming project files")
			},
			wantLogs: []string{
				"renamerc • renaming project files",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Create buffer for console output
			buf := &bytes.Buffer{}
			logger := New(buf, zerolog.InfoLevel)

			// Perform operation
			tt.op(t, logger)

			// Check output
			output := strings.TrimSpace(buf.String())
			lines := strings.Split(output, "\n")

			require.Equal(t, len(tt.wantLogs), len(lines), "number of log lines should match")
			for i, want := range tt.wantLogs {
				assert.True(t, strings.HasPrefix(strings.TrimSpace(lines[i]), want),
					"log line %d should start with %q, got %q", i, want, lines[i])
			}
		})
	}
}

func TestLoggerContext(t *testing.T) {
	// Create logger
	logger := New(io.Discard, zerolog.InfoLevel)

	// Add to context
	ctx := context.Background()
	ctx = NewContext(ctx, logger)

	// Get from context
	got := FromContext(ctx)
	assert.Same(t, logger, got, "logger from context should be the same instance")

	// A bare context yields a usable discarding logger instead of panicking
	fallback := FromContext(context.Background())
	require.NotNil(t, fallback)
	fallback.Info("should not panic")
}

func TestEntryOperationFormatting(t *testing.T) {
	// Disable color for testing
	color.NoColor = true
	defer func() { color.NoColor = false }()

	tests := []struct {
		name       string
		op         EntryOperation
		wantSymbol string
		wantStatus string
	}{
		{
			name: "rewritten_text_file",
			op: EntryOperation{
				Path:        "README.md",
				Type:        "text",
				Status:      "rewritten",
				IsRewritten: true,
			},
			wantSymbol: "⟳",
			wantStatus: "rewritten",
		},
		{
			name: "raw_copied_binary",
			op: EntryOperation{
				Path:   "logo.png",
				Type:   "binary",
				Status: "copied",
				IsRaw:  true,
			},
			wantSymbol: "=",
			wantStatus: "copied",
		},
		{
			name: "created_directory",
			op: EntryOperation{
				Path:   "src",
				Type:   "dir",
				Status: "created",
				IsDir:  true,
			},
			wantSymbol: "•",
			wantStatus: "created",
		},
		{
			name: "skipped_entry",
			op: EntryOperation{
				Path:      ".git",
				Type:      "dir",
				Status:    "skipped",
				IsSkipped: true,
			},
			wantSymbol: "-",
			wantStatus: "skipped",
		},
		{
			name: "dry_run_file",
			op: EntryOperation{
				Path:     "main.go",
				Type:     "text",
				Status:   "rewrite",
				IsDryRun: true,
			},
			wantSymbol: "✓",
			wantStatus: "would rewrite",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Create buffer for console output
			buf := &bytes.Buffer{}
			logger := New(buf, zerolog.InfoLevel)

			// Log operation
			logger.LogEntryOperation(context.Background(), tt.op)

			// Check output
			output := strings.TrimSpace(buf.String())
			assert.True(t, strings.HasPrefix(output, tt.wantSymbol), "symbol should match: %q", output)
			assert.Contains(t, output, tt.op.Path)
			assert.Contains(t, output, tt.wantStatus)
		})
	}
}
