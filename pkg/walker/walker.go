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

package walker

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"sync"
	"unicode/utf8"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/rs/zerolog"
	"github.com/walteh/renamerc/pkg/casing"
	"github.com/walteh/renamerc/pkg/log"
	"github.com/walteh/renamerc/pkg/text"
	"gitlab.com/tozd/go/errors"
	"golang.org/x/sync/errgroup"
)

// defaultWorkers bounds concurrent file processing when Async is set
const defaultWorkers = 8

// 🔧 Options contains configuration for a walk
type Options struct {
	// Source is the project directory to rename
	Source string

	// Destination is where the renamed copy is created
	Destination string

	// OldName is the normalized form of the current project name
	OldName casing.NormalizedName

	// NewName is the normalized form of the new project name
	NewName casing.NormalizedName

	// IgnorePatterns are doublestar globs (matched against the
	// slash-separated path relative to Source) for entries to skip
	IgnorePatterns []string

	// DryRun logs planned operations without touching the filesystem
	DryRun bool

	// Async processes the files of each directory concurrently
	Async bool
}

// 📊 Summary counts what a walk did
type Summary struct {
	Directories  int // directories created
	Rewritten    int // text files written through the transformer
	RawCopies    int // non-UTF-8 files copied byte-for-byte
	Skipped      int // entries skipped (ignore patterns or existing targets)
	Replacements int // total name replacements across all file content
}

// 🚶 Walker copies a project tree, renaming entries and rewriting text
// content along the way
type Walker struct {
	opts        Options
	transformer *text.NameTransformer

	mu      sync.Mutex
	summary Summary
}

// 🏭 New creates a walker. The source must be an existing directory and the
// destination must not already exist.
func New(opts Options) (*Walker, error) {
	info, err := os.Stat(opts.Source)
	if err != nil {
		return nil, errors.Errorf("checking source: %w", err)
	}
	if !info.IsDir() {
		return nil, errors.Errorf("source %s is not a directory", opts.Source)
	}

	if opts.Destination == "" {
		return nil, errors.New("destination is required")
	}
	if _, err := os.Stat(opts.Destination); err == nil {
		return nil, errors.Errorf("destination %s already exists", opts.Destination)
	}

	transformer, err := text.NewNameTransformer(opts.OldName, opts.NewName)
	if err != nil {
		return nil, errors.Errorf("building name transformer: %w", err)
	}

	return &Walker{opts: opts, transformer: transformer}, nil
}

// 🏃 Run walks the source tree and produces the renamed copy
func (w *Walker) Run(ctx context.Context) (*Summary, error) {
	if err := w.walkDir(ctx, w.opts.Source, w.opts.Destination); err != nil {
		return nil, err
	}

	w.mu.Lock()
	defer w.mu.Unlock()
	summary := w.summary
	return &summary, nil
}

// 📁 walkDir processes one directory level: creates the (renamed) directory
// at dst, then handles each entry. Subdirectories recurse sequentially;
// files fan out through an errgroup when Async is set.
func (w *Walker) walkDir(ctx context.Context, src, dst string) error {
	entries, err := os.ReadDir(src)
	if err != nil {
		return errors.Errorf("reading directory %s: %w", src, err)
	}

	if !w.opts.DryRun {
		if err := os.MkdirAll(dst, 0755); err != nil {
			return errors.Errorf("creating directory %s: %w", dst, err)
		}
	}
	w.recordDir(ctx, src)

	var g *errgroup.Group
	gctx := ctx
	if w.opts.Async {
		g, gctx = errgroup.WithContext(ctx)
		g.SetLimit(defaultWorkers)
	}

	for _, entry := range entries {
		srcPath := filepath.Join(src, entry.Name())
		relPath, err := filepath.Rel(w.opts.Source, srcPath)
		if err != nil {
			return errors.Errorf("resolving relative path for %s: %w", srcPath, err)
		}

		if w.shouldIgnore(ctx, relPath) {
			w.recordSkip(ctx, relPath, entry.IsDir())
			continue
		}

		dstPath := filepath.Join(dst, w.transformer.TransformString(entry.Name()))

		if entry.IsDir() {
			if err := w.walkDir(ctx, srcPath, dstPath); err != nil {
				return err
			}
			continue
		}

		if g != nil {
			g.Go(func() error {
				return w.processFile(gctx, srcPath, dstPath, relPath)
			})
			continue
		}

		if err := w.processFile(ctx, srcPath, dstPath, relPath); err != nil {
			return err
		}
	}

	if g != nil {
		if err := g.Wait(); err != nil {
			return err
		}
	}

	return nil
}

// 📄 processFile rewrites a single file into its destination. UTF-8 content
// goes through the name transformer; anything else is copied byte-for-byte.
// Existing destination files are left alone.
func (w *Walker) processFile(ctx context.Context, src, dst, rel string) error {
	content, err := os.ReadFile(src)
	if err != nil {
		return errors.Errorf("reading file %s: %w", src, err)
	}

	if _, err := os.Stat(dst); err == nil {
		w.recordSkip(ctx, rel, false)
		return nil
	}

	if !utf8.Valid(content) {
		if !w.opts.DryRun {
			if err := os.WriteFile(dst, content, 0644); err != nil {
				return errors.Errorf("copying file %s: %w", dst, err)
			}
		}
		w.recordRawCopy(ctx, rel)
		return nil
	}

	result, err := w.transformer.Transform(ctx, bytes.NewReader(content))
	if err != nil {
		return errors.Errorf("transforming file %s: %w", src, err)
	}

	if !w.opts.DryRun {
		if err := os.WriteFile(dst, result.ModifiedContent, 0644); err != nil {
			return errors.Errorf("writing file %s: %w", dst, err)
		}
	}
	w.recordRewrite(ctx, rel, result)

	return nil
}

// 🔍 shouldIgnore checks if an entry matches an ignore pattern
func (w *Walker) shouldIgnore(ctx context.Context, relPath string) bool {
	if len(w.opts.IgnorePatterns) == 0 {
		return false
	}

	logger := zerolog.Ctx(ctx)
	path := filepath.ToSlash(relPath)
	for _, pattern := range w.opts.IgnorePatterns {
		matched, err := doublestar.Match(pattern, path)
		if err != nil {
			logger.Debug().Str("pattern", pattern).Str("path", path).Err(err).Msg("error matching pattern")
			continue
		}
		if matched {
			logger.Debug().Str("path", path).Str("pattern", pattern).Msg("entry ignored by pattern")
			return true
		}
	}

	return false
}

func (w *Walker) recordDir(ctx context.Context, src string) {
	rel, err := filepath.Rel(w.opts.Source, src)
	if err != nil || rel == "." {
		rel = filepath.Base(w.opts.Source)
	}

	w.mu.Lock()
	w.summary.Directories++
	w.mu.Unlock()

	log.FromContext(ctx).LogEntryOperation(ctx, log.EntryOperation{
		Path:     rel,
		Type:     "dir",
		Status:   "created",
		IsDir:    true,
		IsDryRun: w.opts.DryRun,
	})
}

func (w *Walker) recordSkip(ctx context.Context, rel string, isDir bool) {
	w.mu.Lock()
	w.summary.Skipped++
	w.mu.Unlock()

	entryType := "text"
	if isDir {
		entryType = "dir"
	}
	log.FromContext(ctx).LogEntryOperation(ctx, log.EntryOperation{
		Path:      rel,
		Type:      entryType,
		Status:    "skipped",
		IsDir:     isDir,
		IsSkipped: true,
		IsDryRun:  w.opts.DryRun,
	})
}

func (w *Walker) recordRawCopy(ctx context.Context, rel string) {
	w.mu.Lock()
	w.summary.RawCopies++
	w.mu.Unlock()

	log.FromContext(ctx).LogEntryOperation(ctx, log.EntryOperation{
		Path:     rel,
		Type:     "binary",
		Status:   "copied",
		IsRaw:    true,
		IsDryRun: w.opts.DryRun,
	})
}

func (w *Walker) recordRewrite(ctx context.Context, rel string, result *text.TransformResult) {
	w.mu.Lock()
	w.summary.Rewritten++
	w.summary.Replacements += result.ReplacementCount
	w.mu.Unlock()

	status := "created"
	if result.WasModified {
		status = "rewritten"
	}
	log.FromContext(ctx).LogEntryOperation(ctx, log.EntryOperation{
		Path:         rel,
		Type:         "text",
		Status:       status,
		IsRewritten:  result.WasModified,
		Replacements: result.ReplacementCount,
		IsDryRun:     w.opts.DryRun,
	})
}
