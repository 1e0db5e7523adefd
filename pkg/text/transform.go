// Package text rewrites every known spelling of a project name inside a
// string of content. It drives the casing grid: the old and new names are
// rendered under each of the 18 conventions and replaced pass by pass.
package text

import (
	"context"
	"io"
	"strings"

	"github.com/walteh/renamerc/pkg/casing"
	"gitlab.com/tozd/go/errors"
)

// Pass is a single precomputed replacement: the old and new name rendered
// under one casing convention.
type Pass struct {
	// Case is the convention this pass covers
	Case casing.CaseInfo

	// Search is the old name rendered under Case
	Search string

	// Replace is the new name rendered under Case
	Replace string
}

// TransformResult contains the results of transforming one piece of content
type TransformResult struct {
	// WasModified indicates if any replacements were made
	WasModified bool

	// ReplacementCount is the number of replacements made
	ReplacementCount int

	// OriginalContent is the content before replacements
	OriginalContent []byte

	// ModifiedContent is the content after replacements
	ModifiedContent []byte
}

// NameTransformer replaces all cased spellings of an old name with the same
// spelling of a new name. It holds no mutable state and is safe for
// concurrent use.
type NameTransformer struct {
	passes []Pass
}

// NewNameTransformer precomputes the replacement passes for the given names.
// Rendering happens once here, so empty-part names fail fast instead of on
// every file.
func NewNameTransformer(oldName, newName casing.NormalizedName) (*NameTransformer, error) {
	cases := casing.AllCases()
	passes := make([]Pass, 0, len(cases))

	for _, caseInfo := range cases {
		search, err := caseInfo.Render(oldName)
		if err != nil {
			return nil, errors.Errorf("rendering old name as %s: %w", caseInfo, err)
		}
		replace, err := caseInfo.Render(newName)
		if err != nil {
			return nil, errors.Errorf("rendering new name as %s: %w", caseInfo, err)
		}
		passes = append(passes, Pass{Case: caseInfo, Search: search, Replace: replace})
	}

	return &NameTransformer{passes: passes}, nil
}

// Passes returns the replacement passes in application order
func (t *NameTransformer) Passes() []Pass {
	out := make([]Pass, len(t.passes))
	copy(out, t.passes)
	return out
}

// Transform applies all passes to the content, in grid order.
//
// Each pass runs a literal, non-overlapping, left-to-right ReplaceAll over
// the output of the previous pass, not over the original input. The order is
// therefore load-bearing: a later pass can match text introduced by an
// earlier one. That matches the reference behavior and is kept as-is; see
// the package docs for the limitation.
func (t *NameTransformer) Transform(ctx context.Context, content io.Reader) (*TransformResult, error) {
	originalContent, err := io.ReadAll(content)
	if err != nil {
		return nil, errors.Errorf("reading content: %w", err)
	}

	result := &TransformResult{
		OriginalContent: originalContent,
		ModifiedContent: originalContent,
	}

	currentContent := string(originalContent)
	for _, pass := range t.passes {
		if pass.Search == "" {
			continue
		}

		newContent := strings.ReplaceAll(currentContent, pass.Search, pass.Replace)

		if newContent != currentContent {
			result.WasModified = true
			result.ReplacementCount += strings.Count(currentContent, pass.Search)
		}

		currentContent = newContent
	}

	result.ModifiedContent = []byte(currentContent)
	return result, nil
}

// TransformString is a convenience wrapper for short strings like directory
// entry names.
func (t *NameTransformer) TransformString(s string) string {
	for _, pass := range t.passes {
		if pass.Search == "" {
			continue
		}
		s = strings.ReplaceAll(s, pass.Search, pass.Replace)
	}
	return s
}
