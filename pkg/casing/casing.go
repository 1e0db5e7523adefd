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

// Package casing detects and renders naming conventions. A name like
// "my_project" is broken into lowercase parts and a CaseInfo describing how
// those parts were joined and capitalized, and any NormalizedName can be
// re-rendered under any CaseInfo.
package casing

import (
	"strings"
	"unicode"

	"gitlab.com/tozd/go/errors"
)

var (
	// ErrEmptyName is returned when a name to detect is empty
	ErrEmptyName = errors.New("name is empty")

	// ErrEmptyPart is returned when a name part is empty and cannot be capitalized
	ErrEmptyPart = errors.New("name part is empty")
)

// 🔤 Separators is the fixed list of recognized part separators, in priority
// order. Detection picks the first one present in the name; enumeration
// iterates them in the same order. Changing this order changes observable
// replacement behavior.
var Separators = []rune{' ', '_', '-', '.', '/'}

// NoSeparator marks a CaseInfo whose parts are concatenated directly
// (mumble-case), e.g. "myproject".
const NoSeparator rune = 0

// 🎨 Style is the capitalization rule applied to each part independently
type Style int

const (
	// Capitalize uppercases the first character of each part: "My Project"
	Capitalize Style = iota
	// UpperCase uppercases every character: "MY PROJECT"
	UpperCase
	// LowerCase lowercases every character: "my project"
	LowerCase
)

// String returns a human-readable style name
func (s Style) String() string {
	switch s {
	case Capitalize:
		return "capitalize"
	case UpperCase:
		return "upper"
	case LowerCase:
		return "lower"
	default:
		return "unknown"
	}
}

// 🎯 CaseInfo is one concrete rendering convention: a separator and a style.
// It is a stateless value; any number may exist at once.
type CaseInfo struct {
	Separator rune  // NoSeparator means parts concatenate directly
	Style     Style // capitalization rule per part
}

// String returns a compact description for logging, e.g. "upper('_')"
func (c CaseInfo) String() string {
	if c.Separator == NoSeparator {
		return c.Style.String() + "(none)"
	}
	return c.Style.String() + "('" + string(c.Separator) + "')"
}

// 📦 NormalizedName is the separator- and case-agnostic form of a name: an
// ordered list of lowercase parts. It is immutable after creation.
type NormalizedName struct {
	parts []string
}

// NewNormalizedName creates a NormalizedName from pre-split parts. Parts are
// lowercased; order is preserved.
func NewNormalizedName(parts []string) NormalizedName {
	lowered := make([]string, len(parts))
	for i, p := range parts {
		lowered[i] = strings.ToLower(p)
	}
	return NormalizedName{parts: lowered}
}

// Parts returns a copy of the ordered lowercase parts
func (n NormalizedName) Parts() []string {
	out := make([]string, len(n.parts))
	copy(out, n.parts)
	return out
}

// String returns the parts joined with spaces, for display only
func (n NormalizedName) String() string {
	return strings.Join(n.parts, " ")
}

// 🔍 Detect infers how a name is segmented and capitalized, returning the
// CaseInfo and the underlying NormalizedName.
//
// The separator is the first entry of Separators that appears anywhere in the
// name; if none appears the whole name is a single part. Style is UpperCase if
// every character is uppercase, LowerCase if every character is lowercase, and
// Capitalize otherwise (the catch-all for Title Case, PascalCase, camelCase
// and mixed input). A name with no alphabetic characters passes both checks
// vacuously and classifies as UpperCase; the check order is the tie-break.
//
// Detection is a heuristic: for names outside the canonical grid (mixed
// separators, mixed styles) it still returns a result, but the segmentation
// may not round-trip.
func Detect(name string) (CaseInfo, NormalizedName, error) {
	if name == "" {
		return CaseInfo{}, NormalizedName{}, ErrEmptyName
	}

	separator := NoSeparator
	for _, sep := range Separators {
		if strings.ContainsRune(name, sep) {
			separator = sep
			break
		}
	}

	var parts []string
	if separator != NoSeparator {
		parts = strings.Split(name, string(separator))
	} else {
		parts = []string{name}
	}

	// Non-alphabetic characters count as both upper and lower, so digits and
	// punctuation never force a name into the Capitalize catch-all.
	style := Capitalize
	switch {
	case noRuneIs(parts, unicode.IsLower):
		style = UpperCase
	case noRuneIs(parts, unicode.IsUpper):
		style = LowerCase
	}

	return CaseInfo{Separator: separator, Style: style}, NewNormalizedName(parts), nil
}

// noRuneIs reports whether no rune of any part satisfies pred
func noRuneIs(parts []string, pred func(rune) bool) bool {
	for _, part := range parts {
		for _, r := range part {
			if pred(r) {
				return false
			}
		}
	}
	return true
}

// 🖋️ Render joins the style-transformed parts of n with the separator.
// Rendering an empty part under Capitalize returns ErrEmptyPart (there is no
// first character to uppercase); UpperCase and LowerCase map empty parts to
// empty segments, preserving doubled separators.
func (c CaseInfo) Render(n NormalizedName) (string, error) {
	sep := ""
	if c.Separator != NoSeparator {
		sep = string(c.Separator)
	}

	rendered := make([]string, len(n.parts))
	for i, part := range n.parts {
		switch c.Style {
		case Capitalize:
			if part == "" {
				return "", ErrEmptyPart
			}
			runes := []rune(part)
			rendered[i] = string(unicode.ToUpper(runes[0])) + strings.ToLower(string(runes[1:]))
		case UpperCase:
			rendered[i] = strings.ToUpper(part)
		default:
			rendered[i] = strings.ToLower(part)
		}
	}

	return strings.Join(rendered, sep), nil
}

// 🗺️ AllCases enumerates the full grid of rendering conventions: 3 styles ×
// (no separator + 5 separators) = 18 combinations. The order is a contract:
// style outer (Capitalize, UpperCase, LowerCase), separator inner (none,
// then Separators in priority order). Replacement passes run in this order
// and later passes observe earlier passes' output, so reordering changes
// observable results.
func AllCases() []CaseInfo {
	cases := make([]CaseInfo, 0, 3*(len(Separators)+1))
	for _, style := range []Style{Capitalize, UpperCase, LowerCase} {
		cases = append(cases, CaseInfo{Separator: NoSeparator, Style: style})
		for _, sep := range Separators {
			cases = append(cases, CaseInfo{Separator: sep, Style: style})
		}
	}
	return cases
}
