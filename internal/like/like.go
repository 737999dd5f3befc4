// Copyright 2022-2023 FrescoDB, Inc.
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

// Package like compiles SQL LIKE patterns into Go regular expressions.
package like

import (
	"bytes"
	"regexp"
	"strings"
	"unicode/utf8"
)

// Pattern converts a LIKE pattern with the default backslash escape
// into a Go regular expression string.
func Pattern(pattern string) string {
	return convert(pattern, 0)
}

// PatternWithEscape converts a LIKE pattern with a custom escape
// character. The backslash keeps escaping alongside it.
func PatternWithEscape(pattern, escape string) string {
	esc, _ := utf8.DecodeRuneInString(escape)
	return convert(pattern, esc)
}

// HasWildcards reports whether the pattern contains a % or _ character.
// Escapes are not considered: an escaped wildcard still counts. Only
// meaningful for patterns without an escape clause.
func HasWildcards(pattern string) bool {
	return strings.ContainsAny(pattern, "%_")
}

// Compile builds the matcher for a pattern. An empty escape selects the
// default backslash escaping.
func Compile(pattern, escape string) (*regexp.Regexp, error) {
	if escape == "" {
		return regexp.Compile(Pattern(pattern))
	}
	return regexp.Compile(PatternWithEscape(pattern, escape))
}

func convert(pattern string, escape rune) string {
	var buf bytes.Buffer
	buf.WriteString("(?s)^")
	for i := 0; i < len(pattern); {
		r, w := utf8.DecodeRuneInString(pattern[i:])
		i += w

		if r == escape || r == '\\' {
			if i < len(pattern) {
				r2, w2 := utf8.DecodeRuneInString(pattern[i:])
				i += w2
				buf.WriteString(regexp.QuoteMeta(string(r2)))
			} else {
				buf.WriteString(regexp.QuoteMeta(string(r)))
			}
			continue
		}

		switch r {
		case '_':
			buf.WriteRune('.')
		case '%':
			buf.WriteString(".*")
		default:
			buf.WriteString(regexp.QuoteMeta(string(r)))
		}
	}
	buf.WriteString("$")
	return buf.String()
}
