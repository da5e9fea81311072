// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"fmt"
	"strings"
)

// Language is the tag attached to a code snippet. It selects the fenced-code
// marker sent to the server and the grammar used for highlighting.
type Language string

const (
	JavaScript Language = "JavaScript"
	TypeScript Language = "TypeScript"
	Python     Language = "Python"
	Java       Language = "Java"
	CSharp     Language = "C#"
	CPP        Language = "C++"
	Go         Language = "Go"
	Rust       Language = "Rust"
	Kotlin     Language = "Kotlin"
	Bash       Language = "Bash"
	SQL        Language = "SQL"
	JSON       Language = "JSON"
	Plaintext  Language = "Plaintext"
)

// Languages lists every supported tag in the order the composer cycles
// through them.
var Languages = []Language{
	JavaScript, TypeScript, Python, Java, CSharp, CPP, Go,
	Rust, Kotlin, Bash, SQL, JSON, Plaintext,
}

// ParseLanguage matches s against the supported tags case-insensitively.
func ParseLanguage(s string) (Language, error) {
	s = strings.TrimSpace(s)
	for _, l := range Languages {
		if strings.EqualFold(string(l), s) {
			return l, nil
		}
	}
	return "", fmt.Errorf("unsupported language %q", s)
}

// Lower returns the lower-cased tag used as the fenced-code marker and as
// the "lang" field of a chat request.
func (l Language) Lower() string {
	return strings.ToLower(string(l))
}

// Lexer returns the chroma lexer name for the language.
func (l Language) Lexer() string {
	switch l {
	case CSharp:
		return "csharp"
	case CPP:
		return "cpp"
	case Plaintext, "":
		return "plaintext"
	default:
		return l.Lower()
	}
}

// Next returns the tag following l in [Languages], wrapping around.
func (l Language) Next() Language {
	for i, lang := range Languages {
		if lang == l {
			return Languages[(i+1)%len(Languages)]
		}
	}
	return Plaintext
}

func (l Language) String() string {
	return string(l)
}
