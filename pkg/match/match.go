/*
Copyright © 2025 The argbind Authors
SPDX-License-Identifier: Apache-2.0
*/
package match

import (
	"fmt"
	"strings"

	"github.com/argbind/argbind/pkg/errors"
	"github.com/argbind/argbind/pkg/spec"
)

// Kind classifies a raw argv token.
type Kind int

const (
	// KindPositional is any token that is not an option or help request.
	KindPositional Kind = iota
	// KindLongOption is a --name style token.
	KindLongOption
	// KindShortOption is a single-character -x style token.
	KindShortOption
	// KindHelpRequest is --help or -?, recognized anywhere in argv.
	KindHelpRequest
)

// separators split an option name from its value.
const separators = "=:"

// Token is one classified argv entry.
type Token struct {
	Kind Kind
	// Raw is the argv entry as supplied.
	Raw string
	// Name is the long option name or the single-character short alias.
	Name string
	// Value is the text after the separator; meaningful only when HasValue
	// is set.
	Value    string
	HasValue bool
}

// Scan classifies argv left to right. Classification is purely lexical;
// resolving option names against a command spec is a separate step so that
// a help request can short-circuit even an argv full of unknown options.
func Scan(argv []string) []Token {
	tokens := make([]Token, 0, len(argv))
	for _, raw := range argv {
		tokens = append(tokens, classify(raw))
	}
	return tokens
}

func classify(raw string) Token {
	if raw == "--help" || raw == "-?" {
		return Token{Kind: KindHelpRequest, Raw: raw}
	}

	if strings.HasPrefix(raw, "--") {
		body := raw[2:]
		tok := Token{Kind: KindLongOption, Raw: raw, Name: body}
		if i := strings.IndexAny(body, separators); i >= 0 {
			tok.Name = body[:i]
			tok.Value = body[i+1:]
			tok.HasValue = true
		}
		return tok
	}

	if len(raw) >= 2 && raw[0] == '-' {
		// exactly one alias character, optionally followed by =value or
		// :value; anything else (including -ab combinations) is positional
		if len(raw) == 2 {
			return Token{Kind: KindShortOption, Raw: raw, Name: raw[1:2]}
		}
		if raw[2] == '=' || raw[2] == ':' {
			return Token{
				Kind:     KindShortOption,
				Raw:      raw,
				Name:     raw[1:2],
				Value:    raw[3:],
				HasValue: true,
			}
		}
	}

	return Token{Kind: KindPositional, Raw: raw}
}

// HasHelpRequest reports whether any token in the stream is a help request.
func HasHelpRequest(tokens []Token) bool {
	for _, t := range tokens {
		if t.Kind == KindHelpRequest {
			return true
		}
	}
	return false
}

// Resolve maps an option token to its declared parameter, yielding an
// UNKNOWN_OPTION error when the name or alias is not declared by the
// command.
func Resolve(cmd *spec.Command, tok Token) (*spec.Param, error) {
	switch tok.Kind {
	case KindLongOption:
		if p, ok := cmd.LongOption(tok.Name); ok {
			return p, nil
		}
		return nil, errors.NewWithContext(errors.ErrCodeUnknownOption,
			fmt.Sprintf("unknown option --%s", tok.Name),
			map[string]any{"option": tok.Name, "raw": tok.Raw})
	case KindShortOption:
		if p, ok := cmd.ShortOption(tok.Name[0]); ok {
			return p, nil
		}
		return nil, errors.NewWithContext(errors.ErrCodeUnknownOption,
			fmt.Sprintf("unknown option -%s", tok.Name),
			map[string]any{"option": tok.Name, "raw": tok.Raw})
	default:
		return nil, errors.New(errors.ErrCodeUnknownOption,
			fmt.Sprintf("token %q is not an option", tok.Raw))
	}
}

// RawValue applies the separator/value rule: an explicit value is used
// as-is, a bare boolean toggle reads as "true", and a bare non-boolean
// option is a MISSING_SEPARATOR error.
func RawValue(p *spec.Param, tok Token) (string, error) {
	if tok.HasValue {
		return tok.Value, nil
	}
	if p.IsBool() {
		return "true", nil
	}
	return "", errors.NewWithContext(errors.ErrCodeMissingSeparator,
		fmt.Sprintf("option %s requires a value (use %s=<%s> or %s:<%s>)",
			tok.Raw, tok.Raw, p.Converter().Label, tok.Raw, p.Converter().Label),
		map[string]any{"param": p.Name, "raw": tok.Raw})
}
