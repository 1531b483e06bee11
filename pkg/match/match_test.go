/*
Copyright © 2025 The argbind Authors
SPDX-License-Identifier: Apache-2.0
*/
package match

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/argbind/argbind/pkg/convert"
	"github.com/argbind/argbind/pkg/errors"
	"github.com/argbind/argbind/pkg/spec"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want Token
	}{
		{
			name: "long help",
			raw:  "--help",
			want: Token{Kind: KindHelpRequest, Raw: "--help"},
		},
		{
			name: "short help",
			raw:  "-?",
			want: Token{Kind: KindHelpRequest, Raw: "-?"},
		},
		{
			name: "long with equals",
			raw:  "--count=3",
			want: Token{Kind: KindLongOption, Raw: "--count=3", Name: "count", Value: "3", HasValue: true},
		},
		{
			name: "long with colon",
			raw:  "--count:3",
			want: Token{Kind: KindLongOption, Raw: "--count:3", Name: "count", Value: "3", HasValue: true},
		},
		{
			name: "long bare",
			raw:  "--upper",
			want: Token{Kind: KindLongOption, Raw: "--upper", Name: "upper"},
		},
		{
			name: "long empty value",
			raw:  "--sep=",
			want: Token{Kind: KindLongOption, Raw: "--sep=", Name: "sep", Value: "", HasValue: true},
		},
		{
			name: "value containing second separator",
			raw:  "--sep=a:b",
			want: Token{Kind: KindLongOption, Raw: "--sep=a:b", Name: "sep", Value: "a:b", HasValue: true},
		},
		{
			name: "short with equals",
			raw:  "-c=3",
			want: Token{Kind: KindShortOption, Raw: "-c=3", Name: "c", Value: "3", HasValue: true},
		},
		{
			name: "short with colon",
			raw:  "-c:3",
			want: Token{Kind: KindShortOption, Raw: "-c:3", Name: "c", Value: "3", HasValue: true},
		},
		{
			name: "short bare",
			raw:  "-u",
			want: Token{Kind: KindShortOption, Raw: "-u", Name: "u"},
		},
		{
			name: "plain word",
			raw:  "hello",
			want: Token{Kind: KindPositional, Raw: "hello"},
		},
		{
			name: "lone dash",
			raw:  "-",
			want: Token{Kind: KindPositional, Raw: "-"},
		},
		{
			name: "combined shorts are positional",
			raw:  "-lt",
			want: Token{Kind: KindPositional, Raw: "-lt"},
		},
		{
			name: "double dash alone is a nameless long option",
			raw:  "--",
			want: Token{Kind: KindLongOption, Raw: "--", Name: ""},
		},
		{
			name: "negative number is positional",
			raw:  "-12",
			want: Token{Kind: KindPositional, Raw: "-12"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, classify(tt.raw))
		})
	}
}

func TestScanOrder(t *testing.T) {
	tokens := Scan([]string{"a", "--count=1", "b"})
	require.Len(t, tokens, 3)
	assert.Equal(t, KindPositional, tokens[0].Kind)
	assert.Equal(t, KindLongOption, tokens[1].Kind)
	assert.Equal(t, KindPositional, tokens[2].Kind)
	assert.Equal(t, "a", tokens[0].Raw)
	assert.Equal(t, "b", tokens[2].Raw)
}

func TestHasHelpRequest(t *testing.T) {
	assert.False(t, HasHelpRequest(Scan([]string{"--count=1", "x"})))
	assert.True(t, HasHelpRequest(Scan([]string{"--count=1", "--help"})))
	assert.True(t, HasHelpRequest(Scan([]string{"-?"})))
	assert.True(t, HasHelpRequest(Scan([]string{"--nope=1", "--help"})))
}

func buildCommand(t *testing.T) *spec.Command {
	t.Helper()
	reg := convert.NewRegistry()
	cmd, err := spec.New("repeat", []spec.Param{
		{Name: "count", Type: convert.TagInt, Default: 1},
		{Name: "upper", Type: convert.TagBool, Default: false},
		{Name: "words", Type: convert.TagString, Capture: true},
	}, reg, spec.Options{})
	require.NoError(t, err)
	return cmd
}

func TestResolve(t *testing.T) {
	cmd := buildCommand(t)

	tests := []struct {
		name      string
		raw       string
		wantParam string
		wantCode  errors.ErrorCode
	}{
		{name: "long known", raw: "--count=3", wantParam: "count"},
		{name: "short known", raw: "-c=3", wantParam: "count"},
		{name: "short bool", raw: "-u", wantParam: "upper"},
		{name: "long unknown", raw: "--nope=1", wantCode: errors.ErrCodeUnknownOption},
		{name: "short unknown", raw: "-z", wantCode: errors.ErrCodeUnknownOption},
		{name: "bare double dash", raw: "--", wantCode: errors.ErrCodeUnknownOption},
		{name: "capture slot is not an option", raw: "--words=x", wantCode: errors.ErrCodeUnknownOption},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := Resolve(cmd, classify(tt.raw))
			if tt.wantCode != "" {
				require.Error(t, err)
				assert.Equal(t, tt.wantCode, errors.CodeOf(err))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantParam, p.Name)
		})
	}
}

func TestRawValue(t *testing.T) {
	cmd := buildCommand(t)
	count, _ := cmd.LongOption("count")
	upper, _ := cmd.LongOption("upper")

	v, err := RawValue(count, classify("--count=3"))
	require.NoError(t, err)
	assert.Equal(t, "3", v)

	v, err = RawValue(upper, classify("--upper"))
	require.NoError(t, err)
	assert.Equal(t, "true", v)

	v, err = RawValue(upper, classify("--upper=false"))
	require.NoError(t, err)
	assert.Equal(t, "false", v)

	_, err = RawValue(count, classify("--count"))
	require.Error(t, err)
	assert.Equal(t, errors.ErrCodeMissingSeparator, errors.CodeOf(err))
}
