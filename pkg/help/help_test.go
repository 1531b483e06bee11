/*
Copyright © 2025 The argbind Authors
SPDX-License-Identifier: Apache-2.0
*/
package help

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/argbind/argbind/pkg/convert"
	"github.com/argbind/argbind/pkg/spec"
)

func buildCommand(t *testing.T, opts spec.Options) *spec.Command {
	t.Helper()
	reg := convert.NewRegistry()
	cmd, err := spec.New("repeat", []spec.Param{
		{Name: "count", Type: convert.TagInt, Default: 1, Help: "how many times"},
		{Name: "sep", Type: convert.TagString, Default: " ", Help: "output separator"},
		{Name: "upper", Type: convert.TagBool, Default: false, Help: "uppercase output"},
		{Name: "words", Type: convert.TagString, Capture: true},
	}, reg, opts)
	require.NoError(t, err)
	return cmd
}

func TestRenderDefaultTemplate(t *testing.T) {
	cmd := buildCommand(t, spec.Options{Doc: "repeat words on stdout"})
	out := Render(cmd)

	assert.Contains(t, out, "repeat [optional-params] [<words>]")
	assert.Contains(t, out, "repeat words on stdout")
	assert.Contains(t, out, "--count")
	assert.Contains(t, out, "-c")
	assert.Contains(t, out, "how many times")
	assert.Contains(t, out, "uppercase output")
	// capture slot has no options row
	assert.NotContains(t, out, "--words")
	assert.True(t, strings.HasSuffix(out, "\n"))
}

func TestRenderNoCapture(t *testing.T) {
	reg := convert.NewRegistry()
	cmd, err := spec.New("tool", []spec.Param{
		{Name: "count", Type: convert.TagInt, Default: 1},
	}, reg, spec.Options{})
	require.NoError(t, err)

	out := Render(cmd)
	assert.Contains(t, out, "tool [optional-params]")
	assert.NotContains(t, out, "[<")
}

func TestRenderCustomTemplate(t *testing.T) {
	cmd := buildCommand(t, spec.Options{
		Doc:   "the doc",
		Usage: "{command}: {doc}\nargs: {optPos}\n{options}",
	})
	out := Render(cmd)

	assert.True(t, strings.HasPrefix(out, "repeat: the doc\n"))
	assert.Contains(t, out, "args: [optional-params] [<words>]")
	assert.Contains(t, out, "--sep")
}

func TestRenderPrefix(t *testing.T) {
	cmd := buildCommand(t, spec.Options{Doc: "docs", Prefix: "  "})
	out := Render(cmd)

	for _, line := range strings.Split(strings.TrimRight(out, "\n"), "\n") {
		if line == "" {
			continue
		}
		assert.True(t, strings.HasPrefix(line, "  "), "line %q not prefixed", line)
	}
}

func TestColumnsAligned(t *testing.T) {
	cmd := buildCommand(t, spec.Options{})
	out := Render(cmd)

	// every option row must place the short alias in the same column
	rows := make(map[string]string)
	for _, line := range strings.Split(out, "\n") {
		for _, p := range cmd.OptionParams() {
			if strings.Contains(line, "--"+p.Name) {
				rows[p.Name] = line
			}
		}
	}
	require.Len(t, rows, len(cmd.OptionParams()))

	col := -1
	for _, p := range cmd.OptionParams() {
		idx := strings.Index(rows[p.Name], " -"+string(p.Short))
		require.GreaterOrEqual(t, idx, 0)
		if col < 0 {
			col = idx
			continue
		}
		assert.Equal(t, col, idx, "short alias column differs for %s", p.Name)
	}
}

func TestRenderedDefaultsParseBack(t *testing.T) {
	cmd := buildCommand(t, spec.Options{})

	for _, p := range cmd.OptionParams() {
		conv := p.Converter()
		back, err := conv.Parse(conv.Render(p.Default))
		require.NoError(t, err, "param %s", p.Name)
		assert.Equal(t, p.Default, back, "param %s", p.Name)
	}
}
