/*
Copyright © 2025 The argbind Authors
SPDX-License-Identifier: Apache-2.0
*/
package serializer

import (
	"bytes"
	"encoding/json"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/argbind/argbind/pkg/convert"
	"github.com/argbind/argbind/pkg/spec"
)

func buildCommand(t *testing.T) *spec.Command {
	t.Helper()
	reg := convert.NewRegistry()
	cmd, err := spec.New("repeat", []spec.Param{
		{Name: "count", Type: convert.TagInt, Default: 1, Help: "how many times"},
		{Name: "upper", Type: convert.TagBool, Default: false},
		{Name: "words", Type: convert.TagString, Capture: true},
	}, reg, spec.Options{Doc: "repeat words"})
	require.NoError(t, err)
	return cmd
}

func TestDescribe(t *testing.T) {
	d := Describe(buildCommand(t))

	assert.Equal(t, "repeat", d.Command)
	assert.Equal(t, "repeat words", d.Doc)
	require.Len(t, d.Params, 3)

	assert.Equal(t, ParamDescription{
		Name:    "count",
		Type:    "int",
		Short:   "c",
		Default: "1",
		Help:    "how many times",
	}, d.Params[0])

	assert.True(t, d.Params[2].Capture)
	assert.Empty(t, d.Params[2].Default)
}

func TestFormatIsUnknown(t *testing.T) {
	assert.False(t, FormatJSON.IsUnknown())
	assert.False(t, FormatYAML.IsUnknown())
	assert.False(t, FormatTable.IsUnknown())
	assert.True(t, Format("xml").IsUnknown())
	assert.True(t, Format("").IsUnknown())
}

func TestWriteJSON(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(FormatJSON, &buf)
	require.NoError(t, w.Write(Describe(buildCommand(t))))

	var back Description
	require.NoError(t, json.Unmarshal(buf.Bytes(), &back))
	assert.Equal(t, "repeat", back.Command)
	assert.Len(t, back.Params, 3)
}

func TestWriteYAML(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(FormatYAML, &buf)
	require.NoError(t, w.Write(Describe(buildCommand(t))))

	var back Description
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &back))
	assert.Equal(t, "repeat", back.Command)
	assert.Equal(t, "c", back.Params[0].Short)
}

func TestWriteTable(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(FormatTable, &buf)
	require.NoError(t, w.Write(Describe(buildCommand(t))))

	out := buf.String()
	assert.Contains(t, out, "COMMAND")
	assert.Contains(t, out, "repeat")
	assert.Contains(t, out, "count")
	assert.Contains(t, out, "PARAM")
}

func TestUnknownFormatDefaultsToJSON(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(Format("xml"), &buf)
	require.NoError(t, w.Write(Describe(buildCommand(t))))
	assert.True(t, strings.HasPrefix(strings.TrimSpace(buf.String()), "{"))
}

func TestFileWriterFallsBackToStdout(t *testing.T) {
	w := NewFileWriterOrStdout(FormatJSON, "")
	assert.NoError(t, w.Close())
}

func TestFileWriter(t *testing.T) {
	path := t.TempDir() + "/desc.yaml"
	w := NewFileWriterOrStdout(FormatYAML, path)
	require.NoError(t, w.Write(Describe(buildCommand(t))))
	require.NoError(t, w.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "command: repeat")
}
