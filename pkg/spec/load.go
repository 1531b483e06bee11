/*
Copyright © 2025 The argbind Authors
SPDX-License-Identifier: Apache-2.0
*/
package spec

import (
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/argbind/argbind/pkg/convert"
	"github.com/argbind/argbind/pkg/errors"
)

// commandDoc is the YAML form of a command description, typically produced
// by an external spec extractor.
type commandDoc struct {
	Command string     `yaml:"command"`
	Doc     string     `yaml:"doc,omitempty"`
	Usage   string     `yaml:"usage,omitempty"`
	Prefix  string     `yaml:"prefix,omitempty"`
	Params  []paramDoc `yaml:"params"`
}

type paramDoc struct {
	Name    string `yaml:"name"`
	Type    string `yaml:"type"`
	Default any    `yaml:"default,omitempty"`
	Short   string `yaml:"short,omitempty"`
	Help    string `yaml:"help,omitempty"`
	Capture bool   `yaml:"capture,omitempty"`
}

// Load builds a Command from a YAML document. The document carries the same
// setup-time configuration New accepts: command name, doc string, usage
// template, prefix, and the ordered parameter list with types, defaults,
// short aliases, and help text.
func Load(r io.Reader, reg *convert.Registry) (*Command, error) {
	var doc commandDoc
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidSpec, "decoding command document", err)
	}

	params := make([]Param, 0, len(doc.Params))
	short := make(map[string]string)
	for _, pd := range doc.Params {
		p := Param{
			Name:    pd.Name,
			Type:    pd.Type,
			Default: normalizeDefault(pd.Type, pd.Default),
			Help:    pd.Help,
			Capture: pd.Capture,
		}
		if pd.Short != "" {
			short[pd.Name] = pd.Short
		}
		params = append(params, p)
	}

	return New(doc.Command, params, reg, Options{
		Doc:    doc.Doc,
		Usage:  doc.Usage,
		Prefix: doc.Prefix,
		Short:  short,
	})
}

// LoadFile is a convenience wrapper around Load for on-disk documents.
func LoadFile(path string, reg *convert.Registry) (*Command, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidSpec,
			fmt.Sprintf("opening command document %s", path), err)
	}
	defer f.Close()
	return Load(f, reg)
}

// normalizeDefault reconciles YAML's scalar typing with the declared type
// tag. An unquoted "2" decodes as int even when the parameter is a float;
// widen it so the build-time round-trip check sees the declared type.
func normalizeDefault(typeTag string, v any) any {
	if typeTag != convert.TagFloat {
		return v
	}
	if i, ok := v.(int); ok {
		return float64(i)
	}
	return v
}
