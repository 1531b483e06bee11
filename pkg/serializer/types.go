/*
Copyright © 2025 The argbind Authors
SPDX-License-Identifier: Apache-2.0
*/
package serializer

import "github.com/argbind/argbind/pkg/spec"

// Description is the machine-readable form of a built command's interface,
// intended for doc generation and external tooling. Defaults are carried in
// their rendered textual form, which parses back through the same converter
// to an equal value.
type Description struct {
	Command string             `json:"command" yaml:"command"`
	Doc     string             `json:"doc,omitempty" yaml:"doc,omitempty"`
	Params  []ParamDescription `json:"params" yaml:"params"`
}

// ParamDescription describes one declared parameter.
type ParamDescription struct {
	Name    string `json:"name" yaml:"name"`
	Type    string `json:"type" yaml:"type"`
	Short   string `json:"short,omitempty" yaml:"short,omitempty"`
	Default string `json:"default,omitempty" yaml:"default,omitempty"`
	Help    string `json:"help,omitempty" yaml:"help,omitempty"`
	Capture bool   `json:"capture,omitempty" yaml:"capture,omitempty"`
}

// Describe flattens a built command into its interface description.
func Describe(cmd *spec.Command) Description {
	d := Description{
		Command: cmd.Name,
		Doc:     cmd.Doc,
	}
	for _, p := range cmd.Params() {
		pd := ParamDescription{
			Name:    p.Name,
			Type:    p.Converter().Label,
			Help:    p.Help,
			Capture: p.Capture,
		}
		if p.Short != 0 {
			pd.Short = string(p.Short)
		}
		if !p.Capture {
			pd.Default = p.Converter().Render(p.Default)
		}
		d.Params = append(d.Params, pd)
	}
	return d
}
