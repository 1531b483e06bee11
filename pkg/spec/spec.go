/*
Copyright © 2025 The argbind Authors
SPDX-License-Identifier: Apache-2.0
*/
package spec

import (
	"fmt"
	"log/slog"
	"reflect"

	"github.com/argbind/argbind/pkg/convert"
	"github.com/argbind/argbind/pkg/errors"
)

// HelpName is reserved for the built-in help request and may not be used as
// a parameter name. Its short form '?' is likewise never assignable.
const HelpName = "help"

// Param declares one parameter of a command: its name, type tag, typed
// default, optional single-character short alias, help text, and whether it
// is the positional-capture slot.
type Param struct {
	Name    string
	Type    string
	Default any
	// Short is the explicit short alias. Zero means auto-assign.
	Short   byte
	Help    string
	Capture bool

	conv convert.Converter
}

// Converter returns the converter resolved for this parameter when its
// command was built.
func (p *Param) Converter() convert.Converter {
	return p.conv
}

// IsBool reports whether the parameter is a boolean toggle, i.e. legal to
// supply without a separator and value.
func (p *Param) IsBool() bool {
	return p.Type == convert.TagBool
}

// Options carries the setup-time configuration recognized when building a
// command.
type Options struct {
	// Doc is the overall command description.
	Doc string
	// Help maps parameter names to help text. Entries keyed to a name not
	// declared by the command produce a build-time warning and are dropped.
	Help map[string]string
	// Short maps parameter names to single-character alias overrides.
	Short map[string]string
	// Usage is the usage template. Placeholders: {command}, {optPos},
	// {options}, {doc}. Empty selects the default template.
	Usage string
	// Prefix is the indentation applied to every rendered help line.
	Prefix string
}

// Command is the immutable, declarative description of one command: its
// ordered parameter list, documentation, usage template, and the converters
// resolved for each parameter. Build it once at setup time with New or Load;
// it is never mutated afterward.
type Command struct {
	Name   string
	Doc    string
	Usage  string
	Prefix string

	params  []*Param
	byName  map[string]*Param
	byLong  map[string]*Param
	byShort map[byte]*Param
	capture *Param
}

// New builds a Command from an ordered parameter list, resolving each
// parameter's converter against the registry. It fails closed on an
// unsupported type tag, a reserved or duplicate parameter name, more than
// one capture slot, a malformed or colliding short alias, or a default value
// that does not round-trip through its converter.
func New(name string, params []Param, reg *convert.Registry, opts Options) (*Command, error) {
	if name == "" {
		return nil, errors.New(errors.ErrCodeInvalidSpec, "command name must not be empty")
	}

	cmd := &Command{
		Name:    name,
		Doc:     opts.Doc,
		Usage:   opts.Usage,
		Prefix:  opts.Prefix,
		byName:  make(map[string]*Param),
		byLong:  make(map[string]*Param),
		byShort: make(map[byte]*Param),
	}

	for i := range params {
		p := params[i]
		if err := cmd.addParam(&p, reg); err != nil {
			return nil, err
		}
	}

	cmd.applyHelp(opts.Help)
	if err := cmd.applyShortOverrides(opts.Short); err != nil {
		return nil, err
	}
	if err := cmd.assignShortAliases(); err != nil {
		return nil, err
	}

	return cmd, nil
}

func (c *Command) addParam(p *Param, reg *convert.Registry) error {
	if p.Name == "" {
		return errors.New(errors.ErrCodeInvalidSpec, "parameter name must not be empty")
	}
	if p.Name == HelpName {
		return errors.NewWithContext(errors.ErrCodeInvalidSpec,
			fmt.Sprintf("parameter name %q is reserved", HelpName),
			map[string]any{"param": p.Name})
	}
	if _, dup := c.byName[p.Name]; dup {
		return errors.NewWithContext(errors.ErrCodeInvalidSpec,
			fmt.Sprintf("duplicate parameter name %q", p.Name),
			map[string]any{"param": p.Name})
	}

	conv, err := reg.Lookup(p.Type)
	if err != nil {
		return err
	}
	p.conv = conv

	if p.Capture {
		if c.capture != nil {
			return errors.NewWithContext(errors.ErrCodeInvalidSpec,
				"at most one positional-capture parameter is allowed",
				map[string]any{"first": c.capture.Name, "second": p.Name})
		}
		c.capture = p
		c.params = append(c.params, p)
		c.byName[p.Name] = p
		// capture slots are never entered into the option lookup maps
		return nil
	}

	if err := checkDefault(p); err != nil {
		return err
	}

	c.params = append(c.params, p)
	c.byName[p.Name] = p
	c.byLong[p.Name] = p
	return nil
}

// checkDefault enforces the round-trip guarantee at build time: the rendered
// default must parse back to an equal value.
func checkDefault(p *Param) error {
	if p.Default == nil {
		return errors.NewWithContext(errors.ErrCodeInvalidSpec,
			fmt.Sprintf("parameter %q has no default value", p.Name),
			map[string]any{"param": p.Name, "type": p.Type})
	}
	rendered := p.conv.Render(p.Default)
	back, err := p.conv.Parse(rendered)
	if err != nil || !reflect.DeepEqual(back, p.Default) {
		return errors.WrapWithContext(errors.ErrCodeInvalidSpec,
			fmt.Sprintf("default for parameter %q does not round-trip through type %q", p.Name, p.Type),
			err,
			map[string]any{"param": p.Name, "type": p.Type, "rendered": rendered})
	}
	return nil
}

func (c *Command) applyHelp(help map[string]string) {
	for name, text := range help {
		p, ok := c.byName[name]
		if !ok {
			slog.Warn("help text keyed to undeclared parameter, ignoring",
				"command", c.Name, "param", name)
			continue
		}
		p.Help = text
	}
}

func (c *Command) applyShortOverrides(short map[string]string) error {
	for name, alias := range short {
		p, ok := c.byLong[name]
		if !ok {
			slog.Warn("short alias keyed to undeclared parameter, ignoring",
				"command", c.Name, "param", name)
			continue
		}
		if len(alias) != 1 {
			return errors.NewWithContext(errors.ErrCodeInvalidSpec,
				fmt.Sprintf("short alias for %q must be a single character, got %q", name, alias),
				map[string]any{"param": name, "alias": alias})
		}
		p.Short = alias[0]
	}
	return nil
}

// LongOption resolves a long option name to its parameter.
func (c *Command) LongOption(name string) (*Param, bool) {
	p, ok := c.byLong[name]
	return p, ok
}

// ShortOption resolves a short alias to its parameter.
func (c *Command) ShortOption(alias byte) (*Param, bool) {
	p, ok := c.byShort[alias]
	return p, ok
}

// Capture returns the positional-capture parameter, or nil when the command
// declares none.
func (c *Command) Capture() *Param {
	return c.capture
}

// Params returns the declared parameters in declaration order, capture slot
// included.
func (c *Command) Params() []*Param {
	return c.params
}

// OptionParams returns the non-capture parameters in declaration order.
func (c *Command) OptionParams() []*Param {
	out := make([]*Param, 0, len(c.params))
	for _, p := range c.params {
		if !p.Capture {
			out = append(out, p)
		}
	}
	return out
}
