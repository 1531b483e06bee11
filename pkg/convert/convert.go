/*
Copyright © 2025 The argbind Authors
SPDX-License-Identifier: Apache-2.0
*/
package convert

import (
	"fmt"
	"sort"
	"strconv"

	"github.com/argbind/argbind/pkg/errors"
)

// Built-in type tags registered by NewRegistry.
const (
	TagInt    = "int"
	TagFloat  = "float"
	TagString = "string"
	TagBool   = "bool"
)

// ParseFunc converts a raw command-line token to a typed value.
type ParseFunc func(raw string) (any, error)

// RenderFunc produces the textual form of a typed value, used when showing
// defaults in help output. For every registered type the rendering must be
// accepted by the matching ParseFunc and yield an equal value.
type RenderFunc func(v any) string

// Converter bundles the parsing and help-rendering behavior for one type tag.
type Converter struct {
	// Label is the short type-display string shown in help output.
	Label  string
	Parse  ParseFunc
	Render RenderFunc
}

// Registry maps type tags to converters. A registry is mutable only during
// setup: commands resolve their converters when they are built, so
// registrations made afterward have no effect on existing commands.
type Registry struct {
	converters map[string]Converter
}

// NewRegistry returns a registry pre-populated with converters for the
// scalar primitives: int, float, string, and bool. Composite types are not
// auto-derived; register them explicitly with a parse function that defines
// its own decomposition policy.
func NewRegistry() *Registry {
	r := &Registry{converters: make(map[string]Converter)}

	r.Register(TagInt, Converter{
		Label: "int",
		Parse: func(raw string) (any, error) {
			v, err := strconv.Atoi(raw)
			if err != nil {
				return nil, fmt.Errorf("not an integer: %q", raw)
			}
			return v, nil
		},
		Render: func(v any) string {
			if i, ok := v.(int); ok {
				return strconv.Itoa(i)
			}
			return fmt.Sprintf("%v", v)
		},
	})

	r.Register(TagFloat, Converter{
		Label: "float",
		Parse: func(raw string) (any, error) {
			v, err := strconv.ParseFloat(raw, 64)
			if err != nil {
				return nil, fmt.Errorf("not a number: %q", raw)
			}
			return v, nil
		},
		Render: func(v any) string {
			if f, ok := v.(float64); ok {
				return strconv.FormatFloat(f, 'g', -1, 64)
			}
			return fmt.Sprintf("%v", v)
		},
	})

	r.Register(TagString, Converter{
		Label: "string",
		Parse: func(raw string) (any, error) {
			return raw, nil
		},
		Render: func(v any) string {
			if s, ok := v.(string); ok {
				return s
			}
			return fmt.Sprintf("%v", v)
		},
	})

	r.Register(TagBool, Converter{
		Label: "bool",
		Parse: func(raw string) (any, error) {
			v, err := strconv.ParseBool(raw)
			if err != nil {
				return nil, fmt.Errorf("not a boolean: %q", raw)
			}
			return v, nil
		},
		Render: func(v any) string {
			if b, ok := v.(bool); ok {
				return strconv.FormatBool(b)
			}
			return fmt.Sprintf("%v", v)
		},
	})

	return r
}

// Register installs or overrides the converter for a type tag. Registration
// must happen before the owning command spec is built; already-built specs
// keep the converters they resolved.
func (r *Registry) Register(tag string, c Converter) {
	r.converters[tag] = c
}

// Lookup returns the converter for a type tag, or an UNSUPPORTED_TYPE error
// when none is registered. The error is a setup-time condition: command
// construction fails closed and argv processing never sees it.
func (r *Registry) Lookup(tag string) (Converter, error) {
	c, ok := r.converters[tag]
	if !ok {
		return Converter{}, errors.NewWithContext(
			errors.ErrCodeUnsupportedType,
			fmt.Sprintf("no converter registered for type %q", tag),
			map[string]any{"type": tag, "registered": r.Tags()},
		)
	}
	return c, nil
}

// Tags returns the registered type tags in sorted order.
func (r *Registry) Tags() []string {
	tags := make([]string, 0, len(r.converters))
	for tag := range r.converters {
		tags = append(tags, tag)
	}
	sort.Strings(tags)
	return tags
}
