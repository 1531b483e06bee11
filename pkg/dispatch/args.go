/*
Copyright © 2025 The argbind Authors
SPDX-License-Identifier: Apache-2.0
*/
package dispatch

// Args is the bound argument set handed to the target routine: every
// declared parameter resolved to its default or its converted argv value,
// plus the ordered positional list for the capture slot.
type Args struct {
	values      map[string]any
	positionals []any
}

// Get returns the bound value for a parameter name.
func (a *Args) Get(name string) (any, bool) {
	v, ok := a.values[name]
	return v, ok
}

// Int returns the bound int value for name, or the zero value when the name
// is unbound or of another type.
func (a *Args) Int(name string) int {
	v, _ := a.values[name].(int)
	return v
}

// Float returns the bound float64 value for name.
func (a *Args) Float(name string) float64 {
	v, _ := a.values[name].(float64)
	return v
}

// String returns the bound string value for name.
func (a *Args) String(name string) string {
	v, _ := a.values[name].(string)
	return v
}

// Bool returns the bound bool value for name.
func (a *Args) Bool(name string) bool {
	v, _ := a.values[name].(bool)
	return v
}

// Positionals returns the capture slot's converted values in argv order.
// It is empty when the command declares no capture slot or argv carried no
// positional tokens.
func (a *Args) Positionals() []any {
	return a.positionals
}

// PositionalStrings returns the positional list as strings, the common case
// of a string-typed capture slot. Non-string elements are skipped.
func (a *Args) PositionalStrings() []string {
	out := make([]string, 0, len(a.positionals))
	for _, v := range a.positionals {
		if s, ok := v.(string); ok {
			out = append(out, s)
		}
	}
	return out
}
