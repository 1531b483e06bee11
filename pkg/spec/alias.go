/*
Copyright © 2025 The argbind Authors
SPDX-License-Identifier: Apache-2.0
*/
package spec

import (
	"fmt"

	"github.com/argbind/argbind/pkg/errors"
)

// helpShort is the short form of the built-in help request.
const helpShort = '?'

// assignShortAliases resolves the short alias for every non-capture
// parameter. Explicit aliases claim their character first; the remaining
// parameters are processed in declaration order and take the first free
// candidate. Candidates are the letters and digits of the parameter name in
// order, then the lowercase alphabet. A parameter for which every candidate
// is taken simply has no short form. '?' is reserved for help.
func (c *Command) assignShortAliases() error {
	used := map[byte]bool{helpShort: true}

	for _, p := range c.params {
		if p.Capture || p.Short == 0 {
			continue
		}
		if p.Short == helpShort {
			return errors.NewWithContext(errors.ErrCodeInvalidSpec,
				fmt.Sprintf("short alias '?' is reserved for help (parameter %q)", p.Name),
				map[string]any{"param": p.Name})
		}
		if used[p.Short] {
			return errors.NewWithContext(errors.ErrCodeInvalidSpec,
				fmt.Sprintf("short alias %q assigned to more than one parameter", string(p.Short)),
				map[string]any{"param": p.Name, "alias": string(p.Short)})
		}
		used[p.Short] = true
		c.byShort[p.Short] = p
	}

	for _, p := range c.params {
		if p.Capture || p.Short != 0 {
			continue
		}
		if alias, ok := pickAlias(p.Name, used); ok {
			p.Short = alias
			used[alias] = true
			c.byShort[alias] = p
		}
	}

	return nil
}

func pickAlias(name string, used map[byte]bool) (byte, bool) {
	for i := 0; i < len(name); i++ {
		ch := name[i]
		if isAliasChar(ch) && !used[ch] {
			return ch, true
		}
	}
	for ch := byte('a'); ch <= 'z'; ch++ {
		if !used[ch] {
			return ch, true
		}
	}
	return 0, false
}

func isAliasChar(ch byte) bool {
	switch {
	case ch >= 'a' && ch <= 'z':
		return true
	case ch >= 'A' && ch <= 'Z':
		return true
	case ch >= '0' && ch <= '9':
		return true
	default:
		return false
	}
}
