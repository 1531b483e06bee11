// Package spec defines the declarative command description that drives
// option matching, dispatch, and help rendering.
//
// A Command is built once at process setup, either programmatically with New
// or from a YAML document with Load, and is immutable afterward. Each
// parameter declares a name, a type tag resolvable in a convert.Registry, a
// typed default, optional help text, an optional single-character short
// alias, and whether it is the positional-capture slot (at most one per
// command).
//
// Construction fails closed: an unsupported type tag, a parameter named
// "help", a duplicate or reserved short alias, a second capture slot, or a
// default that does not round-trip through its converter are all build-time
// errors. Help text or short aliases keyed to undeclared parameter names are
// dropped with a logged warning.
//
// Short aliases not supplied explicitly are auto-assigned deterministically:
// explicit aliases claim their character first, then each remaining
// parameter, in declaration order, takes the first free letter or digit of
// its name, falling back to the first free lowercase letter. '?' is reserved
// for the built-in help request.
package spec
