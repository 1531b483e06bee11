// Package convert implements the extensible type registry that backs
// command-line value conversion and default rendering.
//
// A Registry maps a stable type tag (e.g. "int", "bool") to a Converter: a
// fallible parse function from raw token to typed value, a short type-display
// label, and a render function used to show default values in help output.
// Parsing and rendering are inverse operations for every built-in type, so a
// default rendered into help text parses back to an equal value.
//
// The registry fails closed: looking up an unregistered tag yields an
// UNSUPPORTED_TYPE error at command construction time, never during argv
// processing.
//
// Composite types require explicit registration:
//
//	reg := convert.NewRegistry()
//	reg.Register("[]string", convert.Converter{
//	    Label: "list",
//	    Parse: func(raw string) (any, error) {
//	        return strings.Split(raw, ","), nil
//	    },
//	    Render: func(v any) string {
//	        return strings.Join(v.([]string), ",")
//	    },
//	})
package convert
