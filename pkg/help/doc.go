// Package help renders usage text from a command spec.
//
// Rendering is a pure function of the command spec: the usage template's
// {command}, {optPos}, {options}, and {doc} placeholders are substituted,
// the options table is column-aligned across all rows, and the command's
// indentation prefix is applied to every line. Because defaults are rendered
// through the same converters that parse argv, a default shown in help
// parses back to the value the routine would actually receive.
package help
