/*
Copyright © 2025 The argbind Authors
SPDX-License-Identifier: Apache-2.0
*/
package help

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/argbind/argbind/pkg/spec"
)

// DefaultTemplate is the usage template used when a command does not supply
// its own. Recognized placeholders: {command}, {optPos}, {options}, {doc}.
const DefaultTemplate = `Usage:
  {command} {optPos}

{doc}

Options:
{options}`

// Render produces the full help text for a command. It is a pure function
// of the command spec: argv never participates. Every line of the result is
// prefixed with the command's configured indentation.
func Render(cmd *spec.Command) string {
	tmpl := cmd.Usage
	if tmpl == "" {
		tmpl = DefaultTemplate
	}

	text := strings.NewReplacer(
		"{command}", cmd.Name,
		"{optPos}", optPos(cmd),
		"{options}", optionsTable(cmd),
		"{doc}", cmd.Doc,
	).Replace(tmpl)

	return applyPrefix(text, cmd.Prefix)
}

// optPos renders the argument summary phrase of the usage line.
func optPos(cmd *spec.Command) string {
	if capture := cmd.Capture(); capture != nil {
		return fmt.Sprintf("[optional-params] [<%s>]", capture.Name)
	}
	return "[optional-params]"
}

// optionsTable renders one column-aligned row per non-capture parameter:
// long form, short form if assigned, type-display string, rendered default,
// and help text.
func optionsTable(cmd *spec.Command) string {
	var buf strings.Builder
	tw := tabwriter.NewWriter(&buf, 0, 0, 2, ' ', 0)

	for _, p := range cmd.OptionParams() {
		short := ""
		if p.Short != 0 {
			short = "-" + string(p.Short)
		}
		conv := p.Converter()
		fmt.Fprintf(tw, "  --%s\t%s\t%s\t%s\t%s\n",
			p.Name, short, conv.Label, conv.Render(p.Default), p.Help)
	}
	tw.Flush()

	return strings.TrimRight(buf.String(), "\n")
}

// applyPrefix indents every line of text, leaving blank lines blank.
func applyPrefix(text, prefix string) string {
	text = strings.TrimRight(text, "\n")
	if prefix == "" {
		return text + "\n"
	}
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		if line != "" {
			lines[i] = prefix + line
		}
	}
	return strings.Join(lines, "\n") + "\n"
}
