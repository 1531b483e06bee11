/*
Copyright © 2025 The argbind Authors
SPDX-License-Identifier: Apache-2.0
*/

// Command repeat is a small demonstration tool driven entirely by the
// argbind library: it repeats its positional words on stdout, with the
// option set, help text, and exit codes all inferred from the declarative
// command description below.
package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/argbind/argbind/pkg/convert"
	"github.com/argbind/argbind/pkg/dispatch"
	"github.com/argbind/argbind/pkg/logging"
	"github.com/argbind/argbind/pkg/serializer"
	"github.com/argbind/argbind/pkg/spec"
)

const name = "repeat"

// overridden during build with ldflags
var version = "dev"

func main() {
	logging.SetDefaultStructuredLogger(name, version)

	cmd, err := buildCommand()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	d := dispatch.New(cmd, run(cmd))
	os.Exit(d.Main(context.Background(), os.Args[1:]))
}

func buildCommand() (*spec.Command, error) {
	reg := convert.NewRegistry()
	return spec.New(name, []spec.Param{
		{Name: "count", Type: convert.TagInt, Default: 1},
		{Name: "sep", Type: convert.TagString, Default: " "},
		{Name: "upper", Type: convert.TagBool, Default: false},
		{Name: "describe", Type: convert.TagString, Default: ""},
		{Name: "words", Type: convert.TagString, Capture: true},
	}, reg, spec.Options{
		Doc: "Repeat the given words on stdout.",
		Help: map[string]string{
			"count":    "number of repetitions",
			"sep":      "separator between repetitions",
			"upper":    "uppercase the output",
			"describe": "print the interface description (json, yaml, or table) and exit",
			"words":    "words to repeat",
		},
	})
}

func run(cmd *spec.Command) dispatch.Routine {
	return func(ctx context.Context, args *dispatch.Args) (int, error) {
		if format := args.String("describe"); format != "" {
			w := serializer.NewWriter(serializer.Format(format), os.Stdout)
			return 0, w.Write(serializer.Describe(cmd))
		}

		words := args.PositionalStrings()
		if len(words) == 0 {
			return 0, fmt.Errorf("nothing to repeat: supply at least one word")
		}

		line := strings.Join(words, " ")
		if args.Bool("upper") {
			line = strings.ToUpper(line)
		}

		parts := make([]string, 0, args.Int("count"))
		for i := 0; i < args.Int("count"); i++ {
			parts = append(parts, line)
		}
		fmt.Println(strings.Join(parts, args.String("sep")))
		return 0, nil
	}
}
