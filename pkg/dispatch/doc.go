// Package dispatch orchestrates one command-line invocation: it tokenizes
// argv, matches tokens against the command spec, converts values through the
// registered converters, binds the result over parameter defaults, invokes
// the target routine, and maps its outcome to a process exit code.
//
// A dispatch pass is fully synchronous and has exactly three terminal
// outcomes, always decided before the routine could run:
//
//   - help requested anywhere in argv: help is rendered to stdout and the
//     pass ends with exit code 0, regardless of any other token;
//   - a syntax error (unknown option, missing separator, unexpected
//     positional, conversion failure): the pass aborts with exit code 1 and
//     no partial binding;
//   - otherwise the routine is invoked with the bound argument set; its int
//     result is masked to 0..255, and a returned error is surfaced verbatim
//     with the routine's own nonzero code (or 2 when it set none). Exit
//     code 1 stays reserved for syntax errors.
//
// Usage:
//
//	d := dispatch.New(cmd, func(ctx context.Context, args *dispatch.Args) (int, error) {
//	    fmt.Println(strings.Repeat(args.String("word"), args.Int("count")))
//	    return 0, nil
//	})
//	os.Exit(d.Main(context.Background(), os.Args[1:]))
package dispatch
