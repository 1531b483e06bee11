// Package match tokenizes raw argv and resolves tokens against a command
// spec.
//
// Classification happens in priority order: --help and -? are help requests
// regardless of position; tokens beginning with -- are long options with an
// optional '=' or ':' separated value; a single '-' followed by exactly one
// character is a short option with the same separator rule; everything else
// is positional. Combined short flags ("-lt") are not a recognized form and
// fall through to positional.
//
// Resolution against the command spec is deliberately a separate step from lexical
// classification, so a help request short-circuits even an argv whose other
// tokens would be syntax errors.
package match
