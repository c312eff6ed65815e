// Package immargs is a declarative command-line argument parsing engine
// following POSIX/GNU argument syntax conventions.
//
// A Spec describes the options, positional arguments, conflict groups and
// sub-commands a program accepts. Parsing an argument vector against a
// validated Spec yields a Result with typed accessors, or a *ParseError
// describing exactly what was wrong with the input.
//
// Supported syntax:
//
//   - Short options (-f) and long options (--force), in any order before
//     the first positional argument.
//   - Values attached with '=' (-f=100, --foo=100), attached directly to a
//     short option (-f100), or supplied as the next argument (-f 100).
//   - Combined short options: -abc is equivalent to -a -b -c.
//   - Repeatable (variadic) options, accumulating values or a count.
//   - A standalone "-" is a positional argument; a standalone "--" ends
//     option parsing.
//
// Positional arguments are required, optional or variadic (at most one
// variadic per Spec). The last positional argument may instead select a
// sub-command by name or alias; everything after it is handed back raw so
// the host can parse it recursively against the sub-command's own Spec.
package immargs
