// # refdoc
//
// `refdoc` keeps a library's reference documentation in lockstep with its
// code. It renders two Markdown files:
//
//   - `api.md`: the API reference for a Go package tree. The root package's
//     doc comment becomes the introduction, every sub-package becomes a
//     module section, exported types become classes with their constructor
//     and methods, and exported functions are listed with their signatures.
//   - `cli.md`: the CLI reference for refdoc's own command tree, with one
//     section per command, aliases folded into their canonical name, and one
//     line per option.
//
// Symbols re-exported from another package (type aliases, function
// variables) are documented only where they are defined.
//
// ## Usage
//
//	refdoc [flags] [package-root]
//
// Examples:
//
//   - Regenerate the references for the current module into ./docs:
//
//     refdoc --project icukit .
//
//   - Fail CI when the committed references are stale:
//
//     refdoc --check --project icukit .
//
//   - Preview the API reference in the terminal:
//
//     refdoc preview api
//
// ## Flags
//
//   - `--check`: compare instead of writing. Each stale file is reported as
//     `Missing: <path>` or `Out of date: <path>` followed by the first
//     section that differs, and the command exits non-zero.
//   - `-o, --output DIR`: directory holding api.md and cli.md (default
//     `docs`).
//   - `--project NAME`: name used in headings (default: the program name).
//   - `--lib-version V`: version printed under the API title.
//   - `--config FILE`: explicit config file.
//   - `--include-internal`: document internal and main packages too.
//   - `-v, --verbose`: debug logging on stderr.
//
// ## Configuration
//
// Settings are read from `refdoc.toml` in the working directory or
// `$XDG_CONFIG_HOME/refdoc/`, then from `REFDOC_*` environment variables,
// then from flags:
//
//	project = "icukit"
//	version = "1.4.0"
//	output = "docs"
//	root = "."
//	exclude = ["formatters"]
//	trailing = ["errors"]
//	include_internal = false
//
// `exclude` drops modules from the API reference and `trailing` moves
// modules to its end in the given order.
//
// ## Shell Completion
//
//	refdoc completion bash        # bash
//	refdoc completion zsh         # zsh
//	refdoc completion fish | source
//	refdoc completion powershell | Out-String | Invoke-Expression
//
// ## Per-command Pages
//
// `refdoc gen-docs DIR` writes cobra's one-page-per-command Markdown for
// sites that prefer that layout.
package main
