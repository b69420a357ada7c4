package main

import (
	"fmt"
	"io"
)

// printUsage prints the main usage message.
func printUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: md2html <command> [flags] [args]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Commands:")
	fmt.Fprintln(w, "  render     Render markdown files to HTML")
	fmt.Fprintln(w, "  css        Print highlight or theme stylesheets")
	fmt.Fprintln(w, "  doctor     Check optional engines and system setup")
	fmt.Fprintln(w, "  version    Show version information")
	fmt.Fprintln(w, "  help       Show help for a command")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "'md2html <file.md>' is shorthand for 'md2html render <file.md>'.")
	fmt.Fprintln(w, "Run 'md2html help <command>' for details on a specific command.")
}

// printRenderUsage prints usage for the render command.
func printRenderUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: md2html render <input>... [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Render markdown files to HTML fragments, JSON, or standalone documents.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Arguments:")
	fmt.Fprintln(w, "  input    Markdown files or directories, or - for stdin")
	fmt.Fprintln(w, "           (optional if config has input.defaultDir)")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Input/Output:")
	fmt.Fprintln(w, "  -o, --output <path>         Output directory (output file for stdin)")
	fmt.Fprintln(w, "  -f, --format <s>            Output format: html, json, document")
	fmt.Fprintln(w, "  -c, --config <name>         Config file name or path")
	fmt.Fprintln(w, "  -w, --workers <n>           Parallel workers (0 = auto)")
	fmt.Fprintln(w, "      --rebase-paths          Rewrite relative links for the output directory")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Markdown:")
	fmt.Fprintln(w, "      --front-matter          Parse a leading YAML front matter block")
	fmt.Fprintln(w, "      --no-math               Disable math typesetting")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Highlighting:")
	fmt.Fprintln(w, "      --highlight-style <s>   Chroma style (see 'md2html css --list')")
	fmt.Fprintln(w, "      --highlight-classes     Emit CSS classes instead of inline styles")
	fmt.Fprintln(w, "      --tab-width <n>         Tab width in code blocks")
	fmt.Fprintln(w, "      --no-highlight          Disable syntax highlighting")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Table of Contents:")
	fmt.Fprintln(w, "      --toc-depth <n>         Max heading depth (1-6)")
	fmt.Fprintln(w, "      --toc-title <s>         TOC heading text")
	fmt.Fprintln(w, "      --no-toc                Omit the TOC block from documents")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Document:")
	fmt.Fprintln(w, "      --title <s>             Title (\"\" = front matter title or first H1)")
	fmt.Fprintln(w, "      --theme <name>          Theme name, or \"none\"")
	fmt.Fprintln(w, "      --css <path>            Extra CSS file appended after the theme")
	fmt.Fprintln(w, "      --asset-path <dir>      Custom theme directory")
	fmt.Fprintln(w, "      --lang <tag>            Page language (\"\" = front matter lang)")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Output Control:")
	fmt.Fprintln(w, "  -q, --quiet                 Only show errors")
	fmt.Fprintln(w, "  -v, --verbose               Show timing and engine fallbacks")
}

// printCSSUsage prints usage for the css command.
func printCSSUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: md2html css [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Print the stylesheet for --highlight-classes output, or a document theme.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Flags:")
	fmt.Fprintln(w, "      --highlight-style <s>   Chroma style (default: github)")
	fmt.Fprintln(w, "      --theme <name>          Print a document theme instead")
	fmt.Fprintln(w, "      --asset-path <dir>      Custom theme directory")
	fmt.Fprintln(w, "      --list                  List highlight styles and themes")
}

// printDoctorUsage prints usage for the doctor command.
func printDoctorUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: md2html doctor [--json]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Check optional engines, run a sample render, and report system setup.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Flags:")
	fmt.Fprintln(w, "      --json                  Output machine-readable JSON")
}

// runHelp prints help for a specific command.
func runHelp(args []string, env *Environment) int {
	if len(args) == 0 {
		printUsage(env.Stdout)
		return ExitSuccess
	}

	switch args[0] {
	case "render":
		printRenderUsage(env.Stdout)
	case "css":
		printCSSUsage(env.Stdout)
	case "doctor":
		printDoctorUsage(env.Stdout)
	case "version":
		fmt.Fprintln(env.Stdout, "Usage: md2html version")
		fmt.Fprintln(env.Stdout)
		fmt.Fprintln(env.Stdout, "Show version information.")
	case "help":
		fmt.Fprintln(env.Stdout, "Usage: md2html help [command]")
		fmt.Fprintln(env.Stdout)
		fmt.Fprintln(env.Stdout, "Show help for a command.")
	default:
		fmt.Fprintf(env.Stderr, "Unknown command: %s\n", args[0])
		printUsage(env.Stderr)
		return ExitUsage
	}
	return ExitSuccess
}
