package main

import (
	"context"
	"fmt"

	"github.com/alnah/go-md2html/internal/fileutil"
)

// run dispatches a command and returns the process exit code.
func run(ctx context.Context, args []string, env *Environment) int {
	if len(args) == 0 {
		printUsage(env.Stderr)
		return ExitUsage
	}

	cmd, rest := args[0], args[1:]
	switch cmd {
	case "render":
		return report(env, runRender(ctx, rest, env))
	case "css":
		return report(env, runCSS(rest, env))
	case "doctor":
		return runDoctorCmd(ctx, rest, env)
	case "version", "--version":
		fmt.Fprintf(env.Stdout, "md2html %s\n", Version)
		return ExitSuccess
	case "help", "-h", "--help":
		return runHelp(rest, env)
	}

	if looksLikeInput(cmd) {
		return report(env, runRender(ctx, args, env))
	}

	fmt.Fprintf(env.Stderr, "Unknown command: %s\n", cmd)
	printUsage(env.Stderr)
	return ExitUsage
}

// looksLikeInput reports whether a first argument should be rendered
// without an explicit "render" command.
func looksLikeInput(arg string) bool {
	return arg == stdinInput || fileutil.IsMarkdownFile(arg)
}

// report prints err with its hints and maps it to an exit code.
func report(env *Environment, err error) int {
	if err == nil {
		return ExitSuccess
	}
	fmt.Fprintf(env.Stderr, "error: %v\n", err)
	return exitCodeFor(err)
}
