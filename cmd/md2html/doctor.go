package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"
	"runtime"

	md2html "github.com/alnah/go-md2html"
	"github.com/alnah/go-md2html/internal/assets"
	"github.com/alnah/go-md2html/internal/engine"
	"github.com/alnah/go-md2html/internal/hints"
)

// Build tags that compile an optional engine out.
const (
	highlightBuildTag = "nohighlight"
	mathBuildTag      = "nomath"
)

// doctorSample exercises headings, math and code in the smoke render.
const doctorSample = "# Doctor\n\nInline $x^2$.\n\n```go\nfmt.Println(1)\n```\n"

// doctorResult holds all diagnostic information.
type doctorResult struct {
	Status   string       `json:"status"` // "ready", "warnings", "errors"
	Engines  []engineInfo `json:"engines"`
	Env      envInfo      `json:"environment"`
	System   systemInfo   `json:"system"`
	Warnings []string     `json:"warnings,omitempty"`
	Errors   []string     `json:"errors,omitempty"`
}

// engineInfo holds the resolution outcome of one optional engine.
type engineInfo struct {
	Name     string `json:"name"`
	State    string `json:"state"`
	Error    string `json:"error,omitempty"`
	BuildTag string `json:"build_tag"`
}

// envInfo holds environment detection results.
type envInfo struct {
	OS         string `json:"os"`
	Arch       string `json:"arch"`
	GoMaxProcs int    `json:"gomaxprocs"`
	Workers    int    `json:"workers"`
	CI         bool   `json:"ci"`
	Version    string `json:"version"`
}

// systemInfo holds system check results.
type systemInfo struct {
	TempWritable bool     `json:"temp_writable"`
	RenderOK     bool     `json:"render_ok"`
	Themes       []string `json:"themes"`
}

// runDoctorCmd executes the doctor command and returns an exit code.
// Exit codes: 0 = OK (including warnings), 1 = errors found.
func runDoctorCmd(ctx context.Context, args []string, env *Environment) int {
	jsonOutput := false
	for _, arg := range args {
		switch arg {
		case "--json":
			jsonOutput = true
		case "-h", "--help":
			printDoctorUsage(env.Stdout)
			return ExitSuccess
		}
	}

	result := runDoctor(ctx)

	if jsonOutput {
		enc := json.NewEncoder(env.Stdout)
		enc.SetIndent("", "  ")
		_ = enc.Encode(result)
	} else {
		printDoctorResult(env.Stdout, result)
	}

	if result.Status == "errors" {
		return ExitGeneral
	}
	return ExitSuccess
}

// runDoctor performs all diagnostic checks.
func runDoctor(ctx context.Context) *doctorResult {
	result := &doctorResult{
		Status: "ready",
		Env: envInfo{
			OS:         runtime.GOOS,
			Arch:       runtime.GOARCH,
			GoMaxProcs: runtime.GOMAXPROCS(0),
			Workers:    md2html.ResolveWorkers(0),
			Version:    Version,
		},
	}

	// Fresh providers so the probe reflects this binary, not cached state
	logger := slog.New(slog.DiscardHandler)
	highlighters := engine.NewProvider[engine.Highlighter](engine.HighlighterName, func() (engine.Highlighter, error) {
		return engine.NewHighlighter(engine.HighlightOptions{})
	}, logger)
	typesetters := engine.NewProvider[engine.Typesetter](engine.TypesetterName, engine.NewTypesetter, logger)

	checkEngine(result, highlighters, highlightBuildTag)
	checkEngine(result, typesetters, mathBuildTag)
	checkRender(ctx, result, highlighters, typesetters, logger)
	checkEnvironment(result)
	checkSystem(result)

	// Determine final status
	if len(result.Errors) > 0 {
		result.Status = "errors"
	} else if len(result.Warnings) > 0 {
		result.Status = "warnings"
	}

	return result
}

// checkEngine resolves an optional engine. A missing engine is a warning:
// rendering still succeeds with plain-text fallbacks.
func checkEngine[T any](result *doctorResult, p *engine.Provider[T], buildTag string) {
	_, _ = p.Acquire()

	info := engineInfo{
		Name:     p.Name(),
		State:    p.State().String(),
		BuildTag: buildTag,
	}
	if err := p.Err(); err != nil {
		info.Error = err.Error()
		result.Warnings = append(result.Warnings,
			fmt.Sprintf("%s unavailable: %v%s", p.Name(), err, hints.ForEngineUnavailable(p.Name(), buildTag)))
	}
	result.Engines = append(result.Engines, info)
}

// checkRender renders a small document through the full pipeline.
func checkRender(ctx context.Context, result *doctorResult, h md2html.Capability[md2html.Highlighter], t md2html.Capability[md2html.Typesetter], logger *slog.Logger) {
	renderer, err := md2html.NewRenderer(
		md2html.WithHighlighterProvider(h),
		md2html.WithTypesetterProvider(t),
		md2html.WithLogger(logger),
	)
	if err != nil {
		result.Errors = append(result.Errors, fmt.Sprintf("Renderer setup failed: %v", err))
		return
	}

	res, err := renderer.Render(ctx, doctorSample)
	if err != nil {
		result.Errors = append(result.Errors, fmt.Sprintf("Sample render failed: %v", err))
		return
	}
	if len(res.TOC) != 1 || res.TOC[0].ID != "doctor" {
		result.Errors = append(result.Errors, "Sample render produced an unexpected table of contents")
		return
	}
	result.System.RenderOK = true
}

// checkEnvironment detects CI environments.
func checkEnvironment(result *doctorResult) {
	ciVars := []string{"CI", "GITHUB_ACTIONS", "GITLAB_CI", "JENKINS_URL", "CIRCLECI"}
	for _, v := range ciVars {
		if os.Getenv(v) != "" {
			result.Env.CI = true
			break
		}
	}
}

// checkSystem verifies that atomic writes can create temp files and lists
// the built-in themes.
func checkSystem(result *doctorResult) {
	result.System.Themes = assets.StyleNames()

	tmpDir := os.TempDir()
	f, err := os.CreateTemp(tmpDir, "md2html-doctor-*")
	if err != nil {
		result.Errors = append(result.Errors,
			fmt.Sprintf("Temp directory not writable: %s", tmpDir))
		return
	}
	_ = f.Close()
	_ = os.Remove(f.Name())
	result.System.TempWritable = true
}

// printDoctorResult outputs human-readable diagnostic results.
func printDoctorResult(w io.Writer, r *doctorResult) {
	fmt.Fprintln(w, "md2html doctor")
	fmt.Fprintln(w)

	// Engines section
	fmt.Fprintln(w, "Engines")
	for _, e := range r.Engines {
		if e.State == engine.StateAvailable.String() {
			fmt.Fprintf(w, "  [OK] %s: available\n", e.Name)
		} else {
			fmt.Fprintf(w, "  [WARN] %s: %s (built with -tags %s?)\n", e.Name, e.State, e.BuildTag)
		}
	}
	fmt.Fprintln(w)

	// Environment section
	fmt.Fprintln(w, "Environment")
	fmt.Fprintf(w, "  [OK] Version: %s\n", r.Env.Version)
	fmt.Fprintf(w, "  [OK] Platform: %s/%s\n", r.Env.OS, r.Env.Arch)
	fmt.Fprintf(w, "  [OK] GOMAXPROCS: %d (default workers: %d)\n", r.Env.GoMaxProcs, r.Env.Workers)
	if r.Env.CI {
		fmt.Fprintln(w, "  [OK] CI: detected")
	}
	fmt.Fprintln(w)

	// System section
	fmt.Fprintln(w, "System")
	if r.System.RenderOK {
		fmt.Fprintln(w, "  [OK] Sample render: passed")
	} else {
		fmt.Fprintln(w, "  [ERROR] Sample render: failed")
	}
	if r.System.TempWritable {
		fmt.Fprintln(w, "  [OK] Temp directory: writable")
	} else {
		fmt.Fprintln(w, "  [ERROR] Temp directory: not writable")
	}
	fmt.Fprintf(w, "  [OK] Themes: %d built in\n", len(r.System.Themes))
	fmt.Fprintln(w)

	// Warnings
	if len(r.Warnings) > 0 {
		fmt.Fprintln(w, "Warnings:")
		for _, warn := range r.Warnings {
			fmt.Fprintf(w, "  [WARN] %s\n", warn)
		}
		fmt.Fprintln(w)
	}

	// Errors
	if len(r.Errors) > 0 {
		fmt.Fprintln(w, "Errors:")
		for _, err := range r.Errors {
			fmt.Fprintf(w, "  [ERROR] %s\n", err)
		}
		fmt.Fprintln(w)
	}

	// Final status
	switch r.Status {
	case "ready":
		fmt.Fprintln(w, "Status: Ready to render")
	case "warnings":
		fmt.Fprintln(w, "Status: Ready with warnings")
	case "errors":
		fmt.Fprintln(w, "Status: Not ready (see errors above)")
	}
}
