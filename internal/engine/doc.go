// Package engine resolves the optional rendering engines used by the
// Markdown pipeline: a syntax highlighter and a math typesetter.
//
// Each engine sits behind a Provider, a lazily initialized cell that tries to
// load its engine at most once and then remembers the outcome for the life of
// the process:
//   - Unresolved: no caller has asked for the engine yet
//   - Available: the loader succeeded and the handle is cached
//   - Unavailable: the loader failed; the failure is logged once and never retried
//
// Engines can be compiled out with build tags (nohighlight, nomath) for
// targets where binary size matters, such as WASM builds. A compiled-out
// engine reports Unavailable, and the pipeline degrades to plain code blocks
// and literal $...$ math instead of failing.
package engine
