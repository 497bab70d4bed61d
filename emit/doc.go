// Package emit renders element lists and writes them to files.
//
// Three drivers share one contract and produce byte-identical output:
//
//   - [Write] and [WriteSplit] render and write on the calling goroutine.
//   - [Pool] renders on a fixed number of workers and writes the two halves
//     of a split render concurrently.
//   - [RenderAsync], [WriteAsync] and friends return a [Future] that is
//     awaited by the caller.
//
// Rendering itself never blocks. Only file writes honor the context. A
// split write fails if either file fails, and reports both failures when
// both files fail.
//
//	err := emit.WriteSplit(ctx, list, "main.tex", "structure.tex",
//	    tex.NewInput("structure", tex.Meta))
package emit
