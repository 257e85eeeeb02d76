// Package pkg provides the core libraries for plotforge chart generation.
//
// # Overview
//
// Plotforge renders charts requested over the Model Context Protocol. The
// pkg directory is organized into five areas:
//
//  1. [plot] - Figure builders (graph, scatter, line, 3D, classification, histogram, heatmap)
//  2. [render] - Output finalizers (inline PNG, save-and-display)
//  3. [cache] - Render memoization backends (file, redis, null)
//  4. [errors] - Structured error codes and input validators
//  5. [buildinfo] - Build-time version information
//
// # Architecture
//
// The typical data flow through plotforge:
//
//	MCP tool call (typed arguments)
//	         ↓
//	    [errors] validators (fail fast)
//	         ↓
//	    [plot] builder (go-chart / graphviz / gg figure → PNG bytes)
//	         ↓
//	    [render] finalizer
//	         ↓
//	    inline image content or saved file
//
// # Quick Start
//
// Build a scatter plot and save it:
//
//	import (
//	    "context"
//	    "github.com/plotforge/plotforge/pkg/plot"
//	    "github.com/plotforge/plotforge/pkg/render"
//	)
//
//	png, _ := plot.Scatter(plot.ScatterOptions{
//	    X: []float64{1, 2, 3},
//	    Y: []float64{4, 5, 6},
//	})
//	saver := render.FileSaver{Display: true}
//	out, _ := saver.Finalize(context.Background(), "scatter_plot", png)
//
// # Main Packages
//
// [plot] - One builder per chart kind, each taking an options struct with
// defaults applied for unset fields. All builders return PNG bytes; every
// figure is an explicit per-call value, so builders are safe to run
// concurrently.
//
// [render] - The Finalizer interface with two implementations: Encoder keeps
// the PNG in memory for inline image content, FileSaver writes a timestamped
// file to the temp directory and optionally opens the platform viewer.
//
// [cache] - Byte cache keyed by tool name plus argument hash, used to skip
// rendering on repeated identical calls. FileCache for local disk, RedisCache
// for shared deployments, NullCache to disable.
//
// [errors] - Error type carrying a stable code, a user message, and a wrapped
// cause, plus the per-chart input validators.
//
// # Testing
//
// Run tests:
//
//	go test ./pkg/...       # All tests
//	go test ./pkg/plot/...  # Specific package
//	go test -run Example    # Examples only
//
// [plot]: https://pkg.go.dev/github.com/plotforge/plotforge/pkg/plot
// [render]: https://pkg.go.dev/github.com/plotforge/plotforge/pkg/render
// [cache]: https://pkg.go.dev/github.com/plotforge/plotforge/pkg/cache
// [errors]: https://pkg.go.dev/github.com/plotforge/plotforge/pkg/errors
// [buildinfo]: https://pkg.go.dev/github.com/plotforge/plotforge/pkg/buildinfo
package pkg
