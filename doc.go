// Package netgen grows synthetic complex networks under three classical
// stochastic models and measures the result.
//
// 🚀 What is netgen?
//
//	An in-memory toolkit that brings together:
//		• Core primitive: an undirected simple Graph with deterministic ordering
//		• Sampling: weighted draws without replacement and bounded rejection sampling
//		• Models: Barabási–Albert, Klemm–Eguíluz, Watts–Strogatz
//		• Instrumentation: step observers, frame recording, zap tracing
//		• Analysis: degree moments, clustering, path lengths, components
//
// ✨ Guarantees
//
//   - Reproducible – every random choice comes from an injected *rand.Rand
//   - Bounded – rejection loops are capped and fail with ErrGenerationStalled
//   - All-or-nothing – invalid parameters never yield a partial graph
//   - Observable – observers see every mutation without changing the outcome
//
// Packages:
//
//	core/       - Graph, NodeID, Edge
//	sample/     - weighted samplers
//	builder/    - BuildGraph, Complete, RingLattice and the three models
//	observe/    - Step, Observer, Recorder, Logger
//	bfs/        - breadth-first search
//	netstat/    - summary statistics
//	layout/     - fixed circular layout for rendering
//	cmd/netgen/ - command line
//
// Quick start:
//
//	g, err := builder.GenerateBarabasiAlbert(1000, 3, rand.New(rand.NewPCG(1, 2)))
//	if err != nil {
//	    // errors.Is(err, builder.ErrInvalidParameter) ...
//	}
//	st, _ := netstat.Summarize(ctx, g)
package netgen
