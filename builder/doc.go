// Package builder grows undirected simple networks under three classical
// stochastic models, using the functional-options building blocks shared by
// every constructor in this package.
//
// The package offers the following key components:
//
//   - Orchestration:
//     – Constructor:  func(g, cfg) error, one topology step.
//     – BuildGraph:   resolves options, creates a core.Graph, runs constructors.
//     – GenerateBarabasiAlbert / GenerateKlemmEguiluz / GenerateWattsStrogatz:
//     the per-model call contract with an explicit *rand.Rand.
//   - Models:
//     – BarabasiAlbert(n, m):      preferential-attachment growth.
//     – KlemmEguiluz(n, m, pMu):   active-set growth with inverse-degree deactivation.
//     – WattsStrogatz(n, k, p):    ring lattice with per-edge rewiring.
//   - Deterministic building blocks:
//     – Complete(n), RingLattice(n, k).
//     – ActiveSet: the fixed-size ordered active node set of Klemm–Eguíluz.
//   - Configuration primitives (BuilderOption):
//     – WithRand / WithSeed:   injected randomness, no global stream.
//     – WithObserver:          synchronous step callback (frame capture, tracing).
//     – WithMaxRetries:        draw budget of every rejection-sampling loop.
//     – WithRewirePolicy:      Watts–Strogatz duplicate-target policy.
//
// Guarantees:
//
//   - All parameters are validated before the first mutation; on any error
//     the Generate* helpers and BuildGraph return a nil graph.
//   - Determinism: same parameters, options and seed ⇒ identical graphs,
//     with or without an observer attached.
//   - Bounded work: every retry loop is capped and surfaces
//     ErrGenerationStalled instead of spinning.
//   - Structured errors: sentinels wrapped with a method tag; branch with
//     errors.Is (ErrInvalidParameter covers every validation failure).
package builder
