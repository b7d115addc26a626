// Package graph implements the audio-reactive dataflow model: per-parameter
// networks of typed processing nodes, a static node-kind registry, and a
// memoizing single-pass evaluator that turns one spectral frame into one
// parameter value.
//
// Node kinds are interned: a network stores only a kind's string name plus
// per-instance input values, and the compute behavior is resolved from a
// Registry at evaluation (or load) time. Each network carries an input
// sentinel exposing the current frame's fields and an output sentinel
// forwarding the bound parameter's value.
package graph
