// Package nodes provides the built-in DSP node kinds: frequency banding,
// band reduction, envelope following, adaptive quantile normalization,
// hysteresis gating, harmonic presence scoring, linear normalization, and
// simple math primitives.
//
// Stateful kinds (envelope follower, adaptive normalizer, hysteresis gate,
// harmonic presence) keep their state on the node handle, isolated per node
// id; duplicating a network re-initializes state rather than sharing it.
// Time constants derive from the frame clock, so live and offline runs of
// the same audio behave identically regardless of frame rate.
package nodes
