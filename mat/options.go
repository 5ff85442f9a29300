// SPDX-License-Identifier: MIT

// Package mat: functional configuration for construction-time policy.
// This file defines:
//   - Option / options (functional options with internal state),
//   - WithRand constructor with strong validation (panic on nonsensical
//     values — programmer error, not user input),
//   - gatherOptions helper (internal) that applies defaults.
//
// Design goals:
//   - Deterministic behavior on demand: inject a seeded source via
//     WithRand; the default source is time-seeded.
//   - Options fields are unexported; public entry points consume ...Option.
package mat

import (
	"math/rand"
	"time"
)

// Internal panic messages (no magic strings).
const (
	panicRandNil = "mat: WithRand: rng must be non-nil"
	panicConvNil = "mat: Convert: conv must be non-nil"
)

// Option mutates internal options. Safe to apply repeatedly (idempotent).
type Option func(*options)

// options stores the effective configuration after applying Option setters.
type options struct {
	rng *rand.Rand // random source for FillRand / NewDenseRand
}

// WithRand injects the random source used by random fills.
// Pass a seeded source for reproducible matrices. Panics on nil.
func WithRand(rng *rand.Rand) Option {
	if rng == nil {
		panic(panicRandNil)
	}

	return func(o *options) { o.rng = rng }
}

// gatherOptions applies opts over the defaults.
func gatherOptions(opts ...Option) options {
	o := options{rng: defaultRand()}
	for _, opt := range opts {
		opt(&o)
	}

	return o
}

// defaultRand returns a time-seeded source, matching the usual
// "fresh randomness unless told otherwise" expectation.
func defaultRand() *rand.Rand {
	return rand.New(rand.NewSource(time.Now().UnixNano()))
}
