// Package testutil provides testing utilities for quantize.
//
// This package is intended for use in tests and benchmarks only.
// It provides a seeded, thread-safe generator of signed samples in every
// numeric domain a quantizer supports.
//
//	rng := testutil.NewRNG(seed)
//	f := rng.Float64Range(-1e6, 1e6)
//	d := rng.Decimal(1_000_000, 3)  // up to 3 fractional digits
//	b := rng.BigInt(128)            // |b| < 2^128
package testutil
