// Package conv provides checked and saturating numeric conversions.
//
// Go leaves out-of-range float-to-integer conversions implementation-defined and
// silently wraps integer narrowing. The helpers here make both explicit:
//
//   - IntTo rejects values that do not fit the target integer type
//   - Float64ToInt64Saturating clamps to the int64 range and maps NaN to 0
//
// For conversions that are provably safe by domain constraints (e.g. int to int64),
// use direct type casts instead.
package conv
