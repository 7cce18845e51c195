// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package multiply computes the product of two operands.
package multiply

// Multiply returns a × b with IEEE-754 semantics. Overflow yields ±Inf and
// 0 × ±Inf yields NaN; neither is an error.
func Multiply(a, b float64) float64 {
	return a * b
}
