// Copyright 2018 GRAIL, Inc.  All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package util

// Hamming returns the number of positions at which a and b differ. It
// panics if len(a) != len(b). Levenshtein also takes equal-length inputs,
// but accepts downstream context so that an indel can be accounted for.
func Hamming(a, b string) int {
	if len(a) != len(b) {
		panic("util: Hamming requires equal-length strings")
	}
	var d int
	for i := 0; i < len(a); i++ {
		if a[i] != b[i] {
			d++
		}
	}
	return d
}

// HammingBytes is Hamming for byte slices, avoiding a string conversion on
// the hot path used by the contaminant matcher (catalog.Match).
func HammingBytes(a, b []byte) int {
	if len(a) != len(b) {
		panic("util: HammingBytes requires equal-length slices")
	}
	var d int
	for i := range a {
		if a[i] != b[i] {
			d++
		}
	}
	return d
}

// HammingWithin reports whether a and b are within maxDist Hamming
// distance of each other, stopping early once the budget is exceeded
// (spec §4.6, §4.7: adapter and contaminant matching tolerate a small
// number of mismatches).
func HammingWithin(a, b []byte, maxDist int) bool {
	if len(a) != len(b) {
		return false
	}
	d := 0
	for i := range a {
		if a[i] != b[i] {
			d++
			if d > maxDist {
				return false
			}
		}
	}
	return true
}
