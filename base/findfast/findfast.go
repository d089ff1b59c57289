// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package findfast implements an optimized bidirectional slice searching
// algorithm that can save a lot of time if you have some rough idea
// as to where an item might be, such as the last known index of a
// child node within its parent.
package findfast

// FindFunc returns index of item in slice that matches target
// according to given match function, using the given optional
// starting index to optimize the search by searching bidirectionally
// outward from given index. If no start index is given, it starts in
// the middle. Returns -1 if not found.
func FindFunc[T any](s []T, match func(e T) bool, startIndex ...int) int {
	n := len(s)
	if n == 0 {
		return -1
	}
	si := n / 2
	if len(startIndex) > 0 && startIndex[0] >= 0 {
		si = min(startIndex[0], n-1)
	}
	// alternate: si, si+1, si-1, si+2, si-2, ... until both ends are exhausted
	for d := 0; si+d < n || si-d >= 0; d++ {
		if up := si + d; up < n && match(s[up]) {
			return up
		}
		if dn := si - d; d > 0 && dn >= 0 && match(s[dn]) {
			return dn
		}
	}
	return -1
}
