//
// Tencent is pleased to support the open source community by making trpc-msgsplit-go available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// trpc-msgsplit-go is licensed under the Apache License Version 2.0.
//
//

// Package encoding provides UTF-8 safe helpers for rune-level string
// arithmetic. Sizes are counted in Unicode scalar values, never bytes,
// and every returned offset is a valid slice boundary.
package encoding

import "unicode/utf8"

// RuneCount returns the number of Unicode scalar values in s.
func RuneCount(s string) int {
	return utf8.RuneCountInString(s)
}

// RuneIndex returns the byte offset where the n-th scalar value of s
// starts. It returns len(s) when s holds at most n scalar values, and
// 0 when n is negative.
func RuneIndex(s string, n int) int {
	if n <= 0 {
		return 0
	}
	for i := range s {
		if n == 0 {
			return i
		}
		n--
	}
	return len(s)
}

// SplitAt splits s after its first n scalar values. The cut never lands
// inside a multi-byte sequence, so head+tail == s always holds.
func SplitAt(s string, n int) (head, tail string) {
	i := RuneIndex(s, n)
	return s[:i], s[i:]
}
