//
// Tencent is pleased to support the open source community by making trpc-msgsplit-go available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// trpc-msgsplit-go is licensed under the Apache License Version 2.0.
//
//

// Package trim decomposes strings around their surrounding whitespace.
//
// Unlike strings.TrimSpace, the trimmed parts are not discarded: Split
// hands back all three pieces so callers can restore or inspect what
// surrounded the core text.
package trim

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// Split decomposes s into its leading whitespace, trimmed core and
// trailing whitespace. Whitespace is Unicode White_Space as reported by
// unicode.IsSpace. The three parts always concatenate back to s; for a
// blank or empty s the whole input is returned as trailing whitespace.
func Split(s string) (leading, core, trailing string) {
	i := strings.LastIndexFunc(s, notSpace)
	if i < 0 {
		return "", "", s
	}
	_, size := utf8.DecodeRuneInString(s[i:])
	body, trailing := s[:i+size], s[i+size:]
	// body holds at least one non-space rune, so the scan cannot fail.
	j := strings.IndexFunc(body, notSpace)
	return body[:j], body[j:], trailing
}

func notSpace(r rune) bool {
	return !unicode.IsSpace(r)
}
