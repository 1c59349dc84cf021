//
// Tencent is pleased to support the open source community by making trpc-msgsplit-go available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// trpc-msgsplit-go is licensed under the Apache License Version 2.0.
//
//

package bunch

import (
	"unicode"

	"golang.org/x/text/unicode/rangetable"
)

// SplitFunc reports whether a message may be cut immediately after r.
// When an oversized section is split, the builder scans backward from
// the limit toward the start of the section and cuts after the first
// rune the predicate accepts. Implementations must be pure.
type SplitFunc func(r rune) bool

// defaultSplitTable holds the punctuation after which DefaultSplitFunc
// allows a cut.
var defaultSplitTable = rangetable.New(';', ',', '.', '?', '!', ')', ':', '-')

// DefaultSplitFunc allows a cut after common punctuation. It is the
// predicate used by EndSection and by Build when it closes a section
// left open.
func DefaultSplitFunc(r rune) bool {
	return unicode.Is(defaultSplitTable, r)
}
