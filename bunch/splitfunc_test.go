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
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefaultSplitFunc(t *testing.T) {
	for _, r := range []rune{';', ',', '.', '?', '!', ')', ':', '-'} {
		assert.True(t, DefaultSplitFunc(r), "expected split after %q", r)
	}
	for _, r := range []rune{'a', 'Z', '0', ' ', '\n', '\t', '(', '"', '中', '🚀'} {
		assert.False(t, DefaultSplitFunc(r), "unexpected split after %q", r)
	}
}
