//
// Tencent is pleased to support the open source community by making trpc-msgsplit-go available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// trpc-msgsplit-go is licensed under the Apache License Version 2.0.
//
//

package trim

import (
	"strings"
	"testing"
	"unicode"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSplit(t *testing.T) {
	tests := []struct {
		name     string
		in       string
		leading  string
		core     string
		trailing string
	}{
		{
			name:     "no whitespace",
			in:       "hestetest",
			leading:  "",
			core:     "hestetest",
			trailing: "",
		},
		{
			name:     "both sides with interior whitespace kept",
			in:       "   hest  \n\n asdg \t\n",
			leading:  "   ",
			core:     "hest  \n\n asdg",
			trailing: " \t\n",
		},
		{
			name:     "single newline",
			in:       "\n",
			leading:  "",
			core:     "",
			trailing: "\n",
		},
		{
			name:     "single space",
			in:       " ",
			leading:  "",
			core:     "",
			trailing: " ",
		},
		{
			name:     "empty",
			in:       "",
			leading:  "",
			core:     "",
			trailing: "",
		},
		{
			name:     "leading only",
			in:       "\t\t x",
			leading:  "\t\t ",
			core:     "x",
			trailing: "",
		},
		{
			name:     "trailing only",
			in:       "x \r\n",
			leading:  "",
			core:     "x",
			trailing: " \r\n",
		},
		{
			name:     "unicode whitespace",
			in:       "　中文 \t",
			leading:  "　",
			core:     "中文",
			trailing: " \t",
		},
		{
			name:     "multibyte core boundary",
			in:       " 🚀 ",
			leading:  " ",
			core:     "🚀",
			trailing: " ",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			leading, core, trailing := Split(tt.in)
			assert.Equal(t, tt.leading, leading)
			assert.Equal(t, tt.core, core)
			assert.Equal(t, tt.trailing, trailing)
		})
	}
}

// The three parts must concatenate back to the input, the outer parts
// must be pure whitespace, and the core must not start or end with
// whitespace.
func TestSplitReassembles(t *testing.T) {
	inputs := []string{
		"",
		" ",
		"\n\t\r",
		"plain",
		"  padded  ",
		"\nline one\nline two\n",
		"　　wide　　",
		"mixed 中文 and emoji 🚀\t\n",
	}
	for _, in := range inputs {
		leading, core, trailing := Split(in)
		require.Equal(t, in, leading+core+trailing)
		assert.Equal(t, "", strings.TrimFunc(leading, unicode.IsSpace))
		assert.Equal(t, "", strings.TrimFunc(trailing, unicode.IsSpace))
		assert.Equal(t, strings.TrimSpace(in), core)
	}
}

func BenchmarkSplit(b *testing.B) {
	in := "   " + strings.Repeat("word ", 200) + "\t\n\n"
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		Split(in)
	}
}
