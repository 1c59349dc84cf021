//
// Tencent is pleased to support the open source community by making trpc-msgsplit-go available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// trpc-msgsplit-go is licensed under the Apache License Version 2.0.
//
//

package bunch

// Option represents a functional option for configuring a Builder.
type Option func(*Builder)

// WithLimit sets the maximum size of each message in Unicode scalar
// values. Values below one are replaced with MessageLimit.
func WithLimit(limit int) Option {
	return func(b *Builder) {
		b.limit = limit
	}
}

// WithSplitFunc sets the split predicate used by EndSection and Build.
// A nil predicate is replaced with DefaultSplitFunc.
func WithSplitFunc(f SplitFunc) Option {
	return func(b *Builder) {
		b.splitFunc = f
	}
}
