//
// Tencent is pleased to support the open source community by making trpc-msgsplit-go available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// trpc-msgsplit-go is licensed under the Apache License Version 2.0.
//
//

// Package bunch packs a stream of text into an ordered bunch of
// messages that each respect a per-message character limit.
//
// Text is fed to a Builder through Add and friends; the Builder fills
// the current message and starts a new one whenever the limit would be
// crossed. Callers mark spans that must not be torn across a message
// boundary with BeginSection and EndSection: a section that does not
// fit into the remaining room of the current message is promoted to a
// fresh message of its own, and only a section longer than the limit
// itself is ever split, at the latest position its split predicate
// allows. All sizes are counted in Unicode scalar values, never bytes,
// and no message is ever cut inside a multi-byte character.
package bunch

import (
	"iter"
	"slices"
)

// MessageLimit is the default maximum number of Unicode scalar values
// per message. It matches the Discord message character limit.
const MessageLimit = 2000

// Bunch is an ordered collection of messages produced by a Builder.
// It is immutable once built.
type Bunch struct {
	messages []string
}

// Messages returns the messages in order. The returned slice is the
// bunch's backing storage and must not be modified by callers that
// still iterate the bunch.
func (b *Bunch) Messages() []string {
	return b.messages
}

// Len returns the number of messages in the bunch.
func (b *Bunch) Len() int {
	return len(b.messages)
}

// All returns an iterator over the messages in order.
func (b *Bunch) All() iter.Seq[string] {
	return slices.Values(b.messages)
}
