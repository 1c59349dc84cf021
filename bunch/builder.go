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
	"strings"
	"unicode/utf8"

	"trpc.group/trpc-go/trpc-msgsplit-go/internal/encoding"
	"trpc.group/trpc-go/trpc-msgsplit-go/log"
)

// section buffers text between BeginSection and EndSection. Splitting
// decisions are deferred until the section closes.
type section struct {
	content strings.Builder
	size    int
}

// Builder accumulates text into messages that each stay within the
// configured limit. The zero value is ready to use with MessageLimit
// and DefaultSplitFunc; New applies options. Builders are not safe for
// concurrent use.
//
// Methods return the receiver so calls can be chained. A failure does
// not stop the builder: the first one is recorded and reported by Err
// and Build.
type Builder struct {
	done        []string        // closed messages
	current     strings.Builder // message being filled
	currentSize int             // scalar values in current, kept exact at all times
	section     *section        // non-nil while a section is open
	limit       int
	splitFunc   SplitFunc
	err         error
}

// New creates a Builder with options.
func New(opts ...Option) *Builder {
	b := &Builder{}
	for _, opt := range opts {
		opt(b)
	}
	b.ensure()
	b.current.Grow(b.limit)
	return b
}

// Add appends text, starting a new message when the current one would
// cross the limit. The prefix that still fits tops the current message
// up to exactly the limit and the rest opens the next one. While a
// section is open the text is buffered there instead and no splitting
// happens until the section closes.
//
// At most one split is performed per call: text longer than the limit
// plus the remaining room leaves an oversized message behind, which is
// logged. Callers with unbounded input should feed it through AddLines
// or a section instead.
func (b *Builder) Add(text string) *Builder {
	if text == "" {
		return b
	}
	b.ensure()
	n := encoding.RuneCount(text)
	if b.section != nil {
		b.section.content.WriteString(text)
		b.section.size += n
		return b
	}
	if b.currentSize+n <= b.limit {
		b.current.WriteString(text)
		b.currentSize += n
		return b
	}
	room := b.limit - b.currentSize
	if room < 0 {
		room = 0
	}
	head, tail := encoding.SplitAt(text, room)
	b.current.WriteString(head)
	b.closeCurrent()
	b.current.WriteString(tail)
	b.currentSize = n - room
	if b.currentSize > b.limit {
		log.Warnf("added text of %d characters overflows the %d limit even after one split", n, b.limit)
	}
	return b
}

// AddLines appends text line by line, wrapping each line in its own
// section so that no line is torn mid-line while whole lines are still
// free to be distributed across messages. Every line is terminated with
// a newline, including a final line that arrived without one. A "\r\n"
// terminator is normalized to "\n"; a bare trailing "\r" is kept.
func (b *Builder) AddLines(text string) *Builder {
	for len(text) > 0 {
		line := text
		if i := strings.IndexByte(text, '\n'); i >= 0 {
			line = strings.TrimSuffix(text[:i], "\r")
			text = text[i+1:]
		} else {
			text = ""
		}
		b.BeginSection().Add(line).Add("\n").EndSection()
	}
	return b
}

// BeginSection opens a protected section: subsequent Add calls are
// buffered until EndSection, which keeps the buffered text within a
// single message whenever it fits into one. Sections do not nest;
// calling BeginSection while a section is open has no effect.
func (b *Builder) BeginSection() *Builder {
	if b.section == nil {
		b.section = &section{}
	}
	return b
}

// InSection reports whether a section is currently open.
func (b *Builder) InSection() bool {
	return b.section != nil
}

// EndSection closes the open section using the builder's configured
// split predicate. It does nothing when no section is open.
func (b *Builder) EndSection() *Builder {
	return b.EndSectionFunc(nil)
}

// EndSectionFunc closes the open section and merges its content into
// the bunch, splitting with f. It does nothing when no section is open;
// a nil f falls back to the builder's configured predicate.
//
// A section that fits into the remaining room of the current message is
// appended to it. A larger one is promoted to a message of its own and
// the current message is left exactly as it was. Only a section over
// the limit by itself is ever split: the longest prefix within the
// limit ending right after a rune accepted by f is sealed as a message,
// repeatedly, until the remainder fits. When some remainder has no
// acceptable split point the builder records ErrNoSplitPoint, keeps the
// remaining text, and Err and Build report the failure.
func (b *Builder) EndSectionFunc(f SplitFunc) *Builder {
	if b.section == nil {
		return b
	}
	b.ensure()
	if f == nil {
		f = b.splitFunc
	}
	content, size := b.section.content.String(), b.section.size
	b.section = nil

	if b.currentSize+size <= b.limit {
		b.current.WriteString(content)
		b.currentSize += size
		return b
	}

	b.closeCurrent()
	for size > b.limit {
		cut, ok := b.splitIndex(content, f)
		if !ok {
			b.recordErr(ErrNoSplitPoint)
			break
		}
		b.done = append(b.done, content[:cut])
		size -= encoding.RuneCount(content[:cut])
		content = content[cut:]
	}
	b.current.WriteString(content)
	b.currentSize = size
	return b
}

// Err returns the first error recorded by the builder, if any.
func (b *Builder) Err() error {
	return b.err
}

// Build closes any open section with the configured split predicate and
// returns the finished bunch. The builder is reset to its initial empty
// state afterward. When a failure was recorded Build returns it and no
// bunch: accumulated content is discarded rather than delivered with an
// oversized message.
func (b *Builder) Build() (*Bunch, error) {
	b.EndSection()
	messages := append(b.done, b.current.String())
	err := b.err
	b.done = nil
	b.current.Reset()
	b.currentSize = 0
	b.err = nil
	if err != nil {
		return nil, err
	}
	return &Bunch{messages: messages}, nil
}

// closeCurrent seals the message being filled and starts an empty one.
func (b *Builder) closeCurrent() {
	b.done = append(b.done, b.current.String())
	b.current.Reset()
	b.currentSize = 0
}

// splitIndex returns the byte offset right after the last rune within
// the first limit scalar values of s that f accepts. ok is false when
// no rune in that window is accepted. The offset always lands on a rune
// boundary.
func (b *Builder) splitIndex(s string, f SplitFunc) (cut int, ok bool) {
	end := encoding.RuneIndex(s, b.limit)
	for end > 0 {
		r, size := utf8.DecodeLastRuneInString(s[:end])
		if f(r) {
			return end, true
		}
		end -= size
	}
	return 0, false
}

// recordErr keeps the first error.
func (b *Builder) recordErr(err error) {
	if b.err == nil {
		b.err = err
	}
}

// ensure applies defaults so that the zero value is usable.
func (b *Builder) ensure() {
	if b.limit <= 0 {
		b.limit = MessageLimit
	}
	if b.splitFunc == nil {
		b.splitFunc = DefaultSplitFunc
	}
}
