// Copyright (c) 2026 Keymaster Team
// Secret Santa - gift exchange page generator
// This source code is licensed under the MIT license found in the LICENSE file.

// Package testutil holds test doubles shared across packages.
package testutil

import (
	"errors"
	"sort"
)

// ErrInjected is returned by MemSink when a failure is scheduled.
var ErrInjected = errors.New("injected write failure")

// MemSink is an in-memory page sink that records write order. It satisfies
// publish.Sink without touching the filesystem.
type MemSink struct {
	Files map[string][]byte
	Order []string
	// FailAt makes the n-th write (1-based) fail when > 0.
	FailAt int
}

// NewMemSink returns an empty MemSink.
func NewMemSink() *MemSink { return &MemSink{Files: map[string][]byte{}} }

// WriteFile stores a copy of data under name.
func (m *MemSink) WriteFile(name string, data []byte) error {
	if m.FailAt > 0 && len(m.Order)+1 == m.FailAt {
		return ErrInjected
	}
	if m.Files == nil {
		m.Files = map[string][]byte{}
	}
	m.Files[name] = append([]byte(nil), data...)
	m.Order = append(m.Order, name)
	return nil
}

// Names returns the stored names in sorted order.
func (m *MemSink) Names() []string {
	out := make([]string, 0, len(m.Files))
	for n := range m.Files {
		out = append(out, n)
	}
	sort.Strings(out)
	return out
}
