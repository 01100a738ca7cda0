// SPDX-LICENSE-IDENTIFIER: GPL-2.0-ONLY
// (C) 2024 Author: <kisfg@hotmail.com>

/*
Package ffi is the raw-pointer surface handed to a host across a language
boundary.

	Hash state never crosses the boundary. The host receives a Handle, an
	integer key into a Table, and passes memory as (pointer, length) pairs.
	Handle values are never reused, so a disposed or forged handle is reported
	as StatusInvalidHandle instead of corrupting memory.

	The table lock guards only the handle map. The state behind one handle
	is not synchronized: a host must not drive the same handle from two
	threads at once. Distinct handles are independent.
*/
package ffi

import (
	"sync"
	"sync/atomic"

	"cryptobase/cryptoProtect/digest"
	"cryptobase/defErr"
	"cryptobase/logging"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"
)

// Handle is opaque to the host. Zero is never issued.
type Handle uintptr

type entry struct {
	owner *Exports
	state digest.StreamHash
}

type Table struct {
	mu        sync.RWMutex
	next      Handle
	entries   map[Handle]entry
	exports   map[string]*Exports
	metrics   *tableMetrics
	logMisuse atomic.Bool
}

func NewTable() *Table {
	t := &Table{
		entries: make(map[Handle]entry),
		exports: make(map[string]*Exports),
		metrics: newTableMetrics(),
	}
	t.logMisuse.Store(true)
	return t
}

// Live returns the number of handles not yet disposed.
func (t *Table) Live() int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return len(t.entries)
}

func (t *Table) Gatherer() prometheus.Gatherer { return t.metrics.registry }

func (t *Table) SetLogMisuse(on bool) { t.logMisuse.Store(on) }

// Generic binds an export set to a Stream-backed algorithm.
func (t *Table) Generic(name string, create func() digest.StreamHash) *Exports {
	probe := create()
	defer probe.Dispose()
	return t.register(&Exports{name: name, table: t, create: create, size: probe.Size()})
}

// Fixed binds an export set to a fixed-context descriptor. Every call threads
// alg into the context, as the host-facing symbols do.
func (t *Table) Fixed(alg *digest.Algorithm) *Exports {
	return t.register(&Exports{
		name:   alg.Name() + "-fixed",
		table:  t,
		create: func() digest.StreamHash { return digest.NewContext(alg) },
		size:   alg.Size(),
		alg:    alg,
	})
}

// Lookup finds an export set by the name it was registered under.
func (t *Table) Lookup(name string) (*Exports, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	e, ok := t.exports[name]
	return e, ok
}

// a later registration under the same name replaces the earlier one.
func (t *Table) register(e *Exports) *Exports {
	t.mu.Lock()
	t.exports[e.name] = e
	t.mu.Unlock()
	return e
}

func (t *Table) insert(owner *Exports, state digest.StreamHash) Handle {
	t.mu.Lock()
	t.next++
	h := t.next
	t.entries[h] = entry{owner: owner, state: state}
	t.mu.Unlock()

	t.metrics.created.WithLabelValues(owner.name).Inc()
	t.metrics.live.WithLabelValues(owner.name).Inc()
	return h
}

func (t *Table) lookup(h Handle) (entry, error) {
	t.mu.RLock()
	en, ok := t.entries[h]
	t.mu.RUnlock()
	if !ok {
		return entry{}, defErr.ErrInvalidHandle
	}
	return en, nil
}

func (t *Table) remove(h Handle) {
	t.mu.Lock()
	en, ok := t.entries[h]
	delete(t.entries, h)
	t.mu.Unlock()
	if ok {
		t.metrics.live.WithLabelValues(en.owner.name).Dec()
	}
}

func (t *Table) reject(e *Exports, h Handle, err error) Status {
	st := statusOf(err)
	t.metrics.violations.WithLabelValues(e.name, st.String()).Inc()
	if t.logMisuse.Load() {
		logging.L().Warn("boundary contract violation",
			zap.String("algorithm", e.name),
			zap.Uintptr("handle", uintptr(h)),
			zap.Stringer("status", st),
			zap.Error(err),
		)
	}
	return st
}
