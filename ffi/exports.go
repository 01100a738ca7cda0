// SPDX-LICENSE-IDENTIFIER: GPL-2.0-ONLY
// (C) 2024 Author: <kisfg@hotmail.com>
package ffi

import (
	"fmt"
	"unsafe"

	"cryptobase/cryptoProtect/digest"
	"cryptobase/defErr"
)

/*
Exports is the six-call surface of one algorithm.

	Handles remember the export set that created them. Every call made
	through another algorithm's set is rejected before the state is touched:
	StatusAlgorithmMismatch between two fixed-context sets, which share one
	context type, and StatusWrongAlgorithm otherwise.
*/
type Exports struct {
	name   string
	table  *Table
	create func() digest.StreamHash
	size   int
	alg    *digest.Algorithm // nil unless fixed-context
}

func (e *Exports) Name() string { return e.name }

// Size is the exact output length update_final and get_hash accept.
func (e *Exports) Size() int { return e.size }

// New never fails. Running out of memory aborts the process.
func (e *Exports) New() Handle {
	return e.table.insert(e, e.create())
}

func (e *Exports) Dispose(h Handle) Status {
	en, err := e.state(h)
	if err != nil {
		return e.table.reject(e, h, err)
	}
	e.table.remove(h)
	if err = en.Dispose(); err != nil {
		return e.table.reject(e, h, err)
	}
	return StatusOK
}

func (e *Exports) Reset(h Handle) Status {
	s, err := e.state(h)
	if err == nil {
		if ctx, ok := s.(*digest.Context); ok && e.alg != nil {
			err = ctx.ResetWith(e.alg)
		} else {
			err = s.Reset()
		}
	}
	return e.done(h, err)
}

func (e *Exports) Update(h Handle, ptr unsafe.Pointer, size uintptr) Status {
	s, err := e.state(h)
	if err == nil {
		var in []byte
		if in, err = view(ptr, size); err == nil {
			err = s.Update(in)
		}
	}
	return e.done(h, err)
}

func (e *Exports) UpdateFinal(h Handle, ptr unsafe.Pointer, size uintptr, ptrOut unsafe.Pointer, sizeOut uintptr) Status {
	s, err := e.state(h)
	if err != nil {
		return e.done(h, err)
	}
	in, err := view(ptr, size)
	if err != nil {
		return e.done(h, err)
	}
	out, err := view(ptrOut, sizeOut)
	if err != nil {
		return e.done(h, err)
	}
	if ctx, ok := s.(*digest.Context); ok && e.alg != nil {
		err = ctx.UpdateFinalWith(e.alg, in, out)
	} else {
		err = s.UpdateFinal(in, out)
	}
	return e.done(h, err)
}

func (e *Exports) GetHash(h Handle, ptrOut unsafe.Pointer, sizeOut uintptr) Status {
	s, err := e.state(h)
	if err != nil {
		return e.done(h, err)
	}
	out, err := view(ptrOut, sizeOut)
	if err != nil {
		return e.done(h, err)
	}
	if ctx, ok := s.(*digest.Context); ok && e.alg != nil {
		err = ctx.GetHashWith(e.alg, out)
	} else {
		err = s.GetHash(out)
	}
	return e.done(h, err)
}

func (e *Exports) state(h Handle) (digest.StreamHash, error) {
	en, err := e.table.lookup(h)
	if err != nil {
		return nil, err
	}
	if en.owner != e {
		cause := defErr.ErrWrongAlgorithm
		if en.owner.alg != nil && e.alg != nil {
			cause = defErr.ErrAlgorithmMismatch
		}
		return nil, fmt.Errorf("handle of %s passed to %s: %w", en.owner.name, e.name, cause)
	}
	return en.state, nil
}

func (e *Exports) done(h Handle, err error) Status {
	if err != nil {
		return e.table.reject(e, h, err)
	}
	return StatusOK
}

// view turns a host (pointer, length) pair into a slice without copying.
// The host guarantees size bytes are addressable behind ptr.
func view(ptr unsafe.Pointer, size uintptr) ([]byte, error) {
	if size == 0 {
		return nil, nil
	}
	if ptr == nil {
		return nil, defErr.ErrNullPointer
	}
	return unsafe.Slice((*byte)(ptr), size), nil
}

// UpdateBytes and the two calls below are for Go callers holding slices.

func (e *Exports) UpdateBytes(h Handle, in []byte) Status {
	return e.Update(h, unsafe.Pointer(unsafe.SliceData(in)), uintptr(len(in)))
}

func (e *Exports) UpdateFinalBytes(h Handle, in, out []byte) Status {
	return e.UpdateFinal(h, unsafe.Pointer(unsafe.SliceData(in)), uintptr(len(in)),
		unsafe.Pointer(unsafe.SliceData(out)), uintptr(len(out)))
}

func (e *Exports) GetHashBytes(h Handle, out []byte) Status {
	return e.GetHash(h, unsafe.Pointer(unsafe.SliceData(out)), uintptr(len(out)))
}
