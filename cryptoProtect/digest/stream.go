// SPDX-LICENSE-IDENTIFIER: GPL-2.0-ONLY
// (C) 2024 Author: <kisfg@hotmail.com>
package digest

import "hash"

// Stream drives any hash.Hash whose Sum leaves the state intact and whose
// Reset returns it to the initial state.
type Stream[T hash.Hash] struct {
	name      string
	h         T
	size      int
	blockSize int
	alive     bool
}

var _ StreamHash = (*Stream[hash.Hash])(nil)

func NewStream[T hash.Hash](name string, newHash func() T) *Stream[T] {
	h := newHash()
	return &Stream[T]{name: name, h: h, size: h.Size(), blockSize: h.BlockSize(), alive: true}
}

func (s *Stream[T]) Name() string   { return s.name }
func (s *Stream[T]) Size() int      { return s.size }
func (s *Stream[T]) BlockSize() int { return s.blockSize }

func (s *Stream[T]) Reset() error {
	if !s.alive {
		return disposedErr(s.name)
	}
	s.h.Reset()
	return nil
}

func (s *Stream[T]) Update(p []byte) error {
	if !s.alive {
		return disposedErr(s.name)
	}
	// hash.Hash.Write never returns an error.
	s.h.Write(p)
	return nil
}

// UpdateFinal rejects a wrongly sized out before consuming p, so a failed call
// leaves the running state untouched.
func (s *Stream[T]) UpdateFinal(p, out []byte) error {
	if !s.alive {
		return disposedErr(s.name)
	}
	if err := checkOutput(s.name, s.size, out); err != nil {
		return err
	}
	s.h.Write(p)
	s.finalize(out)
	return nil
}

func (s *Stream[T]) GetHash(out []byte) error {
	if !s.alive {
		return disposedErr(s.name)
	}
	if err := checkOutput(s.name, s.size, out); err != nil {
		return err
	}
	s.finalize(out)
	return nil
}

func (s *Stream[T]) Dispose() error {
	if !s.alive {
		return disposedErr(s.name)
	}
	var zero T
	s.h, s.alive = zero, false
	return nil
}

// len(out) == Size() here, so Sum appends in place without allocating.
func (s *Stream[T]) finalize(out []byte) {
	s.h.Sum(out[:0])
	s.h.Reset()
}
