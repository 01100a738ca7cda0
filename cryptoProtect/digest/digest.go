// SPDX-LICENSE-IDENTIFIER: GPL-2.0-ONLY
// (C) 2024 Author: <kisfg@hotmail.com>

/*
Package digest adapts streaming hash primitives to one create/update/finalize/
reset/dispose surface.

	Two adapters live here. Stream is generic over any hash.Hash, Context is a
	single concrete type whose algorithm comes from an *Algorithm descriptor.
	Finalizing always resets the running state, so one stream serves an
	unbounded sequence of independent digests without reallocation.

	Neither adapter synchronizes: one stream must not be used from two
	goroutines at once. Distinct streams are fully independent.
*/
package digest

import (
	"fmt"

	"cryptobase/defErr"
)

// StreamHash is the operation set shared by both adapters.
type StreamHash interface {
	// algorithm name, e.g. "sha256".
	Name() string
	// digest length in bytes.
	Size() int
	// block length in bytes of the underlying compression function.
	BlockSize() int
	// discard accumulated input.
	Reset() error
	// feed bytes into the running computation.
	Update(p []byte) error
	// feed p, write the digest into out and reset.
	UpdateFinal(p, out []byte) error
	// write the digest of everything fed so far into out and reset.
	GetHash(out []byte) error
	// release the state. Every later call returns defErr.ErrDisposed.
	Dispose() error
}

func checkOutput(name string, size int, out []byte) error {
	if len(out) != size {
		return fmt.Errorf("%s: got %d bytes, want %d: %w", name, len(out), size, defErr.ErrOutputLength)
	}
	return nil
}

func disposedErr(name string) error {
	return defErr.DescribeThenConcat(name, defErr.ErrDisposed)
}
