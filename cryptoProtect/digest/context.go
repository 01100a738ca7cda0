// SPDX-LICENSE-IDENTIFIER: GPL-2.0-ONLY
// (C) 2024 Author: <kisfg@hotmail.com>
package digest

import (
	"fmt"
	"hash"

	"cryptobase/defErr"
)

/*
Algorithm selects what a Context computes.

	Descriptors are built once at package level and compared by identity.
	They are immutable and safe to share between goroutines.
*/
type Algorithm struct {
	name       string
	size       int
	blockSize  int
	newContext func() hash.Hash
}

func NewAlgorithm(name string, size, blockSize int, newContext func() hash.Hash) *Algorithm {
	return &Algorithm{name: name, size: size, blockSize: blockSize, newContext: newContext}
}

func (a *Algorithm) Name() string   { return a.name }
func (a *Algorithm) Size() int      { return a.size }
func (a *Algorithm) BlockSize() int { return a.blockSize }

func (a *Algorithm) String() string { return a.name }

// Context is one running computation of the algorithm it was created for.
// Reset and finalize swap in a fresh context of that same algorithm.
type Context struct {
	alg *Algorithm
	h   hash.Hash
}

var _ StreamHash = (*Context)(nil)

func NewContext(alg *Algorithm) *Context {
	return &Context{alg: alg, h: alg.newContext()}
}

// Algorithm returns the descriptor the context was created with.
func (c *Context) Algorithm() *Algorithm { return c.alg }

func (c *Context) Name() string   { return c.alg.name }
func (c *Context) Size() int      { return c.alg.size }
func (c *Context) BlockSize() int { return c.alg.blockSize }

func (c *Context) Reset() error { return c.ResetWith(c.alg) }

func (c *Context) Update(p []byte) error {
	if c.h == nil {
		return disposedErr(c.alg.name)
	}
	c.h.Write(p)
	return nil
}

func (c *Context) UpdateFinal(p, out []byte) error { return c.UpdateFinalWith(c.alg, p, out) }

func (c *Context) GetHash(out []byte) error { return c.GetHashWith(c.alg, out) }

func (c *Context) Dispose() error {
	if c.h == nil {
		return disposedErr(c.alg.name)
	}
	c.h = nil
	return nil
}

// ResetWith replaces the running state with a fresh context of alg, which
// must be the creation descriptor.
func (c *Context) ResetWith(alg *Algorithm) error {
	if err := c.check(alg); err != nil {
		return err
	}
	c.h = alg.newContext()
	return nil
}

func (c *Context) UpdateFinalWith(alg *Algorithm, p, out []byte) error {
	if err := c.check(alg); err != nil {
		return err
	}
	if err := checkOutput(alg.name, alg.size, out); err != nil {
		return err
	}
	c.h.Write(p)
	c.finish(alg, out)
	return nil
}

func (c *Context) GetHashWith(alg *Algorithm, out []byte) error {
	if err := c.check(alg); err != nil {
		return err
	}
	if err := checkOutput(alg.name, alg.size, out); err != nil {
		return err
	}
	c.finish(alg, out)
	return nil
}

func (c *Context) check(alg *Algorithm) error {
	if c.h == nil {
		return disposedErr(c.alg.name)
	}
	if alg != c.alg {
		return fmt.Errorf("context for %s driven with %s: %w", c.alg, alg, defErr.ErrAlgorithmMismatch)
	}
	return nil
}

func (c *Context) finish(alg *Algorithm, out []byte) {
	done := c.h
	c.h = alg.newContext()
	done.Sum(out[:0])
}
