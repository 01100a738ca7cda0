// SPDX-LICENSE-IDENTIFIER: GPL-2.0-ONLY
// (C) 2024 Author: <kisfg@hotmail.com>
package defErr

import "errors"

var (
	// the stream or context was disposed and must not be touched again.
	ErrDisposed = errors.New(`hash state already disposed`)
	// output view does not match the digest size.
	ErrOutputLength = errors.New(`output length mismatches digest size`)
	// descriptor passed in differs from the one used at creation.
	ErrAlgorithmMismatch = errors.New(`algorithm descriptor mismatch`)
	ErrUnsupportedDigest = errors.New(`unsupported digest algorithm`)

	// boundary-only conditions.
	ErrInvalidHandle  = errors.New(`invalid or disposed handle`)
	ErrWrongAlgorithm = errors.New(`handle belongs to another algorithm`)
	ErrNullPointer    = errors.New(`null pointer with non-zero length`)
)

func DescribeThenConcat(description string, err error) error {
	return errors.Join(errors.New(description), err)
}

func PushErrorToErrChain(curr, toAdd error) error {
	return errors.Join(curr, DescribeThenConcat(`<-`, toAdd))
}
