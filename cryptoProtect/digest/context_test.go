// SPDX-LICENSE-IDENTIFIER: GPL-2.0-ONLY
// (C) 2024 Author: <kisfg@hotmail.com>
package digest

import (
	"crypto/sha1"
	"testing"

	"cryptobase/defErr"

	"github.com/stretchr/testify/require"
)

func TestContextDescriptorThreading(t *testing.T) {
	c := NewContext(testSHA1)
	require.Same(t, testSHA1, c.Algorithm())
	out := make([]byte, testSHA1.Size())

	require.NoError(t, c.Update([]byte(`abc`)))
	require.NoError(t, c.GetHashWith(testSHA1, out))
	want := sha1.Sum([]byte(`abc`))
	require.Equal(t, want[:], out)

	require.NoError(t, c.ResetWith(testSHA1))
	require.NoError(t, c.UpdateFinalWith(testSHA1, []byte(`abc`), out))
	require.Equal(t, want[:], out)
	require.NoError(t, c.Dispose())
}

func TestContextDescriptorMismatch(t *testing.T) {
	c := NewContext(testSHA1)
	require.NoError(t, c.Update([]byte(`abc`)))

	wide := make([]byte, testSHA256.Size())
	require.ErrorIs(t, c.ResetWith(testSHA256), defErr.ErrAlgorithmMismatch)
	require.ErrorIs(t, c.UpdateFinalWith(testSHA256, nil, wide), defErr.ErrAlgorithmMismatch)
	require.ErrorIs(t, c.GetHashWith(testSHA256, wide), defErr.ErrAlgorithmMismatch)
	require.ErrorIs(t, c.GetHashWith(nil, wide), defErr.ErrAlgorithmMismatch)

	// a descriptor equal in content but not in identity is still foreign.
	twin := NewAlgorithm("sha1", sha1.Size, sha1.BlockSize, sha1.New)
	require.ErrorIs(t, c.ResetWith(twin), defErr.ErrAlgorithmMismatch)

	// rejected calls left the accumulated input alone.
	out := make([]byte, testSHA1.Size())
	require.NoError(t, c.GetHash(out))
	want := sha1.Sum([]byte(`abc`))
	require.Equal(t, want[:], out)
}

func TestAlgorithmString(t *testing.T) {
	require.Equal(t, "sha256", testSHA256.String())
	require.Equal(t, 64, testSHA256.BlockSize())
}
