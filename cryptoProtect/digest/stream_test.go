// SPDX-LICENSE-IDENTIFIER: GPL-2.0-ONLY
// (C) 2024 Author: <kisfg@hotmail.com>
package digest

import (
	"crypto/md5"
	"crypto/sha1"
	"crypto/sha256"
	"crypto/sha512"
	"encoding/hex"
	"testing"

	"cryptobase/defErr"
	"cryptobase/utils"

	"github.com/emmansun/gmsm/sm3"
	"github.com/stretchr/testify/require"
)

var (
	testSHA1   = NewAlgorithm("sha1", sha1.Size, sha1.BlockSize, sha1.New)
	testSHA256 = NewAlgorithm("sha256", sha256.Size, sha256.BlockSize, sha256.New)
)

// every adapter instance under test, freshly created on each call.
func factories() map[string]func() StreamHash {
	return map[string]func() StreamHash{
		"md5":            func() StreamHash { return NewStream("md5", md5.New) },
		"sha256":         func() StreamHash { return NewStream("sha256", sha256.New) },
		"sha512":         func() StreamHash { return NewStream("sha512", sha512.New) },
		"sm3":            func() StreamHash { return NewStream("sm3", sm3.New) },
		"sha1/context":   func() StreamHash { return NewContext(testSHA1) },
		"sha256/context": func() StreamHash { return NewContext(testSHA256) },
	}
}

func oneShot(t *testing.T, newStream func() StreamHash, msg []byte) []byte {
	t.Helper()
	s := newStream()
	defer s.Dispose()
	out := make([]byte, s.Size())
	require.NoError(t, s.UpdateFinal(msg, out))
	return out
}

func TestEmptyInputSHA256(t *testing.T) {
	out := oneShot(t, factories()["sha256"], nil)
	require.Equal(t, "e3b0c44298fc1c149afbf4c8996fb92427ae41e4649b934ca495991b7852b855", hex.EncodeToString(out))
}

func TestResetIdempotence(t *testing.T) {
	msg := []byte(utils.GenerateEnterableRandomString(300))
	for name, newStream := range factories() {
		want := oneShot(t, newStream, msg)

		s := newStream()
		out := make([]byte, s.Size())
		require.NoError(t, s.Update([]byte(`garbage that must disappear`)), name)
		require.NoError(t, s.Reset(), name)
		require.NoError(t, s.Reset(), name)
		require.NoError(t, s.UpdateFinal(msg, out), name)
		require.Equal(t, want, out, name)
		require.NoError(t, s.Dispose(), name)
	}
}

func TestFinalizeResets(t *testing.T) {
	x := []byte(utils.GenerateEnterableRandomString(130))
	y := []byte(`the second computation`)
	for name, newStream := range factories() {
		want := oneShot(t, newStream, y)

		s := newStream()
		out := make([]byte, s.Size())
		require.NoError(t, s.UpdateFinal(x, out), name)
		require.NoError(t, s.UpdateFinal(y, out), name)
		require.Equal(t, want, out, name)

		// GetHash resets too.
		require.NoError(t, s.Update(x), name)
		require.NoError(t, s.GetHash(out), name)
		require.NoError(t, s.Update(y), name)
		require.NoError(t, s.GetHash(out), name)
		require.Equal(t, want, out, name)
		require.NoError(t, s.Dispose(), name)
	}
}

// split at every byte position across more than two blocks, then at random.
func TestChunkingInvariance(t *testing.T) {
	msg := []byte(utils.GenerateEnterableRandomString(200))
	for name, newStream := range factories() {
		want := oneShot(t, newStream, msg)
		s := newStream()
		out := make([]byte, s.Size())

		for cut := 1; cut < len(msg); cut++ {
			for _, chunk := range utils.BytesSpliter(msg, cut) {
				require.NoError(t, s.Update(chunk))
			}
			require.NoError(t, s.GetHash(out))
			require.Equal(t, want, out, "%s split at %d", name, cut)
		}
		for seed := int64(0); seed < 32; seed++ {
			chunks := utils.BytesSpliterRandomly(msg, seed)
			for _, chunk := range chunks[:len(chunks)-1] {
				require.NoError(t, s.Update(chunk))
			}
			require.NoError(t, s.UpdateFinal(chunks[len(chunks)-1], out))
			require.Equal(t, want, out, "%s seed %d", name, seed)
		}
		require.NoError(t, s.Dispose())
	}
}

func TestDeterminism(t *testing.T) {
	msg := []byte(`same input, same digest`)
	for name, newStream := range factories() {
		require.Equal(t, oneShot(t, newStream, msg), oneShot(t, newStream, msg), name)
	}
}

func TestHandleIndependence(t *testing.T) {
	for name, newStream := range factories() {
		a, b := newStream(), newStream()
		outA, outB := make([]byte, a.Size()), make([]byte, b.Size())

		require.NoError(t, a.Update([]byte(`alpha `)))
		require.NoError(t, b.Update([]byte(`beta `)))
		require.NoError(t, b.Reset())
		require.NoError(t, a.Update([]byte(`part two`)))
		require.NoError(t, b.Update([]byte(`other`)))
		require.NoError(t, a.GetHash(outA))
		require.NoError(t, b.GetHash(outB))

		require.Equal(t, oneShot(t, newStream, []byte(`alpha part two`)), outA, name)
		require.Equal(t, oneShot(t, newStream, []byte(`other`)), outB, name)
		require.NoError(t, a.Dispose())
		require.NoError(t, b.Dispose())
	}
}

func TestOutputLengthChecked(t *testing.T) {
	for name, newStream := range factories() {
		s := newStream()
		require.NoError(t, s.Update([]byte(`kept`)))

		for _, n := range []int{0, s.Size() - 1, s.Size() + 1} {
			out := make([]byte, n)
			require.ErrorIs(t, s.UpdateFinal([]byte(`dropped`), out), defErr.ErrOutputLength, name)
			require.ErrorIs(t, s.GetHash(out), defErr.ErrOutputLength, name)
		}

		// the failed calls consumed nothing.
		out := make([]byte, s.Size())
		require.NoError(t, s.GetHash(out))
		require.Equal(t, oneShot(t, newStream, []byte(`kept`)), out, name)
		require.NoError(t, s.Dispose())
	}
}

func TestUseAfterDispose(t *testing.T) {
	for name, newStream := range factories() {
		s := newStream()
		size := s.Size()
		require.NoError(t, s.Dispose())

		out := make([]byte, size)
		require.ErrorIs(t, s.Dispose(), defErr.ErrDisposed, name)
		require.ErrorIs(t, s.Reset(), defErr.ErrDisposed, name)
		require.ErrorIs(t, s.Update([]byte{1}), defErr.ErrDisposed, name)
		require.ErrorIs(t, s.UpdateFinal([]byte{1}, out), defErr.ErrDisposed, name)
		require.ErrorIs(t, s.GetHash(out), defErr.ErrDisposed, name)
		require.Equal(t, size, s.Size(), name)
	}
}

func TestMetadata(t *testing.T) {
	cases := []struct {
		s                StreamHash
		name             string
		size, blockSizes int
	}{
		{NewStream("md5", md5.New), "md5", 16, 64},
		{NewStream("sha512", sha512.New), "sha512", 64, 128},
		{NewStream("sm3", sm3.New), "sm3", 32, 64},
		{NewContext(testSHA1), "sha1", 20, 64},
	}
	for _, tc := range cases {
		require.Equal(t, tc.name, tc.s.Name())
		require.Equal(t, tc.size, tc.s.Size())
		require.Equal(t, tc.blockSizes, tc.s.BlockSize())
	}
}
