// SPDX-LICENSE-IDENTIFIER: GPL-2.0-Only
// (C) 2024 Author: <kisfg@hotmail.com>
package hashciphers

import (
	"cryptobase/cryptoProtect/digest"

	sha256simd "github.com/minio/sha256-simd"
	"github.com/pjbgf/sha1cd"
)

/*
Descriptors for the fixed-context provider.

	These select implementations from libraries other than the standard one,
	so the two SHA-1 and the two SHA-256 providers can be swapped behind the
	same surface and cross-checked against each other.
*/
var (
	SHA1ForLegacyUseOnly = digest.NewAlgorithm("sha1", sha1cd.Size, sha1cd.BlockSize, sha1cd.New)
	SHA256Fixed          = digest.NewAlgorithm("sha256", sha256simd.Size, sha256simd.BlockSize, sha256simd.New)
)

type (
	Sha1Fixed   struct{}
	Sha256Fixed struct{}
)

func (sha *Sha1Fixed) CalculateHash(msg []byte) []byte {
	tmp, _ := sha1cd.Sum(msg)
	return tmp[:]
}

func (sha *Sha1Fixed) GetHashLen() uint64 { return sha1cd.Size }
func (sha *Sha1Fixed) NewStream() digest.StreamHash {
	return digest.NewContext(SHA1ForLegacyUseOnly)
}

func (sha *Sha256Fixed) CalculateHash(msg []byte) []byte {
	tmp := sha256simd.Sum256(msg)
	return tmp[:]
}

func (sha *Sha256Fixed) GetHashLen() uint64 { return sha256simd.Size }
func (sha *Sha256Fixed) NewStream() digest.StreamHash {
	return digest.NewContext(SHA256Fixed)
}
