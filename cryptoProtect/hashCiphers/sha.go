// SPDX-LICENSE-IDENTIFIER: GPL-2.0-Only
// (C) 2024 Author: <kisfg@hotmail.com>
package hashciphers

import (
	"crypto/sha256"
	"crypto/sha512"

	"cryptobase/cryptoProtect/digest"

	"golang.org/x/crypto/sha3"
)

type (
	Sha224   struct{}
	Sha256   struct{}
	Sha3_256 struct{}
	Sha384   struct{}
	Sha3_384 struct{}
	Sha512   struct{}
	Sha3_512 struct{}
)

func (sha *Sha224) CalculateHash(msg []byte) []byte {
	tmp := sha256.Sum224(msg)
	return tmp[:]
}

func (sha *Sha224) GetHashLen() uint64 { return sha256.Size224 }
func (sha *Sha224) NewStream() digest.StreamHash {
	return digest.NewStream("sha224", sha256.New224)
}

func (sha *Sha256) CalculateHash(msg []byte) []byte {
	tmp := sha256.Sum256(msg)
	return tmp[:]
}

func (sha *Sha256) GetHashLen() uint64 { return sha256.Size }
func (sha *Sha256) NewStream() digest.StreamHash {
	return digest.NewStream("sha256", sha256.New)
}

func (s *Sha3_256) CalculateHash(msg []byte) []byte {
	res := sha3.Sum256(msg)
	return res[:]
}

func (s *Sha3_256) GetHashLen() uint64 { return 32 }
func (s *Sha3_256) NewStream() digest.StreamHash {
	return digest.NewStream("sha3-256", sha3.New256)
}

func (sha *Sha384) CalculateHash(msg []byte) []byte {
	tmp := sha512.Sum384(msg)
	return tmp[:]
}

func (sha *Sha384) GetHashLen() uint64 { return sha512.Size384 }
func (sha *Sha384) NewStream() digest.StreamHash {
	return digest.NewStream("sha384", sha512.New384)
}

func (s *Sha3_384) CalculateHash(msg []byte) []byte {
	res := sha3.Sum384(msg)
	return res[:]
}

func (s *Sha3_384) GetHashLen() uint64 { return 48 }
func (s *Sha3_384) NewStream() digest.StreamHash {
	return digest.NewStream("sha3-384", sha3.New384)
}

func (sha *Sha512) CalculateHash(msg []byte) []byte {
	tmp := sha512.Sum512(msg)
	return tmp[:]
}

func (sha *Sha512) GetHashLen() uint64 { return sha512.Size }
func (sha *Sha512) NewStream() digest.StreamHash {
	return digest.NewStream("sha512", sha512.New)
}

func (s *Sha3_512) CalculateHash(msg []byte) []byte {
	res := sha3.Sum512(msg)
	return res[:]
}

func (s *Sha3_512) GetHashLen() uint64 { return 64 }
func (s *Sha3_512) NewStream() digest.StreamHash {
	return digest.NewStream("sha3-512", sha3.New512)
}
