// SPDX-LICENSE-IDENTIFIER: GPL-2.0-Only
// (C) 2024 Author: <kisfg@hotmail.com>
package hashciphers

import (
	"crypto/md5"
	"crypto/sha1"

	"cryptobase/cryptoProtect/digest"
)

// MD5 and SHA-1 are kept for interoperability only. Do not build new
// integrity checks on them.
type (
	MD5  struct{}
	Sha1 struct{}
)

func (m *MD5) CalculateHash(msg []byte) []byte {
	tmp := md5.Sum(msg)
	return tmp[:]
}

func (m *MD5) GetHashLen() uint64 { return md5.Size }
func (m *MD5) NewStream() digest.StreamHash {
	return digest.NewStream("md5", md5.New)
}

func (sha *Sha1) CalculateHash(msg []byte) []byte {
	tmp := sha1.Sum(msg)
	return tmp[:]
}

func (sha *Sha1) GetHashLen() uint64 { return sha1.Size }
func (sha *Sha1) NewStream() digest.StreamHash {
	return digest.NewStream("sha1", sha1.New)
}
