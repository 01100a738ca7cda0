// SPDX-LICENSE-IDENTIFIER: GPL-2.0-Only
// (C) 2024 Author: <kisfg@hotmail.com>
package cryptoprotect

import "cryptobase/cryptoProtect/digest"

type HashCipher interface {
	CalculateHash(msg []byte) []byte // one-shot, whole message in memory
}

type StreamHashCipher interface {
	HashCipher

	// return length of the digest.
	GetHashLen() uint64

	// create a stream in its initial state. Caller owns it and must Dispose it.
	NewStream() digest.StreamHash
}
