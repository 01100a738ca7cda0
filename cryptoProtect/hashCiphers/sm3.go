// SPDX-LICENSE-IDENTIFIER: GPL-2.0-Only
// (C) 2024 Author: <kisfg@hotmail.com>
package hashciphers

import (
	"cryptobase/cryptoProtect/digest"

	"github.com/emmansun/gmsm/sm3"
)

// SM3 as in GB/T 32905-2016.
type SM3 struct{}

func (sm *SM3) CalculateHash(msg []byte) []byte {
	tmp := sm3.Sum(msg)
	return tmp[:]
}

func (sm *SM3) GetHashLen() uint64 { return uint64(sm3.Size) }

func (sm *SM3) NewStream() digest.StreamHash {
	return digest.NewStream("sm3", sm3.New)
}
