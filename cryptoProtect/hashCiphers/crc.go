// SPDX-LICENSE-IDENTIFIER: GPL-2.0-Only
// (C) 2024 Author: <kisfg@hotmail.com>
package hashciphers

import (
	"hash"
	"hash/crc32"

	"cryptobase/cryptoProtect/digest"
)

// CRC-32 checksums, not cryptographic. The digest is the register in
// big-endian order.
type (
	Crc32  struct{}
	Crc32C struct{}
)

var castagnoli = crc32.MakeTable(crc32.Castagnoli)

func crc2Bytes(v uint32) []byte {
	return []byte{byte(v >> 24), byte(v >> 16), byte(v >> 8), byte(v)}
}

func (c *Crc32) CalculateHash(msg []byte) []byte {
	return crc2Bytes(crc32.ChecksumIEEE(msg))
}

func (c *Crc32) GetHashLen() uint64 { return crc32.Size }
func (c *Crc32) NewStream() digest.StreamHash {
	return digest.NewStream("crc32", crc32.NewIEEE)
}

func (c *Crc32C) CalculateHash(msg []byte) []byte {
	return crc2Bytes(crc32.Checksum(msg, castagnoli))
}

func (c *Crc32C) GetHashLen() uint64 { return crc32.Size }
func (c *Crc32C) NewStream() digest.StreamHash {
	return digest.NewStream("crc32c", func() hash.Hash32 { return crc32.New(castagnoli) })
}
