// SPDX-LICENSE-IDENTIFIER: GPL-2.0-ONLY
// (C) 2024 Author: <kisfg@hotmail.com>
package ffi

import hashciphers "cryptobase/cryptoProtect/hashCiphers"

// Default is the table behind the exported C symbols.
var Default = NewTable()

var (
	MD5    = Default.Generic("md5", (&hashciphers.MD5{}).NewStream)
	SHA1   = Default.Generic("sha1", (&hashciphers.Sha1{}).NewStream)
	SHA224 = Default.Generic("sha224", (&hashciphers.Sha224{}).NewStream)
	SHA256 = Default.Generic("sha256", (&hashciphers.Sha256{}).NewStream)
	SHA384 = Default.Generic("sha384", (&hashciphers.Sha384{}).NewStream)
	SHA512 = Default.Generic("sha512", (&hashciphers.Sha512{}).NewStream)
	SM3    = Default.Generic("sm3", (&hashciphers.SM3{}).NewStream)

	SHA3_256   = Default.Generic("sha3-256", (&hashciphers.Sha3_256{}).NewStream)
	SHA3_384   = Default.Generic("sha3-384", (&hashciphers.Sha3_384{}).NewStream)
	SHA3_512   = Default.Generic("sha3-512", (&hashciphers.Sha3_512{}).NewStream)
	BLAKE2B256 = Default.Generic("blake2b-256", (&hashciphers.Blake2b256{}).NewStream)
	BLAKE2B384 = Default.Generic("blake2b-384", (&hashciphers.Blake2b384{}).NewStream)
	BLAKE2B512 = Default.Generic("blake2b-512", (&hashciphers.Blake2b512{}).NewStream)
	BLAKE2S256 = Default.Generic("blake2s-256", (&hashciphers.Blake2s256{}).NewStream)

	CRC32  = Default.Generic("crc32", (&hashciphers.Crc32{}).NewStream)
	CRC32C = Default.Generic("crc32c", (&hashciphers.Crc32C{}).NewStream)

	// alternate providers with the same surface.
	SHA1Fixed   = Default.Fixed(hashciphers.SHA1ForLegacyUseOnly)
	SHA256Fixed = Default.Fixed(hashciphers.SHA256Fixed)
)
