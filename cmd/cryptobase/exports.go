// SPDX-LICENSE-IDENTIFIER: GPL-2.0-ONLY
// (C) 2024 Author: <kisfg@hotmail.com>
package main

// #include <stddef.h>
// #include <stdint.h>
import "C"

import "cryptobase/ffi"

//export md5_new
func md5_new() C.uintptr_t { return newHandle(ffi.MD5) }

//export md5_dispose
func md5_dispose(h C.uintptr_t) C.int32_t { return dispose(ffi.MD5, h) }

//export md5_reset
func md5_reset(h C.uintptr_t) C.int32_t { return reset(ffi.MD5, h) }

//export md5_update
func md5_update(h C.uintptr_t, ptr *C.uint8_t, size C.size_t) C.int32_t {
	return update(ffi.MD5, h, ptr, size)
}

//export md5_update_final
func md5_update_final(h C.uintptr_t, ptr *C.uint8_t, size C.size_t, ptrOut *C.uint8_t, sizeOut C.size_t) C.int32_t {
	return updateFinal(ffi.MD5, h, ptr, size, ptrOut, sizeOut)
}

//export md5_get_hash
func md5_get_hash(h C.uintptr_t, ptrOut *C.uint8_t, sizeOut C.size_t) C.int32_t {
	return getHash(ffi.MD5, h, ptrOut, sizeOut)
}

//export sha1_new
func sha1_new() C.uintptr_t { return newHandle(sha1Exports) }

//export sha1_dispose
func sha1_dispose(h C.uintptr_t) C.int32_t { return dispose(sha1Exports, h) }

//export sha1_reset
func sha1_reset(h C.uintptr_t) C.int32_t { return reset(sha1Exports, h) }

//export sha1_update
func sha1_update(h C.uintptr_t, ptr *C.uint8_t, size C.size_t) C.int32_t {
	return update(sha1Exports, h, ptr, size)
}

//export sha1_update_final
func sha1_update_final(h C.uintptr_t, ptr *C.uint8_t, size C.size_t, ptrOut *C.uint8_t, sizeOut C.size_t) C.int32_t {
	return updateFinal(sha1Exports, h, ptr, size, ptrOut, sizeOut)
}

//export sha1_get_hash
func sha1_get_hash(h C.uintptr_t, ptrOut *C.uint8_t, sizeOut C.size_t) C.int32_t {
	return getHash(sha1Exports, h, ptrOut, sizeOut)
}

//export sha224_new
func sha224_new() C.uintptr_t { return newHandle(ffi.SHA224) }

//export sha224_dispose
func sha224_dispose(h C.uintptr_t) C.int32_t { return dispose(ffi.SHA224, h) }

//export sha224_reset
func sha224_reset(h C.uintptr_t) C.int32_t { return reset(ffi.SHA224, h) }

//export sha224_update
func sha224_update(h C.uintptr_t, ptr *C.uint8_t, size C.size_t) C.int32_t {
	return update(ffi.SHA224, h, ptr, size)
}

//export sha224_update_final
func sha224_update_final(h C.uintptr_t, ptr *C.uint8_t, size C.size_t, ptrOut *C.uint8_t, sizeOut C.size_t) C.int32_t {
	return updateFinal(ffi.SHA224, h, ptr, size, ptrOut, sizeOut)
}

//export sha224_get_hash
func sha224_get_hash(h C.uintptr_t, ptrOut *C.uint8_t, sizeOut C.size_t) C.int32_t {
	return getHash(ffi.SHA224, h, ptrOut, sizeOut)
}

//export sha256_new
func sha256_new() C.uintptr_t { return newHandle(sha256Exports) }

//export sha256_dispose
func sha256_dispose(h C.uintptr_t) C.int32_t { return dispose(sha256Exports, h) }

//export sha256_reset
func sha256_reset(h C.uintptr_t) C.int32_t { return reset(sha256Exports, h) }

//export sha256_update
func sha256_update(h C.uintptr_t, ptr *C.uint8_t, size C.size_t) C.int32_t {
	return update(sha256Exports, h, ptr, size)
}

//export sha256_update_final
func sha256_update_final(h C.uintptr_t, ptr *C.uint8_t, size C.size_t, ptrOut *C.uint8_t, sizeOut C.size_t) C.int32_t {
	return updateFinal(sha256Exports, h, ptr, size, ptrOut, sizeOut)
}

//export sha256_get_hash
func sha256_get_hash(h C.uintptr_t, ptrOut *C.uint8_t, sizeOut C.size_t) C.int32_t {
	return getHash(sha256Exports, h, ptrOut, sizeOut)
}

//export sha384_new
func sha384_new() C.uintptr_t { return newHandle(ffi.SHA384) }

//export sha384_dispose
func sha384_dispose(h C.uintptr_t) C.int32_t { return dispose(ffi.SHA384, h) }

//export sha384_reset
func sha384_reset(h C.uintptr_t) C.int32_t { return reset(ffi.SHA384, h) }

//export sha384_update
func sha384_update(h C.uintptr_t, ptr *C.uint8_t, size C.size_t) C.int32_t {
	return update(ffi.SHA384, h, ptr, size)
}

//export sha384_update_final
func sha384_update_final(h C.uintptr_t, ptr *C.uint8_t, size C.size_t, ptrOut *C.uint8_t, sizeOut C.size_t) C.int32_t {
	return updateFinal(ffi.SHA384, h, ptr, size, ptrOut, sizeOut)
}

//export sha384_get_hash
func sha384_get_hash(h C.uintptr_t, ptrOut *C.uint8_t, sizeOut C.size_t) C.int32_t {
	return getHash(ffi.SHA384, h, ptrOut, sizeOut)
}

//export sha512_new
func sha512_new() C.uintptr_t { return newHandle(ffi.SHA512) }

//export sha512_dispose
func sha512_dispose(h C.uintptr_t) C.int32_t { return dispose(ffi.SHA512, h) }

//export sha512_reset
func sha512_reset(h C.uintptr_t) C.int32_t { return reset(ffi.SHA512, h) }

//export sha512_update
func sha512_update(h C.uintptr_t, ptr *C.uint8_t, size C.size_t) C.int32_t {
	return update(ffi.SHA512, h, ptr, size)
}

//export sha512_update_final
func sha512_update_final(h C.uintptr_t, ptr *C.uint8_t, size C.size_t, ptrOut *C.uint8_t, sizeOut C.size_t) C.int32_t {
	return updateFinal(ffi.SHA512, h, ptr, size, ptrOut, sizeOut)
}

//export sha512_get_hash
func sha512_get_hash(h C.uintptr_t, ptrOut *C.uint8_t, sizeOut C.size_t) C.int32_t {
	return getHash(ffi.SHA512, h, ptrOut, sizeOut)
}

//export sm3_new
func sm3_new() C.uintptr_t { return newHandle(ffi.SM3) }

//export sm3_dispose
func sm3_dispose(h C.uintptr_t) C.int32_t { return dispose(ffi.SM3, h) }

//export sm3_reset
func sm3_reset(h C.uintptr_t) C.int32_t { return reset(ffi.SM3, h) }

//export sm3_update
func sm3_update(h C.uintptr_t, ptr *C.uint8_t, size C.size_t) C.int32_t {
	return update(ffi.SM3, h, ptr, size)
}

//export sm3_update_final
func sm3_update_final(h C.uintptr_t, ptr *C.uint8_t, size C.size_t, ptrOut *C.uint8_t, sizeOut C.size_t) C.int32_t {
	return updateFinal(ffi.SM3, h, ptr, size, ptrOut, sizeOut)
}

//export sm3_get_hash
func sm3_get_hash(h C.uintptr_t, ptrOut *C.uint8_t, sizeOut C.size_t) C.int32_t {
	return getHash(ffi.SM3, h, ptrOut, sizeOut)
}

//export sha3_256_new
func sha3_256_new() C.uintptr_t { return newHandle(ffi.SHA3_256) }

//export sha3_256_dispose
func sha3_256_dispose(h C.uintptr_t) C.int32_t { return dispose(ffi.SHA3_256, h) }

//export sha3_256_reset
func sha3_256_reset(h C.uintptr_t) C.int32_t { return reset(ffi.SHA3_256, h) }

//export sha3_256_update
func sha3_256_update(h C.uintptr_t, ptr *C.uint8_t, size C.size_t) C.int32_t {
	return update(ffi.SHA3_256, h, ptr, size)
}

//export sha3_256_update_final
func sha3_256_update_final(h C.uintptr_t, ptr *C.uint8_t, size C.size_t, ptrOut *C.uint8_t, sizeOut C.size_t) C.int32_t {
	return updateFinal(ffi.SHA3_256, h, ptr, size, ptrOut, sizeOut)
}

//export sha3_256_get_hash
func sha3_256_get_hash(h C.uintptr_t, ptrOut *C.uint8_t, sizeOut C.size_t) C.int32_t {
	return getHash(ffi.SHA3_256, h, ptrOut, sizeOut)
}

//export sha3_384_new
func sha3_384_new() C.uintptr_t { return newHandle(ffi.SHA3_384) }

//export sha3_384_dispose
func sha3_384_dispose(h C.uintptr_t) C.int32_t { return dispose(ffi.SHA3_384, h) }

//export sha3_384_reset
func sha3_384_reset(h C.uintptr_t) C.int32_t { return reset(ffi.SHA3_384, h) }

//export sha3_384_update
func sha3_384_update(h C.uintptr_t, ptr *C.uint8_t, size C.size_t) C.int32_t {
	return update(ffi.SHA3_384, h, ptr, size)
}

//export sha3_384_update_final
func sha3_384_update_final(h C.uintptr_t, ptr *C.uint8_t, size C.size_t, ptrOut *C.uint8_t, sizeOut C.size_t) C.int32_t {
	return updateFinal(ffi.SHA3_384, h, ptr, size, ptrOut, sizeOut)
}

//export sha3_384_get_hash
func sha3_384_get_hash(h C.uintptr_t, ptrOut *C.uint8_t, sizeOut C.size_t) C.int32_t {
	return getHash(ffi.SHA3_384, h, ptrOut, sizeOut)
}

//export sha3_512_new
func sha3_512_new() C.uintptr_t { return newHandle(ffi.SHA3_512) }

//export sha3_512_dispose
func sha3_512_dispose(h C.uintptr_t) C.int32_t { return dispose(ffi.SHA3_512, h) }

//export sha3_512_reset
func sha3_512_reset(h C.uintptr_t) C.int32_t { return reset(ffi.SHA3_512, h) }

//export sha3_512_update
func sha3_512_update(h C.uintptr_t, ptr *C.uint8_t, size C.size_t) C.int32_t {
	return update(ffi.SHA3_512, h, ptr, size)
}

//export sha3_512_update_final
func sha3_512_update_final(h C.uintptr_t, ptr *C.uint8_t, size C.size_t, ptrOut *C.uint8_t, sizeOut C.size_t) C.int32_t {
	return updateFinal(ffi.SHA3_512, h, ptr, size, ptrOut, sizeOut)
}

//export sha3_512_get_hash
func sha3_512_get_hash(h C.uintptr_t, ptrOut *C.uint8_t, sizeOut C.size_t) C.int32_t {
	return getHash(ffi.SHA3_512, h, ptrOut, sizeOut)
}

//export blake2b256_new
func blake2b256_new() C.uintptr_t { return newHandle(ffi.BLAKE2B256) }

//export blake2b256_dispose
func blake2b256_dispose(h C.uintptr_t) C.int32_t { return dispose(ffi.BLAKE2B256, h) }

//export blake2b256_reset
func blake2b256_reset(h C.uintptr_t) C.int32_t { return reset(ffi.BLAKE2B256, h) }

//export blake2b256_update
func blake2b256_update(h C.uintptr_t, ptr *C.uint8_t, size C.size_t) C.int32_t {
	return update(ffi.BLAKE2B256, h, ptr, size)
}

//export blake2b256_update_final
func blake2b256_update_final(h C.uintptr_t, ptr *C.uint8_t, size C.size_t, ptrOut *C.uint8_t, sizeOut C.size_t) C.int32_t {
	return updateFinal(ffi.BLAKE2B256, h, ptr, size, ptrOut, sizeOut)
}

//export blake2b256_get_hash
func blake2b256_get_hash(h C.uintptr_t, ptrOut *C.uint8_t, sizeOut C.size_t) C.int32_t {
	return getHash(ffi.BLAKE2B256, h, ptrOut, sizeOut)
}

//export blake2b384_new
func blake2b384_new() C.uintptr_t { return newHandle(ffi.BLAKE2B384) }

//export blake2b384_dispose
func blake2b384_dispose(h C.uintptr_t) C.int32_t { return dispose(ffi.BLAKE2B384, h) }

//export blake2b384_reset
func blake2b384_reset(h C.uintptr_t) C.int32_t { return reset(ffi.BLAKE2B384, h) }

//export blake2b384_update
func blake2b384_update(h C.uintptr_t, ptr *C.uint8_t, size C.size_t) C.int32_t {
	return update(ffi.BLAKE2B384, h, ptr, size)
}

//export blake2b384_update_final
func blake2b384_update_final(h C.uintptr_t, ptr *C.uint8_t, size C.size_t, ptrOut *C.uint8_t, sizeOut C.size_t) C.int32_t {
	return updateFinal(ffi.BLAKE2B384, h, ptr, size, ptrOut, sizeOut)
}

//export blake2b384_get_hash
func blake2b384_get_hash(h C.uintptr_t, ptrOut *C.uint8_t, sizeOut C.size_t) C.int32_t {
	return getHash(ffi.BLAKE2B384, h, ptrOut, sizeOut)
}

//export blake2b512_new
func blake2b512_new() C.uintptr_t { return newHandle(ffi.BLAKE2B512) }

//export blake2b512_dispose
func blake2b512_dispose(h C.uintptr_t) C.int32_t { return dispose(ffi.BLAKE2B512, h) }

//export blake2b512_reset
func blake2b512_reset(h C.uintptr_t) C.int32_t { return reset(ffi.BLAKE2B512, h) }

//export blake2b512_update
func blake2b512_update(h C.uintptr_t, ptr *C.uint8_t, size C.size_t) C.int32_t {
	return update(ffi.BLAKE2B512, h, ptr, size)
}

//export blake2b512_update_final
func blake2b512_update_final(h C.uintptr_t, ptr *C.uint8_t, size C.size_t, ptrOut *C.uint8_t, sizeOut C.size_t) C.int32_t {
	return updateFinal(ffi.BLAKE2B512, h, ptr, size, ptrOut, sizeOut)
}

//export blake2b512_get_hash
func blake2b512_get_hash(h C.uintptr_t, ptrOut *C.uint8_t, sizeOut C.size_t) C.int32_t {
	return getHash(ffi.BLAKE2B512, h, ptrOut, sizeOut)
}

//export blake2s256_new
func blake2s256_new() C.uintptr_t { return newHandle(ffi.BLAKE2S256) }

//export blake2s256_dispose
func blake2s256_dispose(h C.uintptr_t) C.int32_t { return dispose(ffi.BLAKE2S256, h) }

//export blake2s256_reset
func blake2s256_reset(h C.uintptr_t) C.int32_t { return reset(ffi.BLAKE2S256, h) }

//export blake2s256_update
func blake2s256_update(h C.uintptr_t, ptr *C.uint8_t, size C.size_t) C.int32_t {
	return update(ffi.BLAKE2S256, h, ptr, size)
}

//export blake2s256_update_final
func blake2s256_update_final(h C.uintptr_t, ptr *C.uint8_t, size C.size_t, ptrOut *C.uint8_t, sizeOut C.size_t) C.int32_t {
	return updateFinal(ffi.BLAKE2S256, h, ptr, size, ptrOut, sizeOut)
}

//export blake2s256_get_hash
func blake2s256_get_hash(h C.uintptr_t, ptrOut *C.uint8_t, sizeOut C.size_t) C.int32_t {
	return getHash(ffi.BLAKE2S256, h, ptrOut, sizeOut)
}

//export crc32_new
func crc32_new() C.uintptr_t { return newHandle(ffi.CRC32) }

//export crc32_dispose
func crc32_dispose(h C.uintptr_t) C.int32_t { return dispose(ffi.CRC32, h) }

//export crc32_reset
func crc32_reset(h C.uintptr_t) C.int32_t { return reset(ffi.CRC32, h) }

//export crc32_update
func crc32_update(h C.uintptr_t, ptr *C.uint8_t, size C.size_t) C.int32_t {
	return update(ffi.CRC32, h, ptr, size)
}

//export crc32_update_final
func crc32_update_final(h C.uintptr_t, ptr *C.uint8_t, size C.size_t, ptrOut *C.uint8_t, sizeOut C.size_t) C.int32_t {
	return updateFinal(ffi.CRC32, h, ptr, size, ptrOut, sizeOut)
}

//export crc32_get_hash
func crc32_get_hash(h C.uintptr_t, ptrOut *C.uint8_t, sizeOut C.size_t) C.int32_t {
	return getHash(ffi.CRC32, h, ptrOut, sizeOut)
}

//export crc32c_new
func crc32c_new() C.uintptr_t { return newHandle(ffi.CRC32C) }

//export crc32c_dispose
func crc32c_dispose(h C.uintptr_t) C.int32_t { return dispose(ffi.CRC32C, h) }

//export crc32c_reset
func crc32c_reset(h C.uintptr_t) C.int32_t { return reset(ffi.CRC32C, h) }

//export crc32c_update
func crc32c_update(h C.uintptr_t, ptr *C.uint8_t, size C.size_t) C.int32_t {
	return update(ffi.CRC32C, h, ptr, size)
}

//export crc32c_update_final
func crc32c_update_final(h C.uintptr_t, ptr *C.uint8_t, size C.size_t, ptrOut *C.uint8_t, sizeOut C.size_t) C.int32_t {
	return updateFinal(ffi.CRC32C, h, ptr, size, ptrOut, sizeOut)
}

//export crc32c_get_hash
func crc32c_get_hash(h C.uintptr_t, ptrOut *C.uint8_t, sizeOut C.size_t) C.int32_t {
	return getHash(ffi.CRC32C, h, ptrOut, sizeOut)
}
