// SPDX-LICENSE-IDENTIFIER: GPL-2.0-ONLY
// (C) 2024 Author: <kisfg@hotmail.com>

/*
Command cryptobase is built as a shared library:

	go build -buildmode=c-shared -o libcryptobase.so ./cmd/cryptobase
	go build -buildmode=c-shared -tags fixedsha -o libcryptobase.so ./cmd/cryptobase

Every algorithm exports <alg>_new, _dispose, _reset, _update, _update_final
and _get_hash. All calls but _new return 0 on success and a negative status
otherwise. With -tags fixedsha the sha1_* and sha256_* symbols are served by
the fixed-context providers instead of the standard library.
*/
package main

/*
#include <stddef.h>
#include <stdint.h>
*/
import "C"

import (
	"fmt"
	"os"
	"unsafe"

	"cryptobase/ffi"
)

func init() {
	if err := ffi.ConfigureFromEnv(); err != nil {
		fmt.Fprintf(os.Stderr, "cryptobase: %v\n", err)
	}
}

func main() {}

func newHandle(e *ffi.Exports) C.uintptr_t { return C.uintptr_t(e.New()) }

func dispose(e *ffi.Exports, h C.uintptr_t) C.int32_t {
	return C.int32_t(e.Dispose(ffi.Handle(h)))
}

func reset(e *ffi.Exports, h C.uintptr_t) C.int32_t {
	return C.int32_t(e.Reset(ffi.Handle(h)))
}

func update(e *ffi.Exports, h C.uintptr_t, ptr *C.uint8_t, size C.size_t) C.int32_t {
	return C.int32_t(e.Update(ffi.Handle(h), unsafe.Pointer(ptr), uintptr(size)))
}

func updateFinal(e *ffi.Exports, h C.uintptr_t, ptr *C.uint8_t, size C.size_t, ptrOut *C.uint8_t, sizeOut C.size_t) C.int32_t {
	return C.int32_t(e.UpdateFinal(ffi.Handle(h), unsafe.Pointer(ptr), uintptr(size), unsafe.Pointer(ptrOut), uintptr(sizeOut)))
}

func getHash(e *ffi.Exports, h C.uintptr_t, ptrOut *C.uint8_t, sizeOut C.size_t) C.int32_t {
	return C.int32_t(e.GetHash(ffi.Handle(h), unsafe.Pointer(ptrOut), uintptr(sizeOut)))
}

//export cryptobase_live_handles
func cryptobase_live_handles() C.size_t { return C.size_t(ffi.Default.Live()) }
