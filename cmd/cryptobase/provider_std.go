// SPDX-LICENSE-IDENTIFIER: GPL-2.0-ONLY
// (C) 2024 Author: <kisfg@hotmail.com>

//go:build !fixedsha

package main

import "cryptobase/ffi"

var (
	sha1Exports   = ffi.SHA1
	sha256Exports = ffi.SHA256
)
