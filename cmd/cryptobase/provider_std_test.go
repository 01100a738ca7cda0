// SPDX-LICENSE-IDENTIFIER: GPL-2.0-ONLY
// (C) 2024 Author: <kisfg@hotmail.com>

//go:build !fixedsha

package main

import "cryptobase/ffi"

var (
	wantSHA1   = ffi.SHA1
	wantSHA256 = ffi.SHA256
)
