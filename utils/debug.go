// SPDX-LICENSE-IDENTIFIER: GPL-2.0-ONLY
// (C) 2024 Author: <kisfg@hotmail.com>
package utils

import (
	"encoding/hex"

	"cryptobase/logging"

	"go.uber.org/zap"
)

/*
Debug function.

	attach description to slice"s hex representation.
*/
func AddTag2HexHeader(hexer []byte, tag string) {
	logging.L().Debug(tag, zap.Int("len", len(hexer)), zap.String("hex", hex.EncodeToString(hexer)))
}
