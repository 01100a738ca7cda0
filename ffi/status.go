// SPDX-LICENSE-IDENTIFIER: GPL-2.0-ONLY
// (C) 2024 Author: <kisfg@hotmail.com>
package ffi

import (
	"errors"
	"strconv"

	"cryptobase/defErr"
)

// Status is what every boundary call except New hands back to the host.
type Status int32

const (
	StatusOK                Status = 0
	StatusInvalidHandle     Status = -1 // unknown, disposed or zero handle
	StatusWrongAlgorithm    Status = -2 // handle created by another algorithm's exports
	StatusOutputLength      Status = -3 // output length differs from digest size
	StatusNullPointer       Status = -4 // nil pointer with non-zero length
	StatusAlgorithmMismatch Status = -5 // fixed context driven with another descriptor
	StatusInternal          Status = -99
)

var statusNames = map[Status]string{
	StatusOK:                "ok",
	StatusInvalidHandle:     "invalid_handle",
	StatusWrongAlgorithm:    "wrong_algorithm",
	StatusOutputLength:      "output_length",
	StatusNullPointer:       "null_pointer",
	StatusAlgorithmMismatch: "algorithm_mismatch",
	StatusInternal:          "internal",
}

func (s Status) String() string {
	if n, ok := statusNames[s]; ok {
		return n
	}
	return "status(" + strconv.Itoa(int(s)) + ")"
}

func statusOf(err error) Status {
	switch {
	case err == nil:
		return StatusOK
	case errors.Is(err, defErr.ErrInvalidHandle), errors.Is(err, defErr.ErrDisposed):
		return StatusInvalidHandle
	case errors.Is(err, defErr.ErrWrongAlgorithm):
		return StatusWrongAlgorithm
	case errors.Is(err, defErr.ErrOutputLength):
		return StatusOutputLength
	case errors.Is(err, defErr.ErrNullPointer):
		return StatusNullPointer
	case errors.Is(err, defErr.ErrAlgorithmMismatch):
		return StatusAlgorithmMismatch
	}
	return StatusInternal
}
