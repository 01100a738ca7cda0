// SPDX-LICENSE-IDENTIFIER: GPL-2.0-ONLY
// (C) 2024 Author: <kisfg@hotmail.com>
package utils

import (
	"fmt"
	"math/rand"
	"sort"
)

const letters string = "qewr4560tyuiopadsfgh123jklzxcvbnmQWERTY789UIOPASDFGHJKLZCXVBNM"

/*
compare whether two byte slices are the same.

	return true, `ok` if two bytesSlices are equal, otherwise return false with the reason.
*/
func CmpByte2Slices(a []byte, b []byte) (bool, string) {
	lena, lenb := len(a), len(b)
	if lena != lenb {
		return false, fmt.Sprintf(`unequal: differentLen found:(%d,%d)`, lena, lenb)
	}
	for idx, val := range a {
		if val != b[idx] {
			return false, fmt.Sprintf(`unequal: differentVal found at:%d`, idx)
		}
	}
	return true, `ok`
}

// generate pseudo-random printable string. Same length, same string.
func GenerateEnterableRandomString(lena int64) string {
	rng := rand.New(rand.NewSource(lena))
	res := make([]byte, lena)
	for i := range res {
		res[i] = letters[rng.Intn(len(letters))]
	}
	return string(res)
}

/*
Split `a` at every offset in `cuts`.

	Offsets outside (0, len(a)) and duplicates are ignored, so every returned
	chunk is non-empty unless `a` itself is empty.
*/
func BytesSpliter(a []byte, cuts ...int) [][]byte {
	sorted := append([]int(nil), cuts...)
	sort.Ints(sorted)
	res := make([][]byte, 0, len(sorted)+1)
	last := 0
	for _, c := range sorted {
		if c <= last || c >= len(a) {
			continue
		}
		res = append(res, a[last:c])
		last = c
	}
	return append(res, a[last:])
}

// split `a` into non-empty chunks of pseudo-random length, reproducible by seed.
func BytesSpliterRandomly(a []byte, seed int64) [][]byte {
	if len(a) < 2 {
		return [][]byte{a}
	}
	rng := rand.New(rand.NewSource(seed))
	cuts := make([]int, rng.Intn(len(a)))
	for i := range cuts {
		cuts[i] = 1 + rng.Intn(len(a)-1)
	}
	return BytesSpliter(a, cuts...)
}
