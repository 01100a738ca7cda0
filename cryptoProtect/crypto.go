// SPDX-LICENSE-IDENTIFIER: GPL-2.0-Only
// (C) 2024 Author: <kisfg@hotmail.com>
package cryptoprotect

import (
	"fmt"
	"strings"

	"cryptobase/cryptoProtect/digest"
	hashciphers "cryptobase/cryptoProtect/hashCiphers"
	"cryptobase/defErr"
)

/*
	Digest choices are numbered from 1 so that the zero value stays invalid.
	A host picks one choice per handle; there is no way to switch the
	algorithm of a live stream other than disposing it and creating another.
*/

type DigestChoice uint

const (
	PICK_SM3         DigestChoice = iota + 1 // sm3 hash
	PICK_SHA256                              // sha256
	PICK_SHA3_256                            // sha3-256
	PICK_BLAKE2B256                          // blake2b256
	PICK_BLAKE2S256                          // blake2s256
	PICK_MD5                                 // md5, legacy
	PICK_SHA1                                // sha1, legacy
	PICK_SHA224                              // sha224
	PICK_SHA384                              // sha384
	PICK_SHA512                              // sha512
	PICK_SHA3_384                            // sha3-384
	PICK_SHA3_512                            // sha3-512
	PICK_BLAKE2B384                          // blake2b384
	PICK_BLAKE2B512                          // blake2b512
	PICK_SHA1_FIXED                          // sha1 through the fixed-context provider
	PICK_SHA256_FIXED                        // sha256 through the fixed-context provider
	PICK_CRC32                               // crc32 (IEEE), checksum only
	PICK_CRC32C                              // crc32c (Castagnoli), checksum only
)

var digestTable = map[DigestChoice]struct {
	name   string
	cipher StreamHashCipher
}{
	PICK_SM3:          {"sm3", &hashciphers.SM3{}},
	PICK_SHA256:       {"sha256", &hashciphers.Sha256{}},
	PICK_SHA3_256:     {"sha3-256", &hashciphers.Sha3_256{}},
	PICK_BLAKE2B256:   {"blake2b-256", &hashciphers.Blake2b256{}},
	PICK_BLAKE2S256:   {"blake2s-256", &hashciphers.Blake2s256{}},
	PICK_MD5:          {"md5", &hashciphers.MD5{}},
	PICK_SHA1:         {"sha1", &hashciphers.Sha1{}},
	PICK_SHA224:       {"sha224", &hashciphers.Sha224{}},
	PICK_SHA384:       {"sha384", &hashciphers.Sha384{}},
	PICK_SHA512:       {"sha512", &hashciphers.Sha512{}},
	PICK_SHA3_384:     {"sha3-384", &hashciphers.Sha3_384{}},
	PICK_SHA3_512:     {"sha3-512", &hashciphers.Sha3_512{}},
	PICK_BLAKE2B384:   {"blake2b-384", &hashciphers.Blake2b384{}},
	PICK_BLAKE2B512:   {"blake2b-512", &hashciphers.Blake2b512{}},
	PICK_SHA1_FIXED:   {"sha1-fixed", &hashciphers.Sha1Fixed{}},
	PICK_SHA256_FIXED: {"sha256-fixed", &hashciphers.Sha256Fixed{}},
	PICK_CRC32:        {"crc32", &hashciphers.Crc32{}},
	PICK_CRC32C:       {"crc32c", &hashciphers.Crc32C{}},
}

func (c DigestChoice) String() string {
	if e, ok := digestTable[c]; ok {
		return e.name
	}
	return fmt.Sprintf("DigestChoice(%d)", uint(c))
}

// DigestChoices lists every supported choice in numbering order.
func DigestChoices() []DigestChoice {
	res := make([]DigestChoice, 0, len(digestTable))
	for c := PICK_SM3; c <= PICK_CRC32C; c++ {
		res = append(res, c)
	}
	return res
}

// ParseDigestChoice accepts the names printed by String, case-insensitively.
func ParseDigestChoice(name string) (DigestChoice, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for c, e := range digestTable {
		if e.name == name {
			return c, nil
		}
	}
	return 0, defErr.DescribeThenConcat(`digest `+name, defErr.ErrUnsupportedDigest)
}

func HashCipherOf(choice DigestChoice) (StreamHashCipher, error) {
	e, ok := digestTable[choice]
	if !ok {
		return nil, defErr.DescribeThenConcat(choice.String(), defErr.ErrUnsupportedDigest)
	}
	return e.cipher, nil
}

// NewStreamHash creates a fresh stream for choice in its initial state.
func NewStreamHash(choice DigestChoice) (digest.StreamHash, error) {
	cipher, err := HashCipherOf(choice)
	if err != nil {
		return nil, err
	}
	return cipher.NewStream(), nil
}
