// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"crypto/md5"
	"encoding/hex"
)

// LegacyPasswordDigest returns the lowercase hex MD5 of password.
//
// The backend stores and compares this digest, so the client must send it
// instead of the plaintext. MD5 is not a password hash: anyone who captures
// the digest can replay it, and it is trivially brute-forced. It only keeps
// the plaintext out of request bodies and logs.
func LegacyPasswordDigest(password string) string {
	sum := md5.Sum([]byte(password))
	return hex.EncodeToString(sum[:])
}
