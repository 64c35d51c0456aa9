// Copyright The Linux Foundation and each contributor to LFX.
// SPDX-License-Identifier: MIT

package utils

import (
	"crypto/sha256"
	"crypto/subtle"
)

// SecretsEqual compares two secrets without leaking their length or content through timing.
// Both values are hashed first so the comparison always runs over equal-length inputs.
func SecretsEqual(given, expected string) bool {
	a := sha256.Sum256([]byte(given))
	b := sha256.Sum256([]byte(expected))
	return subtle.ConstantTimeCompare(a[:], b[:]) == 1
}
