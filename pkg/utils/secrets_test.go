// Copyright The Linux Foundation and each contributor to LFX.
// SPDX-License-Identifier: MIT

package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSecretsEqual(t *testing.T) {
	tests := []struct {
		name     string
		given    string
		expected string
		equal    bool
	}{
		{"identical", "abc", "abc", true},
		{"different last byte", "abc", "abd", false},
		{"prefix", "abc", "abcd", false},
		{"both empty", "", "", true},
		{"empty against set", "", "abc", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.equal, SecretsEqual(tt.given, tt.expected))
		})
	}
}
