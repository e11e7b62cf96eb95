// SPDX-FileCopyrightText: 2023 The Pion community <https://pion.ly>
// SPDX-License-Identifier: MIT

package ice4j

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGenerateTieBreaker(t *testing.T) {
	seen := map[uint64]bool{}
	for i := 0; i < 16; i++ {
		seen[GenerateTieBreaker()] = true
	}
	// 16 draws from a 64-bit space never collide in practice.
	assert.Greater(t, len(seen), 1)
}
