// SPDX-FileCopyrightText: 2023 The Pion community <https://pion.ly>
// SPDX-License-Identifier: MIT

package ice4j

import "github.com/pion/randutil"

var tieBreakerRand = randutil.NewMathRandomGenerator() //nolint:gochecknoglobals

// GenerateTieBreaker returns a random tie-breaker value for
// CreateICEBindingRequest. An agent draws one per session and reuses it for
// every connectivity check.
func GenerateTieBreaker() uint64 {
	return tieBreakerRand.Uint64()
}
