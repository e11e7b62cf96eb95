// SPDX-FileCopyrightText: 2023 The Pion community <https://pion.ly>
// SPDX-License-Identifier: MIT

package ice4j

import "github.com/pion/stun/v2"

// Shared-secret messages come from the RFC 3489 registry and were removed
// in RFC 5389. The constructors exist so callers driving the full registry
// get a typed failure instead of a half-built message.

// CreateSharedSecretRequest always fails with ErrSharedSecretNotSupported.
func CreateSharedSecretRequest() (*stun.Message, error) {
	log.Debug("shared secret request construction attempted")

	return nil, ErrSharedSecretNotSupported
}

// CreateSharedSecretResponse always fails with ErrSharedSecretNotSupported.
func CreateSharedSecretResponse() (*stun.Message, error) {
	log.Debug("shared secret response construction attempted")

	return nil, ErrSharedSecretNotSupported
}

// CreateSharedSecretErrorResponse always fails with
// ErrSharedSecretNotSupported.
func CreateSharedSecretErrorResponse() (*stun.Message, error) {
	log.Debug("shared secret error response construction attempted")

	return nil, ErrSharedSecretNotSupported
}
