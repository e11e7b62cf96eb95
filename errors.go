// SPDX-FileCopyrightText: 2023 The Pion community <https://pion.ly>
// SPDX-License-Identifier: MIT

package ice4j

import "errors"

var (
	// ErrSharedSecretNotSupported is returned by the shared-secret
	// constructors, which exist only for completeness of the RFC 3489
	// message registry.
	ErrSharedSecretNotSupported = errors.New("shared secret messages are not implemented")

	// ErrUnsupportedTransportProtocol is returned when an allocate request
	// names a relay protocol other than UDP (17) or TCP (6).
	ErrUnsupportedTransportProtocol = errors.New("RequestedTransport must be UDP or TCP")

	// ErrInvalidChannelNumber is returned when a channel number lies
	// outside [MinChannelNumber, MaxChannelNumber].
	ErrInvalidChannelNumber = errors.New("channel number not in [0x4000, 0x7FFF]")

	// ErrNotARequest is returned when a response constructor is handed a
	// message whose class is not request.
	ErrNotARequest = errors.New("originating message is not a request")

	// ErrUsernameEmpty and friends reject credential material the
	// long-term authentication attributes cannot carry.
	ErrUsernameEmpty   = errors.New("username must not be empty")
	ErrUsernameTooLong = errors.New("username longer than 513 bytes")
	ErrRealmTooLong    = errors.New("realm longer than 763 bytes")
	ErrNonceTooLong    = errors.New("nonce longer than 763 bytes")

	errNilRequest       = errors.New("originating request must not be nil")
	errNilMessage       = errors.New("message must not be nil")
	errAlreadyFinished  = errors.New("authenticated message already finished")
	errNilRelayedAddr   = errors.New("relayed address must not be nil")
	errNegativeLifetime = errors.New("lifetime must not be negative")
)
