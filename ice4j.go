// SPDX-FileCopyrightText: 2023 The Pion community <https://pion.ly>
// SPDX-License-Identifier: MIT

// Package ice4j assembles STUN, TURN and ICE messages for NAT and firewall
// traversal. Each constructor knows which attributes its message kind
// requires and in what order, and returns a ready-to-encode *stun.Message.
// Wire I/O, retransmission timers and transaction correlation belong to the
// layers above; the constructors here are pure and safe for concurrent use.
package ice4j

import (
	"fmt"

	"github.com/pion/logging"
	"github.com/pion/stun/v2"
)

var log = logging.NewDefaultLoggerFactory().NewLogger("ice4j") //nolint:gochecknoglobals

// SetLoggerFactory replaces the logger used for package diagnostics.
func SetLoggerFactory(f logging.LoggerFactory) {
	log = f.NewLogger("ice4j")
}

// assemble builds a message of the given type with a fresh transaction ID.
func assemble(msgType stun.MessageType, attrs ...stun.Setter) (*stun.Message, error) {
	return stun.Build(append([]stun.Setter{stun.TransactionID, msgType}, attrs...)...)
}

// assembleFor builds a response correlated with req. The transaction ID is
// copied from req before any attribute is appended, so XOR-derived
// attributes are computed against the originating ID rather than a fresh
// one.
func assembleFor(req *stun.Message, msgType stun.MessageType, attrs ...stun.Setter) (*stun.Message, error) {
	if req == nil {
		return nil, errNilRequest
	}
	if req.Type.Class != stun.ClassRequest {
		return nil, fmt.Errorf("%w: %s", ErrNotARequest, req.Type)
	}

	setters := append([]stun.Setter{&stun.Message{TransactionID: req.TransactionID}, msgType}, attrs...)

	return stun.Build(setters...)
}
