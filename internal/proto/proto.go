// SPDX-FileCopyrightText: 2023 The Pion community <https://pion.ly>
// SPDX-License-Identifier: MIT

// Package proto implements the STUN attribute encodings the message
// constructors need beyond those shipped with pion/stun: the TURN relay
// attributes from RFC 5766, the ICE attributes from RFC 8445 and the
// legacy RFC 3489 address attributes.
package proto
