// SPDX-FileCopyrightText: 2023 The Pion community <https://pion.ly>
// SPDX-License-Identifier: MIT

package proto

import (
	"strconv"

	"github.com/pion/stun/v2"
)

// Protocol is an IANA assigned protocol number.
type Protocol byte

const (
	// ProtoTCP is the IANA assigned protocol number for TCP.
	ProtoTCP Protocol = 6
	// ProtoUDP is the IANA assigned protocol number for UDP.
	ProtoUDP Protocol = 17
)

func (p Protocol) String() string {
	switch p {
	case ProtoUDP:
		return "UDP"
	case ProtoTCP:
		return "TCP"
	default:
		return strconv.Itoa(int(p))
	}
}

// RequestedTransport represents REQUESTED-TRANSPORT attribute.
//
// This attribute is used by the client to request a specific transport
// protocol for the allocated transport address. The Protocol field
// specifies the desired protocol; the 3-byte RFFU tail MUST be set to
// zero on transmission.
//
// See https://tools.ietf.org/html/rfc5766#section-14.7
type RequestedTransport struct {
	Protocol Protocol
}

func (t RequestedTransport) String() string {
	return "protocol: " + t.Protocol.String()
}

// protocol + RFFU.
const requestedTransportSize = 4

// AddTo adds REQUESTED-TRANSPORT to message.
func (t RequestedTransport) AddTo(m *stun.Message) error {
	v := make([]byte, requestedTransportSize)
	v[0] = byte(t.Protocol)
	// v[1:4] are zeroes (RFFU)
	m.Add(stun.AttrRequestedTransport, v)

	return nil
}

// GetFrom decodes REQUESTED-TRANSPORT from message.
func (t *RequestedTransport) GetFrom(m *stun.Message) error {
	v, err := m.Get(stun.AttrRequestedTransport)
	if err != nil {
		return err
	}
	if err = stun.CheckSize(stun.AttrRequestedTransport, len(v), requestedTransportSize); err != nil {
		return err
	}
	t.Protocol = Protocol(v[0])

	return nil
}
