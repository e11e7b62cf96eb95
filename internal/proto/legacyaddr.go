// SPDX-FileCopyrightText: 2023 The Pion community <https://pion.ly>
// SPDX-License-Identifier: MIT

package proto

import (
	"net"
	"strconv"

	"github.com/pion/stun/v2"
)

// Attribute codes from the RFC 3489 registry, dropped in RFC 5389 but
// still produced for legacy binding responses.
//
// See https://tools.ietf.org/html/rfc3489#section-11.2
const (
	AttrSourceAddress  stun.AttrType = 0x0004
	AttrChangedAddress stun.AttrType = 0x0005
)

// SourceAddress represents the legacy SOURCE-ADDRESS attribute: the
// address the binding response was sent from. Encoded like
// MAPPED-ADDRESS.
type SourceAddress struct {
	IP   net.IP
	Port int
}

func (a SourceAddress) String() string {
	return net.JoinHostPort(a.IP.String(), strconv.Itoa(a.Port))
}

// AddTo adds SOURCE-ADDRESS to message.
func (a SourceAddress) AddTo(m *stun.Message) error {
	addr := stun.MappedAddress(a)

	return addr.AddToAs(m, AttrSourceAddress)
}

// GetFrom decodes SOURCE-ADDRESS from message.
func (a *SourceAddress) GetFrom(m *stun.Message) error {
	return (*stun.MappedAddress)(a).GetFromAs(m, AttrSourceAddress)
}

// ChangedAddress represents the legacy CHANGED-ADDRESS attribute: the
// address the server would send from were the client to ask for a
// changed IP or port. Encoded like MAPPED-ADDRESS.
type ChangedAddress struct {
	IP   net.IP
	Port int
}

func (a ChangedAddress) String() string {
	return net.JoinHostPort(a.IP.String(), strconv.Itoa(a.Port))
}

// AddTo adds CHANGED-ADDRESS to message.
func (a ChangedAddress) AddTo(m *stun.Message) error {
	addr := stun.MappedAddress(a)

	return addr.AddToAs(m, AttrChangedAddress)
}

// GetFrom decodes CHANGED-ADDRESS from message.
func (a *ChangedAddress) GetFrom(m *stun.Message) error {
	return (*stun.MappedAddress)(a).GetFromAs(m, AttrChangedAddress)
}
