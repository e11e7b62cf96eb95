// SPDX-FileCopyrightText: 2023 The Pion community <https://pion.ly>
// SPDX-License-Identifier: MIT

package ice4j

import (
	"fmt"
	"net"
	"time"

	"github.com/pion/stun/v2"
	"github.com/wenrei/ice4j/internal/ipnet"
	"github.com/wenrei/ice4j/internal/proto"
)

// Protocol numbers accepted by the allocate request constructors, taken
// from the IANA protocol registry.
const (
	ProtocolTCP uint8 = 6
	ProtocolUDP uint8 = 17
)

// Channel numbers bindable via CreateChannelBindRequest.
// See https://tools.ietf.org/html/rfc5766#section-11
const (
	MinChannelNumber = uint16(proto.MinChannelNumber)
	MaxChannelNumber = uint16(proto.MaxChannelNumber)
)

// CreateAllocateRequest creates an allocate request carrying no attributes.
// Long-term credentials are added separately via AddLongTermAuth once the
// server has challenged the request.
func CreateAllocateRequest() (*stun.Message, error) {
	return assemble(stun.NewType(stun.MethodAllocate, stun.ClassRequest))
}

// CreateUDPAllocateRequest creates an allocate request for a UDP relay.
// When dontFragment is set the server is asked not to fragment relayed
// datagrams.
func CreateUDPAllocateRequest(dontFragment bool) (*stun.Message, error) {
	attrs := []stun.Setter{proto.RequestedTransport{Protocol: proto.ProtoUDP}}
	if dontFragment {
		attrs = append(attrs, proto.DontFragment{})
	}

	return assemble(stun.NewType(stun.MethodAllocate, stun.ClassRequest), attrs...)
}

// CreateEvenPortAllocateRequest creates an allocate request asking for an
// even relay port, optionally reserving the next-higher port for a
// subsequent allocation. The protocol must be ProtocolUDP or ProtocolTCP.
func CreateEvenPortAllocateRequest(protocol uint8, reservePort bool) (*stun.Message, error) {
	if protocol != ProtocolUDP && protocol != ProtocolTCP {
		return nil, fmt.Errorf("%w, got %d", ErrUnsupportedTransportProtocol, protocol)
	}

	return assemble(stun.NewType(stun.MethodAllocate, stun.ClassRequest),
		proto.RequestedTransport{Protocol: proto.Protocol(protocol)},
		proto.EvenPort{ReservePort: reservePort},
	)
}

// CreateAllocateResponse creates the success response for an allocate
// request: the relayed address, the granted lifetime and the client's
// reflexive address, both XOR addresses derived from the request's
// transaction ID.
func CreateAllocateResponse(
	req *stun.Message,
	relayed, mapped net.Addr,
	lifetime time.Duration,
) (*stun.Message, error) {
	if relayed == nil {
		return nil, errNilRelayedAddr
	}
	if lifetime < 0 {
		return nil, errNegativeLifetime
	}
	rIP, rPort, err := ipnet.AddrIPPort(relayed)
	if err != nil {
		return nil, err
	}
	mIP, mPort, err := ipnet.AddrIPPort(mapped)
	if err != nil {
		return nil, err
	}

	return assembleFor(req, stun.NewType(stun.MethodAllocate, stun.ClassSuccessResponse),
		proto.RelayedAddress{IP: rIP, Port: rPort},
		proto.Lifetime{Duration: lifetime},
		&stun.XORMappedAddress{IP: mIP, Port: mPort},
	)
}

// CreateRefreshRequest creates a refresh request asking the server to keep
// the allocation alive for the given lifetime. A zero lifetime asks for
// deletion.
func CreateRefreshRequest(lifetime time.Duration) (*stun.Message, error) {
	if lifetime < 0 {
		return nil, errNegativeLifetime
	}

	return assemble(stun.NewType(stun.MethodRefresh, stun.ClassRequest), proto.Lifetime{Duration: lifetime})
}

// CreateRefreshResponse creates the success response for a refresh request
// carrying the lifetime the server actually granted.
func CreateRefreshResponse(req *stun.Message, lifetime time.Duration) (*stun.Message, error) {
	if lifetime < 0 {
		return nil, errNegativeLifetime
	}

	return assembleFor(req, stun.NewType(stun.MethodRefresh, stun.ClassSuccessResponse),
		proto.Lifetime{Duration: lifetime})
}

// CreateChannelBindRequest creates a channel-bind request tying
// channelNumber to the peer's transport address.
func CreateChannelBindRequest(channelNumber uint16, peer net.Addr) (*stun.Message, error) {
	if channelNumber < MinChannelNumber || channelNumber > MaxChannelNumber {
		return nil, fmt.Errorf("%w: 0x%x", ErrInvalidChannelNumber, channelNumber)
	}
	ip, port, err := ipnet.AddrIPPort(peer)
	if err != nil {
		return nil, err
	}

	return assemble(stun.NewType(stun.MethodChannelBind, stun.ClassRequest),
		proto.ChannelNumber(channelNumber),
		proto.PeerAddress{IP: ip, Port: port},
	)
}

// CreateCreatePermissionRequest creates a create-permission request
// installing a permission for the peer's IP address on the allocation.
func CreateCreatePermissionRequest(peer net.Addr) (*stun.Message, error) {
	ip, port, err := ipnet.AddrIPPort(peer)
	if err != nil {
		return nil, err
	}

	return assemble(stun.NewType(stun.MethodCreatePermission, stun.ClassRequest),
		proto.PeerAddress{IP: ip, Port: port})
}

// CreateSendIndication creates a send indication relaying data to the
// peer. TURN permits empty send indications, so DATA is appended only when
// the payload is non-empty.
func CreateSendIndication(peer net.Addr, data []byte) (*stun.Message, error) {
	ip, port, err := ipnet.AddrIPPort(peer)
	if err != nil {
		return nil, err
	}

	attrs := []stun.Setter{proto.PeerAddress{IP: ip, Port: port}}
	if len(data) > 0 {
		attrs = append(attrs, proto.Data(data))
	}

	return assemble(stun.NewType(stun.MethodSend, stun.ClassIndication), attrs...)
}

// CreateDataIndication creates the data indication a server uses to relay
// a datagram received from peer back to the client.
func CreateDataIndication(peer net.Addr, data []byte) (*stun.Message, error) {
	ip, port, err := ipnet.AddrIPPort(peer)
	if err != nil {
		return nil, err
	}

	return assemble(stun.NewType(stun.MethodData, stun.ClassIndication),
		proto.PeerAddress{IP: ip, Port: port},
		proto.Data(data),
	)
}
