// SPDX-FileCopyrightText: 2023 The Pion community <https://pion.ly>
// SPDX-License-Identifier: MIT

// Package ipnet contains helper functions around net and IP.
package ipnet

import (
	"errors"
	"net"
)

var errFailedToCastAddr = errors.New("failed to cast net.Addr to *net.UDPAddr or *net.TCPAddr")

// AddrIPPort extracts the IP and port from a net.Addr.
func AddrIPPort(a net.Addr) (net.IP, int, error) {
	switch addr := a.(type) {
	case *net.UDPAddr:
		return addr.IP, addr.Port, nil
	case *net.TCPAddr:
		return addr.IP, addr.Port, nil
	default:
		return nil, 0, errFailedToCastAddr
	}
}

// AddrEqual asserts that two net.Addrs are equal. Currently only supports
// UDP and TCP addresses.
func AddrEqual(a, b net.Addr) bool {
	switch addr := a.(type) {
	case *net.UDPAddr:
		other, ok := b.(*net.UDPAddr)

		return ok && addr.IP.Equal(other.IP) && addr.Port == other.Port
	case *net.TCPAddr:
		other, ok := b.(*net.TCPAddr)

		return ok && addr.IP.Equal(other.IP) && addr.Port == other.Port
	default:
		return false
	}
}
