// SPDX-FileCopyrightText: 2023 The Pion community <https://pion.ly>
// SPDX-License-Identifier: MIT

package proto

import (
	"net"
	"testing"

	"github.com/pion/stun/v2"
	"github.com/stretchr/testify/assert"
)

func TestSourceAddress(t *testing.T) {
	a := SourceAddress{
		IP:   net.IPv4(203, 0, 113, 9),
		Port: 3478,
	}
	t.Run("String", func(t *testing.T) {
		assert.Equal(t, "203.0.113.9:3478", a.String())
	})
	m := new(stun.Message)
	assert.NoError(t, a.AddTo(m))
	m.WriteHeader()

	decoded := new(stun.Message)
	_, err := decoded.Write(m.Raw)
	assert.NoError(t, err)

	var aGot SourceAddress
	assert.NoError(t, aGot.GetFrom(decoded))
	assert.True(t, a.IP.Equal(aGot.IP))
	assert.Equal(t, a.Port, aGot.Port)
}

func TestChangedAddress(t *testing.T) {
	a := ChangedAddress{
		IP:   net.IPv4(203, 0, 113, 10),
		Port: 3479,
	}
	t.Run("String", func(t *testing.T) {
		assert.Equal(t, "203.0.113.10:3479", a.String())
	})
	m := new(stun.Message)
	assert.NoError(t, a.AddTo(m))
	m.WriteHeader()

	decoded := new(stun.Message)
	_, err := decoded.Write(m.Raw)
	assert.NoError(t, err)

	var aGot ChangedAddress
	assert.NoError(t, aGot.GetFrom(decoded))
	assert.True(t, a.IP.Equal(aGot.IP))
	assert.Equal(t, a.Port, aGot.Port)

	// A legacy address never lands on the XOR attribute codes.
	var xorGot PeerAddress
	assert.ErrorIs(t, xorGot.GetFrom(decoded), stun.ErrAttributeNotFound)
}
