// SPDX-FileCopyrightText: 2023 The Pion community <https://pion.ly>
// SPDX-License-Identifier: MIT

package proto

import (
	"encoding/binary"
	"strconv"

	"github.com/pion/stun/v2"
)

// ChannelNumber represents CHANNEL-NUMBER attribute.
//
// The CHANNEL-NUMBER attribute contains the number of the channel. The
// value portion of this attribute is 4 bytes long and consists of a
// 16-bit unsigned integer followed by a two-octet RFFU (Reserved For
// Future Use) field, which MUST be set to 0 on transmission and MUST be
// ignored on reception.
//
// See https://tools.ietf.org/html/rfc5766#section-14.1
type ChannelNumber uint16

func (n ChannelNumber) String() string { return strconv.Itoa(int(n)) }

// 16 bits + RFFU = 0.
const channelNumberSize = 4

// AddTo adds CHANNEL-NUMBER to message.
func (n ChannelNumber) AddTo(m *stun.Message) error {
	v := make([]byte, channelNumberSize)
	binary.BigEndian.PutUint16(v[:2], uint16(n))
	// v[2:4] are zeroes (RFFU)
	m.Add(stun.AttrChannelNumber, v)

	return nil
}

// GetFrom decodes CHANNEL-NUMBER from message.
func (n *ChannelNumber) GetFrom(m *stun.Message) error {
	v, err := m.Get(stun.AttrChannelNumber)
	if err != nil {
		return err
	}
	if err = stun.CheckSize(stun.AttrChannelNumber, len(v), channelNumberSize); err != nil {
		return err
	}
	_ = v[channelNumberSize-1] // asserting length
	*n = ChannelNumber(binary.BigEndian.Uint16(v[:2]))

	return nil
}

// Channel numbers are in the range 0x4000 through 0x7FFF inclusive.
//
// See https://tools.ietf.org/html/rfc5766#section-11
const (
	MinChannelNumber ChannelNumber = 0x4000
	MaxChannelNumber ChannelNumber = 0x7FFF
)

// Valid returns true if the channel number is in the allowed range.
func (n ChannelNumber) Valid() bool {
	return n >= MinChannelNumber && n <= MaxChannelNumber
}
