// SPDX-FileCopyrightText: 2023 The Pion community <https://pion.ly>
// SPDX-License-Identifier: MIT

package proto

import (
	"encoding/binary"
	"strconv"

	"github.com/pion/stun/v2"
)

// PriorityAttr represents PRIORITY attribute.
//
// The PRIORITY attribute indicates the priority that is to be
// associated with a peer-reflexive candidate, if one will be discovered
// by this check.
//
// See https://tools.ietf.org/html/rfc8445#section-7.1.1
type PriorityAttr uint32

func (p PriorityAttr) String() string { return strconv.FormatUint(uint64(p), 10) }

// uint32.
const prioritySize = 4

// AddTo adds PRIORITY to message.
func (p PriorityAttr) AddTo(m *stun.Message) error {
	v := make([]byte, prioritySize)
	binary.BigEndian.PutUint32(v, uint32(p))
	m.Add(stun.AttrPriority, v)

	return nil
}

// GetFrom decodes PRIORITY from message.
func (p *PriorityAttr) GetFrom(m *stun.Message) error {
	v, err := m.Get(stun.AttrPriority)
	if err != nil {
		return err
	}
	if err = stun.CheckSize(stun.AttrPriority, len(v), prioritySize); err != nil {
		return err
	}
	*p = PriorityAttr(binary.BigEndian.Uint32(v))

	return nil
}
