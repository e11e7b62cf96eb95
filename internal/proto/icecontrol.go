// SPDX-FileCopyrightText: 2023 The Pion community <https://pion.ly>
// SPDX-License-Identifier: MIT

package proto

import (
	"encoding/binary"

	"github.com/pion/stun/v2"
)

// ICE-CONTROLLING and ICE-CONTROLLED both carry the agent's 64-bit
// tie-breaker value used to resolve role conflicts.
//
// See https://tools.ietf.org/html/rfc8445#section-7.1.3

// uint64 tie-breaker.
const tieBreakerSize = 8

// ICEControlling represents ICE-CONTROLLING attribute.
type ICEControlling uint64

// AddTo adds ICE-CONTROLLING to message.
func (c ICEControlling) AddTo(m *stun.Message) error {
	return addTieBreaker(m, stun.AttrICEControlling, uint64(c))
}

// GetFrom decodes ICE-CONTROLLING from message.
func (c *ICEControlling) GetFrom(m *stun.Message) error {
	v, err := getTieBreaker(m, stun.AttrICEControlling)
	*c = ICEControlling(v)

	return err
}

// ICEControlled represents ICE-CONTROLLED attribute.
type ICEControlled uint64

// AddTo adds ICE-CONTROLLED to message.
func (c ICEControlled) AddTo(m *stun.Message) error {
	return addTieBreaker(m, stun.AttrICEControlled, uint64(c))
}

// GetFrom decodes ICE-CONTROLLED from message.
func (c *ICEControlled) GetFrom(m *stun.Message) error {
	v, err := getTieBreaker(m, stun.AttrICEControlled)
	*c = ICEControlled(v)

	return err
}

func addTieBreaker(m *stun.Message, t stun.AttrType, tieBreaker uint64) error {
	v := make([]byte, tieBreakerSize)
	binary.BigEndian.PutUint64(v, tieBreaker)
	m.Add(t, v)

	return nil
}

func getTieBreaker(m *stun.Message, t stun.AttrType) (uint64, error) {
	v, err := m.Get(t)
	if err != nil {
		return 0, err
	}
	if err = stun.CheckSize(t, len(v), tieBreakerSize); err != nil {
		return 0, err
	}

	return binary.BigEndian.Uint64(v), nil
}
