// SPDX-FileCopyrightText: 2023 The Pion community <https://pion.ly>
// SPDX-License-Identifier: MIT

package ice4j

import (
	"net"

	"github.com/pion/stun/v2"
	"github.com/wenrei/ice4j/internal/ipnet"
	"github.com/wenrei/ice4j/internal/proto"
)

// CreateBindingRequest creates a binding request carrying no attributes.
func CreateBindingRequest() (*stun.Message, error) {
	return assemble(stun.BindingRequest)
}

// CreatePriorityBindingRequest creates a binding request carrying the ICE
// PRIORITY attribute.
func CreatePriorityBindingRequest(priority uint32) (*stun.Message, error) {
	return assemble(stun.BindingRequest, proto.PriorityAttr(priority))
}

// CreateICEBindingRequest creates a connectivity-check binding request. The
// request carries PRIORITY followed by ICE-CONTROLLING when the agent is in
// the controlling role, or ICE-CONTROLLED otherwise.
func CreateICEBindingRequest(priority uint32, controlling bool, tieBreaker uint64) (*stun.Message, error) {
	role := stun.Setter(proto.ICEControlled(tieBreaker))
	if controlling {
		role = proto.ICEControlling(tieBreaker)
	}

	return assemble(stun.BindingRequest, proto.PriorityAttr(priority), role)
}

// CreateLegacyBindingResponse creates an RFC 3489 style binding response
// with a plain MAPPED-ADDRESS. SOURCE-ADDRESS and CHANGED-ADDRESS were
// dropped in RFC 5389; they are appended only when non-nil.
func CreateLegacyBindingResponse(req *stun.Message, mapped, source, changed net.Addr) (*stun.Message, error) {
	ip, port, err := ipnet.AddrIPPort(mapped)
	if err != nil {
		return nil, err
	}

	attrs := []stun.Setter{&stun.MappedAddress{IP: ip, Port: port}}
	if source != nil {
		sIP, sPort, sErr := ipnet.AddrIPPort(source)
		if sErr != nil {
			return nil, sErr
		}
		attrs = append(attrs, proto.SourceAddress{IP: sIP, Port: sPort})
	}
	if changed != nil {
		cIP, cPort, cErr := ipnet.AddrIPPort(changed)
		if cErr != nil {
			return nil, cErr
		}
		attrs = append(attrs, proto.ChangedAddress{IP: cIP, Port: cPort})
	}

	return assembleFor(req, stun.BindingSuccess, attrs...)
}

// CreateBindingResponse creates an RFC 5389 binding response whose single
// XOR-MAPPED-ADDRESS is derived from the transaction ID of req, never from
// a freshly generated one.
func CreateBindingResponse(req *stun.Message, mapped net.Addr) (*stun.Message, error) {
	ip, port, err := ipnet.AddrIPPort(mapped)
	if err != nil {
		return nil, err
	}

	return assembleFor(req, stun.BindingSuccess, &stun.XORMappedAddress{IP: ip, Port: port})
}

// CreateBindingErrorResponse creates a binding error response for req. An
// empty reason selects the default reason phrase for the code. The
// UNKNOWN-ATTRIBUTES list is appended only when non-empty.
func CreateBindingErrorResponse(
	req *stun.Message,
	code stun.ErrorCode,
	reason string,
	unknown []stun.AttrType,
) (*stun.Message, error) {
	attrs := []stun.Setter{errorCode(code, reason)}
	if len(unknown) > 0 {
		attrs = append(attrs, stun.UnknownAttributes(unknown))
	}

	return assembleFor(req, stun.BindingError, attrs...)
}

// CreateUnknownAttributesErrorResponse creates a binding error response
// carrying error code 420 and the offending attribute types.
func CreateUnknownAttributesErrorResponse(req *stun.Message, unknown ...stun.AttrType) (*stun.Message, error) {
	return CreateBindingErrorResponse(req, stun.CodeUnknownAttribute, "", unknown)
}

func errorCode(code stun.ErrorCode, reason string) stun.Setter {
	if reason == "" {
		return code
	}

	return &stun.ErrorCodeAttribute{Code: code, Reason: []byte(reason)}
}
