// SPDX-FileCopyrightText: 2023 The Pion community <https://pion.ly>
// SPDX-License-Identifier: MIT

package ice4j

import (
	"github.com/pion/randutil"
	"github.com/pion/stun/v2"
)

// Attribute size limits from RFC 5389 sections 15.3, 15.7 and 15.8.
const (
	maxUsernameLength = 513
	maxRealmLength    = 763
	maxNonceLength    = 763
)

// AuthenticatedMessage is a message whose long-term credential attributes
// have been appended. No further attributes may be added to it; the only
// operations left are the terminal integrity pair (WithIntegrity) or
// handing the message back as-is (Finish).
type AuthenticatedMessage struct {
	msg      *stun.Message
	username string
	realm    string
}

// AddLongTermAuth appends USERNAME, REALM and NONCE to msg, in that order,
// and moves it into the authenticated state. msg must not be touched by the
// caller until the returned wrapper has been finished.
func AddLongTermAuth(msg *stun.Message, username, realm, nonce string) (*AuthenticatedMessage, error) {
	switch {
	case msg == nil:
		return nil, errNilMessage
	case username == "":
		return nil, ErrUsernameEmpty
	case len(username) > maxUsernameLength:
		return nil, ErrUsernameTooLong
	case len(realm) > maxRealmLength:
		return nil, ErrRealmTooLong
	case len(nonce) > maxNonceLength:
		return nil, ErrNonceTooLong
	}

	attrs := []stun.Setter{
		stun.NewUsername(username),
		stun.NewRealm(realm),
		stun.NewNonce(nonce),
	}
	for _, a := range attrs {
		if err := a.AddTo(msg); err != nil {
			return nil, err
		}
	}

	return &AuthenticatedMessage{msg: msg, username: username, realm: realm}, nil
}

// WithIntegrity appends the terminal MESSAGE-INTEGRITY and FINGERPRINT
// pair, keyed with the long-term credential derived from the username,
// realm and password, and returns the finished message.
func (a *AuthenticatedMessage) WithIntegrity(password string) (*stun.Message, error) {
	if a.msg == nil {
		return nil, errAlreadyFinished
	}

	integrity := stun.NewLongTermIntegrity(a.username, a.realm, password)
	if err := integrity.AddTo(a.msg); err != nil {
		return nil, err
	}
	if err := stun.Fingerprint.AddTo(a.msg); err != nil {
		return nil, err
	}

	return a.finish(), nil
}

// Finish returns the message without an integrity pair, leaving the
// MESSAGE-INTEGRITY and FINGERPRINT computation to the caller's
// authentication layer. Returns nil if the message was already finished.
func (a *AuthenticatedMessage) Finish() *stun.Message {
	return a.finish()
}

func (a *AuthenticatedMessage) finish() *stun.Message {
	msg := a.msg
	a.msg = nil

	return msg
}

const nonceLength = 16

// GenerateNonce returns a fresh nonce for the long-term credential
// exchange.
func GenerateNonce() (string, error) {
	return randutil.GenerateCryptoRandomString(nonceLength, "abcdefghijklmnopqrstuvwxyz1234567890")
}
