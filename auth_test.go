// SPDX-FileCopyrightText: 2023 The Pion community <https://pion.ly>
// SPDX-License-Identifier: MIT

package ice4j

import (
	"strings"
	"testing"

	"github.com/pion/stun/v2"
	"github.com/stretchr/testify/assert"
)

func TestAddLongTermAuth(t *testing.T) {
	m, err := CreateAllocateRequest()
	assert.NoError(t, err)

	authed, err := AddLongTermAuth(m, "user", "pion.ly", "nonce1234")
	assert.NoError(t, err)

	// USERNAME, REALM, NONCE, in that order.
	assert.Len(t, m.Attributes, 3)
	assert.Equal(t, stun.AttrUsername, m.Attributes[0].Type)
	assert.Equal(t, stun.AttrRealm, m.Attributes[1].Type)
	assert.Equal(t, stun.AttrNonce, m.Attributes[2].Type)

	var username stun.Username
	assert.NoError(t, username.GetFrom(m))
	assert.Equal(t, "user", username.String())

	var realm stun.Realm
	assert.NoError(t, realm.GetFrom(m))
	assert.Equal(t, "pion.ly", realm.String())

	var nonce stun.Nonce
	assert.NoError(t, nonce.GetFrom(m))
	assert.Equal(t, "nonce1234", nonce.String())

	t.Run("Finish", func(t *testing.T) {
		finished := authed.Finish()
		assert.Equal(t, m, finished)
		assert.Len(t, finished.Attributes, 3)

		// Terminal: nothing left once finished.
		assert.Nil(t, authed.Finish())
		_, err := authed.WithIntegrity("pass")
		assert.Error(t, err)
	})
}

func TestAddLongTermAuthValidation(t *testing.T) {
	m, err := CreateAllocateRequest()
	assert.NoError(t, err)

	long := strings.Repeat("a", 764)

	for name, tc := range map[string]struct {
		msg                    *stun.Message
		username, realm, nonce string
		wantErr                error
	}{
		"NilMessage":      {nil, "user", "realm", "nonce", errNilMessage},
		"EmptyUsername":   {m, "", "realm", "nonce", ErrUsernameEmpty},
		"UsernameTooLong": {m, long, "realm", "nonce", ErrUsernameTooLong},
		"RealmTooLong":    {m, "user", long, "nonce", ErrRealmTooLong},
		"NonceTooLong":    {m, "user", "realm", long, ErrNonceTooLong},
	} {
		tc := tc
		t.Run(name, func(t *testing.T) {
			authed, err := AddLongTermAuth(tc.msg, tc.username, tc.realm, tc.nonce)
			assert.Nil(t, authed)
			assert.ErrorIs(t, err, tc.wantErr)
		})
	}

	// A failed append leaves the message untouched.
	assert.Empty(t, m.Attributes)
}

func TestWithIntegrity(t *testing.T) {
	m, err := CreateAllocateRequest()
	assert.NoError(t, err)

	authed, err := AddLongTermAuth(m, "user", "pion.ly", "nonce1234")
	assert.NoError(t, err)

	finished, err := authed.WithIntegrity("secret")
	assert.NoError(t, err)
	assert.Equal(t, m, finished)

	// MESSAGE-INTEGRITY then FINGERPRINT close the message.
	n := len(finished.Attributes)
	assert.Equal(t, stun.AttrMessageIntegrity, finished.Attributes[n-2].Type)
	assert.Equal(t, stun.AttrFingerprint, finished.Attributes[n-1].Type)

	decoded := new(stun.Message)
	_, err = decoded.Write(finished.Raw)
	assert.NoError(t, err)

	integrity := stun.NewLongTermIntegrity("user", "pion.ly", "secret")
	assert.NoError(t, integrity.Check(decoded))
	assert.NoError(t, stun.Fingerprint.Check(decoded))

	t.Run("Terminal", func(t *testing.T) {
		_, err := authed.WithIntegrity("secret")
		assert.Error(t, err)
	})
}

func TestGenerateNonce(t *testing.T) {
	nonce, err := GenerateNonce()
	assert.NoError(t, err)
	assert.Len(t, nonce, 16)

	other, err := GenerateNonce()
	assert.NoError(t, err)
	assert.NotEqual(t, nonce, other)
}
