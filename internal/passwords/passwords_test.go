package passwords

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHash_EmptyPassword(t *testing.T) {
	hash, err := Hash("")
	assert.ErrorIs(t, err, ErrEmptyPassword)
	assert.Empty(t, hash)
}

func TestHash_NeverStoresPlaintext(t *testing.T) {
	hash, err := Hash("pw1")
	assert.NoError(t, err)
	assert.NotEqual(t, "pw1", hash)
	assert.NotContains(t, hash, "pw1")
}

func TestVerify(t *testing.T) {
	hash, err := Hash("secret123")
	assert.NoError(t, err)

	tests := []struct {
		name      string
		plaintext string
		want      bool
	}{
		{name: "correct password", plaintext: "secret123", want: true},
		{name: "wrong password", plaintext: "wrong", want: false},
		{name: "empty password", plaintext: "", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Verify(hash, tt.plaintext))
		})
	}
}

func TestVerify_GarbageHash(t *testing.T) {
	assert.False(t, Verify("not-a-bcrypt-hash", "secret123"))
}

func TestHash_DistinctSalts(t *testing.T) {
	h1, err := Hash("same password")
	assert.NoError(t, err)
	h2, err := Hash("same password")
	assert.NoError(t, err)
	assert.NotEqual(t, h1, h2)
	assert.True(t, Verify(h1, "same password"))
	assert.True(t, Verify(h2, "same password"))
}
