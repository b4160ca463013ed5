package cryptox

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFingerprint_Deterministic(t *testing.T) {
	a := Fingerprint([]byte("secret"))
	b := Fingerprint([]byte("secret"))

	assert.Equal(t, a, b)
	assert.Len(t, a, 12)
	assert.NotContains(t, a, "secret")
	assert.NotEqual(t, a, Fingerprint([]byte("secret2")))
}

func TestIsWeak(t *testing.T) {
	tests := []struct {
		name   string
		secret []byte
		want   bool
	}{
		{"empty", nil, true},
		{"short", []byte("change-me"), true},
		{"boundary", bytes.Repeat([]byte("x"), MinSecretLength), false},
		{"long", bytes.Repeat([]byte("x"), 64), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsWeak(tt.secret))
		})
	}
}
