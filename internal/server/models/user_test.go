package models

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUser_PublicHasNoHash(t *testing.T) {
	now := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	u := &User{
		ID:           "u-1",
		Email:        "a@x.com",
		PasswordHash: "$2a$10$secret",
		FirstName:    "A",
		LastName:     "B",
		IsActive:     true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	p := u.Public()
	b, err := json.Marshal(p)
	require.NoError(t, err)

	assert.NotContains(t, string(b), "secret")
	assert.NotContains(t, string(b), "password")
	assert.JSONEq(t, `{"id":"u-1","email":"a@x.com","firstName":"A","lastName":"B","isActive":true,
		"createdAt":"2026-01-02T03:04:05Z","updatedAt":"2026-01-02T03:04:05Z"}`, string(b))

	assert.Equal(t, UserSummary{ID: "u-1", Email: "a@x.com", FirstName: "A", LastName: "B"}, p.Summary())
}
