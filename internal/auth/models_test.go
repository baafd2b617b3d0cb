package auth

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gatherly/internal/users"
)

func TestAuthResponseCarriesTokenKey(t *testing.T) {
	// login/register clients read the access token from "token"
	resp := AuthResponse{
		Token:   "access-abc",
		Access:  "access-abc",
		Refresh: "refresh-def",
		User:    users.UserResponse{ID: "user-1", Email: "asha@example.com"},
	}

	raw, err := json.Marshal(resp)
	require.NoError(t, err)

	var keys map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(raw, &keys))
	assert.Contains(t, keys, "token")
	assert.Equal(t, `"access-abc"`, string(keys["token"]))
	assert.Contains(t, keys, "user")
}
