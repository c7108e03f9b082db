package autherrors

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMessage(t *testing.T) {
	assert.Equal(t, "Incorrect password. Please try again.", Message("auth/wrong-password", ProviderAuth))
	assert.Equal(t, "No account found with this email. Please sign up first.", AuthMessage("auth/user-not-found"))

	// Provider table is consulted first only for Google.
	assert.Equal(t, "Sign-in cancelled or no credentials available.", GoogleMessage("12501"))
	assert.Equal(t, "Unable to complete the operation. Please try again.", Message("12501", ProviderAuth))

	// Unknown codes fall back to the generic message.
	assert.Equal(t, "Unable to complete the operation. Please try again.", AuthMessage("auth/some-future-code"))
}

func TestProcessCodeShapes(t *testing.T) {
	t.Run("Bare String", func(t *testing.T) {
		assert.Equal(t, "Incorrect password. Please try again.", Process("auth/wrong-password"))
		assert.Equal(t, "Unable to complete the operation. Please try again.", Process("unrecognized-code-xyz"))
	})

	t.Run("Code Field", func(t *testing.T) {
		msg := Process(map[string]any{"code": "auth/wrong-password"})
		assert.Equal(t, "Incorrect password. Please try again.", msg)
	})

	t.Run("ErrorCode Field", func(t *testing.T) {
		msg := Process(map[string]any{"errorCode": "auth/user-disabled"})
		assert.Equal(t, "This account has been disabled. Please contact support.", msg)
	})

	t.Run("Embedded Code Message", func(t *testing.T) {
		msg := Process(map[string]any{"message": "auth/user-not-found: no user"})
		assert.Equal(t, "No account found with this email. Please sign up first.", msg)
	})

	t.Run("Code With Trailing Description", func(t *testing.T) {
		msg := Process(map[string]any{"code": "auth/wrong-password: the password is invalid"})
		assert.Equal(t, "Incorrect password. Please try again.", msg)
	})

	t.Run("Google Provider Routing", func(t *testing.T) {
		msg := Process(map[string]any{"code": "12501", "message": "Google sign-in did not complete"})
		assert.Equal(t, "Sign-in cancelled or no credentials available.", msg)
	})
}

func TestProcessHeuristics(t *testing.T) {
	t.Run("Credentials", func(t *testing.T) {
		msg := Process(map[string]any{"message": "the password was incorrect"})
		assert.Equal(t, "Invalid credentials. Please check your email and password.", msg)
	})

	t.Run("Network", func(t *testing.T) {
		msg := Process(map[string]any{"message": "lost connection to server"})
		assert.Equal(t, "Network error. Please check your connection and try again.", msg)
	})

	t.Run("Generic", func(t *testing.T) {
		msg := Process(map[string]any{"message": "something odd happened"})
		assert.Equal(t, "An error occurred. Please try again.", msg)
	})

	t.Run("Unmatched Code With Message", func(t *testing.T) {
		msg := Process(map[string]any{"code": "weird-code", "message": "wrong something"})
		assert.Equal(t, "Invalid credentials. Please check your email and password.", msg)
	})
}

func TestProcessDefensive(t *testing.T) {
	fallback := "An unexpected error occurred. Please try again."

	assert.Equal(t, fallback, Process(nil))
	assert.Equal(t, fallback, Process(42))
	assert.Equal(t, fallback, Process(map[string]any{}))
	assert.Equal(t, fallback, Process(map[string]any{"code": 123, "message": 456}))

	// error values are treated as raw messages.
	msg := Process(errors.New("network unreachable"))
	assert.Equal(t, "Network error. Please check your connection and try again.", msg)
}
