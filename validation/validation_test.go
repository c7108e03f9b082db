package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateEmail(t *testing.T) {
	cases := []struct {
		email string
		valid bool
	}{
		{"a@b.co", true},
		{"user.name+tag@example.co.uk", true},
		{"a@b", false},
		{"ab.com", false},
		{"", false},
		{"a b@c.com", false},
		{"a@b c.com", false},
		{" a@b.co", false}, // no trimming by design
		{"a@@b.co", false},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.valid, ValidateEmail(tc.email), "email %q", tc.email)
	}
}

func TestValidatePassword(t *testing.T) {
	cases := []struct {
		password string
		valid    bool
	}{
		{"Abcdefg1", true},
		{"abcdefg1", false}, // no uppercase
		{"ABCDEFG1", false}, // no lowercase
		{"Abcdefgh", false}, // no digit
		{"Abcdefg", false},  // too short and no digit
		{"Abc123!", false},  // 7 chars
		{"Abc123!@", true},  // specials allowed, not required
		{"", false},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.valid, ValidatePassword(tc.password), "password %q", tc.password)
	}
}

func TestValidateLoginForm(t *testing.T) {
	t.Run("Valid", func(t *testing.T) {
		errs := ValidateLoginForm("a@b.co", "secret")
		assert.False(t, errs.HasErrors())
		// Clean fields are present with empty messages.
		assert.Contains(t, errs, "email")
		assert.Contains(t, errs, "password")
	})

	t.Run("Empty Fields", func(t *testing.T) {
		errs := ValidateLoginForm("", "")
		assert.Equal(t, "Email is required", errs["email"])
		assert.Equal(t, "Password is required", errs["password"])
	})

	t.Run("Bad Email", func(t *testing.T) {
		errs := ValidateLoginForm("not-an-email", "secret")
		assert.Equal(t, "Please enter a valid email address", errs["email"])
		assert.Empty(t, errs["password"])
	})

	t.Run("Short Password", func(t *testing.T) {
		// Login keeps the legacy 6-char minimum, not the signup policy.
		errs := ValidateLoginForm("a@b.co", "abc12")
		assert.Equal(t, "Password must be at least 6 characters", errs["password"])

		errs = ValidateLoginForm("a@b.co", "abc123")
		assert.Empty(t, errs["password"])
	})
}

func TestValidateSignupForm(t *testing.T) {
	t.Run("Valid", func(t *testing.T) {
		errs := ValidateSignupForm("Jo", "a@b.co", "Abc12345", "Abc12345")
		assert.False(t, errs.HasErrors())
	})

	t.Run("Empty Fields", func(t *testing.T) {
		errs := ValidateSignupForm("", "", "", "")
		assert.Equal(t, "Name is required", errs["name"])
		assert.Equal(t, "Email is required", errs["email"])
		assert.Equal(t, "Password is required", errs["password"])
		assert.Equal(t, "Please confirm your password", errs["confirmPassword"])
	})

	t.Run("Short Name", func(t *testing.T) {
		errs := ValidateSignupForm(" J ", "a@b.co", "Abc12345", "Abc12345")
		assert.Equal(t, "Name must be at least 2 characters", errs["name"])
	})

	t.Run("Weak Password", func(t *testing.T) {
		errs := ValidateSignupForm("Jo", "a@b.co", "abcdefg1", "abcdefg1")
		assert.Equal(t, "Password must be at least 8 chars with uppercase, lowercase, and number", errs["password"])
	})

	t.Run("Password Mismatch", func(t *testing.T) {
		errs := ValidateSignupForm("Jo", "a@b.co", "Abc12345", "Abc1234")
		assert.Equal(t, "Passwords do not match", errs["confirmPassword"])
		assert.Empty(t, errs["password"])
	})
}
