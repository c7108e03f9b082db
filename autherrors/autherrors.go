// Package autherrors maps opaque identity-provider error codes to the
// user-facing messages shown by the login and signup screens. The
// upstream provider is inconsistent about where it places the
// machine-readable code, so extraction is defensive: any input resolves
// to some message, never to an error.
package autherrors

import "strings"

// Provider selects which lookup table is consulted first.
type Provider string

const (
	ProviderAuth   Provider = "auth"
	ProviderGoogle Provider = "google"
)

const (
	// Returned when a code is present but matches no table.
	msgUnknownCode = "Unable to complete the operation. Please try again."
	// Heuristic matches on raw messages without a code.
	msgBadCredentials = "Invalid credentials. Please check your email and password."
	msgNetwork        = "Network error. Please check your connection and try again."
	msgGenericError   = "An error occurred. Please try again."
	// Absolute fallback for unusable input.
	msgUnexpected = "An unexpected error occurred. Please try again."
)

var authMessages = map[string]string{
	// Email/password
	"auth/user-not-found":            "No account found with this email. Please sign up first.",
	"auth/wrong-password":            "Incorrect password. Please try again.",
	"auth/invalid-email":             "Please enter a valid email address.",
	"auth/invalid-login-credentials": "Invalid email or password. Please try again.",
	"auth/invalid-credential":        "Invalid credentials. Please check your email and password.",
	"auth/wrong-credentials":         "Wrong credentials. Please try again.",

	// Account state
	"auth/user-disabled":      "This account has been disabled. Please contact support.",
	"auth/user-token-expired": "Session expired. Please sign in again.",
	"auth/account-exists-with-different-credential": "An account with this email already exists with a different sign-in method.",

	// Network
	"auth/network-request-failed": "Network error. Please check your connection and try again.",
	"auth/too-many-requests":      "Too many attempts. Please try again later.",

	// Phone
	"auth/invalid-phone-number": "Please enter a valid phone number.",
	"auth/missing-phone-number": "Phone number is required.",

	// General
	"auth/operation-not-allowed":      "This sign-in method is not enabled. Please contact support.",
	"auth/weak-password":              "Password is too weak. Please use a stronger password.",
	"auth/email-already-in-use":       "An account with this email already exists.",
	"auth/captcha-check-failed":       "Captcha verification failed. Please try again.",
	"auth/invalid-verification-code":  "Invalid verification code. Please try again.",
	"auth/invalid-verification-id":    "Verification ID is invalid. Please try again.",

	// Google sign-in surfaced through the auth namespace
	"auth/google-sign-in-error":  "Unable to sign in with Google. Please try again.",
	"auth/popup-closed-by-user":  "Sign-in popup was closed. Please try again.",
	"auth/popup-blocked":         "Sign-in popup was blocked. Please allow popups for this site.",

	// Less common
	"auth/app-deleted":           "Application has been deleted. Please restart the app.",
	"auth/app-not-authorized":    "This app is not authorized to use the authentication service.",
	"auth/argument-error":        "Invalid argument provided to authentication method.",
	"auth/invalid-api-key":       "API key is invalid.",
	"auth/invalid-user-token":    "User token is invalid. Please sign in again.",
	"auth/requires-recent-login": "Please sign in again to perform this operation.",
	"auth/unauthorized-domain":   "Domain is not authorized for OAuth operations.",
	"auth/user-mismatch":         "Account does not match the current user.",
	"auth/user-signed-out":       "User is signed out. Please sign in again.",
	"auth/timeout":               "Request timed out. Please try again.",
}

var providerMessages = map[string]string{
	// Google sign-in SDK status codes
	"-1":            "Google Sign-In was cancelled.",
	"12500":         "Google Play Services error. Please check your Google Play Services installation.",
	"12501":         "Sign-in cancelled or no credentials available.",
	"12502":         "Google Sign-In requires Google Play Services.",
	"NETWORK_ERROR": "Network error. Please check your connection and try again.",
}

// lookup resolves a code against the tables: the provider table first
// when provider is Google, then the general auth table.
func lookup(code string, provider Provider) (string, bool) {
	if provider == ProviderGoogle {
		if msg, ok := providerMessages[code]; ok {
			return msg, true
		}
	}
	msg, ok := authMessages[code]
	return msg, ok
}

// Message resolves a code to a display string, falling back to the
// unknown-code message when no table matches.
func Message(code string, provider Provider) string {
	if msg, ok := lookup(code, provider); ok {
		return msg
	}
	return msgUnknownCode
}

// AuthMessage resolves a code against the auth table.
func AuthMessage(code string) string {
	return Message(code, ProviderAuth)
}

// GoogleMessage resolves a Google sign-in status code.
func GoogleMessage(code string) string {
	return Message(code, ProviderGoogle)
}

// parsed is the result of shape extraction: an optional code plus the
// raw message, if any.
type parsed struct {
	code    string
	message string
}

// parse pulls a code and message out of the known provider error shapes:
// a bare string code, a payload with a code field, a payload with an
// errorCode field, or a message embedding "auth/<code>: description".
func parse(v any) parsed {
	switch e := v.(type) {
	case string:
		return parsed{code: e}
	case error:
		return parse(map[string]any{"message": e.Error()})
	case map[string]any:
		p := parsed{}
		p.code = stringField(e, "code")
		if p.code == "" {
			p.code = stringField(e, "errorCode")
		}
		p.message = stringField(e, "message")
		if p.message == "" {
			p.message = stringField(e, "errorMessage")
		}
		if p.code == "" && strings.Contains(p.message, "auth/") {
			p.code = strings.TrimSpace(strings.SplitN(p.message, ":", 2)[0])
		}
		return p
	default:
		return parsed{}
	}
}

func stringField(m map[string]any, key string) string {
	if s, ok := m[key].(string); ok {
		return s
	}
	return ""
}

// Process turns an arbitrary provider error into a user-facing message.
// Lookup order: provider table when the payload points at Google, then
// the auth table, then substring heuristics over the raw message, then
// the absolute fallback. It never fails.
func Process(v any) string {
	p := parse(v)

	if p.code != "" {
		code := p.code
		if strings.Contains(code, "auth/") {
			// A message of the "auth/<code>: description" form may have
			// landed in the code slot whole; keep only the code.
			code = strings.TrimSpace(strings.SplitN(code, ":", 2)[0])
		}
		provider := ProviderAuth
		if strings.Contains(strings.ToLower(p.message), "google") {
			provider = ProviderGoogle
		}
		if msg, ok := lookup(code, provider); ok {
			return msg
		}
		if p.message == "" {
			return msgUnknownCode
		}
	}

	if p.message != "" {
		lower := strings.ToLower(p.message)
		switch {
		case strings.Contains(lower, "wrong"),
			strings.Contains(lower, "incorrect"),
			strings.Contains(lower, "invalid"):
			return msgBadCredentials
		case strings.Contains(lower, "network"),
			strings.Contains(lower, "connection"):
			return msgNetwork
		default:
			return msgGenericError
		}
	}

	return msgUnexpected
}
