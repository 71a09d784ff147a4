package repository

import (
	"errors"
)

// ==============================================
// STORE ERRORS
// ==============================================

// Shared by the in-memory and Postgres store implementations so callers can
// match with errors.Is regardless of which backend is wired.
var (
	ErrChallengeNotFound   = errors.New("challenge not found")
	ErrChallengeConsumed   = errors.New("challenge already consumed")
	ErrSessionNotFound     = errors.New("session not found")
	ErrApplicationNotFound = errors.New("application not found")
)
