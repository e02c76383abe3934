// File: utils/constants.go
package utils

import "time"

// SessionKeyPrefix is the prefix used for Redis booking session keys.
const SessionKeyPrefix = "booking:session:"

// SessionTTL is the time-to-live for an in-progress booking session.
const SessionTTL = 30 * time.Minute

// LoginCodeTTL is the time-to-live for login verification codes.
const LoginCodeTTL = 5 * time.Minute
