package common

import "time"

// DefaultServicePort is the port the auth service listens on and clients dial.
const DefaultServicePort = 50051

// DefaultServiceHost binds (or dials) all interfaces.
const DefaultServiceHost = "[::0]"

// SessionTokenSize is the number of random bytes behind every session token.
const SessionTokenSize = 32

// DefaultSessionTTL is applied when no TTL is configured.
const DefaultSessionTTL = 24 * time.Hour
