// Package cli implements the one-shot command-line client of the auth
// service.
//
// Usage:
//
//	cli sign-up  -u <username> [-p <password>]
//	cli sign-in  -u <username> [-p <password>]
//	cli sign-out -s <session token>
//
// When -u is omitted the username is read from stdin; when -p is omitted the
// password is read from the terminal without echo. Connection settings come
// from internal/client/config (AUTH_SERVICE_IP, -a, -n, ...).
package cli
