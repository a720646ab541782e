// Package client is the client side of the authentication.Auth service.
//
// # Overview
//
// Client is the transport-agnostic contract used by the CLI and the health
// checker: SignUp, SignIn and SignOut, each returning the server's status
// code. GRPCClient implements it over one persistent grpc.ClientConn that is
// reused for every call until Close.
//
// # Error Handling
//
// Domain outcomes (ALREADY_EXISTS, INCORRECT_CREDENTIALS, ...) are returned
// as status codes, not errors. Errors are reserved for transport failures;
// an unreachable server or an expired deadline is reported as ErrUnavailable,
// anything else is wrapped as "rpc error: ...". Match with errors.Is.
//
// # Concurrency & Contexts
//
// GRPCClient is safe for concurrent use. All operations accept a
// context.Context and honor cancellation.
package client
