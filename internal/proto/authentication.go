// Package proto holds the Go types for the authentication.Auth service
// described in api/authentication.proto, together with their protobuf wire
// encoding and the gRPC client/server bindings.
package proto

import (
	"errors"
	"fmt"
	"strconv"
	"unicode/utf8"

	"google.golang.org/protobuf/encoding/protowire"
)

type StatusCode int32

const (
	StatusCode_STATUS_CODE_UNSPECIFIED StatusCode = 0
	StatusCode_OK                      StatusCode = 1
	StatusCode_INVALID_ARGUMENT        StatusCode = 2
	StatusCode_ALREADY_EXISTS          StatusCode = 3
	StatusCode_INCORRECT_CREDENTIALS   StatusCode = 4
	StatusCode_INTERNAL                StatusCode = 5
)

var StatusCode_name = map[int32]string{
	0: "STATUS_CODE_UNSPECIFIED",
	1: "OK",
	2: "INVALID_ARGUMENT",
	3: "ALREADY_EXISTS",
	4: "INCORRECT_CREDENTIALS",
	5: "INTERNAL",
}

func (x StatusCode) String() string {
	if name, ok := StatusCode_name[int32(x)]; ok {
		return name
	}
	return strconv.Itoa(int(x))
}

// ErrInvalidUTF8 is returned when a string field does not hold valid UTF-8.
var ErrInvalidUTF8 = errors.New("proto: string field contains invalid UTF-8")

// WireMessage is implemented by every request and response type.
type WireMessage interface {
	MarshalWire() []byte
	UnmarshalWire(b []byte) error
}

type SignUpRequest struct {
	Username string
	Password string
}

func (x *SignUpRequest) GetUsername() string {
	if x != nil {
		return x.Username
	}
	return ""
}

func (x *SignUpRequest) GetPassword() string {
	if x != nil {
		return x.Password
	}
	return ""
}

// String never includes the password.
func (x *SignUpRequest) String() string {
	return fmt.Sprintf("SignUpRequest{username: %q}", x.GetUsername())
}

func (x *SignUpRequest) MarshalWire() []byte {
	var b []byte
	b = appendString(b, 1, x.Username)
	b = appendString(b, 2, x.Password)
	return b
}

func (x *SignUpRequest) UnmarshalWire(b []byte) error {
	*x = SignUpRequest{}
	return consumeFields(b, func(num protowire.Number, typ protowire.Type, b []byte) (int, error) {
		switch {
		case num == 1 && typ == protowire.BytesType:
			return consumeString(b, &x.Username)
		case num == 2 && typ == protowire.BytesType:
			return consumeString(b, &x.Password)
		}
		return skipField(num, typ, b)
	})
}

type SignUpResponse struct {
	StatusCode StatusCode
}

func (x *SignUpResponse) GetStatusCode() StatusCode {
	if x != nil {
		return x.StatusCode
	}
	return StatusCode_STATUS_CODE_UNSPECIFIED
}

func (x *SignUpResponse) String() string {
	return fmt.Sprintf("SignUpResponse{status_code: %s}", x.GetStatusCode())
}

func (x *SignUpResponse) MarshalWire() []byte {
	return appendEnum(nil, 1, int32(x.StatusCode))
}

func (x *SignUpResponse) UnmarshalWire(b []byte) error {
	*x = SignUpResponse{}
	return consumeFields(b, func(num protowire.Number, typ protowire.Type, b []byte) (int, error) {
		if num == 1 && typ == protowire.VarintType {
			return consumeEnum(b, &x.StatusCode)
		}
		return skipField(num, typ, b)
	})
}

type SignInRequest struct {
	Username string
	Password string
}

func (x *SignInRequest) GetUsername() string {
	if x != nil {
		return x.Username
	}
	return ""
}

func (x *SignInRequest) GetPassword() string {
	if x != nil {
		return x.Password
	}
	return ""
}

// String never includes the password.
func (x *SignInRequest) String() string {
	return fmt.Sprintf("SignInRequest{username: %q}", x.GetUsername())
}

func (x *SignInRequest) MarshalWire() []byte {
	var b []byte
	b = appendString(b, 1, x.Username)
	b = appendString(b, 2, x.Password)
	return b
}

func (x *SignInRequest) UnmarshalWire(b []byte) error {
	*x = SignInRequest{}
	return consumeFields(b, func(num protowire.Number, typ protowire.Type, b []byte) (int, error) {
		switch {
		case num == 1 && typ == protowire.BytesType:
			return consumeString(b, &x.Username)
		case num == 2 && typ == protowire.BytesType:
			return consumeString(b, &x.Password)
		}
		return skipField(num, typ, b)
	})
}

type SignInResponse struct {
	StatusCode   StatusCode
	UserUuid     string
	SessionToken string
}

func (x *SignInResponse) GetStatusCode() StatusCode {
	if x != nil {
		return x.StatusCode
	}
	return StatusCode_STATUS_CODE_UNSPECIFIED
}

func (x *SignInResponse) GetUserUuid() string {
	if x != nil {
		return x.UserUuid
	}
	return ""
}

func (x *SignInResponse) GetSessionToken() string {
	if x != nil {
		return x.SessionToken
	}
	return ""
}

func (x *SignInResponse) String() string {
	return fmt.Sprintf("SignInResponse{status_code: %s, user_uuid: %q, session_token: %q}",
		x.GetStatusCode(), x.GetUserUuid(), x.GetSessionToken())
}

func (x *SignInResponse) MarshalWire() []byte {
	var b []byte
	b = appendEnum(b, 1, int32(x.StatusCode))
	b = appendString(b, 2, x.UserUuid)
	b = appendString(b, 3, x.SessionToken)
	return b
}

func (x *SignInResponse) UnmarshalWire(b []byte) error {
	*x = SignInResponse{}
	return consumeFields(b, func(num protowire.Number, typ protowire.Type, b []byte) (int, error) {
		switch {
		case num == 1 && typ == protowire.VarintType:
			return consumeEnum(b, &x.StatusCode)
		case num == 2 && typ == protowire.BytesType:
			return consumeString(b, &x.UserUuid)
		case num == 3 && typ == protowire.BytesType:
			return consumeString(b, &x.SessionToken)
		}
		return skipField(num, typ, b)
	})
}

type SignOutRequest struct {
	SessionToken string
}

func (x *SignOutRequest) GetSessionToken() string {
	if x != nil {
		return x.SessionToken
	}
	return ""
}

func (x *SignOutRequest) String() string {
	return "SignOutRequest{}"
}

func (x *SignOutRequest) MarshalWire() []byte {
	return appendString(nil, 1, x.SessionToken)
}

func (x *SignOutRequest) UnmarshalWire(b []byte) error {
	*x = SignOutRequest{}
	return consumeFields(b, func(num protowire.Number, typ protowire.Type, b []byte) (int, error) {
		if num == 1 && typ == protowire.BytesType {
			return consumeString(b, &x.SessionToken)
		}
		return skipField(num, typ, b)
	})
}

type SignOutResponse struct {
	StatusCode StatusCode
}

func (x *SignOutResponse) GetStatusCode() StatusCode {
	if x != nil {
		return x.StatusCode
	}
	return StatusCode_STATUS_CODE_UNSPECIFIED
}

func (x *SignOutResponse) String() string {
	return fmt.Sprintf("SignOutResponse{status_code: %s}", x.GetStatusCode())
}

func (x *SignOutResponse) MarshalWire() []byte {
	return appendEnum(nil, 1, int32(x.StatusCode))
}

func (x *SignOutResponse) UnmarshalWire(b []byte) error {
	*x = SignOutResponse{}
	return consumeFields(b, func(num protowire.Number, typ protowire.Type, b []byte) (int, error) {
		if num == 1 && typ == protowire.VarintType {
			return consumeEnum(b, &x.StatusCode)
		}
		return skipField(num, typ, b)
	})
}

// proto3 scalar encoding: zero values are omitted.

func appendString(b []byte, num protowire.Number, s string) []byte {
	if s == "" {
		return b
	}
	b = protowire.AppendTag(b, num, protowire.BytesType)
	return protowire.AppendString(b, s)
}

func appendEnum(b []byte, num protowire.Number, v int32) []byte {
	if v == 0 {
		return b
	}
	b = protowire.AppendTag(b, num, protowire.VarintType)
	return protowire.AppendVarint(b, uint64(int64(v)))
}

func consumeFields(b []byte, field func(num protowire.Number, typ protowire.Type, b []byte) (int, error)) error {
	for len(b) > 0 {
		num, typ, n := protowire.ConsumeTag(b)
		if n < 0 {
			return protowire.ParseError(n)
		}
		b = b[n:]

		n, err := field(num, typ, b)
		if err != nil {
			return err
		}
		b = b[n:]
	}
	return nil
}

func consumeString(b []byte, dst *string) (int, error) {
	v, n := protowire.ConsumeString(b)
	if n < 0 {
		return 0, protowire.ParseError(n)
	}
	if !utf8.ValidString(v) {
		return 0, ErrInvalidUTF8
	}
	*dst = v
	return n, nil
}

func consumeEnum(b []byte, dst *StatusCode) (int, error) {
	v, n := protowire.ConsumeVarint(b)
	if n < 0 {
		return 0, protowire.ParseError(n)
	}
	*dst = StatusCode(int32(v))
	return n, nil
}

func skipField(num protowire.Number, typ protowire.Type, b []byte) (int, error) {
	n := protowire.ConsumeFieldValue(num, typ, b)
	if n < 0 {
		return 0, protowire.ParseError(n)
	}
	return n, nil
}
