package proto

import (
	"fmt"

	"google.golang.org/grpc/encoding"
	protobuf "google.golang.org/protobuf/proto"
)

// CodecName matches the default gRPC content-subtype so plain protobuf
// clients (including ones generated from api/authentication.proto in other
// languages) interoperate without extra configuration.
const CodecName = "proto"

// Codec encodes WireMessage values directly and falls back to the protobuf
// runtime for generated messages such as grpc.health.v1.
type Codec struct{}

var _ encoding.Codec = Codec{}

func (Codec) Name() string { return CodecName }

func (Codec) Marshal(v any) ([]byte, error) {
	switch m := v.(type) {
	case WireMessage:
		return m.MarshalWire(), nil
	case protobuf.Message:
		return protobuf.Marshal(m)
	default:
		return nil, fmt.Errorf("proto codec: cannot marshal %T", v)
	}
}

func (Codec) Unmarshal(data []byte, v any) error {
	switch m := v.(type) {
	case WireMessage:
		return m.UnmarshalWire(data)
	case protobuf.Message:
		return protobuf.Unmarshal(data, m)
	default:
		return fmt.Errorf("proto codec: cannot unmarshal into %T", v)
	}
}
