// Package authrpc is the wire contract between the gateway and the
// authentication service: message types, a JSON gRPC codec and the service
// descriptor with its client stub.
package authrpc

import (
	"encoding/json"

	"google.golang.org/grpc/encoding"
	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/proto"
)

// Subtype is the gRPC content-subtype of the JSON codec
// (content-type application/grpc+json).
const Subtype = "json"

// Codec marshals plain Go structs with encoding/json and protobuf messages
// (health checks, reflection) with protojson.
type Codec struct{}

func (Codec) Marshal(v any) ([]byte, error) {
	if m, ok := v.(proto.Message); ok {
		return protojson.Marshal(m)
	}
	return json.Marshal(v)
}

func (Codec) Unmarshal(data []byte, v any) error {
	if m, ok := v.(proto.Message); ok {
		return protojson.Unmarshal(data, m)
	}
	return json.Unmarshal(data, v)
}

func (Codec) Name() string {
	return Subtype
}

func init() {
	encoding.RegisterCodec(Codec{})
}
