// Package jsoncodec registers a JSON codec with gRPC. The platform's service
// contracts are hand-maintained Go structs rather than protoc output, so
// messages travel as JSON frames; clients opt in per connection with
// grpc.CallContentSubtype(jsoncodec.Name).
package jsoncodec

import (
	"encoding/json"
	"fmt"

	"google.golang.org/grpc/encoding"
)

// Name is the content-subtype the codec is registered under.
const Name = "json"

func init() {
	encoding.RegisterCodec(codec{})
}

type codec struct{}

func (codec) Marshal(v any) ([]byte, error) {
	return json.Marshal(v)
}

func (codec) Unmarshal(data []byte, v any) error {
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("json codec: %w", err)
	}
	return nil
}

func (codec) Name() string { return Name }
