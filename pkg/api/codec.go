// Package api defines the messages exchanged by the Kirat Connect services
// and the JSON codec they are encoded with.
package api

import (
	json "github.com/goccy/go-json"
)

// Codec encodes plain Go messages as JSON. It is registered under the
// name "json", replacing Connect's protobuf-only JSON codec, so requests
// travel as application/json.
type Codec struct{}

// Name implements connect.Codec.
func (Codec) Name() string { return "json" }

// Marshal implements connect.Codec.
func (Codec) Marshal(msg any) ([]byte, error) {
	return json.Marshal(msg)
}

// Unmarshal implements connect.Codec.
func (Codec) Unmarshal(data []byte, msg any) error {
	return json.Unmarshal(data, msg)
}
