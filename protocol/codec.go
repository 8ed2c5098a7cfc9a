package protocol

import (
	"encoding/json"
	"fmt"
)

// Frames are flat JSON objects carrying a "type" discriminator next to the
// payload fields, e.g. {"type":"move","dx":1,"dy":0}. Encode splices the
// discriminator into the marshaled payload so the payload structs stay
// free of it.

func Encode(t string, payload any) ([]byte, error) {
	if t == "" {
		return nil, fmt.Errorf("trying to encode frame with empty type")
	}
	if payload == nil {
		payload = struct{}{}
	}
	pb, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	if len(pb) < 2 || pb[0] != '{' {
		return nil, fmt.Errorf("payload for %q is not a JSON object", t)
	}
	tb, err := json.Marshal(t)
	if err != nil {
		return nil, err
	}
	out := append([]byte(`{"type":`), tb...)
	if len(pb) == 2 { // payload marshaled to "{}"
		return append(out, '}'), nil
	}
	out = append(out, ',')
	return append(out, pb[1:]...), nil
}

// DecodeType sniffs the discriminator without touching the rest of the frame.
func DecodeType(b []byte) (string, error) {
	if len(b) == 0 {
		return "", fmt.Errorf("trying to decode empty frame")
	}
	var head struct {
		Type string `json:"type"`
	}
	if err := json.Unmarshal(b, &head); err != nil {
		return "", err
	}
	if head.Type == "" {
		return "", fmt.Errorf("frame missing type field")
	}
	return head.Type, nil
}

// DecodePayload unmarshals the whole frame into the payload struct for its
// type. The extra "type" key is simply ignored by encoding/json.
func DecodePayload[T any](b []byte) (T, error) {
	var out T
	if len(b) == 0 {
		return out, fmt.Errorf("empty frame")
	}
	err := json.Unmarshal(b, &out)
	return out, err
}
