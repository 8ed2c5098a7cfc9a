package protocol

import (
	"encoding/json"
	"testing"
)

func TestEncodeSplicesTypeField(t *testing.T) {
	b, err := Encode(MsgMove, Move{DX: 1, DY: -0.5})
	if err != nil {
		t.Fatalf("encode: %v", err)
	}

	var raw map[string]any
	if err := json.Unmarshal(b, &raw); err != nil {
		t.Fatalf("frame is not valid JSON: %v (%s)", err, b)
	}
	if raw["type"] != MsgMove {
		t.Fatalf("type = %v, want %q", raw["type"], MsgMove)
	}
	if raw["dx"] != 1.0 || raw["dy"] != -0.5 {
		t.Fatalf("payload fields lost: %s", b)
	}
}

func TestEncodeEmptyPayload(t *testing.T) {
	b, err := Encode(MsgPong, nil)
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	if string(b) != `{"type":"pong"}` {
		t.Fatalf("got %s", b)
	}
}

func TestEncodeRejectsEmptyType(t *testing.T) {
	if _, err := Encode("", Move{}); err == nil {
		t.Fatalf("expected error for empty type")
	}
}

func TestEncodeRejectsNonObjectPayload(t *testing.T) {
	if _, err := Encode(MsgChat, []int{1, 2}); err == nil {
		t.Fatalf("expected error for non-object payload")
	}
}

func TestDecodeRoundTrip(t *testing.T) {
	b, err := Encode(MsgShoot, Shoot{MouseX: 10, MouseY: 20, PlayerX: 1, PlayerY: 2})
	if err != nil {
		t.Fatalf("encode: %v", err)
	}

	typ, err := DecodeType(b)
	if err != nil {
		t.Fatalf("decode type: %v", err)
	}
	if typ != MsgShoot {
		t.Fatalf("type = %q, want %q", typ, MsgShoot)
	}

	p, err := DecodePayload[Shoot](b)
	if err != nil {
		t.Fatalf("decode payload: %v", err)
	}
	if p.MouseX != 10 || p.MouseY != 20 || p.PlayerX != 1 || p.PlayerY != 2 {
		t.Fatalf("payload mismatch: %+v", p)
	}
}

func TestDecodeTypeRejectsBadFrames(t *testing.T) {
	cases := [][]byte{
		nil,
		[]byte(``),
		[]byte(`not json`),
		[]byte(`{"dx":1}`),
	}
	for _, c := range cases {
		if _, err := DecodeType(c); err == nil {
			t.Fatalf("expected error for frame %q", c)
		}
	}
}
