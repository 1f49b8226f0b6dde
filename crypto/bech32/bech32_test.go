package bech32

import (
	"bytes"
	"testing"

	"github.com/iov-one/vault/errors"
)

func TestEncodeDecode(t *testing.T) {
	payload := []byte("a twenty byte string")

	raw, err := Encode("vault", payload)
	if err != nil {
		t.Fatalf("cannot encode: %s", err)
	}
	hrp, got, err := Decode(string(raw))
	if err != nil {
		t.Fatalf("cannot decode: %s", err)
	}
	if hrp != "vault" {
		t.Fatalf("unexpected human readable part: %q", hrp)
	}
	if !bytes.Equal(payload, got) {
		t.Fatalf("want %q, got %q", payload, got)
	}
}

func TestDecodeInvalid(t *testing.T) {
	_, _, err := Decode("vault1invalidchecksum")
	if !errors.ErrInput.Is(err) {
		t.Fatalf("want input error, got %v", err)
	}
}
