package oss

import (
	"bytes"
	"encoding/base64"
	"testing"
)

func TestDecodeDataURI(t *testing.T) {
	payload := []byte("hello")
	uri := "data:image/png;base64," + base64.StdEncoding.EncodeToString(payload)

	got, err := DecodeDataURI(uri)
	if err != nil {
		t.Fatalf("DecodeDataURI: %v", err)
	}
	if !bytes.Equal(got, payload) {
		t.Fatalf("decoded %q, want %q", got, payload)
	}
}

func TestDecodeDataURIRejectsBadInput(t *testing.T) {
	cases := []string{
		"https://example.com/avatar.png", // plain URL
		"data:image/png,plain-not-base64",
		"data:image/png;base64",     // no comma
		"data:image/png;base64,@@@", // invalid base64
	}
	for _, in := range cases {
		if _, err := DecodeDataURI(in); err == nil {
			t.Fatalf("DecodeDataURI(%q) should fail", in)
		}
	}
}

func TestIsDataURI(t *testing.T) {
	if !IsDataURI("data:image/png;base64,AAAA") {
		t.Fatalf("data URI not recognized")
	}
	if IsDataURI("https://example.com/a.png") {
		t.Fatalf("plain URL misread as data URI")
	}
}
