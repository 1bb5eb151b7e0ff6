package svc

import (
	"encoding/json"
	"testing"
)

func TestRespExtract(t *testing.T) {
	artwork := json.RawMessage(`{"id":7,"owner":"alice"}`)
	count := json.RawMessage(`42`)
	resp := Resp{
		"artwork": &artwork,
		"count":   &count,
	}

	var extracted struct {
		ID    int64  `json:"id"`
		Owner string `json:"owner"`
	}
	err := resp.Extract("artwork", &extracted)
	if err != nil {
		t.Fatalf("unexpected error: %+v", err)
	}
	if extracted.ID != 7 || extracted.Owner != "alice" {
		t.Errorf("expected extracted artwork, got %+v", extracted)
	}

	var n int64
	err = resp.Extract("count", &n)
	if err != nil {
		t.Fatalf("unexpected error: %+v", err)
	}
	if n != 42 {
		t.Errorf("expected 42, got %d", n)
	}
}

func TestRespExtractMissing(t *testing.T) {
	resp := Resp{}

	var n int64
	err := resp.Extract("count", &n)
	if err == nil {
		t.Fatal("expected error for missing protocol")
	}
}

func TestRespExtractMalformed(t *testing.T) {
	count := json.RawMessage(`"not-a-number"`)
	resp := Resp{
		"count": &count,
	}

	var n int64
	err := resp.Extract("count", &n)
	if err == nil {
		t.Fatal("expected error for malformed protocol")
	}
}
