package usecase

import (
	"errors"
	"testing"

	"relay-srv/internal/relay"
	"relay-srv/pkg/log"
)

func newDecodeUseCase() *implUseCase {
	return &implUseCase{l: log.NewNopLogger(), cfg: testConfig()}
}

func TestDecodeBatchPartialSuccess(t *testing.T) {
	uc := newDecodeUseCase()

	payload := []byte(`{"Records":[
		{"eventName":"s3:ObjectCreated:Put","s3":{"bucket":{"name":"landing"},"object":{"key":"good.csv"}}},
		{"eventName":"s3:ObjectCreated:Put","s3":{"bucket":{"name":""},"object":{"key":"orphan.csv"}}},
		{"eventName":"s3:ObjectCreated:Copy","s3":{"bucket":{"name":"landing"},"object":{"key":"also%20good.csv"}}}
	]}`)

	entries, err := uc.decodeBatch(payload)
	if err != nil {
		t.Fatalf("decodeBatch returned error: %v", err)
	}
	if len(entries) != 3 {
		t.Fatalf("entry count mismatch: got %d, want 3", len(entries))
	}

	if entries[0].record == nil || entries[0].record.Key != "good.csv" {
		t.Errorf("entry 0 should be a decoded record, got %+v", entries[0])
	}
	if entries[1].outcome == nil || entries[1].outcome.ErrorKind != relay.DECODE_ERROR {
		t.Errorf("entry 1 should be a decode failure, got %+v", entries[1])
	}
	if entries[2].record == nil || entries[2].record.Key != "also good.csv" {
		t.Errorf("entry 2 should decode the URL-escaped key, got %+v", entries[2])
	}
}

func TestDecodeBatchMalformedEnvelope(t *testing.T) {
	uc := newDecodeUseCase()

	_, err := uc.decodeBatch([]byte(`{"Records": "nope"}`))
	if !errors.Is(err, relay.ErrMalformedEnvelope) {
		t.Errorf("error mismatch: got %v, want %v", err, relay.ErrMalformedEnvelope)
	}
}

func TestDecodeBatchBadKeyEncoding(t *testing.T) {
	uc := newDecodeUseCase()

	payload := []byte(`{"Records":[{"eventName":"s3:ObjectCreated:Put","s3":{"bucket":{"name":"landing"},"object":{"key":"bad%zz.csv"}}}]}`)
	entries, err := uc.decodeBatch(payload)
	if err != nil {
		t.Fatalf("decodeBatch returned error: %v", err)
	}
	if entries[0].outcome == nil || entries[0].outcome.ErrorKind != relay.DECODE_ERROR {
		t.Errorf("entry should fail decoding, got %+v", entries[0])
	}
}
