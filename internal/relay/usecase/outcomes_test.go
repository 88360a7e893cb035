package usecase

import (
	"context"
	"errors"
	"testing"

	"relay-srv/internal/model"
	"relay-srv/internal/relay"
)

func TestDetailOutcome(t *testing.T) {
	journal := &fakeRepository{detail: map[string]model.RelayOutcome{
		"abc": {ID: "abc", BatchID: "batch-1", Status: "succeeded"},
	}}
	uc := newTestUseCase(newFakeStorage(), journal, &fakeProducer{})

	outcome, err := uc.DetailOutcome(context.Background(), "abc")
	if err != nil {
		t.Fatalf("DetailOutcome returned error: %v", err)
	}
	if outcome.ID != "abc" || outcome.BatchID != "batch-1" {
		t.Errorf("outcome mismatch: got %+v", outcome)
	}
}

func TestDetailOutcomeNotFound(t *testing.T) {
	uc := newTestUseCase(newFakeStorage(), &fakeRepository{}, &fakeProducer{})

	_, err := uc.DetailOutcome(context.Background(), "missing")
	if !errors.Is(err, relay.ErrOutcomeNotFound) {
		t.Errorf("error mismatch: got %v, want %v", err, relay.ErrOutcomeNotFound)
	}
}

func TestRedriveMissingObject(t *testing.T) {
	journal := &fakeRepository{}
	uc := newTestUseCase(newFakeStorage(), journal, &fakeProducer{})

	_, err := uc.Redrive(context.Background(), relay.RedriveInput{Bucket: "landing", Key: "ghost.csv"})
	if !errors.Is(err, relay.ErrSourceNotFound) {
		t.Fatalf("error mismatch: got %v, want %v", err, relay.ErrSourceNotFound)
	}
	if len(journal.outcomes) != 0 {
		t.Errorf("missing object must not be journaled, got %d entries", len(journal.outcomes))
	}
}
