package usecase

import (
	"context"
	"fmt"
	"testing"

	"relay-srv/config"
	"relay-srv/internal/relay"
	"relay-srv/pkg/log"
	"relay-srv/pkg/tabular"
)

func testConfig() config.RelayConfig {
	return config.RelayConfig{
		SourceBucket:      "landing",
		DestinationBucket: "curated",
		SourceExtension:   ".csv",
		TargetExtension:   ".parquet",
		OperationTimeout:  30,
		Concurrency:       4,
	}
}

func notification(keys ...string) []byte {
	payload := `{"Records":[`
	for i, key := range keys {
		if i > 0 {
			payload += ","
		}
		payload += fmt.Sprintf(`{"eventName":"s3:ObjectCreated:Put","s3":{"bucket":{"name":"landing"},"object":{"key":%q}}}`, key)
	}
	return []byte(payload + `]}`)
}

func newTestUseCase(storage *fakeStorage, repo *fakeRepository, producer *fakeProducer) relay.UseCase {
	return New(log.NewNopLogger(), testConfig(), storage, repo, producer)
}

func TestProcessBatchConvertsRecords(t *testing.T) {
	storage := newFakeStorage()
	storage.addObject("landing", "data/users.csv", []byte("id,name\n1,alice\n2,bob\n"))

	journal := &fakeRepository{}
	producer := &fakeProducer{}
	uc := newTestUseCase(storage, journal, producer)

	result, err := uc.ProcessBatch(context.Background(), relay.ProcessBatchInput{
		BatchID: "batch-1",
		Payload: notification("data/users.csv"),
	})
	if err != nil {
		t.Fatalf("ProcessBatch returned error: %v", err)
	}

	if result.Total != 1 || result.Succeeded != 1 || result.Failed != 0 {
		t.Fatalf("result mismatch: got total=%d succeeded=%d failed=%d", result.Total, result.Succeeded, result.Failed)
	}

	data, ok := storage.written("curated", "data/users.parquet")
	if !ok {
		t.Fatal("expected destination object curated/data/users.parquet")
	}

	decoded, err := tabular.DecodeParquet(data)
	if err != nil {
		t.Fatalf("destination object is not valid parquet: %v", err)
	}
	if decoded.RowCount() != 2 {
		t.Errorf("row count mismatch: got %d, want 2", decoded.RowCount())
	}
	if decoded.Rows[0]["name"] != "alice" || decoded.Rows[1]["name"] != "bob" {
		t.Errorf("row order not preserved: %v", decoded.Rows)
	}

	if len(journal.outcomes) != 1 {
		t.Errorf("journal entries mismatch: got %d, want 1", len(journal.outcomes))
	}
	if len(producer.results) != 1 {
		t.Errorf("published results mismatch: got %d, want 1", len(producer.results))
	}
}

func TestProcessBatchFailureIsolation(t *testing.T) {
	storage := newFakeStorage()
	storage.addObject("landing", "a.csv", []byte("v\n1\n"))
	// b.csv is missing on purpose
	storage.addObject("landing", "c.csv", []byte("v\n3\n"))

	uc := newTestUseCase(storage, &fakeRepository{}, &fakeProducer{})

	result, err := uc.ProcessBatch(context.Background(), relay.ProcessBatchInput{
		BatchID: "batch-2",
		Payload: notification("a.csv", "b.csv", "c.csv"),
	})
	if err != nil {
		t.Fatalf("ProcessBatch returned error: %v", err)
	}

	if result.Succeeded != 2 || result.Failed != 1 {
		t.Fatalf("result mismatch: got succeeded=%d failed=%d, want 2/1", result.Succeeded, result.Failed)
	}

	// Outcomes keep input order and the failure names its phase.
	if result.Outcomes[0].Status != relay.StatusSucceeded {
		t.Errorf("outcome 0 status mismatch: got %s", result.Outcomes[0].Status)
	}
	if result.Outcomes[1].Status != relay.StatusFailed {
		t.Errorf("outcome 1 status mismatch: got %s", result.Outcomes[1].Status)
	}
	if result.Outcomes[1].ErrorKind != relay.READ_ERROR {
		t.Errorf("outcome 1 error kind mismatch: got %s, want %s", result.Outcomes[1].ErrorKind, relay.READ_ERROR)
	}
	if result.Outcomes[2].Status != relay.StatusSucceeded {
		t.Errorf("outcome 2 status mismatch: got %s", result.Outcomes[2].Status)
	}

	if _, ok := storage.written("curated", "a.parquet"); !ok {
		t.Error("expected curated/a.parquet despite neighbor failure")
	}
	if _, ok := storage.written("curated", "c.parquet"); !ok {
		t.Error("expected curated/c.parquet despite neighbor failure")
	}
}

func TestProcessBatchParseFailure(t *testing.T) {
	storage := newFakeStorage()
	storage.addObject("landing", "bad.csv", []byte("a,b\n1\n"))

	uc := newTestUseCase(storage, &fakeRepository{}, &fakeProducer{})

	result, err := uc.ProcessBatch(context.Background(), relay.ProcessBatchInput{
		BatchID: "batch-3",
		Payload: notification("bad.csv"),
	})
	if err != nil {
		t.Fatalf("ProcessBatch returned error: %v", err)
	}

	if result.Failed != 1 {
		t.Fatalf("failed count mismatch: got %d, want 1", result.Failed)
	}
	if result.Outcomes[0].ErrorKind != relay.PARSE_ERROR {
		t.Errorf("error kind mismatch: got %s, want %s", result.Outcomes[0].ErrorKind, relay.PARSE_ERROR)
	}
	// No partial destination object on failure.
	if _, ok := storage.written("curated", "bad.parquet"); ok {
		t.Error("unexpected destination object for failed conversion")
	}
}

func TestProcessBatchMalformedEnvelope(t *testing.T) {
	uc := newTestUseCase(newFakeStorage(), &fakeRepository{}, &fakeProducer{})

	result, err := uc.ProcessBatch(context.Background(), relay.ProcessBatchInput{
		BatchID: "batch-4",
		Payload: []byte("this is not json"),
	})
	if err != nil {
		t.Fatalf("ProcessBatch returned error: %v", err)
	}

	if result.Total != 1 || result.Failed != 1 {
		t.Fatalf("result mismatch: got total=%d failed=%d, want 1/1", result.Total, result.Failed)
	}
	if result.Outcomes[0].ErrorKind != relay.DECODE_ERROR {
		t.Errorf("error kind mismatch: got %s, want %s", result.Outcomes[0].ErrorKind, relay.DECODE_ERROR)
	}
}

func TestProcessBatchEmpty(t *testing.T) {
	uc := newTestUseCase(newFakeStorage(), &fakeRepository{}, &fakeProducer{})

	result, err := uc.ProcessBatch(context.Background(), relay.ProcessBatchInput{
		BatchID: "batch-5",
		Payload: []byte(`{"Records":[]}`),
	})
	if err != nil {
		t.Fatalf("ProcessBatch returned error: %v", err)
	}
	if result.Total != 0 || result.Succeeded != 0 || result.Failed != 0 || result.Skipped != 0 {
		t.Errorf("empty batch should yield zero counts, got %+v", result)
	}
}

func TestProcessBatchSkipsNonCreationEvents(t *testing.T) {
	storage := newFakeStorage()
	uc := newTestUseCase(storage, &fakeRepository{}, &fakeProducer{})

	payload := []byte(`{"Records":[{"eventName":"s3:ObjectRemoved:Delete","s3":{"bucket":{"name":"landing"},"object":{"key":"gone.csv"}}}]}`)
	result, err := uc.ProcessBatch(context.Background(), relay.ProcessBatchInput{BatchID: "batch-6", Payload: payload})
	if err != nil {
		t.Fatalf("ProcessBatch returned error: %v", err)
	}

	if result.Skipped != 1 || result.Failed != 0 {
		t.Errorf("result mismatch: got skipped=%d failed=%d, want 1/0", result.Skipped, result.Failed)
	}
}

func TestProcessBatchDecodesObjectKey(t *testing.T) {
	storage := newFakeStorage()
	storage.addObject("landing", "dir/my file.csv", []byte("v\n1\n"))

	uc := newTestUseCase(storage, &fakeRepository{}, &fakeProducer{})

	result, err := uc.ProcessBatch(context.Background(), relay.ProcessBatchInput{
		BatchID: "batch-7",
		Payload: notification("dir/my+file.csv"),
	})
	if err != nil {
		t.Fatalf("ProcessBatch returned error: %v", err)
	}
	if result.Succeeded != 1 {
		t.Fatalf("succeeded mismatch: got %d, want 1 (outcomes: %+v)", result.Succeeded, result.Outcomes)
	}
	if _, ok := storage.written("curated", "dir/my file.parquet"); !ok {
		t.Error("expected URL-decoded destination key dir/my file.parquet")
	}
}

func TestProcessBatchTimeoutIsolation(t *testing.T) {
	storage := newFakeStorage()
	storage.addObject("landing", "fast.csv", []byte("v\n1\n"))
	storage.addObject("landing", "stuck.csv", []byte("v\n2\n"))
	storage.markSlow("landing", "stuck.csv")

	cfg := testConfig()
	cfg.OperationTimeout = 1
	uc := New(log.NewNopLogger(), cfg, storage, &fakeRepository{}, &fakeProducer{})

	result, err := uc.ProcessBatch(context.Background(), relay.ProcessBatchInput{
		BatchID: "batch-9",
		Payload: notification("fast.csv", "stuck.csv"),
	})
	if err != nil {
		t.Fatalf("ProcessBatch returned error: %v", err)
	}

	if result.Succeeded != 1 || result.Failed != 1 {
		t.Fatalf("result mismatch: got succeeded=%d failed=%d, want 1/1", result.Succeeded, result.Failed)
	}
	if result.Outcomes[0].Status != relay.StatusSucceeded {
		t.Errorf("fast outcome status mismatch: got %s", result.Outcomes[0].Status)
	}
	if result.Outcomes[1].Status != relay.StatusFailed {
		t.Errorf("stuck outcome status mismatch: got %s", result.Outcomes[1].Status)
	}
	if result.Outcomes[1].ErrorKind != relay.TIMEOUT_ERROR {
		t.Errorf("stuck outcome error kind mismatch: got %s, want %s", result.Outcomes[1].ErrorKind, relay.TIMEOUT_ERROR)
	}

	if _, ok := storage.written("curated", "fast.parquet"); !ok {
		t.Error("expected curated/fast.parquet despite neighbor timing out")
	}
	if _, ok := storage.written("curated", "stuck.parquet"); ok {
		t.Error("unexpected destination object for timed-out conversion")
	}
}

func TestProcessBatchOverwritesDestination(t *testing.T) {
	storage := newFakeStorage()
	storage.addObject("landing", "x.csv", []byte("v\n1\n"))

	uc := newTestUseCase(storage, &fakeRepository{}, &fakeProducer{})
	input := relay.ProcessBatchInput{BatchID: "batch-8", Payload: notification("x.csv")}

	// Redelivered batch converts again and replaces the destination object.
	for i := 0; i < 2; i++ {
		result, err := uc.ProcessBatch(context.Background(), input)
		if err != nil {
			t.Fatalf("ProcessBatch run %d returned error: %v", i, err)
		}
		if result.Succeeded != 1 {
			t.Fatalf("run %d succeeded mismatch: got %d, want 1", i, result.Succeeded)
		}
	}

	data, ok := storage.written("curated", "x.parquet")
	if !ok {
		t.Fatal("expected destination object curated/x.parquet")
	}
	decoded, err := tabular.DecodeParquet(data)
	if err != nil {
		t.Fatalf("destination object is not valid parquet: %v", err)
	}
	if decoded.RowCount() != 1 {
		t.Errorf("row count mismatch after redelivery: got %d, want 1", decoded.RowCount())
	}
}

func TestRedrive(t *testing.T) {
	storage := newFakeStorage()
	storage.addObject("landing", "manual.csv", []byte("id\n7\n"))

	journal := &fakeRepository{}
	uc := newTestUseCase(storage, journal, &fakeProducer{})

	outcome, err := uc.Redrive(context.Background(), relay.RedriveInput{Bucket: "landing", Key: "manual.csv"})
	if err != nil {
		t.Fatalf("Redrive returned error: %v", err)
	}
	if outcome.Status != relay.StatusSucceeded {
		t.Fatalf("outcome status mismatch: got %s, want %s", outcome.Status, relay.StatusSucceeded)
	}
	if outcome.DestinationKey != "manual.parquet" {
		t.Errorf("destination key mismatch: got %s, want manual.parquet", outcome.DestinationKey)
	}
	if len(journal.outcomes) != 1 {
		t.Errorf("journal entries mismatch: got %d, want 1", len(journal.outcomes))
	}
}
