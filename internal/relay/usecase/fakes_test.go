package usecase

import (
	"bytes"
	"context"
	"io"
	"sync"

	"relay-srv/internal/model"
	"relay-srv/internal/relay"
	repo "relay-srv/internal/relay/repository"
	"relay-srv/pkg/minio"
	"relay-srv/pkg/paginator"
)

// fakeStorage is an in-memory minio.MinIO for usecase tests.
type fakeStorage struct {
	mu      sync.Mutex
	objects map[string][]byte
	puts    map[string][]byte
	slow    map[string]struct{}
}

func newFakeStorage() *fakeStorage {
	return &fakeStorage{
		objects: make(map[string][]byte),
		puts:    make(map[string][]byte),
		slow:    make(map[string]struct{}),
	}
}

func objectKey(bucket, key string) string {
	return bucket + "/" + key
}

func (f *fakeStorage) addObject(bucket, key string, data []byte) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.objects[objectKey(bucket, key)] = data
}

// markSlow makes reads of the object block until the caller's context
// expires.
func (f *fakeStorage) markSlow(bucket, key string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.slow[objectKey(bucket, key)] = struct{}{}
}

func (f *fakeStorage) written(bucket, key string) ([]byte, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	data, ok := f.puts[objectKey(bucket, key)]
	return data, ok
}

func (f *fakeStorage) Connect(ctx context.Context) error                          { return nil }
func (f *fakeStorage) ConnectWithRetry(ctx context.Context, maxRetries int) error { return nil }
func (f *fakeStorage) HealthCheck(ctx context.Context) error                      { return nil }
func (f *fakeStorage) Close() error                                               { return nil }

func (f *fakeStorage) GetObject(ctx context.Context, bucketName, objectName string) (io.ReadCloser, error) {
	data, err := f.ReadObject(ctx, bucketName, objectName)
	if err != nil {
		return nil, err
	}
	return io.NopCloser(bytes.NewReader(data)), nil
}

func (f *fakeStorage) ReadObject(ctx context.Context, bucketName, objectName string) ([]byte, error) {
	f.mu.Lock()
	_, blocked := f.slow[objectKey(bucketName, objectName)]
	data, ok := f.objects[objectKey(bucketName, objectName)]
	f.mu.Unlock()

	if blocked {
		<-ctx.Done()
		return nil, ctx.Err()
	}
	if !ok {
		return nil, minio.NewObjectNotFoundError(objectName)
	}
	return data, nil
}

func (f *fakeStorage) PutObject(ctx context.Context, req *minio.PutRequest) (*minio.ObjectInfo, error) {
	data, err := io.ReadAll(req.Reader)
	if err != nil {
		return nil, err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.puts[objectKey(req.BucketName, req.ObjectName)] = data
	return &minio.ObjectInfo{
		BucketName: req.BucketName,
		ObjectName: req.ObjectName,
		Size:       int64(len(data)),
	}, nil
}

func (f *fakeStorage) StatObject(ctx context.Context, bucketName, objectName string) (*minio.ObjectInfo, error) {
	data, err := f.ReadObject(ctx, bucketName, objectName)
	if err != nil {
		return nil, err
	}
	return &minio.ObjectInfo{BucketName: bucketName, ObjectName: objectName, Size: int64(len(data))}, nil
}

func (f *fakeStorage) ObjectExists(ctx context.Context, bucketName, objectName string) (bool, error) {
	_, err := f.ReadObject(ctx, bucketName, objectName)
	if err != nil {
		return false, nil
	}
	return true, nil
}

// fakeRepository records journaled outcomes in memory.
type fakeRepository struct {
	mu       sync.Mutex
	outcomes []repo.CreateOutcomeOptions
	detail   map[string]model.RelayOutcome
}

func (f *fakeRepository) CreateOutcome(ctx context.Context, opt repo.CreateOutcomeOptions) (model.RelayOutcome, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.outcomes = append(f.outcomes, opt)
	return model.RelayOutcome{}, nil
}

func (f *fakeRepository) CreateOutcomes(ctx context.Context, opts []repo.CreateOutcomeOptions) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.outcomes = append(f.outcomes, opts...)
	return nil
}

func (f *fakeRepository) GetOutcomes(ctx context.Context, opt repo.GetOutcomesOptions) ([]model.RelayOutcome, paginator.Paginator, error) {
	return nil, paginator.Paginator{}, nil
}

func (f *fakeRepository) DetailOutcome(ctx context.Context, id string) (model.RelayOutcome, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	outcome, ok := f.detail[id]
	if !ok {
		return model.RelayOutcome{}, repo.ErrNotFound
	}
	return outcome, nil
}

func (f *fakeRepository) GetStatistics(ctx context.Context) (repo.Statistics, error) {
	return repo.Statistics{}, nil
}

// fakeProducer records published batch results.
type fakeProducer struct {
	mu      sync.Mutex
	results []relay.BatchResult
}

func (f *fakeProducer) PublishBatchResult(ctx context.Context, result relay.BatchResult) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.results = append(f.results, result)
	return nil
}
