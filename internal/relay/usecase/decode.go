package usecase

import (
	"encoding/json"
	"net/url"
	"strings"

	"relay-srv/internal/relay"
)

// Notification envelope as emitted by S3-compatible object stores.
type notificationEnvelope struct {
	Records []notificationEntry `json:"Records"`
}

type notificationEntry struct {
	EventName string `json:"eventName"`
	S3        struct {
		Bucket struct {
			Name string `json:"name"`
		} `json:"bucket"`
		Object struct {
			Key string `json:"key"`
		} `json:"object"`
	} `json:"s3"`
}

// objectCreatedPrefix filters the arrival topic to creation events only.
const objectCreatedPrefix = "s3:ObjectCreated:"

// batchEntry is one positioned entry of a decoded batch. Either record is
// set and the entry still needs conversion, or outcome is already settled
// (decode failure, filtered event).
type batchEntry struct {
	record  *relay.ArrivalRecord
	outcome *relay.TaskOutcome
}

// decodeBatch unpacks a notification payload into positioned entries.
// A broken entry settles as a failed outcome without touching its
// neighbors; only an unreadable envelope is reported as an error.
func (uc *implUseCase) decodeBatch(payload []byte) ([]batchEntry, error) {
	var envelope notificationEnvelope
	if err := json.Unmarshal(payload, &envelope); err != nil {
		return nil, relay.ErrMalformedEnvelope
	}

	entries := make([]batchEntry, 0, len(envelope.Records))
	for _, raw := range envelope.Records {
		if raw.EventName != "" && !strings.HasPrefix(raw.EventName, objectCreatedPrefix) {
			entries = append(entries, batchEntry{outcome: &relay.TaskOutcome{
				SourceBucket: raw.S3.Bucket.Name,
				SourceKey:    raw.S3.Object.Key,
				Status:       relay.StatusSkipped,
			}})
			continue
		}

		if raw.S3.Bucket.Name == "" || raw.S3.Object.Key == "" {
			entries = append(entries, batchEntry{outcome: &relay.TaskOutcome{
				SourceBucket: raw.S3.Bucket.Name,
				SourceKey:    raw.S3.Object.Key,
				Status:       relay.StatusFailed,
				ErrorKind:    relay.DECODE_ERROR,
				ErrorMessage: "missing bucket or object key",
			}})
			continue
		}

		// Object keys arrive URL-encoded ("+" means space).
		key, err := url.QueryUnescape(raw.S3.Object.Key)
		if err != nil {
			entries = append(entries, batchEntry{outcome: &relay.TaskOutcome{
				SourceBucket: raw.S3.Bucket.Name,
				SourceKey:    raw.S3.Object.Key,
				Status:       relay.StatusFailed,
				ErrorKind:    relay.DECODE_ERROR,
				ErrorMessage: "undecodable object key: " + err.Error(),
			}})
			continue
		}

		entries = append(entries, batchEntry{record: &relay.ArrivalRecord{
			Bucket: raw.S3.Bucket.Name,
			Key:    key,
		}})
	}

	return entries, nil
}
