package notify

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/goccy/go-json"
	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeWriter struct {
	calls    int
	failures int
	last     []kafka.Message
	closed   bool
}

func (w *fakeWriter) WriteMessages(ctx context.Context, msgs ...kafka.Message) error {
	w.calls++
	if w.calls <= w.failures {
		return errors.New("broker unavailable")
	}
	w.last = append([]kafka.Message{}, msgs...)
	return nil
}

func (w *fakeWriter) Close() error {
	w.closed = true
	return nil
}

func TestKafkaPublisher_Publish(t *testing.T) {
	fw := &fakeWriter{}
	p := newKafkaPublisher(fw, KafkaConfig{Brokers: []string{"localhost:0"}})

	event := ImportCompleted{
		ImportRecordID:   "rec-1",
		CompanyID:        "company-1",
		Format:           "cuscar",
		FileHash:         "abc",
		VoyageID:         "voyage-1",
		BillNumbers:      []string{"BL1"},
		ContainerNumbers: []string{"MSCU1234566"},
		CompletedAt:      1715353200,
	}
	require.NoError(t, p.Publish(context.Background(), event))
	require.Len(t, fw.last, 1)
	assert.Equal(t, DefaultTopic, fw.last[0].Topic)
	assert.Equal(t, []byte("rec-1"), fw.last[0].Key)

	var decoded ImportCompleted
	require.NoError(t, json.Unmarshal(fw.last[0].Value, &decoded))
	assert.Equal(t, event, decoded)

	require.NoError(t, p.Close())
	assert.True(t, fw.closed)
}

func TestKafkaPublisher_Retry(t *testing.T) {
	fw := &fakeWriter{failures: 2}
	p := newKafkaPublisher(fw, KafkaConfig{Topic: "imports", Attempts: 3}, WithRetryDelay(time.Millisecond))

	require.NoError(t, p.Publish(context.Background(), ImportCompleted{ImportRecordID: "rec-2"}))
	assert.Equal(t, 3, fw.calls)
	assert.Equal(t, "imports", fw.last[0].Topic)
}

func TestKafkaPublisher_GiveUp(t *testing.T) {
	fw := &fakeWriter{failures: 10}
	p := newKafkaPublisher(fw, KafkaConfig{Attempts: 2}, WithRetryDelay(time.Millisecond))

	err := p.Publish(context.Background(), ImportCompleted{ImportRecordID: "rec-3"})
	require.Error(t, err)
	assert.Equal(t, "publish import rec-3 to manifest.import.completed: broker unavailable", err.Error())
	assert.Equal(t, 2, fw.calls)
}

func TestNewKafkaPublisher(t *testing.T) {
	_, err := NewKafkaPublisher(KafkaConfig{})
	require.Error(t, err)

	p, err := NewKafkaPublisher(KafkaConfig{Brokers: []string{"localhost:0"}})
	require.NoError(t, err)
	assert.Equal(t, DefaultTopic, p.topic)
}
