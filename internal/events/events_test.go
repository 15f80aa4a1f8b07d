package events

import (
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/phrazzld/agent-tasks/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestLog_AppendOrder(t *testing.T) {
	t.Parallel()

	start := time.Date(2025, time.April, 1, 12, 0, 0, 0, time.UTC)
	log := NewLog()

	first := log.Append(domain.EventTypeThinking, "Thinking about the task...", start)
	second := log.Append(domain.EventTypeComplete, "4", start.Add(time.Second))

	want := []domain.TaskEvent{first, second}
	if diff := cmp.Diff(want, log.Events()); diff != "" {
		t.Errorf("Events() mismatch (-want +got):\n%s", diff)
	}
	assert.Equal(t, 2, log.Len())
}

func TestLog_TimestampsNeverDecrease(t *testing.T) {
	t.Parallel()

	start := time.Date(2025, time.April, 1, 12, 0, 0, 0, time.UTC)
	log := NewLog()

	log.Append(domain.EventTypeThinking, "thinking", start)
	// A clock step backwards must not reorder the log.
	event := log.Append(domain.EventTypeError, "failed", start.Add(-time.Minute))

	assert.Equal(t, start, event.Timestamp)

	events := log.Events()
	for i := 1; i < len(events); i++ {
		assert.False(t, events[i].Timestamp.Before(events[i-1].Timestamp))
	}
}

func TestLog_EventsReturnsCopy(t *testing.T) {
	t.Parallel()

	log := NewLog()
	log.Append(domain.EventTypeThinking, "thinking", time.Now())

	events := log.Events()
	events[0].Content = "changed"

	assert.Equal(t, "thinking", log.Events()[0].Content)
}
