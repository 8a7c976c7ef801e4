package queue

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/rs/zerolog"
)

type recordingMailer struct {
	mu     sync.Mutex
	emails []string
}

func (m *recordingMailer) SendPasswordReset(_ context.Context, email, _ string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.emails = append(m.emails, email)
	return nil
}

func (m *recordingMailer) count() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.emails)
}

func TestMailDispatcher_DeliversEnqueuedMail(t *testing.T) {
	mailer := &recordingMailer{}
	d := NewMailDispatcher(2, mailer, zerolog.Nop())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	d.Start(ctx)

	for _, email := range []string{"a@x.com", "b@x.com", "c@x.com"} {
		if err := d.SendPasswordReset(context.Background(), email, "token"); err != nil {
			t.Fatalf("enqueue failed: %v", err)
		}
	}

	deadline := time.Now().Add(2 * time.Second)
	for mailer.count() < 3 {
		if time.Now().After(deadline) {
			t.Fatalf("expected 3 deliveries, got %d", mailer.count())
		}
		time.Sleep(10 * time.Millisecond)
	}
}

// Mails to the same recipient always land on the same worker.
func TestMailDispatcher_StableSharding(t *testing.T) {
	d := NewMailDispatcher(4, &recordingMailer{}, zerolog.Nop())

	first := d.shardIndex("alice@x.com")
	for i := 0; i < 10; i++ {
		if got := d.shardIndex("alice@x.com"); got != first {
			t.Fatalf("shard index changed: %d vs %d", got, first)
		}
	}
}
