package queue

import (
	"context"
	"hash/fnv"
	"strconv"

	"github.com/rs/zerolog"

	"github.com/genconfi/groomify-api/internal/api/metrics"
	"github.com/genconfi/groomify-api/internal/core/ports"
)

const (
	defaultWorkers = 4
	channelBuffer  = 256
)

type resetMail struct {
	email string
	token string
}

// MailDispatcher delivers password-reset mail asynchronously through a fixed
// set of workers, sharded by recipient so mails to the same address stay
// ordered. It satisfies ports.ResetMailer: SendPasswordReset only enqueues,
// so a slow or failing delivery backend never delays or leaks into the HTTP
// response.
type MailDispatcher struct {
	workers []chan resetMail
	mailer  ports.ResetMailer
	log     zerolog.Logger
}

// NewMailDispatcher creates a MailDispatcher with numWorkers sharded workers
// delivering through mailer. If numWorkers <= 0, defaultWorkers is used.
func NewMailDispatcher(numWorkers int, mailer ports.ResetMailer, log zerolog.Logger) *MailDispatcher {
	if numWorkers <= 0 {
		numWorkers = defaultWorkers
	}
	d := &MailDispatcher{
		workers: make([]chan resetMail, numWorkers),
		mailer:  mailer,
		log:     log,
	}
	for i := range d.workers {
		d.workers[i] = make(chan resetMail, channelBuffer)
	}
	return d
}

// Start launches all worker goroutines. Workers stop when ctx is cancelled.
func (d *MailDispatcher) Start(ctx context.Context) {
	for i, ch := range d.workers {
		go d.runWorker(ctx, i, ch)
	}
}

// SendPasswordReset enqueues a reset mail for asynchronous delivery. The call
// is non-blocking up to channelBuffer capacity and always reports success;
// delivery failures are logged by the worker.
func (d *MailDispatcher) SendPasswordReset(_ context.Context, email, token string) error {
	i := d.shardIndex(email)
	d.workers[i] <- resetMail{email: email, token: token}
	metrics.ResetMailQueueDepth.WithLabelValues(strconv.Itoa(i)).Set(float64(len(d.workers[i])))
	return nil
}

// shardIndex maps a recipient deterministically to a worker index.
func (d *MailDispatcher) shardIndex(email string) int {
	h := fnv.New32a()
	_, _ = h.Write([]byte(email))
	return int(h.Sum32()) % len(d.workers)
}

func (d *MailDispatcher) runWorker(ctx context.Context, id int, ch <-chan resetMail) {
	workerID := strconv.Itoa(id)
	for {
		select {
		case <-ctx.Done():
			return
		case m, ok := <-ch:
			if !ok {
				return
			}
			metrics.ResetMailQueueDepth.WithLabelValues(workerID).Set(float64(len(ch)))
			if err := d.mailer.SendPasswordReset(ctx, m.email, m.token); err != nil {
				d.log.Error().Err(err).
					Str("email", m.email).
					Int("worker_id", id).
					Msg("reset mail delivery failed")
			}
		}
	}
}
