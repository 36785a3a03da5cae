package queue

import (
	"context"
	"hash/fnv"
	"time"

	"github.com/rs/zerolog"

	"github.com/legalconnect/platform-api/internal/core/domain"
	"github.com/legalconnect/platform-api/internal/core/ports"
)

const (
	defaultWorkers = 4
	defaultDelay   = 2 * time.Second
	channelBuffer  = 64

	// AutoReplyText is the canned acknowledgement sent on the lawyer's behalf.
	AutoReplyText = "Thank you for your message. I'll review this and get back to you soon."
)

// ReplyJob asks for a canned lawyer acknowledgement on a case thread.
type ReplyJob struct {
	CaseID string
}

// ReplyDispatcher sends simulated lawyer replies from a fixed set of workers,
// sharding jobs by case id so replies within one conversation stay ordered.
// Each reply is delayed so the exchange reads like a human response.
type ReplyDispatcher struct {
	workers  []chan ReplyJob
	messages ports.MessageService
	cases    ports.CaseRepository
	delay    time.Duration
	log      zerolog.Logger
}

// NewReplyDispatcher creates a dispatcher with numWorkers sharded workers.
// Non-positive numWorkers or delay fall back to the defaults.
func NewReplyDispatcher(numWorkers int, delay time.Duration, messages ports.MessageService, cases ports.CaseRepository, log zerolog.Logger) *ReplyDispatcher {
	if numWorkers <= 0 {
		numWorkers = defaultWorkers
	}
	if delay <= 0 {
		delay = defaultDelay
	}
	d := &ReplyDispatcher{
		workers:  make([]chan ReplyJob, numWorkers),
		messages: messages,
		cases:    cases,
		delay:    delay,
		log:      log,
	}
	for i := range d.workers {
		d.workers[i] = make(chan ReplyJob, channelBuffer)
	}
	return d
}

// Start launches all worker goroutines. Workers stop when ctx is cancelled.
func (d *ReplyDispatcher) Start(ctx context.Context) {
	for i, ch := range d.workers {
		go d.runWorker(ctx, i, ch)
	}
}

// Enqueue hands a job to the worker responsible for its case. The call is
// non-blocking up to channelBuffer capacity.
func (d *ReplyDispatcher) Enqueue(job ReplyJob) {
	d.workers[d.shardIndex(job.CaseID)] <- job
}

// shardIndex maps a case id deterministically to a worker index.
func (d *ReplyDispatcher) shardIndex(caseID string) int {
	h := fnv.New32a()
	_, _ = h.Write([]byte(caseID))
	return int(h.Sum32()) % len(d.workers)
}

func (d *ReplyDispatcher) runWorker(ctx context.Context, id int, ch <-chan ReplyJob) {
	for {
		select {
		case <-ctx.Done():
			return
		case job, ok := <-ch:
			if !ok {
				return
			}
			select {
			case <-ctx.Done():
				return
			case <-time.After(d.delay):
			}
			if err := d.reply(ctx, job.CaseID); err != nil {
				d.log.Error().Err(err).
					Str("case_id", job.CaseID).
					Int("worker_id", id).
					Msg("auto reply failed")
			}
		}
	}
}

// reply sends the canned acknowledgement as the case's lawyer.
func (d *ReplyDispatcher) reply(ctx context.Context, caseID string) error {
	legalCase, err := d.cases.FindByID(ctx, caseID)
	if err != nil {
		return err
	}
	_, err = d.messages.Send(ctx, ports.SendMessageInput{
		Sender: ports.Identity{
			UserID: legalCase.LawyerID,
			Name:   legalCase.LawyerName,
			Role:   domain.RoleLawyer,
		},
		CaseID: caseID,
		Text:   AutoReplyText,
	})
	return err
}
