// Package worker runs the background half of the client: a single
// goroutine that drains fetch requests from an inbound queue, performs
// the network work, and publishes results to an outbound queue. The
// foreground never blocks on it; both queues are read with non-blocking
// takes.
package worker

import (
	"context"
	"sync"
	"time"

	"github.com/SaxyPandaBear/PodcastsTUI/internal/debuglog"
	"github.com/SaxyPandaBear/PodcastsTUI/internal/feed"
	"github.com/SaxyPandaBear/PodcastsTUI/internal/message"
)

// Fetcher is the slice of the feed layer the worker depends on.
type Fetcher interface {
	Fetch(ctx context.Context, rawURL string) (*feed.Channel, error)
}

const (
	defaultQueueSize = 16
	defaultIdleDelay = 5 * time.Millisecond
)

// Worker owns the inbound and outbound queues. At most one request is
// in flight at a time; later submissions sit in the inbound buffer
// until the current one completes or is dropped on failure.
type Worker struct {
	fetcher   Fetcher
	requests  chan message.Request
	responses chan message.Response
	wakeCh    chan struct{}
	idleDelay time.Duration
	cancel    context.CancelFunc
	wg        sync.WaitGroup
}

// New builds a stopped Worker. queueSize and idleDelay fall back to
// defaults when non-positive.
func New(fetcher Fetcher, queueSize int, idleDelay time.Duration) *Worker {
	if queueSize <= 0 {
		queueSize = defaultQueueSize
	}
	if idleDelay <= 0 {
		idleDelay = defaultIdleDelay
	}
	return &Worker{
		fetcher:   fetcher,
		requests:  make(chan message.Request, queueSize),
		responses: make(chan message.Response, queueSize),
		wakeCh:    make(chan struct{}, 1),
		idleDelay: idleDelay,
	}
}

// Start launches the worker goroutine. The worker runs until Stop is
// called or ctx is cancelled.
func (w *Worker) Start(ctx context.Context) {
	ctx, w.cancel = context.WithCancel(ctx)
	w.wg.Add(1)
	go w.run(ctx)
}

// Stop cancels the worker and waits for its goroutine to exit. Safe to
// call when Start never ran.
func (w *Worker) Stop() {
	if w.cancel == nil {
		return
	}
	w.cancel()
	w.wake()
	w.wg.Wait()
}

// Submit enqueues a request without blocking. It reports false when the
// inbound queue is full; the request is dropped in that case and the
// caller decides whether to log it.
func (w *Worker) Submit(req message.Request) bool {
	select {
	case w.requests <- req:
		w.wake()
		return true
	default:
		return false
	}
}

// Poll takes at most one response without blocking.
func (w *Worker) Poll() (message.Response, bool) {
	select {
	case resp := <-w.responses:
		return resp, true
	default:
		return nil, false
	}
}

func (w *Worker) wake() {
	select {
	case w.wakeCh <- struct{}{}:
	default:
	}
}

func (w *Worker) run(ctx context.Context) {
	defer w.wg.Done()
	for {
		if ctx.Err() != nil {
			return
		}
		if w.ProcessNext(ctx) {
			continue
		}
		if err := w.waitForWork(ctx); err != nil {
			return
		}
	}
}

// ProcessNext runs one worker cycle: take at most one request without
// blocking and handle it. It reports whether a request was taken, so
// an empty queue is a no-op cycle. Exported so tests drive the worker
// synchronously through the exact code the loop runs.
func (w *Worker) ProcessNext(ctx context.Context) bool {
	var req message.Request
	select {
	case req = <-w.requests:
	default:
		return false
	}

	switch r := req.(type) {
	case message.FetchFeed:
		rawURL := r.URL.String()
		channel, err := w.fetcher.Fetch(ctx, rawURL)
		if err != nil {
			// Failed fetches answer with silence: no error
			// response, no retry.
			debuglog.Warnf("feed fetch failed url=%s: %v", rawURL, err)
			return true
		}
		w.publish(ctx, message.FeedLoaded{Channel: *channel})
	case message.FetchEpisode:
		if r.Episode == nil {
			return true
		}
		w.publish(ctx, message.EpisodeLoaded{Episode: *r.Episode})
	}
	return true
}

// publish pushes a response to the outbound queue. When the consumer is
// gone the push fails; that is logged and the worker moves on.
func (w *Worker) publish(ctx context.Context, resp message.Response) {
	select {
	case w.responses <- resp:
	case <-ctx.Done():
		debuglog.Warnf("dropping %T: consumer gone", resp)
	}
}

func (w *Worker) waitForWork(ctx context.Context) error {
	timer := time.NewTimer(w.idleDelay)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-w.wakeCh:
		return nil
	case <-timer.C:
		return nil
	}
}
