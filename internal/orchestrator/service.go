package orchestrator

import (
	"context"
	"sync"

	"github.com/quizbee/adjudicator/internal/answer"
	"github.com/quizbee/adjudicator/internal/capability"
	"github.com/quizbee/adjudicator/internal/matcher"
)

// Service wraps an Orchestrator with a single-worker queue so that
// Tier-2/3 inference calls never run concurrently. Local model runtimes
// serve one request at a time; pushing overlapping inferences at them
// only trades latency for contention. Tier-1 work stays synchronous and
// unlimited.
type Service struct {
	orch    *Orchestrator
	pending chan validationJob

	mu     sync.Mutex
	closed bool
}

type validationJob struct {
	ctx context.Context
	req *answer.Request
	cb  func(answer.Result)
}

// NewService creates a validation service around orch and starts its
// worker loop.
func NewService(orch *Orchestrator) *Service {
	s := &Service{
		orch:    orch,
		pending: make(chan validationJob, 32),
	}
	go s.processLoop()
	return s
}

// ValidateSync runs the full cascade on the calling goroutine. Use this
// when the caller already serializes inference access, or when only
// Tier 1 can be reached.
func (s *Service) ValidateSync(ctx context.Context, req *answer.Request) answer.Result {
	return s.orch.Validate(ctx, req)
}

// Validate resolves Tier 1 synchronously and returns its result. When
// Tier 1 is inconclusive and a higher tier is reachable for this
// request, the escalation is queued on the worker and cb fires with the
// final verdict; otherwise the returned result is final and cb is never
// called. If the queue is full, or the service has been closed, the
// escalation is dropped and the Tier-1 no-match stands.
func (s *Service) Validate(ctx context.Context, req *answer.Request, cb func(answer.Result)) answer.Result {
	if req == nil || req.Canonical == nil {
		return answer.NoMatch()
	}

	in := matcher.NewInput(req)
	if in.Response == "" {
		return answer.NoMatch()
	}

	chain := s.orch.standardChain
	if req.Policy == answer.PolicyStrict {
		chain = s.orch.strictChain
	}

	res, attempted := matcher.Run(chain, in)
	if res != nil {
		res.Attempts = attempted
		return *res
	}

	noMatch := answer.NoMatch()
	noMatch.Attempts = attempted

	if matchesPromptOnly(req.Canonical, in.Response) {
		noMatch.NeedsMoreSpecific = true
		return noMatch
	}
	if !s.escalates(req) {
		return noMatch
	}

	// Dropped escalations (queue full, service closed) leave the Tier-1
	// verdict standing.
	s.enqueue(validationJob{ctx: ctx, req: req, cb: cb})
	return noMatch
}

// enqueue hands a job to the worker. The mutex orders it against Close:
// a send on a closed channel panics even under select, so the closed
// flag must be checked and the send performed atomically.
func (s *Service) enqueue(job validationJob) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return false
	}
	select {
	case s.pending <- job:
		return true
	default:
		return false
	}
}

// escalates reports whether a Tier-1 miss on req would reach Tier 2 or 3.
func (s *Service) escalates(req *answer.Request) bool {
	if s.orch.tierAvailable(capability.TierSemantic, req.Policy) && s.orch.semantic != nil {
		return true
	}
	return s.orch.tierAvailable(capability.TierReasoning, req.Policy) && s.orch.judge != nil
}

func (s *Service) processLoop() {
	for job := range s.pending {
		result := s.orch.Validate(job.ctx, job.req)
		if job.cb != nil {
			job.cb(result)
		}
	}
}

// Close shuts down the worker loop. Queued escalations are drained
// before the loop exits; Validate calls arriving after Close resolve to
// their Tier-1 verdict without escalating. Safe to call more than once.
func (s *Service) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return
	}
	s.closed = true
	close(s.pending)
}
