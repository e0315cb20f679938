package vanity

import (
	"context"
	"io"
	"sync"
	"sync/atomic"
	"time"

	"SolTools/internal/keypair"
)

// State of one search. Idle -> Running -> {Found, Exhausted, Cancelled,
// Failed}.
type State int32

const (
	StateIdle State = iota
	StateRunning
	StateFound
	StateExhausted
	StateCancelled
	StateFailed
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateRunning:
		return "running"
	case StateFound:
		return "found"
	case StateExhausted:
		return "exhausted"
	case StateCancelled:
		return "cancelled"
	case StateFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// Stats is a point-in-time snapshot of search progress. Attempts is
// monotonically non-decreasing while Running and frozen once the search
// halts.
type Stats struct {
	Attempts    uint64
	Rate        float64 // attempts per second
	ElapsedSecs float64
	Running     bool
}

// Result carries a successful match.
type Result struct {
	Key      keypair.KeyPair
	Address  string
	Pattern  Pattern
	Matched  Match
	Attempts uint64
	Elapsed  time.Duration
}

// Outcome is the single terminal message of a search. Failure takes the
// same shape as success, so a caller can never observe a crashed worker
// as "still running".
type Outcome struct {
	State  State
	Result *Result // set only when State == StateFound
	Err    error   // set only when State == StateFailed
	Stats  Stats
}

// Options configures one search.
type Options struct {
	Pattern         Pattern
	MaxAttempts     uint64        // attempt budget; 0 means unbounded
	Workers         int           // default 1
	CheckpointEvery int           // cancellation poll cadence, default 1000
	SampleInterval  time.Duration // stats sampling cadence, default 100ms

	// Entropy overrides the key material source; nil selects the
	// platform CSPRNG. Reads on a non-nil reader are serialized across
	// workers, so it does not need to be safe for concurrent use.
	Entropy io.Reader
}

const (
	DefaultCheckpointEvery = 1000
	DefaultSampleInterval  = 100 * time.Millisecond
)

// Search is a handle on a running (or finished) search.
type Search struct {
	pattern    Pattern
	max        uint64
	checkpoint int
	factory    *keypair.Factory
	start      time.Time
	cancel     context.CancelFunc

	tickets   atomic.Uint64 // reserved iteration numbers (budget)
	attempts  atomic.Uint64 // completed generate-test iterations
	state     atomic.Int32
	requested atomic.Bool // Cancel() was called

	once   sync.Once
	result *Result
	err    error

	final atomic.Pointer[Stats]

	updates chan Stats
	done    chan Outcome
}

// StartSearch validates the pattern, transitions to Running and begins
// the generate-test loop on dedicated worker goroutines. Progress flows
// through Updates(), the terminal message through Done().
func StartSearch(ctx context.Context, opts Options) (*Search, error) {
	if err := opts.Pattern.Validate(); err != nil {
		return nil, err
	}
	workers := opts.Workers
	if workers <= 0 {
		workers = 1
	}
	checkpoint := opts.CheckpointEvery
	if checkpoint <= 0 {
		checkpoint = DefaultCheckpointEvery
	}
	sample := opts.SampleInterval
	if sample <= 0 {
		sample = DefaultSampleInterval
	}

	entropy := opts.Entropy
	if entropy != nil {
		entropy = &lockedReader{r: entropy}
	}

	ctx, cancel := context.WithCancel(ctx)
	s := &Search{
		pattern:    opts.Pattern,
		max:        opts.MaxAttempts,
		checkpoint: checkpoint,
		factory:    keypair.NewFactory(entropy),
		start:      time.Now(),
		cancel:     cancel,
		updates:    make(chan Stats, 1),
		done:       make(chan Outcome, 1),
	}
	s.state.Store(int32(StateRunning))

	var wg sync.WaitGroup
	wg.Add(workers)
	for i := 0; i < workers; i++ {
		go func() {
			defer wg.Done()
			s.worker(ctx)
		}()
	}

	samplerDone := make(chan struct{})
	go s.sampler(ctx, sample, samplerDone)

	go func() {
		wg.Wait()
		cancel()
		<-samplerDone
		s.finish()
	}()

	return s, nil
}

// Updates delivers periodic stats snapshots while the search runs. The
// sampler never blocks the search loop: snapshots are dropped when the
// consumer lags.
func (s *Search) Updates() <-chan Stats { return s.updates }

// Done delivers exactly one terminal Outcome, then closes.
func (s *Search) Done() <-chan Outcome { return s.done }

// Cancel requests cooperative cancellation. The search reaches
// StateCancelled within one checkpoint interval.
func (s *Search) Cancel() {
	s.requested.Store(true)
	s.cancel()
}

// State returns the current state of the search.
func (s *Search) State() State { return State(s.state.Load()) }

// Stats returns a live snapshot while running, or the frozen final stats
// once the search has halted.
func (s *Search) Stats() Stats {
	if final := s.final.Load(); final != nil {
		return *final
	}
	return s.snapshot(true)
}

func (s *Search) worker(ctx context.Context) {
	sinceCheck := 0
	for {
		// Cooperative checkpoint: cancellation is honored within at
		// most s.checkpoint iterations.
		if sinceCheck == 0 {
			select {
			case <-ctx.Done():
				return
			default:
			}
		}
		sinceCheck++
		if sinceCheck >= s.checkpoint {
			sinceCheck = 0
		}

		// Reserve an iteration number before generating, so the
		// budget is never overspent even with several workers.
		if t := s.tickets.Add(1); s.max > 0 && t > s.max {
			return
		}

		kp, err := s.factory.GenerateRandom()
		if err != nil {
			s.once.Do(func() { s.err = err })
			s.cancel()
			return
		}
		addr := kp.Address()
		n := s.attempts.Add(1)

		if m, ok := s.pattern.Test(addr); ok {
			s.once.Do(func() {
				s.result = &Result{
					Key:      kp,
					Address:  addr,
					Pattern:  s.pattern,
					Matched:  m,
					Attempts: n,
					Elapsed:  time.Since(s.start),
				}
			})
			s.cancel()
			return
		}
	}
}

func (s *Search) sampler(ctx context.Context, interval time.Duration, done chan<- struct{}) {
	defer close(done)
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			select {
			case s.updates <- s.snapshot(true):
			default:
			}
		}
	}
}

func (s *Search) finish() {
	final := s.snapshot(false)
	s.final.Store(&final)

	var st State
	switch {
	case s.result != nil:
		st = StateFound
	case s.err != nil:
		st = StateFailed
	case s.requested.Load():
		st = StateCancelled
	case s.max > 0 && s.tickets.Load() > s.max:
		st = StateExhausted
	default:
		// parent context expired
		st = StateCancelled
	}
	s.state.Store(int32(st))

	s.done <- Outcome{State: st, Result: s.result, Err: s.err, Stats: final}
	close(s.done)
	close(s.updates)
}

// lockedReader serializes an injected entropy source shared by all
// workers. The platform CSPRNG is already safe for concurrent use.
type lockedReader struct {
	mu sync.Mutex
	r  io.Reader
}

func (l *lockedReader) Read(p []byte) (int, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.r.Read(p)
}

func (s *Search) snapshot(running bool) Stats {
	elapsed := time.Since(s.start).Seconds()
	n := s.attempts.Load()
	rate := 0.0
	if elapsed > 0 {
		rate = float64(n) / elapsed
	}
	return Stats{Attempts: n, Rate: rate, ElapsedSecs: elapsed, Running: running}
}
