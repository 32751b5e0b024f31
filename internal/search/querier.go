package search

import (
	"strings"
	"sync"
	"time"
)

// DefaultDebounceWindow is the quiescence interval after the last query or
// filter change before a search executes.
const DefaultDebounceWindow = 300 * time.Millisecond

// State is the query front-end's observable lifecycle state.
type State int

const (
	// StateIdle means no search is active (empty query).
	StateIdle State = iota
	// StateQuerying means a search is executing.
	StateQuerying
	// StateHasResults means the last search completed, possibly with zero hits.
	StateHasResults
	// StateErrored means the last search failed; prior results stay visible.
	StateErrored
)

// String returns the state name.
func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateQuerying:
		return "querying"
	case StateHasResults:
		return "has_results"
	case StateErrored:
		return "errored"
	default:
		return "unknown"
	}
}

// Searcher executes a free-text search. *Index satisfies it.
type Searcher interface {
	Search(query string, filter Filter) ([]Result, error)
}

// Querier debounces rapid query and filter changes into at most one executed
// search per quiescence window.
//
// Every change cancels the pending timer and schedules a fresh one, so a
// burst of keystrokes runs exactly one search with the last value. A search
// that is superseded while executing never overwrites newer state. Clearing
// the query discards any pending schedule and returns to idle immediately.
type Querier struct {
	mu       sync.Mutex
	searcher Searcher
	window   time.Duration

	timer *time.Timer
	// seq identifies the newest scheduled search; stale runs bail out.
	seq uint64

	state   State
	query   string
	filter  Filter
	results []Result
	err     error
}

// NewQuerier creates a query front-end over searcher. A non-positive window
// falls back to DefaultDebounceWindow.
func NewQuerier(searcher Searcher, window time.Duration) *Querier {
	if window <= 0 {
		window = DefaultDebounceWindow
	}
	return &Querier{
		searcher: searcher,
		window:   window,
		state:    StateIdle,
	}
}

// SetQuery records a query-string change. A whitespace-only query clears the
// front-end: pending schedules are discarded and the state drops to idle.
func (q *Querier) SetQuery(query string) {
	q.mu.Lock()
	defer q.mu.Unlock()

	if strings.TrimSpace(query) == "" {
		q.query = ""
		q.reset()
		return
	}
	q.query = query
	q.schedule()
}

// SetFilter records a filter change. With an active query this reschedules
// the debounced search; with no query it only stores the filter.
func (q *Querier) SetFilter(filter Filter) {
	q.mu.Lock()
	defer q.mu.Unlock()

	q.filter = filter
	if strings.TrimSpace(q.query) == "" {
		return
	}
	q.schedule()
}

// State returns the current lifecycle state.
func (q *Querier) State() State {
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.state
}

// Loading reports whether a search is currently executing.
func (q *Querier) Loading() bool {
	return q.State() == StateQuerying
}

// Query returns the current query string.
func (q *Querier) Query() string {
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.query
}

// Filter returns the current filter.
func (q *Querier) Filter() Filter {
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.filter
}

// Results returns the results of the last completed search. After a failed
// search the previous results remain available alongside Err.
func (q *Querier) Results() []Result {
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.results
}

// Err returns the error of the last failed search, or nil.
func (q *Querier) Err() error {
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.err
}

// Close discards any pending schedule. The querier must not be used after.
func (q *Querier) Close() {
	q.mu.Lock()
	defer q.mu.Unlock()
	q.seq++
	if q.timer != nil {
		q.timer.Stop()
		q.timer = nil
	}
}

// schedule cancels the pending timer, if any, and arms a fresh one for the
// current query and filter. Must be called with the lock held.
func (q *Querier) schedule() {
	q.seq++
	seq := q.seq
	if q.timer != nil {
		q.timer.Stop()
	}
	q.timer = time.AfterFunc(q.window, func() {
		q.run(seq)
	})
}

// reset discards pending work and returns to idle. Must be called with the
// lock held.
func (q *Querier) reset() {
	q.seq++
	if q.timer != nil {
		q.timer.Stop()
		q.timer = nil
	}
	q.state = StateIdle
	q.results = nil
	q.err = nil
}

// run executes the search scheduled under seq, dropping its outcome if a
// newer change superseded it in the meantime.
func (q *Querier) run(seq uint64) {
	q.mu.Lock()
	if seq != q.seq {
		q.mu.Unlock()
		return
	}
	query, filter := q.query, q.filter
	q.state = StateQuerying
	q.mu.Unlock()

	results, err := q.searcher.Search(query, filter)

	q.mu.Lock()
	defer q.mu.Unlock()
	if seq != q.seq {
		return
	}
	if err != nil {
		q.state = StateErrored
		q.err = err
		return
	}
	q.state = StateHasResults
	q.results = results
	q.err = nil
}
