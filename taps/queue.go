package taps

import (
	"sort"
	"sync"
	"time"
)

// queue keeps the files which have been seen but not dispatched yet.
// A file is only dispatched once it has not been touched for a while, so
// half written files are not picked up.
type queue struct {
	mux      sync.Mutex
	pending  map[string]time.Time
	inFlight map[string]struct{}
}

func newQueue() *queue {
	return &queue{
		pending:  make(map[string]time.Time),
		inFlight: make(map[string]struct{}),
	}
}

// touch records a change. The zero time makes the file ready straight away.
func (q *queue) touch(path string, at time.Time) {
	q.mux.Lock()
	defer q.mux.Unlock()
	if _, ok := q.inFlight[path]; ok {
		return
	}
	q.pending[path] = at
}

// ready moves the files which have settled to the in-flight set and returns them in order
func (q *queue) ready(now time.Time, settle time.Duration) []string {
	q.mux.Lock()
	defer q.mux.Unlock()
	var paths []string
	for path, last := range q.pending {
		if last.IsZero() || now.Sub(last) >= settle {
			paths = append(paths, path)
		}
	}
	sort.Strings(paths)
	for _, path := range paths {
		delete(q.pending, path)
		q.inFlight[path] = struct{}{}
	}
	return paths
}

func (q *queue) done(path string) {
	q.mux.Lock()
	defer q.mux.Unlock()
	delete(q.inFlight, path)
}
