package operator

import (
	"context"
	"sync"

	"github.com/xitonix/xenigma/enigma"
	"github.com/xitonix/xenigma/logging"
)

// Engine is the type that serves the work units coming through a tap
type Engine struct {
	tap      Tap
	workers  uint16
	notify   bool
	progress chan *Result
	wg       *sync.WaitGroup
	cancel   context.CancelFunc
	log      logging.Logger

	startOnce sync.Once
	stopOnce  sync.Once

	//to prevent multiple go routines to run Start and Stop at the same time
	mux       sync.Mutex
	isRunning bool
}

// NewEngine creates a new engine with the specified number of workers.
// If progress is enabled, the caller must keep reading the Progress channel until it gets closed.
func NewEngine(workers uint16, enableProgress bool, tap Tap) *Engine {
	if workers == 0 {
		workers = 1
	}
	return &Engine{
		tap:      tap,
		workers:  workers,
		progress: make(chan *Result),
		wg:       &sync.WaitGroup{},
		notify:   enableProgress,
		log:      logging.Discard,
	}
}

// SetLogger replaces the default logger which discards everything
func (e *Engine) SetLogger(log logging.Logger) {
	e.mux.Lock()
	defer e.mux.Unlock()
	if log != nil {
		e.log = log
	}
}

// Progress returns the channel the progress reports are published to.
// The channel is closed when the engine stops.
func (e *Engine) Progress() <-chan *Result {
	return e.progress
}

func (e *Engine) reportProgress(ctx context.Context, r *Result) {
	if !e.notify {
		return
	}
	select {
	case e.progress <- r:
	case <-ctx.Done():
	}
}

// Start starts the workers and opens the tap.
// Once you are finished with the engine, you need to call the Stop function.
// It's safe to call this method on a running engine.
// A stopped engine cannot be restarted.
func (e *Engine) Start() {
	e.mux.Lock()
	defer e.mux.Unlock()

	if e.isRunning {
		return
	}

	e.startOnce.Do(func() {
		ctx, cancel := context.WithCancel(context.Background())
		e.cancel = cancel

		for i := uint16(0); i < e.workers; i++ {
			e.wg.Add(1)
			go e.serve(ctx, i)
		}
		if !e.tap.IsOpen() {
			e.tap.Open()
		}
		e.isRunning = true
		e.log.Debugf("engine started with %d worker(s)", e.workers)
	})
}

// Stop closes the tap, cancels the in-flight tasks and waits for the workers to return.
// It's safe to call this function on a stopped engine
func (e *Engine) Stop() {
	e.mux.Lock()
	defer e.mux.Unlock()

	if !e.isRunning {
		return
	}
	e.stopOnce.Do(func() {
		e.isRunning = false
		if e.tap.IsOpen() {
			e.tap.Close()
		}
		e.cancel()
		e.wg.Wait()
		close(e.progress)
		e.log.Debug("engine stopped")
	})
}

// IsON returns true if the engine is running
func (e *Engine) IsON() bool {
	e.mux.Lock()
	defer e.mux.Unlock()
	return e.isRunning
}

func (e *Engine) serve(ctx context.Context, worker uint16) {
	defer e.wg.Done()
	pipe := e.tap.Pipe()
	for {
		select {
		case wu, more := <-pipe:
			if !more {
				return
			}
			if wu == nil || wu.Task == nil {
				continue
			}

			e.reportProgress(ctx, &Result{
				Status:   InProgress,
				Metadata: wu.Metadata,
			})
			wu.Error = processTask(ctx, wu.Task, wu.keyring)
			status := wu.Task.Status()
			if wu.Error != nil {
				e.log.Errorf("worker %d: failed to %s: %v", worker, wu.Task.mode, wu.Error)
			} else {
				e.log.Debugf("worker %d: %s %s", worker, wu.Task.mode, status)
			}
			wu.callBack()
			e.reportProgress(ctx, &Result{
				Error:    wu.Error,
				Status:   status,
				Metadata: wu.Metadata,
			})
		case <-ctx.Done():
			return
		}
	}
}

func processTask(ctx context.Context, task *Task, keyring Keyring) error {
	task.markAsInProgress()
	machine, err := newMachine(keyring)
	if err != nil {
		task.markAsComplete(Failed)
		return err
	}

	var status Status
	if task.mode == Encode {
		encoder := NewEncoder(defaultBufferSize, machine, task.options, task.input, task.writers()...)
		status, err = encoder.EncodeContext(ctx)
	} else {
		decoder := NewDecoder(defaultBufferSize, machine, task.options, task.input, task.writers()...)
		status, err = decoder.DecodeContext(ctx)
	}
	task.markAsComplete(status)
	return err
}

func newMachine(keyring Keyring) (*enigma.Machine, error) {
	if keyring == nil {
		return nil, errNoKeyring
	}
	return keyring.Machine()
}
