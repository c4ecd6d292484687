package taps

import (
	"path/filepath"
	"time"

	"github.com/radovskyb/watcher"
	"github.com/rjeczalik/notify"
)

// backend reports the paths of the files created or modified under a directory.
// run blocks until done gets closed.
type backend interface {
	run(done <-chan struct{}, changed func(path string), failed func(error))
}

func newBackend(kind Backend, dir string, interval time.Duration) (backend, error) {
	if kind == Events {
		return &eventBackend{
			dir: dir,
			// Make the channel buffered to ensure no event is dropped. Notify will drop
			// an event if the receiver is not able to keep up the sending pace.
			events: make(chan notify.EventInfo, 64),
		}, nil
	}

	w := watcher.New()
	w.FilterOps(watcher.Create, watcher.Write)
	w.IgnoreHiddenFiles(true)
	if err := w.AddRecursive(dir); err != nil {
		return nil, err
	}
	return &pollingBackend{watcher: w, interval: interval}, nil
}

type pollingBackend struct {
	watcher  *watcher.Watcher
	interval time.Duration
}

func (p *pollingBackend) run(done <-chan struct{}, changed func(string), failed func(error)) {
	go func() {
		if err := p.watcher.Start(p.interval); err != nil {
			failed(err)
		}
	}()
	p.watcher.Wait()

	for {
		select {
		case event := <-p.watcher.Event:
			changed(event.Path)
		case err := <-p.watcher.Error:
			failed(err)
		case <-p.watcher.Closed:
			return
		case <-done:
			// The watcher blocks on its channels until somebody reads them,
			// so keep draining until it confirms the shutdown.
			go p.watcher.Close()
			for {
				select {
				case <-p.watcher.Event:
				case <-p.watcher.Error:
				case <-p.watcher.Closed:
					return
				}
			}
		}
	}
}

type eventBackend struct {
	dir    string
	events chan notify.EventInfo
}

func (e *eventBackend) run(done <-chan struct{}, changed func(string), failed func(error)) {
	if err := notify.Watch(filepath.Join(e.dir, "..."), e.events, notify.Create, notify.Write, notify.Rename); err != nil {
		failed(err)
		return
	}
	defer notify.Stop(e.events)

	for {
		select {
		case <-done:
			return
		case ei := <-e.events:
			changed(ei.Path())
		}
	}
}
