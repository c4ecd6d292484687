package taps

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/xitonix/xenigma/logging"
	"github.com/xitonix/xenigma/operator"
)

const (
	outputMetadataKey     = "output"
	inputMetadataKey      = "input"
	outputFullMetadataKey = "output_full_path"
	inputFullMetadataKey  = "input_full_path"
)

// File file
type File struct {
	// Name file name, relative to the source or the target directory
	Name string
	// Path file full path
	Path string
}

// Result represents the progress details of a file
type Result struct {
	// Status the status of the operation
	Status operator.Status
	// Error the error details of a failed file
	Error error
	// Input input file
	Input File
	// Output output file
	Output File
}

// DirectoryWatcherTap is a tap with the functionality of monitoring a local directory and
// enciphering (or deciphering) every file which lands in it into the target directory.
// The files which are already in the source directory are processed as soon as the tap opens.
type DirectoryWatcherTap struct {
	opts           Options
	source, target string
	pipe           operator.WorkList
	errors         chan error
	progress       chan *Result
	queue          *queue
	backend        backend
	log            logging.Logger
	wg             *sync.WaitGroup
	done           chan struct{}

	openOnce  sync.Once
	closeOnce sync.Once

	// to prevent multiple go routines to run
	// Open and Close at the same time
	mux    sync.Mutex
	isOpen bool

	// guards the outgoing channels, the engine may still call back after the tap has been closed
	chMux  sync.RWMutex
	closed bool
}

// NewDirectoryWatcherTap creates a new instance of directory watcher tap.
func NewDirectoryWatcherTap(opts Options) (*DirectoryWatcherTap, error) {
	if opts.Keyring == nil {
		return nil, ErrNoKeyring
	}
	opts.setDefaults()

	src, err := createDirIfNotExist(opts.Source)
	if err != nil {
		return nil, err
	}

	tg, err := createDirIfNotExist(opts.Target)
	if err != nil {
		return nil, err
	}

	if isWithin(tg, src) {
		return nil, fmt.Errorf("%w: %s", ErrOverlappingDirectories, tg)
	}

	b, err := newBackend(opts.Backend, src, opts.Interval)
	if err != nil {
		return nil, err
	}

	return &DirectoryWatcherTap{
		opts:     opts,
		source:   src,
		target:   tg,
		pipe:     make(operator.WorkList),
		errors:   make(chan error),
		progress: make(chan *Result),
		queue:    newQueue(),
		backend:  b,
		log:      opts.Logger,
		wg:       &sync.WaitGroup{},
		done:     make(chan struct{}),
	}, nil
}

// Errors returns a read-only channel on which you will receive the failure notifications,
// if NotifyErrors has been enabled.
func (d *DirectoryWatcherTap) Errors() <-chan error {
	return d.errors
}

// Pipe returns the work list channel from which the engine will receive the requests.
func (d *DirectoryWatcherTap) Pipe() operator.WorkList {
	return d.pipe
}

// Progress returns a read-only channel on which you will receive the progress report,
// if ReportProgress has been enabled.
func (d *DirectoryWatcherTap) Progress() <-chan *Result {
	return d.progress
}

// Open starts the directory watcher on the source directory.
// You SHOULD NOT call this method explicitly when you use the tap with an Engine object.
// Starting the engine will take care of opening the tap.
func (d *DirectoryWatcherTap) Open() {
	d.mux.Lock()
	defer d.mux.Unlock()

	d.openOnce.Do(func() {
		d.isOpen = true

		d.wg.Add(3)
		go func() {
			defer d.wg.Done()
			d.backend.run(d.done, d.fileChanged, d.reportError)
		}()
		go d.processExistingFiles()
		go d.dispatchSettledFiles()
		d.log.Infof("watching %s (%s) for files to %s into %s", d.source, d.opts.Backend, d.opts.Mode, d.target)
	})
}

// Close stops the directory watcher and releases the resources.
// NOTE: You don't need to explicitly call this function when you are using the tap
// with an Engine
func (d *DirectoryWatcherTap) Close() {
	d.mux.Lock()
	defer d.mux.Unlock()

	if !d.isOpen {
		return
	}
	d.closeOnce.Do(func() {
		close(d.done)
		d.wg.Wait()
		close(d.pipe)

		d.chMux.Lock()
		d.closed = true
		close(d.errors)
		close(d.progress)
		d.chMux.Unlock()

		d.isOpen = false
		d.log.Infof("stopped watching %s", d.source)
	})
}

// IsOpen returns true if the tap is open
func (d *DirectoryWatcherTap) IsOpen() bool {
	d.mux.Lock()
	defer d.mux.Unlock()
	return d.isOpen
}

func (d *DirectoryWatcherTap) processExistingFiles() {
	defer d.wg.Done()
	err := filepath.WalkDir(d.source, func(path string, entry fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		select {
		case <-d.done:
			return filepath.SkipAll
		default:
		}
		if entry.IsDir() {
			if path != d.source && d.isHidden(path) {
				return filepath.SkipDir
			}
			return nil
		}
		if !d.isHidden(path) {
			d.queue.touch(path, time.Time{})
		}
		return nil
	})

	if err != nil {
		d.reportError(fmt.Errorf("failed to scan '%s': %w", d.source, err))
	}
}

// fileChanged is called by the backend for every created or modified path
func (d *DirectoryWatcherTap) fileChanged(path string) {
	if path == d.source || d.isHidden(path) {
		return
	}
	info, err := os.Stat(path)
	if err != nil {
		if !os.IsNotExist(err) {
			d.reportError(fmt.Errorf("os.Stat: %w", err))
		}
		return
	}
	if !info.IsDir() {
		d.queue.touch(path, time.Now())
		return
	}

	// a whole directory has been moved in
	err = filepath.WalkDir(path, func(p string, entry fs.DirEntry, err error) error {
		if err == nil && !entry.IsDir() && !d.isHidden(p) {
			d.queue.touch(p, time.Now())
		}
		return nil
	})
	if err != nil {
		d.reportError(err)
	}
}

func (d *DirectoryWatcherTap) dispatchSettledFiles() {
	defer d.wg.Done()
	ticker := time.NewTicker(d.opts.Interval)
	defer ticker.Stop()
	for {
		for _, path := range d.queue.ready(time.Now(), d.opts.Settle) {
			if !d.dispatchWorkUnit(path) {
				return
			}
		}
		select {
		case <-d.done:
			return
		case <-ticker.C:
		}
	}
}

// dispatchWorkUnit returns false if the tap has been closed while waiting for the engine
func (d *DirectoryWatcherTap) dispatchWorkUnit(path string) bool {
	input, output, err := d.files(path)
	if err != nil {
		d.queue.done(path)
		d.reportError(err)
		return true
	}

	in, err := os.Open(input.Path)
	if err != nil {
		d.queue.done(path)
		d.reportError(fmt.Errorf("failed to open '%s': %w", input.Name, err))
		return true
	}

	if _, err := createDirIfNotExist(filepath.Dir(output.Path)); err != nil {
		in.Close()
		d.queue.done(path)
		d.reportError(fmt.Errorf("failed to create the directory of '%s': %w", output.Name, err))
		return true
	}

	out, err := os.Create(output.Path)
	if err != nil {
		in.Close()
		d.queue.done(path)
		d.reportError(fmt.Errorf("failed to create '%s': %w", output.Name, err))
		return true
	}

	t := operator.NewTask(d.opts.Mode, d.opts.Stream, in, out)
	w := operator.NewWorkUnit(t, d.opts.Keyring, d.whenDone)
	w.Metadata[inputMetadataKey] = input.Name
	w.Metadata[outputMetadataKey] = output.Name
	w.Metadata[inputFullMetadataKey] = input.Path
	w.Metadata[outputFullMetadataKey] = output.Path

	d.reportProgress(&Result{
		Status: t.Status(),
		Input:  input,
		Output: output,
	})

	select {
	case d.pipe <- w:
		d.log.Debugf("dispatched %s", input.Name)
		return true
	case <-d.done:
		in.Close()
		out.Close()
		os.Remove(output.Path)
		d.queue.done(path)
		return false
	}
}

// whenDone is a callback method which will get called by the engine once the
// processing of a task has been finished
func (d *DirectoryWatcherTap) whenDone(w *operator.WorkUnit) {
	input, output := d.parseMetadata(w.Metadata)
	defer d.queue.done(input.Path)

	if err := w.Task.CloseInput(); err != nil {
		d.reportError(fmt.Errorf("failed to close '%s': %w", input.Name, err))
	}
	if err := w.Task.CloseOutputs(); err != nil {
		d.reportError(fmt.Errorf("failed to close '%s': %w", output.Name, err))
	}

	status := w.Task.Status()
	if w.Error != nil {
		d.log.Errorf("%s: %v", input.Name, w.Error)
		d.reportError(fmt.Errorf("failed to %s '%s': %w", d.opts.Mode, input.Name, w.Error))
	} else {
		d.log.Infof("%s -> %s: %s", input.Name, output.Name, status)
	}

	if d.opts.DeleteCompleted && status == operator.Completed {
		if err := os.Remove(input.Path); err != nil {
			d.reportError(fmt.Errorf("failed to remove '%s': %w", input.Name, err))
		} else {
			d.removeEmptyDirectories(filepath.Dir(input.Path))
		}
	}

	d.reportProgress(&Result{
		Status: status,
		Error:  w.Error,
		Input:  input,
		Output: output,
	})
}

// removeEmptyDirectories walks up from dir and removes the empty sub-directories of the source
func (d *DirectoryWatcherTap) removeEmptyDirectories(dir string) {
	for dir != d.source && isWithin(dir, d.source) {
		if !isDirEmpty(dir) {
			return
		}
		if err := os.Remove(dir); err != nil && !os.IsNotExist(err) {
			d.reportError(fmt.Errorf("failed to remove '%s' directory: %w", dir, err))
			return
		}
		dir = filepath.Dir(dir)
	}
}

func (d *DirectoryWatcherTap) reportError(err error) {
	d.log.Debugf("tap error: %v", err)
	if !d.opts.NotifyErrors {
		return
	}
	d.chMux.RLock()
	defer d.chMux.RUnlock()
	if d.closed {
		return
	}
	select {
	case d.errors <- err:
	case <-d.done:
	}
}

func (d *DirectoryWatcherTap) reportProgress(r *Result) {
	if !d.opts.ReportProgress {
		return
	}
	d.chMux.RLock()
	defer d.chMux.RUnlock()
	if d.closed {
		return
	}
	select {
	case d.progress <- r:
	case <-d.done:
	}
}

// files works out the input and the output file of a path in the source directory
func (d *DirectoryWatcherTap) files(path string) (File, File, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return File{}, File{}, err
	}
	rel, err := filepath.Rel(d.source, abs)
	if err != nil {
		return File{}, File{}, err
	}
	name := outputName(d.opts.Mode, rel)
	return File{Name: rel, Path: abs}, File{Name: name, Path: filepath.Join(d.target, name)}, nil
}

func (d *DirectoryWatcherTap) isHidden(path string) bool {
	rel, err := filepath.Rel(d.source, path)
	if err != nil {
		return false
	}
	for _, part := range strings.Split(rel, string(filepath.Separator)) {
		if strings.HasPrefix(part, ".") && part != "." && part != ".." {
			return true
		}
	}
	return false
}

func (d *DirectoryWatcherTap) parseMetadata(metadata operator.MetadataMap) (File, File) {
	return File{
			Name: metadata[inputMetadataKey].(string),
			Path: metadata[inputFullMetadataKey].(string),
		},
		File{
			Name: metadata[outputMetadataKey].(string),
			Path: metadata[outputFullMetadataKey].(string),
		}
}

func outputName(mode operator.Operation, name string) string {
	if mode == operator.Decode {
		return strings.TrimSuffix(name, EncipheredFileExtension)
	}
	return name + EncipheredFileExtension
}

func createDirIfNotExist(dir string) (string, error) {
	abs, err := filepath.Abs(dir)
	if err != nil {
		return dir, err
	}
	f, err := os.Stat(abs)
	if os.IsNotExist(err) {
		return abs, os.MkdirAll(abs, os.ModePerm)
	}
	if err != nil {
		return abs, err
	}
	if !f.IsDir() {
		return abs, fmt.Errorf("%w: %s", ErrInvalidDirectory, abs)
	}
	return abs, nil
}

// isWithin returns true if path is dir itself or lives under it
func isWithin(path, dir string) bool {
	rel, err := filepath.Rel(dir, path)
	if err != nil {
		return false
	}
	return rel == "." || (rel != ".." && !strings.HasPrefix(rel, ".."+string(filepath.Separator)))
}

func isDirEmpty(name string) bool {
	entries, err := os.ReadDir(name)
	if err != nil {
		return false
	}
	return len(entries) == 0
}
