package taps

import (
	"time"

	"github.com/xitonix/xenigma/logging"
	"github.com/xitonix/xenigma/operator"
)

const (
	// EncipheredFileExtension is appended to the enciphered files and removed again when they are deciphered
	EncipheredFileExtension = ".enigma"

	defaultInterval = time.Second
)

// Backend selects how the source directory is monitored
type Backend int8

const (
	// Polling scans the source directory on every interval
	Polling Backend = iota
	// Events subscribes to the file system notifications of the operating system
	Events
)

func (b Backend) String() string {
	if b == Events {
		return "events"
	}
	return "polling"
}

// Options the directory watcher tap settings
type Options struct {
	// Source and Target are the paths to the source and destination directories.
	// They will get created by the tap if they don't already exist.
	Source, Target string
	// Mode enciphers or deciphers the files
	Mode operator.Operation
	// Keyring builds a fresh machine for every file
	Keyring operator.Keyring
	// Stream how the text around the letters is treated
	Stream  operator.Options
	Backend Backend
	// Interval is the frequency of checking for new files. Defaults to one second.
	Interval time.Duration
	// Settle is how long a file must stay untouched before it's picked up. Defaults to Interval.
	Settle time.Duration
	// DeleteCompleted removes the source files (and the sub-directories left empty)
	// once they have been processed successfully.
	DeleteCompleted bool
	// NotifyErrors publishes the failures on the Errors channel.
	// You need to read off the channel, otherwise the tap blocks.
	NotifyErrors bool
	// ReportProgress publishes the progress of every file on the Progress channel.
	// You need to read off the channel, otherwise the tap blocks.
	ReportProgress bool
	Logger         logging.Logger
}

func (o *Options) setDefaults() {
	if o.Interval <= 0 {
		o.Interval = defaultInterval
	}
	if o.Settle <= 0 {
		o.Settle = o.Interval
	}
	if o.Logger == nil {
		o.Logger = logging.Discard
	}
}
