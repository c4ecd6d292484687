// Command watcher enciphers every file dropped into the source directory into the target directory.
//
//	watcher -source inbox -target outbox -rotors "II IV V" -rings "02 21 12" -hidden
//	watcher -source outbox -target plain -decode -events
//
// Every flag can also be set through the matching XENIGMA_* environment variable.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/xitonix/xenigma/cmd"
	"github.com/xitonix/xenigma/config"
	"github.com/xitonix/xenigma/logging"
	"github.com/xitonix/xenigma/operator"
	"github.com/xitonix/xenigma/taps"
)

// Config holds the watcher command configuration.
type Config struct {
	config.Key
	Source   string        `env:"XENIGMA_SOURCE" envDefault:"inbox"`
	Target   string        `env:"XENIGMA_TARGET" envDefault:"outbox"`
	Interval time.Duration `env:"XENIGMA_INTERVAL" envDefault:"1s"`
	Workers  uint          `env:"XENIGMA_WORKERS" envDefault:"4"`
	Events   bool          `env:"XENIGMA_EVENTS"`
	Delete   bool          `env:"XENIGMA_DELETE"`
	Decode   bool          `env:"XENIGMA_DECODE"`
	Hidden   bool
	Yes      bool
}

// ParseConfig parses environment and flags into a Config.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	var cfg Config
	err := config.Parse(&cfg, fs, args, func(fs *flag.FlagSet) {
		cfg.Key.RegisterFlags(fs)
		fs.StringVar(&cfg.Source, "source", cfg.Source, "The directory to watch")
		fs.StringVar(&cfg.Target, "target", cfg.Target, "The directory to write the results into")
		fs.DurationVar(&cfg.Interval, "interval", cfg.Interval, "How often the source directory is checked")
		fs.UintVar(&cfg.Workers, "workers", cfg.Workers, "The number of files processed at the same time")
		fs.BoolVar(&cfg.Events, "events", cfg.Events, "Use the file system notifications instead of polling")
		fs.BoolVar(&cfg.Delete, "delete", cfg.Delete, "Delete the source files once they have been processed")
		fs.BoolVar(&cfg.Decode, "decode", cfg.Decode, "Decipher the files instead of enciphering them")
		fs.BoolVar(&cfg.Hidden, "hidden", cfg.Hidden, "Read the start positions from the terminal without echoing them")
		fs.BoolVar(&cfg.Yes, "yes", cfg.Yes, "Do not ask for confirmation before deleting the source files")
	})
	if err != nil {
		return Config{}, err
	}
	if cfg.Workers == 0 || cfg.Workers > 1<<16-1 {
		return Config{}, fmt.Errorf("the number of workers must be between 1 and %d", 1<<16-1)
	}
	return cfg, nil
}

// TapOptions turns the configuration into the directory watcher settings
func (c Config) TapOptions(log logging.Logger) (taps.Options, error) {
	key, err := c.Settings()
	if err != nil {
		return taps.Options{}, err
	}
	stream, err := c.StreamOptions()
	if err != nil {
		return taps.Options{}, err
	}
	opts := taps.Options{
		Source:          c.Source,
		Target:          c.Target,
		Mode:            operator.Encode,
		Keyring:         key,
		Stream:          stream,
		Backend:         taps.Polling,
		Interval:        c.Interval,
		DeleteCompleted: c.Delete,
		NotifyErrors:    true,
		ReportProgress:  true,
		Logger:          log,
	}
	if c.Decode {
		opts.Mode = operator.Decode
	}
	if c.Events {
		opts.Backend = taps.Events
	}
	return opts, nil
}

func main() {
	cfg, err := ParseConfig(flag.CommandLine, os.Args[1:])
	if err != nil {
		config.Exitf("watcher: %v", err)
	}

	if cfg.Hidden {
		positions, err := cmd.ReadHidden("Start positions: ")
		if err != nil {
			config.Exitf("watcher: %v", err)
		}
		cfg.Positions = positions
	}

	if cfg.Delete && !cfg.Yes && !cmd.AskForConfirmation(os.Stdin, os.Stderr, "The source files will be deleted once they are processed. Continue") {
		return
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGHUP, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, os.Stdout, os.Stderr); err != nil {
		stop()
		config.Exitf("watcher: %v", err)
	}
}

// run serves the source directory until the context is done
func run(ctx context.Context, cfg Config, out, diag io.Writer) error {
	log, err := cfg.Logger(diag)
	if err != nil {
		return err
	}

	opts, err := cfg.TapOptions(log)
	if err != nil {
		return err
	}

	tap, err := taps.NewDirectoryWatcherTap(opts)
	if err != nil {
		return err
	}

	engine := operator.NewEngine(uint16(cfg.Workers), false, tap)
	engine.SetLogger(log)
	wg := &sync.WaitGroup{}

	wg.Add(1)
	go func() {
		defer wg.Done()
		for err := range tap.Errors() {
			log.Error(err)
		}
	}()

	wg.Add(1)
	go func() {
		defer wg.Done()
		for p := range tap.Progress() {
			if p.Status != operator.Queued {
				fmt.Fprintf(out, "%s > %s %s\n", p.Input.Name, p.Output.Name, p.Status)
			}
		}
	}()

	engine.Start()
	log.Infof("the service is up and running with %d worker(s). Press Ctrl+C to stop it", cfg.Workers)

	<-ctx.Done()
	engine.Stop()
	wg.Wait()
	log.Info("the engine has been stopped successfully")
	return nil
}
