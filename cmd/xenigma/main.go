// Command xenigma enciphers the standard input into the standard output.
//
//	echo "Hello World" | xenigma -rotors "II IV V" -rings "02 21 12" -positions BLA -plugs "AV BS CG"
//	echo "ILBDA AMTAZ" | xenigma -decode
//
// Every flag can also be set through the matching XENIGMA_* environment variable.
package main

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/xitonix/xenigma/cmd"
	"github.com/xitonix/xenigma/config"
	"github.com/xitonix/xenigma/operator"
	"github.com/xitonix/xenigma/settings"
)

// Config holds the xenigma command configuration.
type Config struct {
	config.Key
	Decode      bool `env:"XENIGMA_DECODE"`
	Random      bool
	RandomPlugs int `env:"XENIGMA_RANDOM_PLUGS" envDefault:"10"`
	Fingerprint bool
	Hidden      bool
}

// ParseConfig parses environment and flags into a Config.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	var cfg Config
	err := config.Parse(&cfg, fs, args, func(fs *flag.FlagSet) {
		cfg.Key.RegisterFlags(fs)
		fs.BoolVar(&cfg.Decode, "decode", cfg.Decode, "Decipher the input. Grouping is ignored")
		fs.BoolVar(&cfg.Random, "random", cfg.Random, "Print a random key sheet line and exit")
		fs.IntVar(&cfg.RandomPlugs, "random-plugs", cfg.RandomPlugs, "The number of plugboard cables of the random key")
		fs.BoolVar(&cfg.Fingerprint, "fingerprint", cfg.Fingerprint, "Print the fingerprint of the key and exit")
		fs.BoolVar(&cfg.Hidden, "hidden", cfg.Hidden, "Read the start positions from the terminal without echoing them")
	})
	if err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func main() {
	cfg, err := ParseConfig(flag.CommandLine, os.Args[1:])
	if err != nil {
		config.Exitf("xenigma: %v", err)
	}

	if cfg.Hidden {
		positions, err := cmd.ReadHidden("Start positions: ")
		if err != nil {
			config.Exitf("xenigma: %v", err)
		}
		cfg.Positions = positions
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, os.Stdin, os.Stdout, os.Stderr); err != nil {
		stop()
		config.Exitf("xenigma: %v", err)
	}
}

func run(ctx context.Context, cfg Config, in io.Reader, out, diag io.Writer) error {
	log, err := cfg.Logger(diag)
	if err != nil {
		return err
	}

	if cfg.Random {
		cat, err := cfg.LoadCatalog()
		if err != nil {
			return err
		}
		key, err := settings.Random(settings.RandomOptions{
			Catalog:   cat,
			Reflector: cfg.Reflector,
			Plugs:     cfg.RandomPlugs,
		})
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(out, key)
		return err
	}

	key, err := cfg.Settings()
	if err != nil {
		return err
	}
	fingerprint, err := key.Fingerprint()
	if err != nil {
		return err
	}
	if cfg.Fingerprint {
		_, err = fmt.Fprintln(out, fingerprint)
		return err
	}

	opts, err := cfg.StreamOptions()
	if err != nil {
		return err
	}
	machine, err := key.Machine()
	if err != nil {
		return err
	}
	log.Debugf("key %s, filter %s, groups of %d", fingerprint, opts.Filter, opts.GroupSize)

	w := bufio.NewWriter(out)
	var status operator.Status
	if cfg.Decode {
		status, err = operator.NewDecoder(0, machine, opts, in, w).DecodeContext(ctx)
	} else {
		status, err = operator.NewEncoder(0, machine, opts, in, w).EncodeContext(ctx)
	}
	if err != nil {
		return err
	}
	fmt.Fprintln(w)
	if err := w.Flush(); err != nil {
		return err
	}
	if status == operator.Cancelled {
		return errors.New("interrupted")
	}
	log.Debugf("windows at the end of the message: %s", machine)
	return nil
}
