package config

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/xitonix/xenigma/catalog"
	"github.com/xitonix/xenigma/logging"
	"github.com/xitonix/xenigma/operator"
	"github.com/xitonix/xenigma/settings"
)

// Key holds the daily key and the text handling settings shared by the commands.
type Key struct {
	Reflector string `env:"XENIGMA_REFLECTOR" envDefault:"B"`
	Rotors    string `env:"XENIGMA_ROTORS" envDefault:"I II III"`
	Rings     string `env:"XENIGMA_RINGS" envDefault:"AAA"`
	Positions string `env:"XENIGMA_POSITIONS" envDefault:"AAA"`
	Plugs     string `env:"XENIGMA_PLUGS"`
	Catalog   string `env:"XENIGMA_CATALOG"`
	GroupSize int    `env:"XENIGMA_GROUP" envDefault:"5"`
	Filter    string `env:"XENIGMA_FILTER" envDefault:"strip"`
	LogLevel  string `env:"XENIGMA_LOG_LEVEL" envDefault:"info"`
}

// RegisterFlags binds the key to the flag set. The current values become the flag defaults.
func (k *Key) RegisterFlags(fs *flag.FlagSet) {
	fs.StringVar(&k.Reflector, "reflector", k.Reflector, "The reflector model")
	fs.StringVar(&k.Rotors, "rotors", k.Rotors, "The rotor models from left to right")
	fs.StringVar(&k.Rings, "rings", k.Rings, "The ring settings, as letters (AAA) or numbers (01 01 01)")
	fs.StringVar(&k.Positions, "positions", k.Positions, "The start positions, as letters (AAA) or numbers (01 01 01)")
	fs.StringVar(&k.Plugs, "plugs", k.Plugs, "The plugboard cables (AV BS CG)")
	fs.StringVar(&k.Catalog, "catalog", k.Catalog, "A YAML file with extra rotor and reflector models")
	fs.IntVar(&k.GroupSize, "group", k.GroupSize, "The number of letters per group in the enciphered text (0 disables grouping)")
	fs.StringVar(&k.Filter, "filter", k.Filter, "What to do with the characters other than letters: strip, keep or strict")
	fs.StringVar(&k.LogLevel, "log-level", k.LogLevel, "The log level: debug, info, warning or error")
}

// LoadCatalog reads the catalog file. It returns nil if no file has been specified,
// which makes the settings fall back to the historical models.
func (k Key) LoadCatalog() (*catalog.Catalog, error) {
	if k.Catalog == "" {
		return nil, nil
	}
	f, err := os.Open(k.Catalog)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return catalog.Load(f)
}

// Settings parses and validates the daily key
func (k Key) Settings() (settings.Settings, error) {
	cat, err := k.LoadCatalog()
	if err != nil {
		return settings.Settings{}, err
	}
	s, err := settings.Parse(k.Reflector, k.Rotors, k.Rings, k.Positions, k.Plugs)
	if err != nil {
		return settings.Settings{}, err
	}
	s.Catalog = cat
	if err := s.Validate(); err != nil {
		return settings.Settings{}, err
	}
	return s, nil
}

// StreamOptions returns the text handling options
func (k Key) StreamOptions() (operator.Options, error) {
	filter, err := operator.ParseFilter(k.Filter)
	if err != nil {
		return operator.Options{}, err
	}
	if k.GroupSize < 0 {
		return operator.Options{}, fmt.Errorf("invalid group size %d", k.GroupSize)
	}
	return operator.Options{Filter: filter, GroupSize: k.GroupSize}, nil
}

// Logger creates a logger writing to w at the configured level
func (k Key) Logger(w io.Writer) (logging.Logger, error) {
	level, err := logging.ParseLevel(k.LogLevel)
	if err != nil {
		return nil, err
	}
	return logging.New(w, level), nil
}
