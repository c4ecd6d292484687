package main

import (
	"context"
	"flag"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/xitonix/xenigma/assert"
	"github.com/xitonix/xenigma/logging"
	"github.com/xitonix/xenigma/operator"
	"github.com/xitonix/xenigma/taps"
)

func parse(args ...string) (Config, error) {
	fs := flag.NewFlagSet("watcher", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	return ParseConfig(fs, args)
}

func TestParseConfig(t *testing.T) {
	testCases := []struct {
		title       string
		args        []string
		mode        operator.Operation
		backend     taps.Backend
		expectError bool
	}{
		{
			title:   "defaults",
			mode:    operator.Encode,
			backend: taps.Polling,
		},
		{
			title:   "decode_with_events",
			args:    []string{"-decode", "-events", "-interval", "250ms"},
			mode:    operator.Decode,
			backend: taps.Events,
		},
		{
			title:       "no_workers",
			args:        []string{"-workers", "0"},
			expectError: true,
		},
		{
			title:       "invalid_interval",
			args:        []string{"-interval", "soon"},
			expectError: true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.title, func(t *testing.T) {
			cfg, err := parse(tc.args...)
			if !assert.Errors(t, tc.expectError, err, assert.Fields{"args": tc.args}) {
				return
			}
			opts, err := cfg.TapOptions(logging.Discard)
			if err != nil {
				t.Fatalf("failed to build the tap options: %v", err)
			}
			if opts.Mode != tc.mode {
				t.Errorf("expected mode %v, actual %v", tc.mode, opts.Mode)
			}
			if opts.Backend != tc.backend {
				t.Errorf("expected backend %v, actual %v", tc.backend, opts.Backend)
			}
			if opts.Keyring == nil {
				t.Error("the tap needs a keyring")
			}
		})
	}
}

type syncBuffer struct {
	mux sync.Mutex
	sb  strings.Builder
}

func (s *syncBuffer) Write(p []byte) (int, error) {
	s.mux.Lock()
	defer s.mux.Unlock()
	return s.sb.Write(p)
}

func (s *syncBuffer) String() string {
	s.mux.Lock()
	defer s.mux.Unlock()
	return s.sb.String()
}

func TestRun(t *testing.T) {
	root := t.TempDir()
	source, target := filepath.Join(root, "inbox"), filepath.Join(root, "outbox")
	if err := os.MkdirAll(source, os.ModePerm); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(source, "orders.txt"), []byte("Hello World"), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := parse("-source", source, "-target", target, "-interval", "20ms", "-workers", "2")
	if err != nil {
		t.Fatalf("failed to parse the config: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	var out syncBuffer
	done := make(chan error)
	go func() {
		done <- run(ctx, cfg, &out, io.Discard)
	}()

	deadline := time.Now().Add(10 * time.Second)
	for !strings.Contains(out.String(), "orders.txt > orders.txt.enigma completed") {
		if time.Now().After(deadline) {
			t.Fatalf("timed out, the output so far: %q", out.String())
		}
		time.Sleep(10 * time.Millisecond)
	}
	cancel()
	if err := <-done; err != nil {
		t.Errorf("run failed: %v", err)
	}

	b, err := os.ReadFile(filepath.Join(target, "orders.txt.enigma"))
	if err != nil {
		t.Fatalf("failed to read the output: %v", err)
	}
	if string(b) != "ILBDA AMTAZ" {
		t.Errorf("expected 'ILBDA AMTAZ', actual '%s'", b)
	}
}
