package taps

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/xitonix/xenigma/enigma"
	"github.com/xitonix/xenigma/operator"
	"github.com/xitonix/xenigma/settings"
)

const (
	testInterval = 20 * time.Millisecond
	testTimeout  = 10 * time.Second
)

var errJammed = errors.New("jammed")

type brokenKeyring struct{}

func (brokenKeyring) Machine() (*enigma.Machine, error) {
	return nil, errJammed
}

func dailyKey(t *testing.T) settings.Settings {
	t.Helper()
	key, err := settings.Parse("B", "I II III", "AAA", "AAA", "")
	if err != nil {
		t.Fatalf("failed to parse the key: %v", err)
	}
	return key
}

func testOptions(t *testing.T, mode operator.Operation) Options {
	t.Helper()
	root := t.TempDir()
	return Options{
		Source:         filepath.Join(root, "in"),
		Target:         filepath.Join(root, "out"),
		Mode:           mode,
		Keyring:        dailyKey(t),
		Interval:       testInterval,
		Settle:         2 * testInterval,
		ReportProgress: true,
	}
}

// start wires the tap into a single worker engine. The engine gets stopped when the test ends.
func start(t *testing.T, opts Options) *DirectoryWatcherTap {
	t.Helper()
	tap, err := NewDirectoryWatcherTap(opts)
	if err != nil {
		t.Fatalf("failed to create the tap: %v", err)
	}
	engine := operator.NewEngine(1, false, tap)
	engine.Start()
	t.Cleanup(engine.Stop)
	return tap
}

// waitFor collects the final progress reports of n files
func waitFor(t *testing.T, tap *DirectoryWatcherTap, n int) []*Result {
	t.Helper()
	var results []*Result
	timeout := time.After(testTimeout)
	for len(results) < n {
		select {
		case r, ok := <-tap.Progress():
			if !ok {
				t.Fatalf("the progress channel has been closed after %d result(s)", len(results))
			}
			if r.Status != operator.Queued {
				results = append(results, r)
			}
		case <-timeout:
			t.Fatalf("timed out after %d out of %d result(s)", len(results), n)
		}
	}
	return results
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), os.ModePerm); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
}

func readFile(t *testing.T, path string) string {
	t.Helper()
	b, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to read the output: %v", err)
	}
	return string(b)
}

func exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
