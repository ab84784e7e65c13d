package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/roach88/catalogue/internal/catalogue"
	"github.com/roach88/catalogue/internal/datastore"
	"github.com/roach88/catalogue/internal/testutil"
)

// workspace is a temp catalogue with a config file pointing every path
// inside it.
type workspace struct {
	dir    string
	config string
	data   string
	out    string
	db     string
	log    string
}

func newWorkspace(t *testing.T) *workspace {
	t.Helper()
	dir := t.TempDir()
	w := &workspace{
		dir:    dir,
		config: filepath.Join(dir, "catalogue.yaml"),
		data:   filepath.Join(dir, "catalogue", "catalogue-data.js"),
		out:    filepath.Join(dir, "catalogue"),
		db:     filepath.Join(dir, "catalogue", "catalogue-index.db"),
		log:    filepath.Join(dir, "generation-log.txt"),
	}
	cfg := fmt.Sprintf("data_file: %s\noutput_dir: %s\nindex_path: %s\nlog_file: %s\ncount: 2\ndelay: 20ms\n",
		w.data, w.out, w.db, w.log)
	require.NoError(t, os.WriteFile(w.config, []byte(cfg), 0644))
	return w
}

// seed writes records into the workspace data file.
func (w *workspace) seed(t *testing.T, records []catalogue.Record) *datastore.File {
	t.Helper()
	return testutil.WriteDatastore(t, filepath.Dir(w.data), records)
}

type result struct {
	stdout string
	stderr string
	err    error
}

// run executes the root command with the workspace config.
func (w *workspace) run(t *testing.T, args ...string) result {
	t.Helper()
	return w.runContext(t, context.Background(), args...)
}

func (w *workspace) runContext(t *testing.T, ctx context.Context, args ...string) result {
	t.Helper()
	cmd := NewRootCommand()
	out, errOut := &bytes.Buffer{}, &bytes.Buffer{}
	cmd.SetOut(out)
	cmd.SetErr(errOut)
	cmd.SetArgs(append([]string{"--config", w.config}, args...))
	err := cmd.ExecuteContext(ctx)
	return result{stdout: out.String(), stderr: errOut.String(), err: err}
}

// envelope is CLIResponse with a typed payload.
type envelope[T any] struct {
	Status string    `json:"status"`
	Data   T         `json:"data"`
	Error  *CLIError `json:"error"`
}

func decode[T any](t *testing.T, stdout string) envelope[T] {
	t.Helper()
	var env envelope[T]
	require.NoError(t, json.Unmarshal([]byte(stdout), &env), "stdout: %s", stdout)
	return env
}
