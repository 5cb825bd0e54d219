package exporter

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeRunner struct {
	name string
	args []string
	out  []byte
	err  error
}

func (f *fakeRunner) Run(_ context.Context, name string, args ...string) ([]byte, error) {
	f.name = name
	f.args = args
	return f.out, f.err
}

var exportDate = time.Date(2025, 5, 20, 21, 0, 0, 0, time.Local)

func TestExport_Arguments(t *testing.T) {
	runner := &fakeRunner{}
	e := New(`C:\Program Files\ManicTime\mtc.exe`, "", runner)

	path, err := e.Export(context.Background(), "/vault", exportDate)
	require.NoError(t, err)

	want := filepath.Join("/vault", "ManicTime_Export_2025-05-20.csv")
	assert.Equal(t, want, path)
	assert.Equal(t, `C:\Program Files\ManicTime\mtc.exe`, runner.name)
	assert.Equal(t, []string{"export", "ManicTime/Applications", want, "/fd:2025-05-20", "/td:2025-05-20"}, runner.args)
}

func TestExport_CustomView(t *testing.T) {
	e := New("mtc", "ManicTime/Documents", &fakeRunner{})
	args := e.Args("out.csv", exportDate)
	assert.Equal(t, "ManicTime/Documents", args[1])
}

func TestExport_FailureIsWrapped(t *testing.T) {
	runner := &fakeRunner{out: []byte("  database locked \n"), err: errors.New("exit status 2")}
	e := New("mtc", "", runner)

	_, err := e.Export(context.Background(), "/vault", exportDate)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrExportFailed)
	assert.Contains(t, err.Error(), "exit status 2")
	assert.Contains(t, err.Error(), "database locked")
}

func TestExport_MissingExecutable(t *testing.T) {
	e := New(filepath.Join(t.TempDir(), "no-such-exporter"), "", nil)

	_, err := e.Export(context.Background(), t.TempDir(), exportDate)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrExportFailed)
}

func TestFileName(t *testing.T) {
	assert.Equal(t, "ManicTime_Export_2025-05-20.csv", FileName(exportDate))
}
