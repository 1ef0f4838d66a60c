package commands_test

import (
	"bytes"
	"context"
	"encoding/json"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go.trai.ch/memo"
	"go.trai.ch/memo/cmd/memo/commands"
	"go.trai.ch/memo/codec"
	"go.trai.ch/memo/internal/app"
	"go.trai.ch/memo/store"
)

type stepClock struct {
	now  time.Time
	step time.Duration
}

func (c *stepClock) Now() time.Time {
	t := c.now
	c.now = c.now.Add(c.step)
	return t
}

func seed(t *testing.T, location string, value any) {
	t.Helper()

	clock := &stepClock{
		now:  time.Date(2024, 5, 4, 3, 2, 1, 0, time.UTC),
		step: 1500 * time.Millisecond,
	}
	e := memo.New().WithToolVersion("1.2.3").WithClock(clock)

	_, err := memo.RunOrLoad(context.Background(), e, location, func(context.Context) (any, error) {
		return value, nil
	})
	require.NoError(t, err)
}

func newCLI() (*commands.CLI, *bytes.Buffer) {
	cli := commands.New(app.New(codec.Default(), store.OS()))
	var buf bytes.Buffer
	cli.SetOut(&buf)
	return cli, &buf
}

func TestInspect(t *testing.T) {
	location := filepath.Join(t.TempDir(), "run.json")
	seed(t, location, map[string]any{"answer": int64(42)})

	cli, buf := newCLI()
	cli.SetArgs([]string{"inspect", location})

	require.NoError(t, cli.Execute(context.Background()))
	assert.Contains(t, buf.String(), "Tool version 1.2.3")
	assert.Contains(t, buf.String(), "answer: 42")
}

func TestInspect_JSONFlag(t *testing.T) {
	location := filepath.Join(t.TempDir(), "run.cbor")
	seed(t, location, int64(7))

	cli, buf := newCLI()
	cli.SetArgs([]string{"inspect", "--json", location})

	require.NoError(t, cli.Execute(context.Background()))

	var env codec.Envelope
	require.NoError(t, json.Unmarshal(buf.Bytes(), &env))
	assert.Equal(t, codec.KindInt, env.Value.Kind)
	assert.Equal(t, int64(7), env.Value.Int)
}

func TestInspect_UnknownSuffix(t *testing.T) {
	cli, _ := newCLI()
	cli.SetArgs([]string{"inspect", filepath.Join(t.TempDir(), "run.txt")})

	err := cli.Execute(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, codec.ErrUnsupportedFormat)
}

func TestLs(t *testing.T) {
	t.Chdir(t.TempDir())

	seed(t, "runs/a.json", int64(1))
	seed(t, "runs/b.cbor", int64(2))

	cli, buf := newCLI()
	cli.SetArgs([]string{"ls", "runs"})

	require.NoError(t, cli.Execute(context.Background()))
	assert.Contains(t, buf.String(), "LOCATION")
	assert.Contains(t, buf.String(), "runs/a.json")
	assert.Contains(t, buf.String(), "runs/b.cbor")
	assert.Contains(t, buf.String(), "2024-05-04T03:02:01Z")
}

func TestForget(t *testing.T) {
	location := filepath.Join(t.TempDir(), "run.yaml")
	seed(t, location, int64(1))

	cli, _ := newCLI()
	cli.SetArgs([]string{"forget", location})

	require.NoError(t, cli.Execute(context.Background()))

	ok, err := store.OS().Exists(location)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestForget_UnknownSuffix(t *testing.T) {
	cli, _ := newCLI()
	cli.SetArgs([]string{"forget", filepath.Join(t.TempDir(), "run.txt")})

	err := cli.Execute(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, codec.ErrUnsupportedFormat)
}

func TestVersion(t *testing.T) {
	cli, buf := newCLI()
	cli.SetArgs([]string{"version"})

	require.NoError(t, cli.Execute(context.Background()))
	assert.Equal(t, "memo version dev (commit none, built unknown)\n", buf.String())
}

func TestRoot_Help(t *testing.T) {
	cli, _ := newCLI()
	cli.SetArgs([]string{"--help"})

	require.NoError(t, cli.Execute(context.Background()))
}
