package clients

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type call struct {
	name     string
	args     []string
	deadline bool
}

type fakeRunner struct {
	calls  []call
	output []byte
	err    error
}

func (f *fakeRunner) Run(ctx context.Context, name string, args ...string) ([]byte, error) {
	_, hasDeadline := ctx.Deadline()
	f.calls = append(f.calls, call{name: name, args: args, deadline: hasDeadline})
	return f.output, f.err
}

func TestAptClient(t *testing.T) {
	t.Run("appends package to default command", func(t *testing.T) {
		runner := &fakeRunner{output: []byte("curl\n  Depends: libc6\n")}
		client := NewAptClient(runner, nil, 0)

		out, err := client.Depends(context.Background(), "curl")

		require.NoError(t, err)
		assert.Equal(t, "curl\n  Depends: libc6\n", string(out))
		require.Len(t, runner.calls, 1)
		assert.Equal(t, "apt-cache", runner.calls[0].name)
		assert.Equal(t, []string{"depends", "curl"}, runner.calls[0].args)
		assert.False(t, runner.calls[0].deadline)
	})

	t.Run("custom command", func(t *testing.T) {
		runner := &fakeRunner{}
		client := NewAptClient(runner, []string{"apt-cache", "--no-recommends", "depends"}, 0)

		_, err := client.Depends(context.Background(), "bash")

		require.NoError(t, err)
		assert.Equal(t, []string{"--no-recommends", "depends", "bash"}, runner.calls[0].args)
	})

	t.Run("timeout sets a deadline", func(t *testing.T) {
		runner := &fakeRunner{}
		client := NewAptClient(runner, nil, time.Second)

		_, err := client.Depends(context.Background(), "bash")

		require.NoError(t, err)
		assert.True(t, runner.calls[0].deadline)
	})

	t.Run("runner error is returned", func(t *testing.T) {
		boom := errors.New("exit status 100")
		client := NewAptClient(&fakeRunner{err: boom}, nil, 0)

		_, err := client.Depends(context.Background(), "missing")

		assert.ErrorIs(t, err, boom)
	})
}

func TestGraphvizClient(t *testing.T) {
	t.Run("renders next to the dot file", func(t *testing.T) {
		runner := &fakeRunner{}
		client := NewGraphvizClient(runner, "/usr/bin/dot")

		out, err := client.Render(context.Background(), "/tmp/curl.dot", "png")

		require.NoError(t, err)
		assert.Equal(t, "/tmp/curl.png", out)
		require.Len(t, runner.calls, 1)
		assert.Equal(t, "/usr/bin/dot", runner.calls[0].name)
		assert.Equal(t, []string{"-Tpng", "-o", "/tmp/curl.png", "/tmp/curl.dot"}, runner.calls[0].args)
	})

	t.Run("no tool configured", func(t *testing.T) {
		client := NewGraphvizClient(&fakeRunner{}, "")

		_, err := client.Render(context.Background(), "curl.dot", "png")

		assert.ErrorIs(t, err, ErrToolNotConfigured)
	})

	t.Run("tool failure", func(t *testing.T) {
		client := NewGraphvizClient(&fakeRunner{err: errors.New("exit status 1")}, "dot")

		_, err := client.Render(context.Background(), "curl.dot", "svg")

		assert.Error(t, err)
	})
}

func TestImagePath(t *testing.T) {
	assert.Equal(t, "out.svg", ImagePath("out.dot", "svg"))
	assert.Equal(t, "graph.png", ImagePath("graph", "png"))
}

func TestExecRunner(t *testing.T) {
	t.Run("missing binary", func(t *testing.T) {
		_, err := ExecRunner{}.Run(context.Background(), "definitely-not-a-real-binary-aptgraph")
		assert.Error(t, err)
	})
}
