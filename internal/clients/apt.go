package clients

import (
	"context"
	"errors"
	"time"

	"github.com/ethanolivertroy/aptgraph/internal/models"
)

// ErrNoCommand is returned when the query command is empty
var ErrNoCommand = errors.New("query command is empty")

// AptClient queries the system package manager for a package's relationships
type AptClient struct {
	runner  Runner
	command []string
	timeout time.Duration
}

// NewAptClient creates a client running command with the package name appended.
// An empty command falls back to apt-cache depends.
func NewAptClient(runner Runner, command []string, timeout time.Duration) *AptClient {
	if runner == nil {
		runner = ExecRunner{}
	}
	if len(command) == 0 {
		command = models.DefaultQueryCommand()
	}

	return &AptClient{
		runner:  runner,
		command: command,
		timeout: timeout,
	}
}

// Depends returns the raw relationship listing for pkg
func (c *AptClient) Depends(ctx context.Context, pkg string) ([]byte, error) {
	if len(c.command) == 0 {
		return nil, ErrNoCommand
	}

	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	args := make([]string, 0, len(c.command))
	args = append(args, c.command[1:]...)
	args = append(args, pkg)

	return c.runner.Run(ctx, c.command[0], args...)
}
