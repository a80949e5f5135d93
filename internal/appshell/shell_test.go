package appshell

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExitCode(t *testing.T) {
	ctx := context.Background()
	assert.Equal(t, 0, ExitCode(ctx, 0))
	assert.Equal(t, 3, ExitCode(ctx, 3))

	cancelled, cancel := context.WithCancel(ctx)
	cancel()
	assert.Equal(t, 130, ExitCode(cancelled, 0))
	assert.Equal(t, 2, ExitCode(cancelled, 2))
}
