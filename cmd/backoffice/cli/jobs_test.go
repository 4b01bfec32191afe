package cli

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestTriggerRejectsUnknownJob(t *testing.T) {
	c, err := NewJobsCLI("127.0.0.1:6379")
	require.NoError(t, err)
	defer func() { _ = c.Close() }()

	_, err = c.Trigger(context.Background(), "catalog:unknown")
	require.Error(t, err)
}

func TestNilReceiversFailSafely(t *testing.T) {
	var c *JobsCLI

	_, err := c.Trigger(context.Background(), "catalog:lowstock_scan")
	require.Error(t, err)

	_, err = c.InspectQueue(context.Background())
	require.Error(t, err)

	_, err = c.ListScheduled(context.Background(), 5)
	require.Error(t, err)
}
