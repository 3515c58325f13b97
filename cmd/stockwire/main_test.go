package main_test

import (
	"bytes"
	"context"
	"testing"

	main "github.com/stockwire/stockwire/cmd/stockwire"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMain_Run_Help(t *testing.T) {
	t.Parallel()

	m := main.NewMain()
	var stdout, stderr bytes.Buffer

	err := m.Run(context.Background(), []string{"--help"}, &stdout, &stderr)

	require.NoError(t, err)
	assert.Contains(t, stdout.String(), "stockwire")
	assert.Contains(t, stdout.String(), "fetch")
	assert.Contains(t, stdout.String(), "sources")
	assert.Contains(t, stdout.String(), "probe")
}

func TestMain_Run_UnknownCommand(t *testing.T) {
	t.Parallel()

	m := main.NewMain()
	var stdout, stderr bytes.Buffer

	err := m.Run(context.Background(), []string{"publish"}, &stdout, &stderr)
	assert.Error(t, err)
}

func TestMain_Run_Sources(t *testing.T) {
	t.Parallel()

	m := main.NewMain()
	var stdout, stderr bytes.Buffer

	err := m.Run(context.Background(), []string{"sources"}, &stdout, &stderr)

	require.NoError(t, err)
	output := stdout.String()
	assert.Contains(t, output, "Moneycontrol")
	assert.Contains(t, output, "Economic Times")
	assert.Contains(t, output, "NewsAPI")
	assert.Contains(t, output, "Finnhub")
}

func TestMain_Run_MissingSourcesFile(t *testing.T) {
	t.Parallel()

	m := main.NewMain()
	var stdout, stderr bytes.Buffer

	err := m.Run(context.Background(), []string{"sources", "--sources", "/nonexistent/sources.yaml"}, &stdout, &stderr)
	assert.Error(t, err)
}
