package main_test

import (
	"bytes"
	"context"
	"testing"

	main "github.com/Donghyun-349/clipnote/cmd/clipnote"
	"github.com/alecthomas/kong"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCLI_HelpShowsAllCommands(t *testing.T) {
	t.Parallel()

	cli := &main.CLI{}
	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}

	// Use kong.Exit to prevent os.Exit from being called during tests
	parser, err := kong.New(cli,
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}),
	)
	require.NoError(t, err)

	_, _ = parser.Parse([]string{"--help"})

	helpOutput := stdout.String()
	for _, cmd := range []string{"clip", "version"} {
		assert.Contains(t, helpOutput, cmd, "Help should mention %s command", cmd)
	}
}

func TestMain_Run_HelpShowsKongOutput(t *testing.T) {
	t.Parallel()

	m := main.NewMain()

	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}

	err := m.Run(context.Background(), []string{"--help"}, stdout, stderr)
	require.NoError(t, err)

	helpOutput := stdout.String()
	assert.Contains(t, helpOutput, "clip")
	assert.Contains(t, helpOutput, "version")
	assert.Contains(t, helpOutput, "Usage:", "Help should have Kong-style Usage prefix")
}

func TestMain_Run_NoArgs(t *testing.T) {
	t.Parallel()

	m := main.NewMain()

	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}

	err := m.Run(context.Background(), nil, stdout, stderr)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no command specified")
}

func TestMain_Run_Version(t *testing.T) {
	t.Parallel()

	m := main.NewMain()

	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}

	err := m.Run(context.Background(), []string{"version"}, stdout, stderr)
	require.NoError(t, err)
	assert.Contains(t, stdout.String(), "clipnote")
}
