package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRootCommandStdin(t *testing.T) {
	cmd := newRootCommand()
	var out bytes.Buffer
	cmd.SetIn(strings.NewReader("a b B c"))
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"--top", "1"})

	require.NoError(t, cmd.Execute())
	assert.Equal(t, "2\tb\n", out.String())
}

func TestRootCommandNoLowercase(t *testing.T) {
	cmd := newRootCommand()
	var out bytes.Buffer
	cmd.SetIn(strings.NewReader("B b B"))
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"--lowercase=false", "-n", "5"})

	require.NoError(t, cmd.Execute())
	assert.Equal(t, "2\tB\n1\tb\n", out.String())
}

func TestRootCommandBadTop(t *testing.T) {
	cmd := newRootCommand()
	cmd.SetIn(strings.NewReader(""))
	cmd.SetOut(new(bytes.Buffer))
	cmd.SetErr(new(bytes.Buffer))
	cmd.SetArgs([]string{"--top", "0"})

	assert.Error(t, cmd.Execute())
}
