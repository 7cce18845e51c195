// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package console

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConsolePlain(t *testing.T) {
	var buf bytes.Buffer
	c := New(&buf, false)

	require.NoError(t, c.Prompt("Please enter the first number: "))
	require.NoError(t, c.Prompt("Please enter the second number: "))
	require.NoError(t, c.Result("3.0 × 4.0 = 12.0"))

	assert.Equal(t,
		"Please enter the first number: Please enter the second number: 3.0 × 4.0 = 12.0\n",
		buf.String())
}

func TestConsoleError(t *testing.T) {
	var buf bytes.Buffer
	c := New(&buf, false)

	require.NoError(t, c.Error("Error: please enter a valid number"))
	assert.Equal(t, "Error: please enter a valid number\n", buf.String())
}

func TestConsoleColorOnNonTerminal(t *testing.T) {
	var buf bytes.Buffer
	c := New(&buf, true)

	require.NoError(t, c.Result("3.0 × 4.0 = 12.0"))
	require.NoError(t, c.Error("Error: please enter a valid number"))

	assert.Equal(t, "3.0 × 4.0 = 12.0\nError: please enter a valid number\n", buf.String(),
		"a buffer is not a terminal, so no escape sequences are written")
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) {
	return 0, errors.New("broken pipe")
}

func TestConsoleWriteError(t *testing.T) {
	c := New(failingWriter{}, false)
	assert.Error(t, c.Prompt("x"))
	assert.Error(t, c.Result("x"))
	assert.Error(t, c.Error("x"))
}
