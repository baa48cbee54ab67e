package main

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func stubPasswords(t *testing.T, answers ...string) {
	t.Helper()
	orig := readPassword
	t.Cleanup(func() { readPassword = orig })
	readPassword = func(int) ([]byte, error) {
		if len(answers) == 0 {
			return nil, errors.New("no input")
		}
		next := answers[0]
		answers = answers[1:]
		return []byte(next), nil
	}
}

func TestPromptPassword(t *testing.T) {
	stubPasswords(t, "secret1", "secret1")
	var out bytes.Buffer

	pw, err := promptPassword(&out)
	require.NoError(t, err)
	assert.Equal(t, "secret1", pw)
	assert.Contains(t, out.String(), "Enter password: ")
	assert.Contains(t, out.String(), "Repeat password: ")
}

func TestPromptPasswordMismatch(t *testing.T) {
	stubPasswords(t, "secret1", "secret2")

	_, err := promptPassword(&bytes.Buffer{})
	assert.ErrorIs(t, err, errPasswordMismatch)
}

func TestPromptPasswordReadError(t *testing.T) {
	stubPasswords(t)

	_, err := promptPassword(&bytes.Buffer{})
	assert.Error(t, err)
}
