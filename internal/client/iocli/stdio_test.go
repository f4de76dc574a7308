package iocli

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewStdio(t *testing.T) {
	assert.NotNil(t, NewStdio())
}

func TestStdio_Output(t *testing.T) {
	var out bytes.Buffer
	s := NewStdioWith(strings.NewReader(""), &out)

	s.Println("hello", "world")
	s.Printf("test %d %s\n", 1, "abc")
	_, err := s.Write([]byte("raw"))
	require.NoError(t, err)

	assert.Equal(t, "hello world\ntest 1 abc\nraw", out.String())
}

func TestStdio_ReadInput(t *testing.T) {
	var out bytes.Buffer
	s := NewStdioWith(strings.NewReader("  user input \nsecond\nlast"), &out)

	first, err := s.ReadInput("Prompt: ")
	require.NoError(t, err)
	assert.Equal(t, "user input", first)
	assert.Equal(t, "Prompt: ", out.String())

	second, err := s.ReadInput("")
	require.NoError(t, err)
	assert.Equal(t, "second", second)

	// последняя строка без перевода строки
	last, err := s.ReadInput("")
	require.NoError(t, err)
	assert.Equal(t, "last", last)

	_, err = s.ReadInput("")
	assert.Error(t, err)
}

func TestStdio_ReadPassword_NotTerminal(t *testing.T) {
	s := NewStdioWith(strings.NewReader("secret\n"), &bytes.Buffer{})

	pw, err := s.ReadPassword("Password: ")
	require.NoError(t, err)
	assert.Equal(t, "secret", pw)
}

func TestStdio_ReadAll(t *testing.T) {
	s := NewStdioWith(strings.NewReader("# Title\n\nbody\n"), &bytes.Buffer{})

	content, err := s.ReadAll()
	require.NoError(t, err)
	assert.Equal(t, "# Title\n\nbody\n", content)
}
