package bvh

import (
	"errors"
	"strings"
	"testing"
	"testing/iotest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenizerNext(t *testing.T) {
	tk := newTokenizer(strings.NewReader("a b\n\n\t\n  c\r\nd"))

	var got []string
	var lines []int
	for {
		tok, err := tk.next()
		if errors.Is(err, ErrUnexpectedEOF) {
			break
		}
		require.NoError(t, err)
		got = append(got, tok)
		lines = append(lines, tk.line)
	}
	assert.Equal(t, []string{"a", "b", "c", "d"}, got)
	assert.Equal(t, []int{1, 1, 4, 5}, lines)
}

func TestTokenizerReadLineDropsPending(t *testing.T) {
	tk := newTokenizer(strings.NewReader("x y z\n1 2\n"))
	tok, err := tk.next()
	require.NoError(t, err)
	assert.Equal(t, "x", tok)

	line, err := tk.readLine()
	require.NoError(t, err)
	assert.Equal(t, "1 2", line)
	assert.Equal(t, 2, tk.line)

	_, err = tk.next()
	assert.ErrorIs(t, err, ErrUnexpectedEOF)
}

func TestTokenizerReaderError(t *testing.T) {
	boom := errors.New("boom")
	tk := newTokenizer(iotest.ErrReader(boom))
	_, err := tk.next()
	require.Error(t, err)
	assert.ErrorIs(t, err, boom)
	assert.NotErrorIs(t, err, ErrUnexpectedEOF)
}

func TestTokenizerLongLine(t *testing.T) {
	long := strings.Repeat("0.5 ", 100000)
	tk := newTokenizer(strings.NewReader(long + "\n"))
	line, err := tk.readLine()
	require.NoError(t, err)
	assert.Len(t, strings.Fields(line), 100000)
}
