package bvh

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// maxLineSize bounds a single physical line. Frame lines of large skeletons
// easily exceed bufio's 64 KiB default.
const maxLineSize = 16 << 20

// tokenizer yields whitespace-delimited tokens, reading lines on demand.
type tokenizer struct {
	sc    *bufio.Scanner
	line  int // 1-based number of the last line read
	queue []string
}

func newTokenizer(r io.Reader) *tokenizer {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxLineSize)
	return &tokenizer{sc: sc}
}

// next returns the next token. Blank lines are skipped.
func (t *tokenizer) next() (string, error) {
	for len(t.queue) == 0 {
		line, err := t.readLine()
		if err != nil {
			return "", err
		}
		t.queue = strings.Fields(line)
	}
	tok := t.queue[0]
	t.queue = t.queue[1:]
	return tok, nil
}

// readLine discards any pending tokens and returns the next physical line.
func (t *tokenizer) readLine() (string, error) {
	t.queue = nil
	if !t.sc.Scan() {
		if err := t.sc.Err(); err != nil {
			return "", fmt.Errorf("bvh: read line %d: %w", t.line+1, err)
		}
		return "", ErrUnexpectedEOF
	}
	t.line++
	return t.sc.Text(), nil
}
