package interpreter

import (
	"bufio"
	"io"
	"strings"
)

// LineReader is the input channel Leer consumes, one line per variable.
type LineReader interface {
	ReadLine() (string, error)
}

type scannerLineReader struct {
	scanner *bufio.Scanner
}

func NewLineReader(r io.Reader) LineReader {
	return &scannerLineReader{
		scanner: bufio.NewScanner(r),
	}
}

// ReadLine returns io.EOF once the input is exhausted.
func (r *scannerLineReader) ReadLine() (string, error) {
	if r.scanner.Scan() {
		return strings.TrimSuffix(r.scanner.Text(), "\r"), nil
	}

	if err := r.scanner.Err(); err != nil {
		return "", err
	}
	return "", io.EOF
}
