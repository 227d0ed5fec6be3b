package program

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// ErrInvalidInteger is matched by every ParseError.
var ErrInvalidInteger = errors.New("invalid integer")

// ParseError reports the first token of a program text that is not a
// signed integer.
type ParseError struct {
	Token string
	Index int
	Err   error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%s %q at position %d: %v",
		ErrInvalidInteger, e.Token, e.Index, e.Err)
}

// Unwrap returns the underlying strconv failure.
func (e *ParseError) Unwrap() error {
	return e.Err
}

// Is makes errors.Is(err, ErrInvalidInteger) hold for any ParseError.
func (e *ParseError) Is(target error) bool {
	return target == ErrInvalidInteger
}

// Parse reads a comma-separated list of signed integers into a fresh
// program with the instruction pointer at 0. Whitespace around tokens is
// ignored so that a file's trailing newline does not matter.
func Parse(text string) (*Program, error) {
	tokens := strings.Split(strings.TrimSpace(text), ",")
	memory := make([]int64, 0, len(tokens))

	for i, token := range tokens {
		token = strings.TrimSpace(token)

		w, err := strconv.ParseInt(token, 10, 64)
		if err != nil {
			return nil, &ParseError{Token: token, Index: i, Err: err}
		}

		memory = append(memory, w)
	}

	return &Program{memory: memory}, nil
}

// LoadProgramFile reads and parses the program stored at path.
func LoadProgramFile(path string) (*Program, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "cannot read program %s", path)
	}

	p, err := Parse(string(data))
	if err != nil {
		return nil, errors.Wrapf(err, "cannot parse program %s", path)
	}

	return p, nil
}
