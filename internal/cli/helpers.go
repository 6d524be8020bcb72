package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// ErrInvalidArgument marks malformed positional arguments and flag values
var ErrInvalidArgument = errors.New("invalid argument")

// ParseID parses a positive integer identifier from a positional argument
func ParseID(kind, arg string) (int, error) {
	id, err := strconv.Atoi(strings.TrimSpace(arg))
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("%w: %s ID must be a positive integer, got %q", ErrInvalidArgument, kind, arg)
	}
	return id, nil
}

// Confirm prints prompt and reads a yes/no answer from in. Anything other
// than y or yes is a no.
func Confirm(out io.Writer, in io.Reader, prompt string) bool {
	fmt.Fprintf(out, "%s (y/N): ", prompt)
	line, err := bufio.NewReader(in).ReadString('\n')
	if err != nil && line == "" {
		return false
	}
	answer := strings.ToLower(strings.TrimSpace(line))
	return answer == "y" || answer == "yes"
}
