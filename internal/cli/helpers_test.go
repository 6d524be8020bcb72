package cli

import (
	"bytes"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thenoetrevino/doable/internal/database"
	"github.com/thenoetrevino/doable/internal/models"
	taskservice "github.com/thenoetrevino/doable/internal/services/task"
	transferservice "github.com/thenoetrevino/doable/internal/services/transfer"
	workspaceservice "github.com/thenoetrevino/doable/internal/services/workspace"
)

func TestParseID(t *testing.T) {
	id, err := ParseID("task", " 42 ")
	require.NoError(t, err)
	assert.Equal(t, 42, id)

	for _, bad := range []string{"", "abc", "0", "-1", "4.2"} {
		_, err := ParseID("task", bad)
		assert.ErrorIs(t, err, ErrInvalidArgument, "input %q", bad)
	}
}

func TestConfirm(t *testing.T) {
	tests := []struct {
		input string
		want  bool
	}{
		{"y\n", true},
		{"YES\n", true},
		{"n\n", false},
		{"\n", false},
		{"", false},
		{"y", true},
	}

	for _, tt := range tests {
		var out bytes.Buffer
		got := Confirm(&out, strings.NewReader(tt.input), "Delete?")
		assert.Equal(t, tt.want, got, "input %q", tt.input)
		assert.Contains(t, out.String(), "Delete? (y/N)")
	}
}

func TestClassify(t *testing.T) {
	tests := []struct {
		err  error
		want int
	}{
		{nil, ExitSuccess},
		{fmt.Errorf("wrapped: %w", models.ErrNotFound), ExitNotFound},
		{taskservice.ErrTaskNotFound, ExitNotFound},
		{workspaceservice.ErrWorkspaceNotFound, ExitNotFound},
		{fmt.Errorf("%w: bad", transferservice.ErrMalformedSnapshot), ExitDataErr},
		{taskservice.ErrEmptyText, ExitValidation},
		{workspaceservice.ErrNameTooLong, ExitValidation},
		{fmt.Errorf("create: %w", database.ErrDuplicateName), ExitValidation},
		{transferservice.ErrInvalidMode, ExitValidation},
		{ErrInvalidArgument, ExitValidation},
		{errors.New("disk full"), ExitError},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, Classify(tt.err), "error %v", tt.err)
	}
}

func TestExitCode(t *testing.T) {
	assert.Equal(t, ExitSuccess, ExitCode(nil))
	assert.Equal(t, ExitError, ExitCode(errors.New("boom")))

	err := fmt.Errorf("outer: %w", Exit(ExitNotFound, models.ErrNotFound))
	assert.Equal(t, ExitNotFound, ExitCode(err))
	assert.True(t, IsReported(err))
	assert.ErrorIs(t, err, models.ErrNotFound)
}
