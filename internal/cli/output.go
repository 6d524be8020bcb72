package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/thenoetrevino/doable/internal/database"
	"github.com/thenoetrevino/doable/internal/models"
	taskservice "github.com/thenoetrevino/doable/internal/services/task"
	transferservice "github.com/thenoetrevino/doable/internal/services/transfer"
	workspaceservice "github.com/thenoetrevino/doable/internal/services/workspace"
)

// OutputFormatter handles three output modes: JSON, quiet, and human-readable
type OutputFormatter struct {
	JSON  bool
	Quiet bool
}

// Success outputs successful operation result
func (f *OutputFormatter) Success(data interface{}) error {
	if f.Quiet {
		// Extract ID if possible
		if idGetter, ok := data.(interface{ GetID() int }); ok {
			fmt.Printf("%d\n", idGetter.GetID())
			return nil
		}
	}

	if f.JSON {
		return json.NewEncoder(os.Stdout).Encode(map[string]interface{}{
			"success": true,
			"data":    data,
		})
	}

	// Human-readable format
	fmt.Printf("%+v\n", data)
	return nil
}

// Error outputs error information
func (f *OutputFormatter) Error(code string, message string) error {
	return f.ErrorWithSuggestion(code, message, "")
}

// ErrorWithSuggestion outputs error information with an optional suggestion
func (f *OutputFormatter) ErrorWithSuggestion(code string, message string, suggestion string) error {
	if f.JSON {
		errData := map[string]interface{}{
			"code":    code,
			"message": message,
		}
		if suggestion != "" {
			errData["suggestion"] = suggestion
		}
		return json.NewEncoder(os.Stdout).Encode(map[string]interface{}{
			"success": false,
			"error":   errData,
		})
	}

	// Human-readable error
	fmt.Fprintf(os.Stderr, "❌ Error: %s\n", message)
	if suggestion != "" {
		fmt.Fprintf(os.Stderr, "💡 Suggestion: %s\n", suggestion)
	}
	return nil
}

// Fail reports err under code and returns it wrapped with the matching
// exit code
func (f *OutputFormatter) Fail(code string, err error) error {
	return f.FailWithSuggestion(code, err, "")
}

// FailWithSuggestion is Fail with a hint for the user
func (f *OutputFormatter) FailWithSuggestion(code string, err error, suggestion string) error {
	exitCode := Classify(err)
	if exitCode == ExitNotFound && code == "" {
		code = "NOT_FOUND"
	}
	if fmtErr := f.ErrorWithSuggestion(code, err.Error(), suggestion); fmtErr != nil {
		slog.Error("failed to format error message", "error", fmtErr)
	}
	return Exit(exitCode, err)
}

// Classify maps a service or storage error to an exit code
func Classify(err error) int {
	switch {
	case err == nil:
		return ExitSuccess
	case errors.Is(err, models.ErrNotFound),
		errors.Is(err, taskservice.ErrTaskNotFound),
		errors.Is(err, workspaceservice.ErrWorkspaceNotFound):
		return ExitNotFound
	case errors.Is(err, transferservice.ErrMalformedSnapshot):
		return ExitDataErr
	case errors.Is(err, taskservice.ErrEmptyText),
		errors.Is(err, taskservice.ErrInvalidTaskID),
		errors.Is(err, taskservice.ErrInvalidWorkspaceID),
		errors.Is(err, taskservice.ErrInvalidStatus),
		errors.Is(err, workspaceservice.ErrEmptyName),
		errors.Is(err, workspaceservice.ErrNameTooLong),
		errors.Is(err, workspaceservice.ErrInvalidWorkspaceID),
		errors.Is(err, database.ErrDuplicateName),
		errors.Is(err, transferservice.ErrInvalidMode),
		errors.Is(err, transferservice.ErrUnsupportedFormat),
		errors.Is(err, ErrInvalidArgument):
		return ExitValidation
	default:
		return ExitError
	}
}
