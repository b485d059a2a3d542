package errors

import "fmt"

// ErrorType defines the category of the error
type ErrorType string

const (
	TypeConfiguration ErrorType = "CONFIGURATION"
	TypeTransport     ErrorType = "TRANSPORT"
	TypeDecode        ErrorType = "DECODE"
	TypeNaming        ErrorType = "NAMING"
	TypeWrite         ErrorType = "WRITE"
	TypeInternal      ErrorType = "INTERNAL"
)

// AppError represents a domain-level error with a type and an underlying error
type AppError struct {
	Type       ErrorType
	Message    string
	Context    map[string]interface{}
	Err        error
	Suggestion string
}

func (e *AppError) Error() string {
	var msg string
	if e.Err != nil {
		msg = fmt.Sprintf("%s: %s (%v)", e.Type, e.Message, e.Err)
	} else {
		msg = fmt.Sprintf("%s: %s", e.Type, e.Message)
	}

	if e.Context != nil {
		if status, ok := e.Context["status"]; ok {
			msg += fmt.Sprintf(" - status %v", status)
		}
		if path, ok := e.Context["path"].(string); ok && path != "" {
			msg += fmt.Sprintf(" - %s", path)
		}
	}

	return msg
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// Is reports whether target is an AppError of the same type and message,
// so derived errors still match the sentinel they were built from.
func (e *AppError) Is(target error) bool {
	t, ok := target.(*AppError)
	if !ok {
		return false
	}
	return e.Type == t.Type && e.Message == t.Message
}

// WithError creates a new AppError with an underlying error
func (e *AppError) WithError(err error) *AppError {
	return &AppError{
		Type:       e.Type,
		Message:    e.Message,
		Context:    e.Context,
		Err:        err,
		Suggestion: e.Suggestion,
	}
}

// WithContext creates a new AppError with additional context
func (e *AppError) WithContext(key string, value interface{}) *AppError {
	ctx := make(map[string]interface{})
	for k, v := range e.Context {
		ctx[k] = v
	}
	ctx[key] = value
	return &AppError{
		Type:       e.Type,
		Message:    e.Message,
		Context:    ctx,
		Err:        e.Err,
		Suggestion: e.Suggestion,
	}
}

func (e *AppError) WithSuggestion(suggestion string) *AppError {
	return &AppError{
		Type:       e.Type,
		Message:    e.Message,
		Context:    e.Context,
		Err:        e.Err,
		Suggestion: suggestion,
	}
}

// NewAppError creates a new AppError
func NewAppError(t ErrorType, msg string, err error) *AppError {
	return &AppError{
		Type:    t,
		Message: msg,
		Err:     err,
	}
}

// Download errors
var (
	ErrTransport = NewAppError(TypeTransport, "GitHub request failed", nil).
			WithSuggestion("Check the repository name and your credentials: issue-categorizer config show")

	ErrDecode = NewAppError(TypeDecode, "GitHub response could not be decoded", nil).
			WithSuggestion("The API returned an unexpected payload, verify the base URL in your configuration")

	ErrNaming = NewAppError(TypeNaming, "Snapshot file has no name", nil).
			WithSuggestion("Pass a data directory and labels that produce a non-empty file name")

	ErrWrite = NewAppError(TypeWrite, "Failed to write snapshot", nil).
			WithSuggestion("Check that the data directory is writable")

	ErrNoIncludeLabels = NewAppError(TypeConfiguration, "No labels to include", nil).
				WithSuggestion("Pass at least one label, or 'all': --labels bug,enhancement")

	ErrInvalidRepository = NewAppError(TypeConfiguration, "Repository must be given as owner/repo", nil).
				WithSuggestion("Example: --repository golang/go")

	ErrInvalidState = NewAppError(TypeConfiguration, "Invalid issue state", nil).
			WithSuggestion("Use one of: open, closed, all")
)

// Configuration errors
var (
	ErrCredentialsMissing = NewAppError(TypeConfiguration, "GitHub credentials are missing", nil).
				WithSuggestion("Set a token: issue-categorizer config set token <token>\nor export ISSUE_CATEGORIZER_GITHUB_TOKEN")

	ErrConfigMissing = NewAppError(TypeConfiguration, "Configuration is missing", nil).
				WithSuggestion("Create it with: issue-categorizer config show")

	ErrRulesInvalid = NewAppError(TypeConfiguration, "Label rules file is invalid", nil).
			WithSuggestion("Every set needs a name and at least one include label")
)
