package errors

import "fmt"

// ErrorType defines the category of the error
type ErrorType string

const (
	TypeFetch      ErrorType = "FETCH"
	TypeParse      ErrorType = "PARSE"
	TypeIO         ErrorType = "IO"
	TypeValidation ErrorType = "VALIDATION"
	TypeGit        ErrorType = "GIT"
	TypeInternal   ErrorType = "INTERNAL"
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
		if stderr, ok := e.Context["stderr"].(string); ok && stderr != "" {
			msg += fmt.Sprintf(" - %s", stderr)
		}
	}

	return msg
}

func (e *AppError) Unwrap() error {
	return e.Err
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

// Catalog errors
var (
	ErrCatalogFetch = NewAppError(TypeFetch, "Failed to fetch the gitmoji list", nil).
			WithSuggestion("Check your network connection and try again: gitmoji update")

	ErrCatalogStatus = NewAppError(TypeFetch, "Gitmoji source returned a non-success status", nil).
				WithSuggestion("The remote list may be temporarily unavailable, try again later")

	ErrCatalogParse = NewAppError(TypeParse, "Gitmoji list is malformed", nil).
			WithSuggestion("Refresh the local cache: gitmoji update")

	ErrCatalogMissing = NewAppError(TypeInternal, "Could not find gitmoji list in json", nil).
				WithSuggestion("The remote document changed shape, please file a bug")

	ErrCatalogRead = NewAppError(TypeIO, "Failed to read the gitmoji cache", nil).
			WithSuggestion("Rebuild the cache: gitmoji update")

	ErrCatalogWrite = NewAppError(TypeIO, "Failed to write the gitmoji cache", nil).
			WithSuggestion("Check permissions on your ~/.gitmoji directory")

	ErrCatalogEmpty = NewAppError(TypeInternal, "Gitmoji list is empty", nil).
			WithSuggestion("Refresh the local cache: gitmoji update")
)

// Configuration errors
var (
	ErrConfigRead = NewAppError(TypeIO, "Failed to read the configuration file", nil).
			WithSuggestion("Check permissions on your ~/.gitmoji directory")

	ErrConfigParse = NewAppError(TypeParse, "Configuration file is corrupt", nil).
			WithSuggestion("Fix or delete the file and run: gitmoji config")

	ErrConfigWrite = NewAppError(TypeIO, "Failed to save the configuration file", nil).
			WithSuggestion("Check permissions on your ~/.gitmoji directory")
)

// Validation errors
var (
	ErrInvalidInput = NewAppError(TypeValidation, "Text contains characters git cannot quote safely", nil).
			WithSuggestion("Remove backticks from the text and try again")

	ErrEmptyInput = NewAppError(TypeValidation, "A required field was left empty", nil)
)

// Git errors
var (
	ErrGitNotStarted = NewAppError(TypeGit, "Could not run the git executable", nil).
				WithSuggestion("Make sure git is installed and on your PATH")

	ErrStageAll = NewAppError(TypeGit, "Failed to stage changes", nil).
			WithSuggestion("Make sure you are inside a git repository: git status")

	ErrCreateCommit = NewAppError(TypeGit, "Failed to create commit", nil).
			WithSuggestion("Ensure git user is configured:\n   git config --global user.name \"Your Name\"\n   git config --global user.email \"your@email.com\"")
)

// Prompt errors
var (
	ErrPromptAborted = NewAppError(TypeInternal, "Prompt was cancelled", nil)
)
