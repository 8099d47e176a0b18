package errors_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	pkgerrors "github.com/addaleax/remarkup/pkg/errors"
)

func TestNew(t *testing.T) {
	err := pkgerrors.New("test error")
	assert.NotNil(t, err)
	assert.Equal(t, "test error", err.Error())
}

func TestSentinelErrors(t *testing.T) {
	sentinels := map[string]error{
		"ErrNotFound":       pkgerrors.ErrNotFound,
		"ErrInvalidInput":   pkgerrors.ErrInvalidInput,
		"ErrCanceled":       pkgerrors.ErrCanceled,
		"ErrEmptyTree":      pkgerrors.ErrEmptyTree,
		"ErrNotImplemented": pkgerrors.ErrNotImplemented,
	}

	for name, err := range sentinels {
		t.Run(name, func(t *testing.T) {
			require.NotNil(t, err)
			assert.NotEmpty(t, err.Error())
		})
	}
}

func TestValidationError(t *testing.T) {
	t.Run("with field", func(t *testing.T) {
		err := &pkgerrors.ValidationError{
			Field:   "missing_child_penalty",
			Message: "cannot be negative",
		}
		assert.Equal(t, "invalid missing_child_penalty: cannot be negative", err.Error())
		assert.True(t, errors.Is(err, pkgerrors.ErrInvalidInput))
	})

	t.Run("without field", func(t *testing.T) {
		err := &pkgerrors.ValidationError{
			Message: "invalid configuration",
		}
		assert.Equal(t, "invalid input: invalid configuration", err.Error())
		assert.True(t, pkgerrors.IsValidationError(err))
	})

	t.Run("constructor", func(t *testing.T) {
		err := pkgerrors.NewValidationError("penalty", -5.0, "must be non-negative")
		assert.Contains(t, err.Error(), "penalty")
		assert.Contains(t, err.Error(), "must be non-negative")
	})
}

func TestParseError(t *testing.T) {
	t.Run("with file", func(t *testing.T) {
		err := &pkgerrors.ParseError{
			Format:  "yaml",
			File:    "profile.yaml",
			Message: "invalid indentation",
		}
		assert.Contains(t, err.Error(), "yaml")
		assert.Contains(t, err.Error(), "profile.yaml")
		assert.Contains(t, err.Error(), "invalid indentation")
	})

	t.Run("format only", func(t *testing.T) {
		err := &pkgerrors.ParseError{
			Format:  "html",
			Message: "unexpected end of input",
		}
		assert.Contains(t, err.Error(), "parsing html")
		assert.Contains(t, err.Error(), "unexpected end of input")
	})

	t.Run("constructor and wrap", func(t *testing.T) {
		baseErr := errors.New("EOF")
		err := pkgerrors.NewParseError("html", "page.html", "unexpected end", baseErr)
		assert.Contains(t, err.Error(), "html")
		assert.Equal(t, baseErr, err.Unwrap())

		wrapped := pkgerrors.WrapParse("yaml", "rules.yaml", baseErr)
		parseErr, ok := wrapped.(*pkgerrors.ParseError)
		require.True(t, ok)
		assert.Equal(t, "yaml", parseErr.Format)
		assert.Equal(t, "rules.yaml", parseErr.File)
	})
}

func TestAlignmentError(t *testing.T) {
	t.Run("with stage", func(t *testing.T) {
		err := &pkgerrors.AlignmentError{
			Stage:   "matrix",
			Message: "edited element missing from index",
		}
		assert.Contains(t, err.Error(), "matrix")
		assert.Contains(t, err.Error(), "missing from index")
	})

	t.Run("unwrap", func(t *testing.T) {
		baseErr := pkgerrors.ErrNotFound
		err := pkgerrors.NewAlignmentError("transfer", "lookup failed", baseErr)
		assert.Equal(t, baseErr, err.Unwrap())
		assert.True(t, pkgerrors.IsNotFound(err))
	})
}

func TestNotFoundError(t *testing.T) {
	t.Run("basic error", func(t *testing.T) {
		err := &pkgerrors.NotFoundError{
			Resource: "element",
			ID:       "#3",
		}
		assert.Equal(t, "element #3 not found", err.Error())
		assert.True(t, errors.Is(err, pkgerrors.ErrNotFound))
	})

	t.Run("constructor", func(t *testing.T) {
		err := pkgerrors.NewNotFoundError("attribute", "data-ref")
		assert.Equal(t, "attribute data-ref not found", err.Error())
		assert.True(t, pkgerrors.IsNotFound(err))
	})

	t.Run("joined error", func(t *testing.T) {
		base := pkgerrors.NewNotFoundError("element", "#0")
		joined := errors.Join(errors.New("failed"), base)
		assert.True(t, pkgerrors.IsNotFound(joined))
	})

	t.Run("plain message does not match", func(t *testing.T) {
		assert.False(t, pkgerrors.IsNotFound(errors.New("not found")))
	})
}

func TestIOError(t *testing.T) {
	t.Run("basic error", func(t *testing.T) {
		err := &pkgerrors.IOError{
			Operation: "read",
			Path:      "/tmp/page.html",
			Message:   "permission denied",
			Err:       errors.New("permission denied"),
		}
		assert.Contains(t, err.Error(), "read")
		assert.Contains(t, err.Error(), "/tmp/page.html")
		assert.Contains(t, err.Error(), "permission denied")
	})

	t.Run("unwrap", func(t *testing.T) {
		baseErr := errors.New("disk full")
		err := pkgerrors.NewIOError("write", "/data/output.html", baseErr)
		assert.Equal(t, baseErr, err.Unwrap())
	})

	t.Run("wrap helper", func(t *testing.T) {
		baseErr := errors.New("no such file")
		err := pkgerrors.WrapIO("open", "edited.html", baseErr)
		ioErr, ok := err.(*pkgerrors.IOError)
		require.True(t, ok)
		assert.Equal(t, "open", ioErr.Operation)
		assert.Equal(t, "edited.html", ioErr.Path)
	})
}

func TestConfigError(t *testing.T) {
	t.Run("basic error", func(t *testing.T) {
		err := &pkgerrors.ConfigError{
			Component: "profile",
			Message:   "identity: invalid pattern",
		}
		assert.Contains(t, err.Error(), "profile")
		assert.Contains(t, err.Error(), "identity")
		assert.Contains(t, err.Error(), "invalid pattern")
	})

	t.Run("constructor", func(t *testing.T) {
		err := pkgerrors.NewConfigError("logging", "level cannot be empty", nil)
		assert.Contains(t, err.Error(), "logging")
		assert.Contains(t, err.Error(), "level cannot be empty")
	})
}

func TestIsCanceled(t *testing.T) {
	assert.True(t, pkgerrors.IsCanceled(pkgerrors.ErrCanceled))

	wrapped := pkgerrors.NewAlignmentError("matrix", "interrupted", pkgerrors.ErrCanceled)
	assert.True(t, pkgerrors.IsCanceled(wrapped))

	assert.False(t, pkgerrors.IsCanceled(errors.New("canceled")))
}

func TestWrapHelpers(t *testing.T) {
	t.Run("WrapValidation", func(t *testing.T) {
		err := pkgerrors.WrapValidation("filters", errors.New("nil filter"))
		require.NotNil(t, err)
		assert.Contains(t, err.Error(), "filters")
		assert.Contains(t, err.Error(), "nil filter")
	})

	t.Run("WrapIO", func(t *testing.T) {
		err := pkgerrors.WrapIO("write", "/tmp/file", errors.New("disk full"))
		require.NotNil(t, err)
		assert.Contains(t, err.Error(), "write")
		assert.Contains(t, err.Error(), "/tmp/file")
	})

	t.Run("WrapParse", func(t *testing.T) {
		err := pkgerrors.WrapParse("html", "page.html", errors.New("invalid syntax"))
		require.NotNil(t, err)
		assert.Contains(t, err.Error(), "html")
		assert.Contains(t, err.Error(), "page.html")
	})

	t.Run("WrapConfig", func(t *testing.T) {
		err := pkgerrors.WrapConfig("profile", errors.New("unknown key"))
		require.NotNil(t, err)
		assert.Contains(t, err.Error(), "profile")
	})
}

func TestWrapNilPassthrough(t *testing.T) {
	wrapped := map[string]error{
		"WrapValidation": pkgerrors.WrapValidation("field", nil),
		"WrapIO":         pkgerrors.WrapIO("read", "file", nil),
		"WrapParse":      pkgerrors.WrapParse("yaml", "file.yaml", nil),
		"WrapConfig":     pkgerrors.WrapConfig("profile", nil),
	}

	for name, err := range wrapped {
		t.Run(name, func(t *testing.T) {
			assert.Nil(t, err)
		})
	}
}

func TestErrorChaining(t *testing.T) {
	baseErr := errors.New("bad byte sequence")
	parseErr := pkgerrors.WrapParse("html", "edited.html", baseErr)
	alignErr := &pkgerrors.AlignmentError{
		Stage:   "matrix",
		Message: "could not parse input",
		Err:     parseErr,
	}

	assert.Equal(t, parseErr, alignErr.Unwrap())

	var target *pkgerrors.ParseError
	require.True(t, errors.As(alignErr, &target))
	assert.Equal(t, "edited.html", target.File)
	assert.True(t, errors.Is(alignErr, baseErr))
}
