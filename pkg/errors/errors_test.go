package errors

import (
	stdErrors "errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseErrorWrapsUnderlying(t *testing.T) {
	t.Parallel()

	underlying := fmt.Errorf("unexpected token")
	err := NewParseError("layout.yaml", 12, underlying)

	var parseErr *ParseError
	require.ErrorAs(t, err, &parseErr)
	require.Equal(t, "layout.yaml", parseErr.Path)
	require.Equal(t, 12, parseErr.Line)
	require.True(t, stdErrors.Is(err, underlying))
	require.Equal(t, "parse error: layout.yaml:12: unexpected token", err.Error())
}

func TestParseErrorWithoutLine(t *testing.T) {
	t.Parallel()

	err := NewParseError("layout.yaml", 0, stdErrors.New("empty document"))
	require.Equal(t, "parse error: layout.yaml: empty document", err.Error())
}

func TestValidationErrorCarriesField(t *testing.T) {
	t.Parallel()

	err := NewValidationError("split.panes[1].size", "sizes must sum to 100", nil)

	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)
	require.Equal(t, "split.panes[1].size", validationErr.Field)
	require.Contains(t, validationErr.Message, "sum to 100")
	require.Contains(t, err.Error(), "split.panes[1].size")
}

func TestLayoutErrorIncludesOperation(t *testing.T) {
	t.Parallel()

	underlying := stdErrors.New("size count mismatch")
	err := NewLayoutError("set_sizes", underlying)

	var layoutErr *LayoutError
	require.ErrorAs(t, err, &layoutErr)
	require.Equal(t, "set_sizes", layoutErr.Op)
	require.True(t, stdErrors.Is(err, underlying))
	require.Equal(t, "layout error [set_sizes]: size count mismatch", err.Error())
}
