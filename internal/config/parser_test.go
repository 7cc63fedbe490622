package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	apperrors "github.com/alexisbeaulieu97/splitpane/pkg/errors"
)

func TestParseLayout(t *testing.T) {
	t.Parallel()

	validYAML := `version: "1"
name: "Editor"
description: "Sample layout for parser tests"
split:
  direction: horizontal
  unit: percent
  panes:
    - id: files
      size: 25
      min_size: 10
      content: text
      text: "tree"
    - id: editor
      size: 75
      split:
        direction: vertical
        unit: pixel
        panes:
          - id: code
            size: "*"
          - id: terminal
            size: 8
            visible: false
`

	invalidYAML := `version: "1"
name: "Broken"
split:
  panes: [1, 2
`

	unknownField := `version: "1"
name: "Typo"
split:
  panez: []
`

	missingPanes := `version: "1"
name: "No Panes"
split:
  direction: vertical
`

	badSize := `version: "1"
name: "Bad Size"
split:
  panes:
    - id: a
      size: wide
`

	cases := []struct {
		name     string
		contents string
		assert   func(t *testing.T, layout *Layout, err error)
	}{
		{
			name:     "valid layout is parsed",
			contents: validYAML,
			assert: func(t *testing.T, layout *Layout, err error) {
				require.NoError(t, err)
				require.NotNil(t, layout)
				require.Equal(t, "Editor", layout.Name)
				require.Len(t, layout.Split.Panes, 2)

				files := layout.Split.Panes[0]
				require.Equal(t, Fixed(25), files.Size)
				require.Equal(t, 10.0, *files.MinSize)
				require.Equal(t, ContentText, files.ContentKind())

				nested := layout.Split.Panes[1].Split
				require.NotNil(t, nested)
				require.Equal(t, "pixel", nested.Unit)
				require.True(t, nested.Panes[0].Size.Wildcard)
				require.Nil(t, nested.Panes[0].Size.Pointer())
				require.False(t, nested.Panes[1].IsVisible())
			},
		},
		{
			name:     "invalid yaml returns parse error with line",
			contents: invalidYAML,
			assert: func(t *testing.T, layout *Layout, err error) {
				require.Error(t, err)
				require.Nil(t, layout)
				var parseErr *apperrors.ParseError
				require.ErrorAs(t, err, &parseErr)
				require.Positive(t, parseErr.Line)
			},
		},
		{
			name:     "unknown fields are rejected",
			contents: unknownField,
			assert: func(t *testing.T, layout *Layout, err error) {
				var parseErr *apperrors.ParseError
				require.ErrorAs(t, err, &parseErr)
				require.Contains(t, parseErr.Message, "panez")
			},
		},
		{
			name:     "missing panes returns validation error",
			contents: missingPanes,
			assert: func(t *testing.T, layout *Layout, err error) {
				var validationErr *apperrors.ValidationError
				require.ErrorAs(t, err, &validationErr)
				require.Equal(t, "split.panes", validationErr.Field)
			},
		},
		{
			name:     "non numeric size returns parse error",
			contents: badSize,
			assert: func(t *testing.T, layout *Layout, err error) {
				var parseErr *apperrors.ParseError
				require.ErrorAs(t, err, &parseErr)
				require.Contains(t, parseErr.Message, "wide")
				require.Equal(t, 6, parseErr.Line)
			},
		},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			dir := t.TempDir()
			path := filepath.Join(dir, "layout.yaml")
			require.NoError(t, os.WriteFile(path, []byte(tc.contents), 0o600))

			layout, err := ParseLayout(path)
			tc.assert(t, layout, err)
		})
	}
}

func TestParseLayoutMissingFile(t *testing.T) {
	t.Parallel()

	_, err := ParseLayout(filepath.Join(t.TempDir(), "nope.yaml"))
	var parseErr *apperrors.ParseError
	require.ErrorAs(t, err, &parseErr)
	require.ErrorIs(t, err, os.ErrNotExist)
}

func TestDecodeLayoutEmpty(t *testing.T) {
	t.Parallel()

	_, err := DecodeLayout([]byte("  \n"), "inline")
	var parseErr *apperrors.ParseError
	require.ErrorAs(t, err, &parseErr)
	require.Equal(t, "inline", parseErr.Path)
}

func TestLayoutMarshalRoundTrip(t *testing.T) {
	t.Parallel()

	data, err := DefaultLayout().Marshal()
	require.NoError(t, err)

	layout, err := DecodeLayout(data, "default")
	require.NoError(t, err)
	require.Equal(t, DefaultLayout(), layout)
}

func TestExtractLine(t *testing.T) {
	t.Parallel()

	require.Equal(t, 0, extractLine(nil))
	require.Equal(t, 12, extractLine(errString("yaml: line 12: did not find expected key")))
	require.Equal(t, 0, extractLine(errString("no position")))
}

type errString string

func (e errString) Error() string { return string(e) }

func TestExampleLayoutsParse(t *testing.T) {
	t.Parallel()

	paths, err := filepath.Glob(filepath.Join("..", "..", "examples", "layouts", "*.yaml"))
	require.NoError(t, err)
	require.NotEmpty(t, paths)

	for _, path := range paths {
		path := path
		t.Run(filepath.Base(path), func(t *testing.T) {
			t.Parallel()

			layout, err := ParseLayout(path)
			require.NoError(t, err)

			s, panes := layout.Split.Build(80, nil)
			require.NotNil(t, s)
			require.NotEmpty(t, panes)
		})
	}
}
