package corpus

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.abhg.dev/attnviz/internal/heatmap"
)

func TestLoader_Load(t *testing.T) {
	t.Parallel()

	tests := []struct {
		desc string
		give string
		want []heatmap.Example
	}{
		{
			desc: "parallel",
			give: `{
				"words": [["This", "script"], ["Change"]],
				"attention": [[0, 70], [12.5]],
				"labels": ["Description", "Experiment"]
			}`,
			want: []heatmap.Example{
				{Tokens: []string{"This", "script"}, Weights: []float64{0, 70}, Label: "Description"},
				{Tokens: []string{"Change"}, Weights: []float64{12.5}, Label: "Experiment"},
			},
		},
		{
			desc: "records",
			give: `{"examples": [
				{"tokens": ["a_b"], "weights": [1], "label": "x"},
				{"tokens": [], "weights": [], "label": "empty"}
			]}`,
			want: []heatmap.Example{
				{Tokens: []string{"a_b"}, Weights: []float64{1}, Label: "x"},
				{Tokens: []string{}, Weights: []float64{}, Label: "empty"},
			},
		},
		{
			desc: "per-example mismatch is kept",
			give: `{"words": [["a", "b"]], "attention": [[1]], "labels": ["l"]}`,
			want: []heatmap.Example{
				{Tokens: []string{"a", "b"}, Weights: []float64{1}, Label: "l"},
			},
		},
		{
			desc: "empty parallel",
			give: `{"words": [], "attention": [], "labels": []}`,
			want: []heatmap.Example{},
		},
		{
			desc: "empty document",
			give: `{}`,
			want: []heatmap.Example{},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.desc, func(t *testing.T) {
			t.Parallel()

			got, err := new(Loader).Load(strings.NewReader(tt.give))
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestLoader_Load_errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		desc    string
		give    string
		wantIs  error
		wantMsg string
	}{
		{
			desc:   "list lengths",
			give:   `{"words": [["a"], ["b"]], "attention": [[1]], "labels": ["x", "y"]}`,
			wantIs: ErrListLength,
		},
		{
			desc:   "missing labels",
			give:   `{"words": [["a"]], "attention": [[1]]}`,
			wantIs: ErrListLength,
		},
		{
			desc:   "mixed shapes",
			give:   `{"words": [], "examples": []}`,
			wantIs: ErrMixedShapes,
		},
		{
			desc:    "unknown field",
			give:    `{"tokens": ["a"]}`,
			wantMsg: `unknown field "tokens"`,
		},
		{
			desc:    "bad weight",
			give:    `{"examples": [{"tokens": ["a"], "weights": ["high"]}]}`,
			wantMsg: "decode",
		},
		{
			desc:    "not json",
			give:    `\documentclass{article}`,
			wantMsg: "decode",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.desc, func(t *testing.T) {
			t.Parallel()

			_, err := new(Loader).Load(strings.NewReader(tt.give))
			require.Error(t, err)
			if tt.wantIs != nil {
				assert.ErrorIs(t, err, tt.wantIs)
			}
			if tt.wantMsg != "" {
				assert.ErrorContains(t, err, tt.wantMsg)
			}
		})
	}
}

func TestLoader_normalize(t *testing.T) {
	t.Parallel()

	// "é" as 'e' followed by a combining acute accent.
	const decomposed = "cafe\u0301"
	give := `{"examples": [{"tokens": ["` + decomposed + `"], "weights": [1], "label": "` + decomposed + `"}]}`

	t.Run("off", func(t *testing.T) {
		t.Parallel()

		got, err := new(Loader).Load(strings.NewReader(give))
		require.NoError(t, err)
		assert.Equal(t, decomposed, got[0].Tokens[0])
	})

	t.Run("on", func(t *testing.T) {
		t.Parallel()

		got, err := (&Loader{Normalize: true}).Load(strings.NewReader(give))
		require.NoError(t, err)
		assert.Equal(t, "caf\u00e9", got[0].Tokens[0])
		assert.Equal(t, "caf\u00e9", got[0].Label)
	})
}

func TestLoader_LoadFile(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "corpus.json")
	require.NoError(t, os.WriteFile(path,
		[]byte(`{"words": [["x"]], "attention": [[3]], "labels": ["only"]}`), 0o644))

	got, err := new(Loader).LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, []heatmap.Example{
		{Tokens: []string{"x"}, Weights: []float64{3}, Label: "only"},
	}, got)
}

func TestLoader_LoadFile_errors(t *testing.T) {
	t.Parallel()

	t.Run("missing", func(t *testing.T) {
		t.Parallel()

		_, err := new(Loader).LoadFile(filepath.Join(t.TempDir(), "nope.json"))
		assert.ErrorIs(t, err, os.ErrNotExist)
	})

	t.Run("names the file", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "bad.json")
		require.NoError(t, os.WriteFile(path, []byte(`{"words": [["x"]]}`), 0o644))

		_, err := new(Loader).LoadFile(path)
		assert.ErrorIs(t, err, ErrListLength)
		assert.ErrorContains(t, err, path)
	})
}

func TestSample(t *testing.T) {
	t.Parallel()

	got := Sample()
	require.Len(t, got, 2)
	for _, ex := range got {
		assert.Len(t, ex.Weights, len(ex.Tokens), "%v", ex.Label)
	}
}
