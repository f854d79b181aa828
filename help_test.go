package main

import (
	"bytes"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHelp_Write(t *testing.T) {
	t.Parallel()

	tests := []struct {
		give     Help
		wantErr  string
		wantText string
	}{
		{give: "usage", wantText: "USAGE: attnviz"},
		{give: "default", wantText: "-batch-size N"},
		{give: "input", wantText: `"attention"`},
		{give: "config", wantText: "ATTNVIZ_BATCH_SIZE"},
		{
			give:    "not-a-topic",
			wantErr: `unknown help topic "not-a-topic": valid values`,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.give.String(), func(t *testing.T) {
			t.Parallel()

			var buff bytes.Buffer
			err := tt.give.Write(&buff)
			if len(tt.wantErr) > 0 {
				assert.ErrorContains(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Contains(t, buff.String(), tt.wantText)
		})
	}
}

func TestHelp_noHelp(t *testing.T) {
	t.Parallel()

	assert.NoError(t, NoHelp.Write(io.Discard))
}

func TestUsageHelp_singleLine(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "USAGE: attnviz [OPTIONS] -title TITLE FILE ...\n", _usageHelp)
}
