package logger_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/xcbatch/internal/adapters/logger"
	"go.trai.ch/zerr"
)

func TestCollectErrorEntries(t *testing.T) {
	tests := []struct {
		name         string
		err          error
		wantMessages []string
		wantMetadata []map[string]any
	}{
		{
			name:         "single standard error",
			err:          errors.New("simple error"),
			wantMessages: []string{"simple error"},
			wantMetadata: []map[string]any{nil},
		},
		{
			name:         "zerr wrapped chain",
			err:          zerr.Wrap(zerr.Wrap(errors.New("root cause"), "middle layer"), "outer layer"),
			wantMessages: []string{"outer layer", "middle layer", "root cause"},
			wantMetadata: []map[string]any{nil, nil, nil},
		},
		{
			name:         "accumulated metadata",
			err:          zerr.With(zerr.With(zerr.New("base error"), "key1", "value1"), "key2", 42),
			wantMessages: []string{"base error"},
			wantMetadata: []map[string]any{{"key1": "value1", "key2": 42}},
		},
		{
			name:         "metadata-only link folds into the cause",
			err:          zerr.Wrap(zerr.With(errors.New("inner"), "dir", "buildlogs"), "outer"),
			wantMessages: []string{"outer", "inner"},
			wantMetadata: []map[string]any{nil, {"dir": "buildlogs"}},
		},
		{
			name:         "fmt wrapping stops the walk",
			err:          zerr.Wrap(fmt.Errorf("wrapped: %w", zerr.New("hidden")), "outer"),
			wantMessages: []string{"outer", "wrapped: hidden"},
			wantMetadata: []map[string]any{nil, nil},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			entries := logger.CollectErrorEntries(tt.err)
			require.Len(t, entries, len(tt.wantMessages))

			for i := range entries {
				assert.Equal(t, tt.wantMessages[i], logger.EntryMessage(entries, i))
				assert.Equal(t, tt.wantMetadata[i], logger.EntryMetadata(entries, i))
			}
		})
	}
}

func TestCollectErrorEntries_Nil(t *testing.T) {
	assert.Empty(t, logger.CollectErrorEntries(nil))
}

func TestFormatErrorEntries(t *testing.T) {
	err := zerr.With(zerr.Wrap(errors.New("first line\nsecond line"), "headline\ndetail"), "scheme", "App")

	got := logger.FormatErrorEntries(logger.CollectErrorEntries(err))
	want := "Error: headline (scheme=App)\n" +
		"       detail\n" +
		"\n" +
		"  Caused by:\n" +
		"    → first line\n" +
		"      second line"
	assert.Equal(t, want, got)
}

func TestFormatErrorEntries_SortsMetadata(t *testing.T) {
	err := zerr.With(zerr.With(zerr.New("failed"), "z", 1), "a", "x")

	got := logger.FormatErrorEntries(logger.CollectErrorEntries(err))
	assert.Equal(t, "Error: failed (a=x, z=1)", got)
}
