package sources

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"log-query/internal/shared/svcerrors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func collect(t *testing.T, source LineSource) []string {
	t.Helper()
	var lines []string
	err := source.Lines(context.Background(), func(line string) error {
		lines = append(lines, line)
		return nil
	})
	require.NoError(t, err)
	return lines
}

func TestReaderLineSource_Lines(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{name: "empty", input: "", want: nil},
		{name: "trailing newline", input: "a,b,1,q\n", want: []string{"a,b,1,q"}},
		{name: "no trailing newline", input: "a,b,1,q\nc,d,2,q", want: []string{"a,b,1,q", "c,d,2,q"}},
		{name: "crlf", input: "a,b,1,q\r\nc,d,2,q\r\n", want: []string{"a,b,1,q", "c,d,2,q"}},
		{name: "blank line kept", input: "a,b,1,q\n\nc,d,2,q\n", want: []string{"a,b,1,q", "", "c,d,2,q"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := collect(t, NewReaderLineSource("test", strings.NewReader(tt.input)))
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestReaderLineSource_StopsOnEmitError(t *testing.T) {
	t.Parallel()

	stop := errors.New("stop")
	calls := 0
	err := NewReaderLineSource("test", strings.NewReader("1\n2\n3\n")).Lines(context.Background(), func(string) error {
		calls++
		return stop
	})
	assert.ErrorIs(t, err, stop)
	assert.Equal(t, 1, calls)
}

func TestReaderLineSource_Cancelled(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	err := NewReaderLineSource("test", strings.NewReader("1\n")).Lines(ctx, func(string) error { return nil })
	assert.ErrorIs(t, err, context.Canceled)
}

func TestFileLineSource_Lines(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "access.log")
	require.NoError(t, os.WriteFile(path, []byte("10.20.30.40,u200,500,query1\n10.20.30.47,-,600,query1\n"), 0o644))

	source := NewFileLineSource(path)
	assert.Equal(t, path, source.Name())
	assert.Equal(t, []string{"10.20.30.40,u200,500,query1", "10.20.30.47,-,600,query1"}, collect(t, source))
}

func TestFileLineSource_MissingFile(t *testing.T) {
	t.Parallel()

	err := NewFileLineSource(filepath.Join(t.TempDir(), "missing.log")).Lines(context.Background(), func(string) error { return nil })
	require.Error(t, err)
	assert.True(t, svcerrors.HasCode(err, CodeInputUnavailable))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestSampleLineSource(t *testing.T) {
	t.Parallel()

	assert.Equal(t, SampleLines, collect(t, NewSampleLineSource()))
}
