package sources

import (
	"bufio"
	"context"
	"io"
	"os"
	"strings"
)

// maxLineBytes bounds a single input line.
const maxLineBytes = 1 << 20

// LineSource yields raw input lines in order. Line terminators ("\n" or "\r\n")
// are stripped; a final newline does not produce an empty trailing line.
//
//go:generate mockgen -source=line_source.go -destination=./mocks/line_source_mock.go -package=mocks
type LineSource interface {
	// Name identifies the source in logs.
	Name() string
	// Lines calls emit once per line and stops at the first error returned by
	// emit, by the underlying reader or by ctx.
	Lines(ctx context.Context, emit func(line string) error) error
}

type readerLineSource struct {
	name   string
	reader io.Reader
}

func NewReaderLineSource(name string, reader io.Reader) LineSource {
	return &readerLineSource{name: name, reader: reader}
}

func (s *readerLineSource) Name() string { return s.name }

func (s *readerLineSource) Lines(ctx context.Context, emit func(line string) error) error {
	return scanLines(ctx, s.name, s.reader, emit)
}

type fileLineSource struct {
	path string
}

// NewFileLineSource reads lines from the file at path. The file is opened lazily
// by Lines.
func NewFileLineSource(path string) LineSource {
	return &fileLineSource{path: path}
}

func (s *fileLineSource) Name() string { return s.path }

func (s *fileLineSource) Lines(ctx context.Context, emit func(line string) error) error {
	f, err := os.Open(s.path)
	if err != nil {
		return errInputUnavailable(s.path, err)
	}
	defer f.Close()
	return scanLines(ctx, s.path, f, emit)
}

// SampleLines is the built-in input processed when no input file is given.
var SampleLines = []string{
	"10.20.30.40,u200,500,query1",
	"10.20.30.41,u300,600,query1",
	"10.20.30.42,u400,700,query2",
	"10.20.30.40,u200,-,query1",
	"10.20.30.41,u300,600,query1",
	"10.20.30.47,-,600,query1",
	"10.20.30.42,u400,700,query2",
}

func NewSampleLineSource() LineSource {
	return NewReaderLineSource("sample", strings.NewReader(strings.Join(SampleLines, "\n")))
}

func scanLines(ctx context.Context, name string, reader io.Reader, emit func(line string) error) error {
	scanner := bufio.NewScanner(reader)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineBytes)
	for scanner.Scan() {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := emit(scanner.Text()); err != nil {
			return err
		}
	}
	if err := scanner.Err(); err != nil {
		return errInputUnavailable(name, err)
	}
	return nil
}
