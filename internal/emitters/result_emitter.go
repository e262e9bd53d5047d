package emitters

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"

	"log-query/internal/models"
	"log-query/internal/shared/configs"
)

// ResultEmitter writes a finished AggregationResult. Output is sorted by key so
// repeated runs over the same input are byte-identical.
type ResultEmitter interface {
	Emit(w io.Writer, result models.AggregationResult) error
}

// NewResultEmitter returns the emitter for an output format.
func NewResultEmitter(format string) (ResultEmitter, error) {
	switch format {
	case configs.OutputFormatText, "":
		return &textEmitter{}, nil
	case configs.OutputFormatJSON:
		return &jsonEmitter{}, nil
	default:
		return nil, fmt.Errorf("unknown output format %q", format)
	}
}

// textEmitter writes one "(client,actor,query)\t<count,totalBytes>" line per group.
type textEmitter struct{}

func (e *textEmitter) Emit(w io.Writer, result models.AggregationResult) error {
	bw := bufio.NewWriter(w)
	for _, key := range result.SortedKeys() {
		if _, err := fmt.Fprintf(bw, "%s\t%s\n", key, result[key]); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// jsonEmitter writes a JSON array of groups followed by a newline.
type jsonEmitter struct{}

func (e *jsonEmitter) Emit(w io.Writer, result models.AggregationResult) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(result.Groups())
}
