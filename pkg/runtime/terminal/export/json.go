package export

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
)

// JSONReporter writes api models as indented JSON.
type JSONReporter struct {
	writer io.Writer
}

func NewJSONReporter(writer io.Writer) *JSONReporter {
	if writer == nil {
		writer = os.Stdout
	}
	return &JSONReporter{writer: writer}
}

func (j *JSONReporter) Handle(v any) error {
	enc := json.NewEncoder(j.writer)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("failed to encode report: %w", err)
	}
	return nil
}
