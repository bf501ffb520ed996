package chart

import (
	"fmt"
	"io"

	"github.com/de-tools/lift-atlas/pkg/models/domain"
)

var blocks = []rune{'▁', '▂', '▃', '▄', '▅', '▆', '▇', '█'}

// Sparkline prints the efficacy curve on a single line of unicode block
// characters, stretched between its lowest and highest point.
type Sparkline struct{}

func (Sparkline) Render(w io.Writer, series domain.MonthlySeries, _ Scale) error {
	_, err := fmt.Fprintln(w, sparkline(series.Efficacies()))
	return err
}

func sparkline(values []float64) string {
	if len(values) == 0 {
		return ""
	}

	lo, hi := values[0], values[0]
	for _, v := range values {
		lo = min(lo, v)
		hi = max(hi, v)
	}

	result := make([]rune, len(values))
	if hi == lo {
		for i := range result {
			result[i] = blocks[len(blocks)/2]
		}
		return string(result)
	}

	for i, v := range values {
		idx := int((v - lo) / (hi - lo) * float64(len(blocks)-1))
		result[i] = blocks[min(idx, len(blocks)-1)]
	}
	return string(result)
}
