package export

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/de-tools/lift-atlas/pkg/models/domain"
	"github.com/de-tools/lift-atlas/pkg/presentation/format"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/currency"
	"golang.org/x/text/language"
)

func TestReporter_Handle(t *testing.T) {
	var buf bytes.Buffer
	r := NewReporter(&buf, format.NewFormatter(language.AmericanEnglish, currency.USD))

	err := r.Handle(&domain.Report{
		Title:       "Checkout redesign",
		Period:      domain.TimePeriod{Duration: 14},
		TotalAmount: 3910.71,
		Currency:    "USD",
		Sections: []domain.ReportSection{{
			Title:   "Annual impact",
			Summary: map[string]interface{}{"Estimated range": "$2,738 to $3,911"},
			Details: []domain.ReportDetail{{Name: "Raw annual value", Value: "$5,214", Unit: "USD", Description: "Daily lift over 365 days"}},
		}},
	})

	require.NoError(t, err)
	out := buf.String()
	assert.Contains(t, out, "Checkout redesign (14 days observed)")
	assert.Contains(t, out, "3,911 USD")
	assert.Contains(t, out, "=== Annual impact ===")
	assert.Contains(t, out, "Estimated range: $2,738 to $3,911")
	assert.Contains(t, out, "| Raw annual value ")
	assert.True(t, strings.Contains(out, "Daily lift over 365 days"))
}

func TestJSONReporter_Handle(t *testing.T) {
	var buf bytes.Buffer

	err := NewJSONReporter(&buf).Handle(map[string]any{"lift_percentage": nil})

	require.NoError(t, err)
	var decoded map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	assert.Contains(t, decoded, "lift_percentage")
}
