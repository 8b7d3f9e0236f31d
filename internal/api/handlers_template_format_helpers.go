package api

import (
	"encoding/json"
	"html/template"
	"time"

	"github.com/shopspring/decimal"
)

func formatTemplateDate(value time.Time, layout string) string {
	if value.IsZero() {
		return ""
	}
	return value.Format(layout)
}

// formatTemplateMoney renders an amount with two decimals, rounded half away from zero.
func formatTemplateMoney(value float64) string {
	return decimal.NewFromFloat(value).StringFixed(2)
}

func templateToJSON(value any) template.JS {
	serialized, err := json.Marshal(value)
	if err != nil {
		return template.JS("null")
	}
	return template.JS(serialized)
}
