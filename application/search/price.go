package search

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/muhammadheryan/student-marketplace/model"
)

const amountPattern = `\$?\s?(\d[\d,]*(?:\.\d+)?)`

// Order matters: the range pattern is the most specific and must be tried
// before over/under can claim part of it.
var (
	betweenPattern = regexp.MustCompile(`(?i)\b(?:between\s+` + amountPattern + `\s+and\s+` + amountPattern +
		`|from\s+` + amountPattern + `\s+to\s+` + amountPattern + `)`)
	overPattern  = regexp.MustCompile(`(?i)\b(?:over|more\s+than|above)\s+` + amountPattern)
	underPattern = regexp.MustCompile(`(?i)\b(?:under|less\s+than|below)\s+` + amountPattern)
)

// ExtractPriceFilter returns the first price constraint found in query, or
// nil when there is none. Unparseable amounts and inverted ranges count as
// no match.
func ExtractPriceFilter(query string) *model.PriceFilter {
	if m := betweenPattern.FindStringSubmatch(query); m != nil {
		low, high := m[1], m[2]
		if low == "" {
			low, high = m[3], m[4]
		}
		lo, okLo := parseAmount(low)
		hi, okHi := parseAmount(high)
		if okLo && okHi {
			if f, err := model.NewBetweenFilter(lo, hi); err == nil {
				return f
			}
		}
	}

	if m := overPattern.FindStringSubmatch(query); m != nil {
		if v, ok := parseAmount(m[1]); ok {
			if f, err := model.NewOverFilter(v); err == nil {
				return f
			}
		}
	}

	if m := underPattern.FindStringSubmatch(query); m != nil {
		if v, ok := parseAmount(m[1]); ok {
			if f, err := model.NewUnderFilter(v); err == nil {
				return f
			}
		}
	}

	return nil
}

func parseAmount(s string) (float64, bool) {
	v, err := strconv.ParseFloat(strings.ReplaceAll(s, ",", ""), 64)
	if err != nil {
		return 0, false
	}
	return v, true
}
