package model

import (
	"encoding/json"
	"fmt"
)

type PriceFilterType string

const (
	PriceOver    PriceFilterType = "over"
	PriceUnder   PriceFilterType = "under"
	PriceBetween PriceFilterType = "between"
)

// PriceFilter is one of over(threshold), under(threshold) or between(low, high).
// A nil *PriceFilter means no price constraint. On the wire each variant
// carries only its own bounds, zero included.
type PriceFilter struct {
	Type      PriceFilterType
	Threshold float64
	Low       float64
	High      float64
}

type thresholdJSON struct {
	Type      PriceFilterType `json:"type"`
	Threshold float64         `json:"threshold"`
}

type rangeJSON struct {
	Type PriceFilterType `json:"type"`
	Low  float64         `json:"low"`
	High float64         `json:"high"`
}

func (f PriceFilter) MarshalJSON() ([]byte, error) {
	switch f.Type {
	case PriceOver, PriceUnder:
		return json.Marshal(thresholdJSON{Type: f.Type, Threshold: f.Threshold})
	case PriceBetween:
		return json.Marshal(rangeJSON{Type: f.Type, Low: f.Low, High: f.High})
	}
	return nil, fmt.Errorf("unknown price filter type %q", f.Type)
}

// UnmarshalJSON goes through the constructors, so a decoded filter holds the
// same invariants as a parsed one.
func (f *PriceFilter) UnmarshalJSON(data []byte) error {
	var raw struct {
		Type      PriceFilterType `json:"type"`
		Threshold *float64        `json:"threshold"`
		Low       *float64        `json:"low"`
		High      *float64        `json:"high"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	var (
		parsed *PriceFilter
		err    error
	)
	switch raw.Type {
	case PriceOver, PriceUnder:
		if raw.Threshold == nil {
			return fmt.Errorf("%s filter without threshold", raw.Type)
		}
		if raw.Type == PriceOver {
			parsed, err = NewOverFilter(*raw.Threshold)
		} else {
			parsed, err = NewUnderFilter(*raw.Threshold)
		}
	case PriceBetween:
		if raw.Low == nil || raw.High == nil {
			return fmt.Errorf("between filter without both bounds")
		}
		parsed, err = NewBetweenFilter(*raw.Low, *raw.High)
	default:
		return fmt.Errorf("unknown price filter type %q", raw.Type)
	}
	if err != nil {
		return err
	}
	*f = *parsed
	return nil
}

func NewOverFilter(threshold float64) (*PriceFilter, error) {
	if threshold < 0 {
		return nil, fmt.Errorf("negative threshold %v", threshold)
	}
	return &PriceFilter{Type: PriceOver, Threshold: threshold}, nil
}

func NewUnderFilter(threshold float64) (*PriceFilter, error) {
	if threshold < 0 {
		return nil, fmt.Errorf("negative threshold %v", threshold)
	}
	return &PriceFilter{Type: PriceUnder, Threshold: threshold}, nil
}

func NewBetweenFilter(low, high float64) (*PriceFilter, error) {
	if low < 0 || high < 0 {
		return nil, fmt.Errorf("negative bound in [%v, %v]", low, high)
	}
	if low > high {
		return nil, fmt.Errorf("low bound %v above high bound %v", low, high)
	}
	return &PriceFilter{Type: PriceBetween, Low: low, High: high}, nil
}

// Matches applies the filter to a price: over and under are strict,
// between is inclusive on both ends.
func (f *PriceFilter) Matches(price float64) bool {
	if f == nil {
		return true
	}
	switch f.Type {
	case PriceOver:
		return price > f.Threshold
	case PriceUnder:
		return price < f.Threshold
	case PriceBetween:
		return price >= f.Low && price <= f.High
	}
	return true
}

// Phrase renders the filter for user-facing sentences, e.g. "under $200".
func (f *PriceFilter) Phrase() string {
	if f == nil {
		return ""
	}
	switch f.Type {
	case PriceOver:
		return "over " + formatDollars(f.Threshold)
	case PriceUnder:
		return "under " + formatDollars(f.Threshold)
	case PriceBetween:
		return "between " + formatDollars(f.Low) + " and " + formatDollars(f.High)
	}
	return ""
}

func formatDollars(v float64) string {
	if v == float64(int64(v)) {
		return fmt.Sprintf("$%d", int64(v))
	}
	return fmt.Sprintf("$%.2f", v)
}
