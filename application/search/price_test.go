package search_test

import (
	"testing"

	"github.com/muhammadheryan/student-marketplace/application/search"
	"github.com/muhammadheryan/student-marketplace/model"
	"github.com/stretchr/testify/assert"
)

func TestExtractPriceFilter(t *testing.T) {
	tests := []struct {
		name  string
		query string
		want  *model.PriceFilter
	}{
		{
			name:  "under with dollar sign",
			query: "guitar under $200",
			want:  &model.PriceFilter{Type: model.PriceUnder, Threshold: 200},
		},
		{
			name:  "over without dollar sign",
			query: "laptops over 500",
			want:  &model.PriceFilter{Type: model.PriceOver, Threshold: 500},
		},
		{
			name:  "more than with thousands separator",
			query: "bikes more than $1,200",
			want:  &model.PriceFilter{Type: model.PriceOver, Threshold: 1200},
		},
		{
			name:  "less than with decimals",
			query: "textbooks less than 30.99",
			want:  &model.PriceFilter{Type: model.PriceUnder, Threshold: 30.99},
		},
		{
			name:  "below",
			query: "Chairs BELOW $40",
			want:  &model.PriceFilter{Type: model.PriceUnder, Threshold: 40},
		},
		{
			name:  "between with decimals",
			query: "desk between $50 and $150.50",
			want:  &model.PriceFilter{Type: model.PriceBetween, Low: 50, High: 150.5},
		},
		{
			name:  "from to",
			query: "phones from 20 to 40 dollars",
			want:  &model.PriceFilter{Type: model.PriceBetween, Low: 20, High: 40},
		},
		{
			name:  "between wins over under",
			query: "between 100 and 200 but under 150",
			want:  &model.PriceFilter{Type: model.PriceBetween, Low: 100, High: 200},
		},
		{
			name:  "over is tried before under",
			query: "above $10 but under $100",
			want:  &model.PriceFilter{Type: model.PriceOver, Threshold: 10},
		},
		{
			name:  "inverted range is not a filter",
			query: "between $100 and $50",
			want:  nil,
		},
		{
			name:  "no price",
			query: "cheap stuff",
			want:  nil,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, search.ExtractPriceFilter(tt.query))
		})
	}
}
