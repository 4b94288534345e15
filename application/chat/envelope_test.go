package chat_test

import (
	"strings"
	"testing"

	"github.com/muhammadheryan/student-marketplace/application/chat"
	"github.com/muhammadheryan/student-marketplace/constant"
	"github.com/muhammadheryan/student-marketplace/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVerificationCode(t *testing.T) {
	assert.Equal(t, "VP42", chat.VerificationCode(42))
}

func TestBuildVerifiedContent(t *testing.T) {
	products := []model.Product{
		{ID: 7, Name: "Acoustic Guitar", Price: 180, Category: "miscellaneous"},
	}

	content, err := chat.BuildVerifiedContent(products, "I found 1 product matching your search.")
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(content, chat.VerifiedProductsStart+"["))
	assert.Contains(t, content, `"_vcode":"VP7"`)
	assert.True(t, strings.HasSuffix(content, chat.VerifiedProductsEnd+"\n\nI found 1 product matching your search."))
}

func TestParseVerifiedContent(t *testing.T) {
	tests := []struct {
		name         string
		content      string
		wantIDs      []uint64
		wantText     string
		wantRejected int
		wantErr      bool
	}{
		{
			name:     "plain text without block",
			content:  "  Hi there!  ",
			wantIDs:  nil,
			wantText: "Hi there!",
		},
		{
			name: "valid codes are kept",
			content: chat.VerifiedProductsStart +
				`[{"productID":1,"name":"MacBook Pro","_vcode":"VP1"},{"productID":2,"name":"IKEA Desk","_vcode":"VP2"}]` +
				chat.VerifiedProductsEnd + "\n\nHere are 2 products.",
			wantIDs:  []uint64{1, 2},
			wantText: "Here are 2 products.",
		},
		{
			name: "wrong code is dropped",
			content: chat.VerifiedProductsStart +
				`[{"productID":1,"name":"MacBook Pro","_vcode":"VP9"},{"productID":2,"name":"IKEA Desk","_vcode":"VP2"}]` +
				chat.VerifiedProductsEnd,
			wantIDs:      []uint64{2},
			wantText:     "",
			wantRejected: 1,
		},
		{
			name: "missing code is dropped",
			content: chat.VerifiedProductsStart +
				`[{"productID":3,"name":"Invented Bike"}]` +
				chat.VerifiedProductsEnd + "\n\nA bike!",
			wantIDs:      []uint64{},
			wantText:     "A bike!",
			wantRejected: 1,
		},
		{
			name:    "unterminated block",
			content: chat.VerifiedProductsStart + `[{"productID":1}]`,
			wantErr: true,
		},
		{
			name:    "malformed json",
			content: chat.VerifiedProductsStart + `[{` + chat.VerifiedProductsEnd,
			wantErr: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := chat.ParseVerifiedContent(tt.content)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)

			var ids []uint64
			if got.Products != nil {
				ids = make([]uint64, 0, len(got.Products))
				for _, p := range got.Products {
					ids = append(ids, p.ID)
				}
			}
			assert.Equal(t, tt.wantIDs, ids)
			assert.Equal(t, tt.wantText, got.Text)
			assert.Equal(t, tt.wantRejected, got.Rejected)
		})
	}
}

func TestVerifiedContent_RoundTrip(t *testing.T) {
	products := []model.Product{
		{ID: 1, Name: "MacBook Pro", Description: "13-inch, 2020", Price: 900, Category: constant.CategoryElectronics},
		{ID: 2, Name: "IKEA Desk", Description: "White desk", Price: 45.5, Category: constant.CategoryFurniture},
	}

	content, err := chat.BuildVerifiedContent(products, "Here are 2 products.")
	require.NoError(t, err)

	got, err := chat.ParseVerifiedContent(content)
	require.NoError(t, err)

	assert.Equal(t, products, got.Products)
	assert.Equal(t, "Here are 2 products.", got.Text)
	assert.Zero(t, got.Rejected)
}
