package validatorx

import (
	"errors"
	"testing"

	"github.com/muhammadheryan/student-marketplace/model"
	"github.com/stretchr/testify/assert"
)

func TestValidateStruct(t *testing.T) {
	tests := []struct {
		name    string
		input   interface{}
		wantErr bool
	}{
		{name: "chat message", input: &model.ChatRequest{Message: "show me electronics"}},
		{name: "blank chat message", input: &model.ChatRequest{Message: "   "}, wantErr: true},
		{name: "search query", input: &model.SearchRequest{Query: "guitar under $200"}},
		{name: "empty search query", input: &model.SearchRequest{}, wantErr: true},
		{name: "contact seller without text", input: &model.ContactSellerRequest{ProductID: 3}},
		{name: "contact seller without product", input: &model.ContactSellerRequest{}, wantErr: true},
		{name: "register with bad email", input: &model.RegisterRequest{Name: "Dana", Email: "dana", Password: "secret1"}, wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateStruct(tt.input)
			assert.Equal(t, tt.wantErr, err != nil)
		})
	}
}

func TestInvalidFields(t *testing.T) {
	err := ValidateStruct(&model.SendMessageRequest{ProductID: 3, Content: " "})

	assert.ElementsMatch(t, []string{"ReceiverID:required", "Content:notblank"}, InvalidFields(err))
	assert.Nil(t, InvalidFields(errors.New("boom")))
}
