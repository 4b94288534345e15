package transport_test

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/muhammadheryan/student-marketplace/constant"
	chatmocks "github.com/muhammadheryan/student-marketplace/mocks/application/chat"
	messagemocks "github.com/muhammadheryan/student-marketplace/mocks/application/message"
	productmocks "github.com/muhammadheryan/student-marketplace/mocks/application/product"
	searchmocks "github.com/muhammadheryan/student-marketplace/mocks/application/search"
	usermocks "github.com/muhammadheryan/student-marketplace/mocks/application/user"
	"github.com/muhammadheryan/student-marketplace/model"
	"github.com/muhammadheryan/student-marketplace/transport"
	cerr "github.com/muhammadheryan/student-marketplace/utils/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const internalKey = "worker-key"

type apps struct {
	user    *usermocks.UserApp
	product *productmocks.ProductApp
	search  *searchmocks.SearchApp
	chat    *chatmocks.ChatApp
	message *messagemocks.MessageApp
}

func newServer(t *testing.T) (apps, http.Handler) {
	a := apps{
		user:    usermocks.NewUserApp(t),
		product: productmocks.NewProductApp(t),
		search:  searchmocks.NewSearchApp(t),
		chat:    chatmocks.NewChatApp(t),
		message: messagemocks.NewMessageApp(t),
	}
	h := transport.NewTransport(internalKey, &transport.RestHandler{
		UserApp:    a.user,
		ProductApp: a.product,
		SearchApp:  a.search,
		ChatApp:    a.chat,
		MessageApp: a.message,
	})
	return a, h
}

func do(h http.Handler, method, target, body string, headers map[string]string) *httptest.ResponseRecorder {
	var r *http.Request
	if body == "" {
		r = httptest.NewRequest(method, target, nil)
	} else {
		r = httptest.NewRequest(method, target, strings.NewReader(body))
	}
	for k, v := range headers {
		r.Header.Set(k, v)
	}
	w := httptest.NewRecorder()
	h.ServeHTTP(w, r)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body
}

func TestSearchProducts(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		a, h := newServer(t)
		a.search.On("Search", mock.Anything, "guitar under $200").Return(&model.SearchResponse{
			ResponseText:    "I found 1 product matching your search priced under $200.",
			DisplayProducts: []model.Product{{ID: 7, Name: "Fender Stratocaster", Price: 180}},
			HasResults:      true,
		}).Once()

		w := do(h, http.MethodGet, "/products/search?q=guitar+under+%24200", "", nil)

		assert.Equal(t, http.StatusOK, w.Code)
		body := decode(t, w)
		assert.Equal(t, "0000", body["code"])
		data := body["data"].(map[string]interface{})
		assert.Equal(t, "I found 1 product matching your search priced under $200.", data["responseText"])
		assert.Len(t, data["displayProducts"], 1)
	})

	t.Run("missing query", func(t *testing.T) {
		_, h := newServer(t)

		w := do(h, http.MethodGet, "/products/search?q=", "", nil)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "0003", decode(t, w)["code"])
	})
}

func TestGetProduct_NotFound(t *testing.T) {
	a, h := newServer(t)
	a.product.On("GetProduct", mock.Anything, uint64(7)).Return(nil, cerr.SetCustomError(constant.ErrNotFound)).Once()

	w := do(h, http.MethodGet, "/products/7", "", nil)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "0002", decode(t, w)["code"])
}

func TestChat_OptionalAuth(t *testing.T) {
	tests := []struct {
		name       string
		headers    map[string]string
		mockCall   func(a apps)
		wantUserID uint64
	}{
		{
			name: "anonymous",
		},
		{
			name:    "valid token identifies the shopper",
			headers: map[string]string{"Authorization": "Bearer good"},
			mockCall: func(a apps) {
				a.user.On("ValidateToken", mock.Anything, "good").Return(uint64(12), nil).Once()
			},
			wantUserID: 12,
		},
		{
			name:    "expired token falls back to anonymous",
			headers: map[string]string{"Authorization": "Bearer stale"},
			mockCall: func(a apps) {
				a.user.On("ValidateToken", mock.Anything, "stale").Return(uint64(0), errors.New("expired")).Once()
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a, h := newServer(t)
			if tt.mockCall != nil {
				tt.mockCall(a)
			}
			a.chat.On("Reply", mock.Anything, &model.ChatRequest{Message: "show me electronics", UserID: tt.wantUserID}).
				Return(&model.ChatResponse{Reply: "Here is 1 product in the Electronics category.", IsSearch: true}, nil).
				Once()

			w := do(h, http.MethodPost, "/chat", `{"message":"show me electronics"}`, tt.headers)

			assert.Equal(t, http.StatusOK, w.Code)
		})
	}
}

func TestChat_BlankMessage(t *testing.T) {
	_, h := newServer(t)

	w := do(h, http.MethodPost, "/chat", `{"message":"   "}`, nil)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestContactSeller(t *testing.T) {
	t.Run("requires a token", func(t *testing.T) {
		_, h := newServer(t)

		w := do(h, http.MethodPost, "/messages/contact-seller", `{"product_id":3}`, nil)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Equal(t, "0004", decode(t, w)["code"])
	})

	t.Run("duplicate is reported", func(t *testing.T) {
		a, h := newServer(t)
		a.user.On("ValidateToken", mock.Anything, "good").Return(uint64(10), nil).Once()
		a.message.On("ContactSeller", mock.Anything, uint64(10), &model.ContactSellerRequest{ProductID: 3}).
			Return(&model.SendMessageResponse{Message: &model.MessageEntity{ID: 99}, Duplicate: true}, nil).
			Once()

		w := do(h, http.MethodPost, "/messages/contact-seller", `{"product_id":3}`, map[string]string{"Authorization": "Bearer good"})

		assert.Equal(t, http.StatusOK, w.Code)
		data := decode(t, w)["data"].(map[string]interface{})
		assert.Equal(t, true, data["duplicate"])
	})

	t.Run("in-flight duplicate conflicts", func(t *testing.T) {
		a, h := newServer(t)
		a.user.On("ValidateToken", mock.Anything, "good").Return(uint64(10), nil).Once()
		a.message.On("ContactSeller", mock.Anything, uint64(10), mock.Anything).
			Return(nil, cerr.SetCustomError(constant.ErrMessageInProgress)).
			Once()

		w := do(h, http.MethodPost, "/messages/contact-seller", `{"product_id":3}`, map[string]string{"Authorization": "Bearer good"})

		assert.Equal(t, http.StatusConflict, w.Code)
	})
}

func TestListConversation(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		a, h := newServer(t)
		a.user.On("ValidateToken", mock.Anything, "good").Return(uint64(10), nil).Once()
		a.message.On("ListConversation", mock.Anything, &model.ConversationFilter{UserID: 10, OtherUserID: 20, ProductID: 5}).
			Return([]model.MessageEntity{{ID: 1}}, nil).
			Once()

		w := do(h, http.MethodGet, "/messages?with=20&product_id=5", "", map[string]string{"Authorization": "Bearer good"})

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("bad other user", func(t *testing.T) {
		a, h := newServer(t)
		a.user.On("ValidateToken", mock.Anything, "good").Return(uint64(10), nil).Once()

		w := do(h, http.MethodGet, "/messages?with=abc", "", map[string]string{"Authorization": "Bearer good"})

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestMarkDelivered_InternalKey(t *testing.T) {
	t.Run("wrong key", func(t *testing.T) {
		_, h := newServer(t)

		w := do(h, http.MethodPost, "/internal/v1/messages/5/delivered", "", map[string]string{"Authorization": "Bearer nope"})

		assert.Equal(t, http.StatusForbidden, w.Code)
		assert.Equal(t, "0010", decode(t, w)["code"])
	})

	t.Run("worker key", func(t *testing.T) {
		a, h := newServer(t)
		a.message.On("MarkDelivered", mock.Anything, uint64(5)).Return(nil).Once()

		w := do(h, http.MethodPost, "/internal/v1/messages/5/delivered", "", map[string]string{"Authorization": "Bearer " + internalKey})

		assert.Equal(t, http.StatusOK, w.Code)
	})
}
