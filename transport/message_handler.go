package transport

import (
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"github.com/muhammadheryan/student-marketplace/constant"
	"github.com/muhammadheryan/student-marketplace/model"
	utilsContext "github.com/muhammadheryan/student-marketplace/utils/context"
	"github.com/muhammadheryan/student-marketplace/utils/errors"
)

// SendMessage handler
// @Summary Send message
// @Description Sends a message about a product. Repeating the same message returns the stored one with duplicate=true.
// @Tags Messages
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body model.SendMessageRequest true "Send Message Request"
// @Success 200 {object} model.SendMessageResponse
// @Failure 400 {object} Response
// @Failure 409 {object} Response
// @Router /messages [post]
func (s *RestHandler) SendMessage(w http.ResponseWriter, r *http.Request) {
	userID, ok := utilsContext.GetUserID(r.Context())
	if !ok {
		writeError(w, errors.SetCustomError(constant.ErrUnauthorize))
		return
	}

	var req model.SendMessageRequest
	if err := decodeAndValidate(r, &req); err != nil {
		writeError(w, err)
		return
	}

	res, err := s.MessageApp.SendMessage(r.Context(), userID, &req)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

// ContactSeller handler
// @Summary Contact seller
// @Description Opens a conversation with the owner of a listing. Content defaults to a standard greeting.
// @Tags Messages
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body model.ContactSellerRequest true "Contact Seller Request"
// @Success 200 {object} model.SendMessageResponse
// @Failure 400 {object} Response
// @Failure 404 {object} Response
// @Router /messages/contact-seller [post]
func (s *RestHandler) ContactSeller(w http.ResponseWriter, r *http.Request) {
	userID, ok := utilsContext.GetUserID(r.Context())
	if !ok {
		writeError(w, errors.SetCustomError(constant.ErrUnauthorize))
		return
	}

	var req model.ContactSellerRequest
	if err := decodeAndValidate(r, &req); err != nil {
		writeError(w, err)
		return
	}

	res, err := s.MessageApp.ContactSeller(r.Context(), userID, &req)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

// ListConversation handler
// @Summary List conversation
// @Description Messages between the caller and another user, oldest first
// @Tags Messages
// @Produce json
// @Security BearerAuth
// @Param with query int true "Other user ID"
// @Param product_id query int false "Restrict to one product"
// @Param limit query int false "Maximum messages" default(50)
// @Success 200 {array} model.MessageEntity
// @Failure 400 {object} Response
// @Router /messages [get]
func (s *RestHandler) ListConversation(w http.ResponseWriter, r *http.Request) {
	userID, ok := utilsContext.GetUserID(r.Context())
	if !ok {
		writeError(w, errors.SetCustomError(constant.ErrUnauthorize))
		return
	}

	q := r.URL.Query()
	otherID, err := strconv.ParseUint(q.Get("with"), 10, 64)
	if err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}
	productID, _ := strconv.ParseUint(q.Get("product_id"), 10, 64)
	limit, _ := strconv.Atoi(q.Get("limit"))

	res, err := s.MessageApp.ListConversation(r.Context(), &model.ConversationFilter{
		UserID:      userID,
		OtherUserID: otherID,
		ProductID:   productID,
		Limit:       limit,
	})
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

// MarkDelivered handler
// @Summary Mark message delivered
// @Description Internal endpoint for the delivery worker
// @Tags Internal
// @Produce json
// @Param id path int true "Message ID"
// @Success 200 {object} Response
// @Failure 404 {object} Response
// @Router /internal/v1/messages/{id}/delivered [post]
func (s *RestHandler) MarkDelivered(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseUint(mux.Vars(r)["id"], 10, 64)
	if err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	if err := s.MessageApp.MarkDelivered(r.Context(), id); err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, nil)
}
