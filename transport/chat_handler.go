package transport

import (
	"net/http"

	"github.com/muhammadheryan/student-marketplace/model"
	utilsContext "github.com/muhammadheryan/student-marketplace/utils/context"
)

// Chat handler
// @Summary Chat with the shopping assistant
// @Description Answers shopping questions using only products found in the store. The content field carries the verified product block.
// @Tags Chat
// @Accept json
// @Produce json
// @Param request body model.ChatRequest true "Chat Request"
// @Success 200 {object} model.ChatResponse
// @Failure 400 {object} Response
// @Router /chat [post]
func (s *RestHandler) Chat(w http.ResponseWriter, r *http.Request) {
	var req model.ChatRequest
	if err := decodeAndValidate(r, &req); err != nil {
		writeError(w, err)
		return
	}
	// anonymous shoppers may chat too
	req.UserID, _ = utilsContext.GetUserID(r.Context())

	res, err := s.ChatApp.Reply(r.Context(), &req)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}
