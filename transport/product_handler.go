package transport

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gorilla/mux"
	"github.com/muhammadheryan/student-marketplace/constant"
	"github.com/muhammadheryan/student-marketplace/model"
	"github.com/muhammadheryan/student-marketplace/utils/errors"
	validatorx "github.com/muhammadheryan/student-marketplace/utils/validator"
)

// ListProducts handler
// @Summary List products
// @Description Approved listings open for sale, newest first
// @Tags Products
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param per_page query int false "Items per page" default(10)
// @Success 200 {object} model.ProductListResponse
// @Failure 500 {object} Response
// @Router /products [get]
func (s *RestHandler) ListProducts(w http.ResponseWriter, r *http.Request) {
	page, _ := strconv.Atoi(r.URL.Query().Get("page"))
	perPage, _ := strconv.Atoi(r.URL.Query().Get("per_page"))

	res, err := s.ProductApp.ListProducts(r.Context(), page, perPage)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

// GetProduct handler
// @Summary Get product
// @Tags Products
// @Produce json
// @Param id path int true "Product ID"
// @Success 200 {object} model.Product
// @Failure 404 {object} Response
// @Router /products/{id} [get]
func (s *RestHandler) GetProduct(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseUint(mux.Vars(r)["id"], 10, 64)
	if err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	res, err := s.ProductApp.GetProduct(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

// SearchProducts handler
// @Summary Search products
// @Description Free-text search with category words and price phrases such as "under $200"
// @Tags Products
// @Produce json
// @Param q query string true "Search query"
// @Success 200 {object} model.SearchResponse
// @Failure 400 {object} Response
// @Router /products/search [get]
func (s *RestHandler) SearchProducts(w http.ResponseWriter, r *http.Request) {
	req := model.SearchRequest{Query: strings.TrimSpace(r.URL.Query().Get("q"))}
	if err := validatorx.ValidateStruct(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	writeSuccess(w, s.SearchApp.Search(r.Context(), req.Query))
}
