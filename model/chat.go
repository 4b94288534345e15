package model

type ChatRequest struct {
	Message string `json:"message" validate:"required,notblank,max=2000"`
	UserID  uint64 `json:"-"`
}

type ChatResponse struct {
	// Content carries the verified products block followed by the template sentence.
	Content        string       `json:"content"`
	Reply          string       `json:"reply"`
	Products       []Product    `json:"products"`
	HasResults     bool         `json:"has_results"`
	HasStrongMatch bool         `json:"has_strong_match"`
	PriceFilter    *PriceFilter `json:"price_filter,omitempty"`
	IsSearch       bool         `json:"is_search"`
}
