package model

type MatchType string

const (
	TermMatch MatchType = "term_match"
	WordMatch MatchType = "word_match"
	FullMatch MatchType = "full_match"
)

// DirectMatch records a product name term found in the query.
type DirectMatch struct {
	Term         string    `json:"term"`
	ProductID    uint64    `json:"productId"`
	MatchType    MatchType `json:"matchType"`
	IsExactMatch bool      `json:"isExactMatch"`
}

type MatchField string

const (
	FieldName        MatchField = "name"
	FieldDescription MatchField = "description"
	FieldCategory    MatchField = "category"
)

// TermConfidence is one cell of the search term x product matrix.
type TermConfidence struct {
	Term       string     `json:"term"`
	ProductID  uint64     `json:"productId"`
	Field      MatchField `json:"field"`
	Confidence int        `json:"confidence"`
}

type VerificationResult struct {
	SearchTerms    []string         `json:"searchTerms"`
	DirectMatches  []DirectMatch    `json:"directMatches"`
	Confidence     []TermConfidence `json:"confidence"`
	HasStrongMatch bool             `json:"hasStrongMatch"`
}

// SearchResponse is what the composer hands to the chat UI and the narrator.
type SearchResponse struct {
	ResponseText    string       `json:"responseText"`
	DisplayProducts []Product    `json:"displayProducts"`
	HasResults      bool         `json:"hasResults"`
	ExactMatchFound bool         `json:"exactMatchFound"`
	PriceFilter     *PriceFilter `json:"priceFilter"`
	Category        string       `json:"category,omitempty"`
}

type SearchRequest struct {
	Query string `json:"q" validate:"required,max=500"`
}
