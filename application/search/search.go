package search

import (
	"context"
	"regexp"
	"strings"

	"github.com/muhammadheryan/student-marketplace/constant"
	"github.com/muhammadheryan/student-marketplace/model"
	productRepo "github.com/muhammadheryan/student-marketplace/repository/product"
	"github.com/muhammadheryan/student-marketplace/utils/logger"
	"go.uber.org/zap"
)

type SearchApp interface {
	// SearchProducts runs the staged product lookup for a free-text query.
	// Store failures never surface: a failing stage counts as zero rows.
	SearchProducts(ctx context.Context, query string) []model.Product
	// Search runs SearchProducts and composes the user-facing response.
	Search(ctx context.Context, query string) *model.SearchResponse
}

type searchAppImpl struct {
	productRepo productRepo.ProductRepository
}

func NewSearchApp(productRepo productRepo.ProductRepository) SearchApp {
	return &searchAppImpl{productRepo: productRepo}
}

var showMePattern = regexp.MustCompile(`(?i)\bshow\s+me\s+([a-z]+)`)

func (s *searchAppImpl) SearchProducts(ctx context.Context, query string) []model.Product {
	terms := ExtractSearchTerms(query)
	priceFilter := ExtractPriceFilter(query)
	browse := isGenericBrowse(query, terms)
	strict, hasStrict := strictCategory(query)

	var products []model.Product
	if len(terms) > 0 {
		products = s.runStage(ctx, "direct", &model.ProductQuery{
			Terms: expandTerms(terms),
			Price: priceFilter,
			Limit: constant.DirectSearchLimit,
		})
		if len(products) == 0 {
			products = s.runStage(ctx, "category", &model.ProductQuery{
				CategoryTerms: terms,
				Price:         priceFilter,
				Limit:         constant.CategorySearchLimit,
			})
		}
	}

	if hasStrict {
		products = filterByCategory(products, strict)
	}

	if len(products) > 0 {
		if !browse && VerifySearchMatch(products, query).HasStrongMatch {
			products = rankProducts(products, terms, query)
		}
		return products
	}

	fallback := &model.ProductQuery{
		Price:         priceFilter,
		OrderByRecent: browse,
		Limit:         constant.FallbackSearchLimit,
	}
	if hasStrict {
		fallback.Category = strict
	}
	return s.runStage(ctx, "fallback", fallback)
}

func (s *searchAppImpl) Search(ctx context.Context, query string) *model.SearchResponse {
	products := s.SearchProducts(ctx, query)
	terms := ExtractSearchTerms(query)

	resp := DetermineSearchResponse(products, query, terms, CategoryTerms(terms))
	return &resp
}

func (s *searchAppImpl) runStage(ctx context.Context, stage string, q *model.ProductQuery) []model.Product {
	products, err := s.productRepo.Search(ctx, q)
	if err != nil {
		logger.Warn("[SearchProducts] error productRepo.Search", zap.String("stage", stage), zap.String("error", err.Error()))
		return nil
	}
	products = withinPrice(products, q.Price)
	logger.Debug("[SearchProducts] stage done", zap.String("stage", stage), zap.Int("rows", len(products)))
	return products
}

// withinPrice drops rows the store returned outside the price bounds, e.g.
// after decimal rounding in the driver.
func withinPrice(products []model.Product, f *model.PriceFilter) []model.Product {
	if f == nil {
		return products
	}
	out := make([]model.Product, 0, len(products))
	for _, p := range products {
		if f.Matches(p.Price) {
			out = append(out, p)
		}
	}
	return out
}

// isGenericBrowse reports whether the shopper is browsing rather than
// looking for something specific.
func isGenericBrowse(query string, terms []string) bool {
	q := strings.ToLower(query)
	return strings.Contains(q, "show me") || strings.Contains(q, "what do you have") || len(terms) == 0
}

// strictCategory resolves "show me <word>" to a category when the word names
// a whole category.
func strictCategory(query string) (constant.Category, bool) {
	m := showMePattern.FindStringSubmatch(query)
	if m == nil {
		return "", false
	}
	c, ok := strictCategoryWords[strings.ToLower(m[1])]
	return c, ok
}

func filterByCategory(products []model.Product, category constant.Category) []model.Product {
	out := make([]model.Product, 0, len(products))
	for _, p := range products {
		if p.Category == category {
			out = append(out, p)
		}
	}
	return out
}
