package search

import (
	"fmt"
	"strings"

	"github.com/muhammadheryan/student-marketplace/constant"
	"github.com/muhammadheryan/student-marketplace/model"
)

// DetermineSearchResponse turns search results into the template sentence
// and the products to display. It never invents products: an empty input
// always yields an explicit not-found message.
func DetermineSearchResponse(products []model.Product, query string, searchTerms, categoryTerms []string) model.SearchResponse {
	priceFilter := ExtractPriceFilter(query)
	category := mentionedCategory(query)

	if len(products) == 0 {
		return model.SearchResponse{
			ResponseText:    notFoundText(category, priceFilter),
			DisplayProducts: []model.Product{},
			HasResults:      false,
			PriceFilter:     priceFilter,
			Category:        displayName(category),
		}
	}

	q := strings.ToLower(strings.TrimSpace(query))
	terms := lowerAll(searchTerms)
	catTerms := lowerAll(append(append([]string{}, categoryTerms...), CategoryTerms(terms)...))
	if category == "" && len(catTerms) > 0 {
		category = constant.Category(catTerms[0])
	}

	matchTerms := append(append([]string{}, terms...), catTerms...)

	var exact, termMatches, categoryMatches []model.Product
	for _, p := range products {
		if isExactMatch(p, terms, q) {
			exact = append(exact, p)
		}
		if isTermMatch(p, terms) {
			termMatches = append(termMatches, p)
		}
		if isCategoryMatch(p, matchTerms) {
			categoryMatches = append(categoryMatches, p)
		}
	}

	display := dedupeProducts(exact, termMatches, categoryMatches)
	if len(display) == 0 {
		display = products
	}

	var text string
	suffix := priceSuffix(priceFilter)
	switch {
	case len(exact) > 0:
		text = fmt.Sprintf("I found exactly what you're looking for%s! Here %s %s.", suffix, verb(len(display)), countPhrase(len(display)))
	case len(termMatches) > 0:
		text = fmt.Sprintf("I found %s matching your search%s.", countPhrase(len(display)), suffix)
	case len(categoryMatches) > 0:
		text = fmt.Sprintf("Here %s %s in the %s category%s.", verb(len(display)), countPhrase(len(display)), displayName(category), suffix)
	default:
		text = fmt.Sprintf("I couldn't find an exact match%s, but here %s %s you might like.", suffix, verb(len(display)), countPhrase(len(display)))
	}

	return model.SearchResponse{
		ResponseText:    text,
		DisplayProducts: display,
		HasResults:      true,
		ExactMatchFound: len(exact) > 0,
		PriceFilter:     priceFilter,
		Category:        displayName(category),
	}
}

func isExactMatch(p model.Product, terms []string, q string) bool {
	name := strings.ToLower(strings.TrimSpace(p.Name))
	for _, t := range terms {
		if name == t {
			return true
		}
	}
	return nameInQuery(name, q)
}

func isTermMatch(p model.Product, terms []string) bool {
	name := strings.ToLower(p.Name)
	desc := strings.ToLower(p.Description)
	for _, t := range terms {
		if strings.Contains(name, t) || strings.Contains(desc, t) {
			return true
		}
	}
	return false
}

func isCategoryMatch(p model.Product, terms []string) bool {
	category := strings.ToLower(string(p.Category))
	for _, t := range terms {
		if category == t {
			return true
		}
		if t == "laptop" && isLaptopListing(p) {
			return true
		}
	}
	return false
}

// isLaptopListing covers laptops filed under electronics, since "laptop" is
// a product word rather than a category.
func isLaptopListing(p model.Product) bool {
	if p.Category != constant.CategoryElectronics {
		return false
	}
	name := strings.ToLower(p.Name)
	return strings.Contains(name, "laptop") || strings.Contains(name, "computer")
}

func dedupeProducts(groups ...[]model.Product) []model.Product {
	seen := make(map[uint64]struct{})
	out := make([]model.Product, 0)
	for _, g := range groups {
		for _, p := range g {
			if _, ok := seen[p.ID]; ok {
				continue
			}
			seen[p.ID] = struct{}{}
			out = append(out, p)
		}
	}
	return out
}

// mentionedCategory looks for one of the five category words in the query.
func mentionedCategory(query string) constant.Category {
	q := strings.ToLower(query)
	for _, c := range constant.Categories {
		if strings.Contains(q, string(c)) {
			return c
		}
	}
	return ""
}

func notFoundText(category constant.Category, f *model.PriceFilter) string {
	if category != "" {
		return fmt.Sprintf("I'm sorry, but we don't currently have any products in the %s category%s. Check back soon or try a different search.",
			displayName(category), priceSuffix(f))
	}
	return fmt.Sprintf("I'm sorry, I couldn't find any products matching your search%s. Try different keywords or browse all listings.", priceSuffix(f))
}

func priceSuffix(f *model.PriceFilter) string {
	if f == nil {
		return ""
	}
	return " priced " + f.Phrase()
}

func displayName(c constant.Category) string {
	if c == "" {
		return ""
	}
	s := string(c)
	return strings.ToUpper(s[:1]) + s[1:]
}

func countPhrase(n int) string {
	if n == 1 {
		return "1 product"
	}
	return fmt.Sprintf("%d products", n)
}

func verb(n int) string {
	if n == 1 {
		return "is"
	}
	return "are"
}

func lowerAll(in []string) []string {
	out := make([]string, 0, len(in))
	for _, s := range in {
		out = append(out, strings.ToLower(s))
	}
	return out
}
