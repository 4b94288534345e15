package search

import (
	"sort"
	"strings"
	"unicode"

	"github.com/muhammadheryan/student-marketplace/model"
)

const (
	confidenceName        = 10
	confidenceDescription = 5
	confidenceCategory    = 3
)

const (
	scoreName        = 10
	scoreDescription = 5
	scoreCategory    = 8
	scoreExactName   = 20
)

// VerifySearchMatch cross-checks products against the query that found them.
// It has no side effects; the result decides whether ranking can be trusted
// and whether a caller may claim to have found exactly what was asked for.
func VerifySearchMatch(products []model.Product, query string) model.VerificationResult {
	q := strings.ToLower(strings.TrimSpace(query))
	terms := ExtractSearchTerms(query)

	result := model.VerificationResult{
		SearchTerms:   terms,
		DirectMatches: make([]model.DirectMatch, 0),
		Confidence:    make([]model.TermConfidence, 0),
	}

	for _, p := range products {
		result.DirectMatches = append(result.DirectMatches, directMatches(p, q)...)
		result.Confidence = append(result.Confidence, termConfidence(p, terms)...)
	}

	result.HasStrongMatch = hasStrongMatch(result.DirectMatches)
	return result
}

func directMatches(p model.Product, q string) []model.DirectMatch {
	var out []model.DirectMatch
	name := strings.ToLower(strings.TrimSpace(p.Name))

	if nameInQuery(name, q) {
		out = append(out, model.DirectMatch{
			Term:         name,
			ProductID:    p.ID,
			MatchType:    model.FullMatch,
			IsExactMatch: true,
		})
	}

	for _, word := range nameTerms(name) {
		matchType, term := matchNameTerm(word, q)
		if matchType == "" {
			continue
		}
		out = append(out, model.DirectMatch{Term: term, ProductID: p.ID, MatchType: matchType})
	}
	return out
}

// matchNameTerm prefers a word-boundary hit over a bare substring hit.
func matchNameTerm(word, q string) (model.MatchType, string) {
	var (
		matchType model.MatchType
		matched   string
	)
	for _, v := range termVariants(word) {
		if containsWord(q, v) {
			return model.WordMatch, v
		}
		if matchType == "" && strings.Contains(q, v) {
			matchType, matched = model.TermMatch, v
		}
	}
	return matchType, matched
}

// termConfidence scores each search term against the first field it appears
// in; a term never scores twice for the same product.
func termConfidence(p model.Product, terms []string) []model.TermConfidence {
	name := strings.ToLower(p.Name)
	desc := strings.ToLower(p.Description)
	category := strings.ToLower(string(p.Category))

	out := make([]model.TermConfidence, 0, len(terms))
	for _, t := range terms {
		var (
			field      model.MatchField
			confidence int
		)
		switch {
		case strings.Contains(name, t):
			field, confidence = model.FieldName, confidenceName
		case strings.Contains(desc, t):
			field, confidence = model.FieldDescription, confidenceDescription
		case strings.Contains(category, t):
			field, confidence = model.FieldCategory, confidenceCategory
		default:
			continue
		}
		out = append(out, model.TermConfidence{Term: t, ProductID: p.ID, Field: field, Confidence: confidence})
	}
	return out
}

func hasStrongMatch(matches []model.DirectMatch) bool {
	for _, m := range matches {
		if m.IsExactMatch || m.MatchType == model.FullMatch || m.MatchType == model.WordMatch {
			return true
		}
	}
	return false
}

func nameInQuery(name, q string) bool {
	return name != "" && strings.Contains(q, name)
}

// nameTerms splits a lowercased name into words longer than two characters.
func nameTerms(name string) []string {
	fields := strings.FieldsFunc(name, func(r rune) bool {
		return unicode.IsSpace(r) || r == ',' || r == '(' || r == ')' || r == '/'
	})
	out := make([]string, 0, len(fields))
	for _, f := range fields {
		f = strings.Trim(f, ".!?:;\"'")
		if len(f) > 2 {
			out = append(out, f)
		}
	}
	return out
}

// rankProducts orders products by relevance to terms, keeping the incoming
// order among equal scores.
func rankProducts(products []model.Product, terms []string, query string) []model.Product {
	q := strings.ToLower(strings.TrimSpace(query))
	scores := make(map[uint64]int, len(products))
	for _, p := range products {
		scores[p.ID] = scoreProduct(p, terms, q)
	}

	ranked := make([]model.Product, len(products))
	copy(ranked, products)
	sort.SliceStable(ranked, func(i, j int) bool {
		return scores[ranked[i].ID] > scores[ranked[j].ID]
	})
	return ranked
}

func scoreProduct(p model.Product, terms []string, q string) int {
	name := strings.ToLower(p.Name)
	desc := strings.ToLower(p.Description)
	category := strings.ToLower(string(p.Category))

	score := 0
	for _, t := range terms {
		if strings.Contains(name, t) {
			score += scoreName
		}
		if strings.Contains(desc, t) {
			score += scoreDescription
		}
		if category == t {
			score += scoreCategory
		}
	}
	if nameInQuery(strings.TrimSpace(name), q) {
		score += scoreExactName
	}
	return score
}
