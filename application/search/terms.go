package search

import (
	"regexp"
	"sort"
	"strings"
	"sync"
)

type synonymMatcher struct {
	entry   lexiconEntry
	variant string
	re      *regexp.Regexp
}

var synonymMatchers = buildSynonymMatchers()

func buildSynonymMatchers() []synonymMatcher {
	matchers := make([]synonymMatcher, 0, len(lexicon)*8)
	for _, entry := range lexicon {
		seen := make(map[string]struct{})
		for _, syn := range entry.Synonyms {
			for _, v := range termVariants(syn) {
				if _, ok := seen[v]; ok {
					continue
				}
				seen[v] = struct{}{}
				matchers = append(matchers, synonymMatcher{
					entry:   entry,
					variant: v,
					re:      wordPattern(v),
				})
			}
		}
	}
	return matchers
}

// ExtractSearchTerms returns the canonical terms, their categories and the
// matching synonym variants found in query, sorted and without duplicates.
// An empty result means the query puts no term constraint on the search.
func ExtractSearchTerms(query string) []string {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return []string{}
	}

	set := make(map[string]struct{})
	for _, m := range synonymMatchers {
		if !m.re.MatchString(q) {
			continue
		}
		set[m.entry.Term] = struct{}{}
		set[string(m.entry.Category)] = struct{}{}
		set[m.variant] = struct{}{}
	}
	return sortedKeys(set)
}

// CategoryTerms keeps the entries of terms that name a category.
func CategoryTerms(terms []string) []string {
	out := make([]string, 0, len(terms))
	for _, t := range terms {
		if isCategory(t) {
			out = append(out, t)
		}
	}
	return out
}

func pluralize(word string) string {
	if !strings.HasSuffix(word, "s") && len(word) > 2 {
		return word + "s"
	}
	return word
}

func singularize(word string) string {
	if strings.HasSuffix(word, "s") && len(word) > 3 {
		return strings.TrimSuffix(word, "s")
	}
	return word
}

// termVariants returns word with its plural and singular forms.
func termVariants(word string) []string {
	word = strings.ToLower(word)
	out := []string{word}
	for _, v := range []string{pluralize(word), singularize(word)} {
		if v != word {
			out = append(out, v)
		}
	}
	return out
}

// expandTerms adds the singular and plural forms of every term.
func expandTerms(terms []string) []string {
	set := make(map[string]struct{}, len(terms)*2)
	for _, t := range terms {
		for _, v := range termVariants(t) {
			set[v] = struct{}{}
		}
	}
	return sortedKeys(set)
}

// wordPatterns caches compiled boundary patterns by lowercased word. The key
// space is the lexicon plus the words of listed product names.
var wordPatterns sync.Map

func wordPattern(word string) *regexp.Regexp {
	word = strings.ToLower(word)
	if re, ok := wordPatterns.Load(word); ok {
		return re.(*regexp.Regexp)
	}
	re, _ := wordPatterns.LoadOrStore(word, regexp.MustCompile(`\b`+regexp.QuoteMeta(word)+`\b`))
	return re.(*regexp.Regexp)
}

// containsWord reports whether word occurs in text on word boundaries.
func containsWord(text, word string) bool {
	if word == "" {
		return false
	}
	return wordPattern(word).MatchString(strings.ToLower(text))
}

func sortedKeys(set map[string]struct{}) []string {
	out := make([]string, 0, len(set))
	for k := range set {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}
