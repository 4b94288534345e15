package product

import (
	"strings"

	"github.com/muhammadheryan/student-marketplace/constant"
	"github.com/muhammadheryan/student-marketplace/model"
)

var productColumns = []string{
	"productID", "name", "description", "price", "category", "condition", "status",
	"moderation_status", "is_deleted", "image", "userID", "is_bundle", "flag", "created_at", "modified_at",
}

// Optional listing text is nullable in the store; one NULL would fail the scan
// of the whole result set.
var nullableTextColumns = map[string]bool{
	"description": true,
	"condition":   true,
	"image":       true,
}

// dialect quotes identifiers for the active driver; the store uses
// camelCase columns and "condition" is reserved in MySQL.
type dialect struct {
	quote string
}

func dialectFor(driverName string) dialect {
	if driverName == "mysql" {
		return dialect{quote: "`"}
	}
	return dialect{quote: `"`}
}

func (d dialect) ident(name string) string {
	return d.quote + name + d.quote
}

func (d dialect) columns() string {
	quoted := make([]string, len(productColumns))
	for i, c := range productColumns {
		if nullableTextColumns[c] {
			quoted[i] = "COALESCE(" + d.ident(c) + ", '') AS " + d.ident(c)
			continue
		}
		quoted[i] = d.ident(c)
	}
	return strings.Join(quoted, ", ")
}

// selectBuilder assembles a products query with "?" placeholders; callers
// rebind for the driver.
type selectBuilder struct {
	d     dialect
	where []string
	args  []any
}

func newSelectBuilder(d dialect) *selectBuilder {
	return &selectBuilder{d: d}
}

func (b *selectBuilder) and(clause string, args ...any) {
	b.where = append(b.where, clause)
	b.args = append(b.args, args...)
}

// applyBaseFilters restricts to listings that may be shown to buyers.
func (b *selectBuilder) applyBaseFilters() {
	b.and(b.d.ident("is_deleted")+" = ?", false)
	b.and(b.d.ident("moderation_status")+" = ?", string(constant.ModerationApproved))

	placeholders := make([]string, len(constant.AvailableStatuses))
	args := make([]any, len(constant.AvailableStatuses))
	for i, s := range constant.AvailableStatuses {
		placeholders[i] = "?"
		args[i] = s
	}
	b.and(b.d.ident("status")+" IN ("+strings.Join(placeholders, ", ")+")", args...)
}

// applyContains adds one OR-group matching any term inside any of the columns.
func (b *selectBuilder) applyContains(columns []string, terms []string) {
	if len(terms) == 0 || len(columns) == 0 {
		return
	}
	var (
		ors  []string
		args []any
	)
	for _, t := range terms {
		pattern := "%" + escapeLike(strings.ToLower(t)) + "%"
		for _, c := range columns {
			ors = append(ors, "LOWER("+b.d.ident(c)+") LIKE ?")
			args = append(args, pattern)
		}
	}
	b.and("("+strings.Join(ors, " OR ")+")", args...)
}

// applyPriceFilter composes f onto the query: over and under are strict,
// between is inclusive on both bounds.
func (b *selectBuilder) applyPriceFilter(f *model.PriceFilter) {
	if f == nil {
		return
	}
	price := b.d.ident("price")
	switch f.Type {
	case model.PriceOver:
		b.and(price+" > ?", f.Threshold)
	case model.PriceUnder:
		b.and(price+" < ?", f.Threshold)
	case model.PriceBetween:
		b.and(price+" >= ? AND "+price+" <= ?", f.Low, f.High)
	}
}

func (b *selectBuilder) whereClause() string {
	if len(b.where) == 0 {
		return ""
	}
	return " WHERE " + strings.Join(b.where, " AND ")
}

func (b *selectBuilder) build(orderBy string, limit int) (string, []any) {
	q := "SELECT " + b.d.columns() + " FROM products" + b.whereClause()
	args := append([]any{}, b.args...)
	if orderBy != "" {
		q += " ORDER BY " + orderBy
	}
	if limit > 0 {
		q += " LIMIT ?"
		args = append(args, limit)
	}
	return q, args
}

func (b *selectBuilder) count() (string, []any) {
	return "SELECT COUNT(*) FROM products" + b.whereClause(), append([]any{}, b.args...)
}

func buildSearchQuery(d dialect, query *model.ProductQuery) (string, []any) {
	b := newSelectBuilder(d)
	b.applyBaseFilters()
	b.applyContains([]string{"name", "description"}, query.Terms)
	b.applyContains([]string{"category"}, query.CategoryTerms)
	if query.Category != "" {
		b.and(d.ident("category")+" = ?", string(query.Category))
	}
	b.applyPriceFilter(query.Price)

	orderBy := d.ident("productID") + " ASC"
	if query.OrderByRecent {
		orderBy = d.ident("created_at") + " DESC, " + d.ident("productID") + " DESC"
	}
	return b.build(orderBy, query.Limit)
}

func escapeLike(s string) string {
	r := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
	return r.Replace(s)
}
