// Package filter implements the client-side list filtering the pages
// apply over fetched collections: case-insensitive substring matching,
// plus the orders page's multi-field filter panel.
package filter

import (
	"sort"
	"strings"
	"time"

	"github.com/plusgraphics/backoffice/internal/models"
)

// matches reports whether any of the fields contains the needle,
// case-insensitively. An empty needle matches everything.
func matches(needle string, fields ...string) bool {
	if needle == "" {
		return true
	}
	needle = strings.ToLower(needle)
	for _, f := range fields {
		if strings.Contains(strings.ToLower(f), needle) {
			return true
		}
	}
	return false
}

// Products filters by name or description.
func Products(in []models.Product, q string) []models.Product {
	if q == "" {
		return in
	}
	out := make([]models.Product, 0, len(in))
	for _, p := range in {
		if matches(q, p.Name, p.Description) {
			out = append(out, p)
		}
	}
	return out
}

// Customers filters by name, email or phone.
func Customers(in []models.Customer, q string) []models.Customer {
	if q == "" {
		return in
	}
	out := make([]models.Customer, 0, len(in))
	for _, c := range in {
		if matches(q, c.Name, c.Email, c.Phone) {
			out = append(out, c)
		}
	}
	return out
}

// Sales filters by customer or product name.
func Sales(in []models.Sale, q string) []models.Sale {
	if q == "" {
		return in
	}
	out := make([]models.Sale, 0, len(in))
	for _, s := range in {
		if matches(q, s.CustomerName, s.ProductName) {
			out = append(out, s)
		}
	}
	return out
}

// Receivables filters by invoice code or customer name.
func Receivables(in []models.Receivable, q string) []models.Receivable {
	if q == "" {
		return in
	}
	out := make([]models.Receivable, 0, len(in))
	for _, r := range in {
		if matches(q, r.InvoiceCode, r.CustomerName) {
			out = append(out, r)
		}
	}
	return out
}

// Payables filters by invoice code or supplier.
func Payables(in []models.Payable, q string) []models.Payable {
	if q == "" {
		return in
	}
	out := make([]models.Payable, 0, len(in))
	for _, p := range in {
		if matches(q, p.InvoiceCode, p.Supplier) {
			out = append(out, p)
		}
	}
	return out
}

// OrderFilter is the orders page filter panel. Zero values mean
// "no constraint"; it is applied only when the form is submitted.
type OrderFilter struct {
	Client   string // substring on customer name
	Status   string // exact match
	Type     string // any item of this product type
	Assignee string // exact match
	Item     string // substring on any item name
	DateFrom string // inclusive, YYYY-MM-DD
	DateTo   string // inclusive, YYYY-MM-DD
}

// Empty reports whether the filter constrains nothing.
func (f OrderFilter) Empty() bool {
	return f == OrderFilter{}
}

// Match applies every set field; all must hold.
func (f OrderFilter) Match(o models.Order) bool {
	if !matches(f.Client, o.CustomerName) {
		return false
	}
	if f.Status != "" && o.Status != f.Status {
		return false
	}
	if f.Assignee != "" && o.Assignee != f.Assignee {
		return false
	}
	if f.Item != "" {
		found := false
		for _, it := range o.Items {
			if matches(f.Item, it.Name) {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	if f.Type != "" {
		found := false
		for _, it := range o.Items {
			if it.Type == f.Type {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	if f.DateFrom != "" || f.DateTo != "" {
		d, ok := parseDate(o.Date)
		if !ok {
			return false
		}
		if from, ok := parseDate(f.DateFrom); f.DateFrom != "" && (!ok || d.Before(from)) {
			return false
		}
		if to, ok := parseDate(f.DateTo); f.DateTo != "" && (!ok || d.After(to)) {
			return false
		}
	}
	return true
}

// Orders applies the multi-field filter.
func Orders(in []models.Order, f OrderFilter) []models.Order {
	if f.Empty() {
		return in
	}
	out := make([]models.Order, 0, len(in))
	for _, o := range in {
		if f.Match(o) {
			out = append(out, o)
		}
	}
	return out
}

// The backend writes dates either as a plain day or with a time suffix.
func parseDate(s string) (time.Time, bool) {
	for _, layout := range []string{"2006-01-02", "2006-01-02 15:04:05"} {
		if t, err := time.Parse(layout, s); err == nil {
			return t.Truncate(24 * time.Hour), true
		}
	}
	return time.Time{}, false
}

// UniqueClients collects distinct non-empty customer names for the
// filter selects, sorted for stable rendering.
func UniqueClients(in []models.Order) []string {
	return unique(in, func(o models.Order) []string { return []string{o.CustomerName} })
}

// UniqueStatuses collects distinct order statuses.
func UniqueStatuses(in []models.Order) []string {
	return unique(in, func(o models.Order) []string { return []string{o.Status} })
}

// UniqueAssignees collects distinct non-empty assignees.
func UniqueAssignees(in []models.Order) []string {
	return unique(in, func(o models.Order) []string { return []string{o.Assignee} })
}

// UniqueItems collects distinct item names across all orders.
func UniqueItems(in []models.Order) []string {
	return unique(in, func(o models.Order) []string {
		names := make([]string, 0, len(o.Items))
		for _, it := range o.Items {
			names = append(names, it.Name)
		}
		return names
	})
}

func unique(in []models.Order, get func(models.Order) []string) []string {
	seen := map[string]bool{}
	for _, o := range in {
		for _, v := range get(o) {
			if v != "" {
				seen[v] = true
			}
		}
	}
	out := make([]string, 0, len(seen))
	for v := range seen {
		out = append(out, v)
	}
	sort.Strings(out)
	return out
}
