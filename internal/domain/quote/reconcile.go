package quote

import (
	"sort"
	"strings"

	"github.com/zarobax/ams-order-form/internal/domain/catalog"
)

// ViewRow is one rendered catalog row. Quoted marks items found in the
// customer's master quote; Price is the overlaid stored price, unset until
// ApplyStoredPrices runs (and possibly still unset after, when the stored
// line has no price recorded).
type ViewRow struct {
	Index       int          `json:"index"`
	Item        catalog.Item `json:"item"`
	DisplayName string       `json:"displayName"`
	Quoted      bool         `json:"quoted"`
	Price       Price        `json:"price"`
}

// OrderingView is the catalog ordered for a customer. Divider is the row
// index at which previously-quoted items end and the rest of the catalog
// begins, or -1 when no divider should be rendered (record absent, nothing
// quoted, or everything quoted).
type OrderingView struct {
	Rows    []ViewRow `json:"rows"`
	Divider int       `json:"divider"`
}

// BuildOrderingView sorts the catalog for display: items in the customer's
// master quote first, then by upper-cased code, then by lower-cased name.
// A nil record yields pure catalog order with nothing marked.
func BuildOrderingView(items []catalog.Item, rec *Record) OrderingView {
	indices := make([]int, len(items))
	for i := range items {
		indices[i] = i
	}

	inQuote := func(it catalog.Item) bool {
		if rec == nil || rec.Items == nil || it.Code == "" {
			return false
		}
		_, ok := rec.Items[it.Code]
		return ok
	}

	sort.SliceStable(indices, func(a, b int) bool {
		ia, ib := items[indices[a]], items[indices[b]]

		qa, qb := inQuote(ia), inQuote(ib)
		if qa != qb {
			return qa
		}

		codeA, codeB := strings.ToUpper(ia.Code), strings.ToUpper(ib.Code)
		if codeA != codeB {
			return codeA < codeB
		}

		return strings.ToLower(ia.Name) < strings.ToLower(ib.Name)
	})

	view := OrderingView{Rows: make([]ViewRow, 0, len(items)), Divider: -1}
	quoted := 0
	for _, i := range indices {
		it := items[i]
		q := inQuote(it)
		if q {
			quoted++
		}
		view.Rows = append(view.Rows, ViewRow{
			Index:       i,
			Item:        it,
			DisplayName: catalog.CleanName(it.Name, it.UOM),
			Quoted:      q,
		})
	}
	if quoted > 0 && quoted < len(view.Rows) {
		view.Divider = quoted
	}
	return view
}

// ApplyStoredPrices overlays the record's stored prices onto matching rows.
// Quantities are never touched. No-op when the record or its items are absent.
func ApplyStoredPrices(rec *Record, rows []ViewRow) {
	if rec == nil || rec.Items == nil {
		return
	}
	for i := range rows {
		code := rows[i].Item.Code
		if code == "" {
			continue
		}
		if line, ok := rec.Items[code]; ok {
			rows[i].Price = line.Price
		}
	}
}

// Filter narrows the view to rows whose name, code, or unit contains term,
// case-insensitively. An active term suppresses the divider; an empty term
// returns the view unchanged.
func (v OrderingView) Filter(term string) OrderingView {
	term = strings.ToLower(strings.TrimSpace(term))
	if term == "" {
		return v
	}
	out := OrderingView{Divider: -1}
	for _, row := range v.Rows {
		if strings.Contains(strings.ToLower(row.DisplayName), term) ||
			strings.Contains(strings.ToLower(row.Item.Code), term) ||
			strings.Contains(strings.ToLower(row.Item.UOM), term) {
			out.Rows = append(out.Rows, row)
		}
	}
	return out
}
