package quote

import (
	"strings"
	"testing"

	"github.com/zarobax/ams-order-form/internal/domain/catalog"
)

func testCatalog() []catalog.Item {
	return []catalog.Item{
		{Name: "Widget (EA)", Code: "A", UOM: "EA"},
		{Name: "Gadget", Code: "B", UOM: "EA"},
		{Name: "Sprocket", Code: "c", UOM: "CS"},
		{Name: "Flange", Code: "D", UOM: "EA"},
	}
}

func codesOf(rows []ViewRow) []string {
	var codes []string
	for _, r := range rows {
		codes = append(codes, r.Item.Code)
	}
	return codes
}

func TestBuildOrderingViewQuotedFirst(t *testing.T) {
	rec := &Record{
		DisplayName: "Acme",
		Items: map[string]Line{
			"D": {Code: "D", Price: PriceOf(2)},
			"B": {Code: "B"},
		},
	}

	view := BuildOrderingView(testCatalog(), rec)

	got := strings.Join(codesOf(view.Rows), ",")
	if got != "B,D,A,c" {
		t.Fatalf("order = %s, want B,D,A,c", got)
	}

	// every quoted row strictly before every non-quoted row
	seenUnquoted := false
	for _, row := range view.Rows {
		if !row.Quoted {
			seenUnquoted = true
		} else if seenUnquoted {
			t.Fatal("quoted row after non-quoted row")
		}
	}

	if view.Divider != 2 {
		t.Errorf("divider = %d, want 2", view.Divider)
	}
}

func TestBuildOrderingViewCodeCaseFolded(t *testing.T) {
	items := []catalog.Item{
		{Name: "Beta", Code: "b2", UOM: "EA"},
		{Name: "Alpha", Code: "A1", UOM: "EA"},
	}
	view := BuildOrderingView(items, nil)
	got := strings.Join(codesOf(view.Rows), ",")
	if got != "A1,b2" {
		t.Errorf("order = %s, want A1,b2", got)
	}
}

func TestBuildOrderingViewNameTieBreak(t *testing.T) {
	items := []catalog.Item{
		{Name: "zeta", Code: "X", UOM: "EA"},
		{Name: "Alpha", Code: "X", UOM: "EA"},
	}
	view := BuildOrderingView(items, nil)
	if view.Rows[0].Item.Name != "Alpha" {
		t.Errorf("first row = %s, want Alpha", view.Rows[0].Item.Name)
	}
}

func TestDividerPlacement(t *testing.T) {
	cat := testCatalog()
	tests := []struct {
		name string
		rec  *Record
		want int
	}{
		{"absent record", nil, -1},
		{"no matching items", &Record{Items: map[string]Line{"Z": {Code: "Z"}}}, -1},
		{"some quoted", &Record{Items: map[string]Line{"A": {Code: "A"}}}, 1},
		{"all quoted", &Record{Items: map[string]Line{
			"A": {Code: "A"}, "B": {Code: "B"}, "c": {Code: "c"}, "D": {Code: "D"},
		}}, -1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			view := BuildOrderingView(cat, tt.rec)
			if view.Divider != tt.want {
				t.Errorf("divider = %d, want %d", view.Divider, tt.want)
			}
		})
	}
}

func TestDividerImmediatelyAfterLastQuoted(t *testing.T) {
	rec := &Record{Items: map[string]Line{"A": {Code: "A"}, "c": {Code: "c"}}}
	view := BuildOrderingView(testCatalog(), rec)
	if view.Divider < 0 {
		t.Fatal("expected a divider")
	}
	if !view.Rows[view.Divider-1].Quoted {
		t.Error("row before divider is not quoted")
	}
	if view.Rows[view.Divider].Quoted {
		t.Error("row at divider is quoted")
	}
}

func TestApplyStoredPrices(t *testing.T) {
	rec := &Record{Items: map[string]Line{
		"A": {Code: "A", Price: PriceOf(5)},
		"B": {Code: "B"}, // stored with no price
	}}
	view := BuildOrderingView(testCatalog(), rec)
	ApplyStoredPrices(rec, view.Rows)

	for _, row := range view.Rows {
		switch row.Item.Code {
		case "A":
			if !row.Price.Set || row.Price.Value != 5 {
				t.Errorf("A price = %+v, want 5", row.Price)
			}
		default:
			if row.Price.Set {
				t.Errorf("%s price = %+v, want unset", row.Item.Code, row.Price)
			}
		}
	}
}

func TestApplyStoredPricesAbsentRecord(t *testing.T) {
	view := BuildOrderingView(testCatalog(), nil)
	ApplyStoredPrices(nil, view.Rows) // must not panic
	for _, row := range view.Rows {
		if row.Price.Set {
			t.Errorf("%s price set with no record", row.Item.Code)
		}
	}
}

func TestSpecExampleWidgetGadget(t *testing.T) {
	items := []catalog.Item{
		{Code: "A", Name: "Widget (EA)", UOM: "EA"},
		{Code: "B", Name: "Gadget", UOM: "EA"},
	}
	rec := &Record{DisplayName: "Acme", Items: map[string]Line{"A": {Code: "A", Price: PriceOf(5)}}}

	view := BuildOrderingView(items, rec)
	if got := strings.Join(codesOf(view.Rows), ","); got != "A,B" {
		t.Fatalf("order = %s, want A,B", got)
	}
	if !view.Rows[0].Quoted || view.Rows[1].Quoted {
		t.Error("quoted marks wrong")
	}
	if view.Rows[0].DisplayName != "Widget" {
		t.Errorf("display name = %q, want Widget", view.Rows[0].DisplayName)
	}
	if view.Divider != 1 {
		t.Errorf("divider = %d, want 1", view.Divider)
	}
}

func TestFilter(t *testing.T) {
	rec := &Record{Items: map[string]Line{"A": {Code: "A"}}}
	view := BuildOrderingView(testCatalog(), rec)

	t.Run("empty term unchanged", func(t *testing.T) {
		got := view.Filter(" ")
		if len(got.Rows) != len(view.Rows) || got.Divider != view.Divider {
			t.Error("empty term changed the view")
		}
	})

	t.Run("matches name code uom", func(t *testing.T) {
		if got := view.Filter("widg"); len(got.Rows) != 1 || got.Rows[0].Item.Code != "A" {
			t.Errorf("name match: %v", codesOf(got.Rows))
		}
		if got := view.Filter("b"); len(got.Rows) != 1 || got.Rows[0].Item.Code != "B" {
			t.Errorf("code match: %v", codesOf(got.Rows))
		}
		if got := view.Filter("cs"); len(got.Rows) != 1 || got.Rows[0].Item.Code != "c" {
			t.Errorf("uom match: %v", codesOf(got.Rows))
		}
	})

	t.Run("active term suppresses divider", func(t *testing.T) {
		if got := view.Filter("a"); got.Divider != -1 {
			t.Errorf("divider = %d, want -1", got.Divider)
		}
	})
}
