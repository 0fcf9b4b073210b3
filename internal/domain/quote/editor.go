package quote

import (
	"strconv"
	"strings"

	"github.com/zarobax/ams-order-form/internal/domain/catalog"
)

// ValidationError is a user-correctable input problem. Its message is shown
// to the user verbatim and nothing is mutated when one is returned.
type ValidationError struct {
	msg string
}

func (e *ValidationError) Error() string { return e.msg }

// NewValidationError wraps a user-facing message.
func NewValidationError(msg string) error { return &ValidationError{msg: msg} }

// IsValidation reports whether err is a user-facing validation failure rather
// than an internal one.
func IsValidation(err error) bool {
	_, ok := err.(*ValidationError)
	return ok
}

var (
	ErrEnterCustomerName = NewValidationError("Please enter a customer name.")
	ErrEnterQuantity     = NewValidationError("Please enter a quantity for all selected items.")
	ErrEnterValidPrice   = NewValidationError("Please enter a valid price for all selected items.")
	ErrSelectItems       = NewValidationError("Please select at least one item and enter quantities.")
)

// BuildLine validates one selected catalog item and turns it into a storable
// line plus its order quantity. Quantity must be a positive integer; the
// price is optional but must parse as a non-negative number when present.
// The redundant unit suffix is stripped from the name before storing.
func BuildLine(item catalog.Item, rawQty, rawPrice string) (Line, int, error) {
	qty, err := strconv.Atoi(strings.TrimSpace(rawQty))
	if err != nil || qty <= 0 {
		return Line{}, 0, ErrEnterQuantity
	}

	var price Price
	if s := strings.TrimSpace(rawPrice); s != "" {
		v, err := strconv.ParseFloat(s, 64)
		if err != nil || v < 0 {
			return Line{}, 0, ErrEnterValidPrice
		}
		price = PriceOf(v)
	}

	return Line{
		Name:  catalog.CleanName(item.Name, item.UOM),
		UOM:   item.UOM,
		Code:  item.Code,
		Price: price,
	}, qty, nil
}

// BuildItems turns submitted order lines into a fresh master-quote item map.
// Lines without a code are skipped: they go on the order but are never stored.
func BuildItems(lines []Line) map[string]Line {
	items := make(map[string]Line, len(lines))
	for _, line := range lines {
		if line.Code == "" {
			continue
		}
		items[line.Code] = line
	}
	return items
}

// EditRow is one row of the master-quote edit grid. The edit surface carries
// no unit, so the prior record's UOM is preserved per code.
type EditRow struct {
	Name  string `json:"name"`
	Code  string `json:"code"`
	Price Price  `json:"price"`
}

// ApplyMasterEdit rebuilds a record's item map from explicitly curated rows.
// This is a full replace: rows removed by the user disappear from the stored
// quote. Rows with a blank code are dropped silently.
func ApplyMasterEdit(rec *Record, rows []EditRow) map[string]Line {
	items := make(map[string]Line, len(rows))
	for _, row := range rows {
		code := strings.TrimSpace(row.Code)
		if code == "" {
			continue
		}
		var uom string
		if rec != nil {
			if prev, ok := rec.Items[code]; ok {
				uom = prev.UOM
			}
		}
		items[code] = Line{
			Name:  strings.TrimSpace(row.Name),
			Code:  code,
			UOM:   uom,
			Price: row.Price,
		}
	}
	return items
}
