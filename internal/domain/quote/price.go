package quote

import (
	"bytes"
	"fmt"
	"strconv"
)

// Price is an optional non-negative amount. The persisted v1 schema encodes
// "no price recorded" as the empty string, distinct from zero, so the JSON
// round-trip has to keep that difference intact.
type Price struct {
	Set   bool
	Value float64
}

func PriceOf(v float64) Price { return Price{Set: true, Value: v} }

func (p Price) String() string {
	if !p.Set {
		return ""
	}
	return fmt.Sprintf("$%.2f", p.Value)
}

func (p Price) MarshalJSON() ([]byte, error) {
	if !p.Set {
		return []byte(`""`), nil
	}
	return []byte(strconv.FormatFloat(p.Value, 'f', -1, 64)), nil
}

func (p *Price) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte(`""`)) || bytes.Equal(data, []byte("null")) {
		*p = Price{}
		return nil
	}
	s := string(data)
	if len(s) >= 2 && s[0] == '"' && s[len(s)-1] == '"' {
		s = s[1 : len(s)-1]
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return fmt.Errorf("price: %q is not a number", string(data))
	}
	p.Set = true
	p.Value = v
	return nil
}
