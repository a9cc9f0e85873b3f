package currency

import "github.com/pkg/errors"

// Currency is one entry of the get_currencies response.
type Currency struct {
	Code string `json:"currency_code"`
	Unit string `json:"unit"`
}

type List struct {
	Currencies []Currency `json:"currencies"`
}

// Table resolves display units by currency code.
type Table map[string]Currency

func (l *List) Table() Table {
	t := make(Table, len(l.Currencies))
	for _, c := range l.Currencies {
		t[c.Code] = c
	}
	return t
}

func (t Table) Unit(code string) (string, bool) {
	c, ok := t[code]
	if !ok {
		return "", false
	}
	return c.Unit, true
}

func (l *List) Validate() error {
	if l.Currencies == nil {
		return errors.New("missing currencies array")
	}
	for i, c := range l.Currencies {
		if c.Code == "" {
			return errors.Errorf("currency at index %d has no code", i)
		}
	}
	return nil
}
