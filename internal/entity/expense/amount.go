package expense

import (
	"bytes"
	"encoding/json"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
)

// Amount keeps the decimal text exactly as the API sent it ("10.00"), so
// that messages and the persisted snapshot show the same digits.
type Amount string

func (a Amount) String() string {
	return string(a)
}

func (a Amount) Decimal() (decimal.Decimal, error) {
	if a == "" {
		return decimal.Zero, nil
	}
	d, err := decimal.NewFromString(string(a))
	if err != nil {
		return decimal.Zero, errors.Wrapf(err, "amount %q", string(a))
	}
	return d, nil
}

func (a Amount) IsPositive() (bool, error) {
	d, err := a.Decimal()
	if err != nil {
		return false, err
	}
	return d.IsPositive(), nil
}

// UnmarshalJSON accepts "10.00", 10.00 and null.
func (a *Amount) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*a = ""
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*a = Amount(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return errors.Wrap(err, "amount is neither string nor number")
	}
	*a = Amount(n.String())
	return nil
}
