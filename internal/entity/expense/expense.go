package expense

import (
	"encoding/json"
	"strings"
	"time"

	"github.com/pkg/errors"
)

const PaymentMethod = "payment"

type User struct {
	ID        int64  `json:"id,omitempty"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
}

func (u User) FullName() string {
	return strings.TrimSpace(u.FirstName + " " + u.LastName)
}

type UserShare struct {
	User       User   `json:"user"`
	PaidShare  Amount `json:"paid_share"`
	OwedShare  Amount `json:"owed_share"`
	NetBalance Amount `json:"net_balance"`
}

type Expense struct {
	ID             int64       `json:"id"`
	GroupID        *int64      `json:"group_id"`
	CreatedAt      time.Time   `json:"created_at"`
	Date           string      `json:"date"`
	Cost           Amount      `json:"cost"`
	CurrencyCode   string      `json:"currency_code"`
	CreationMethod string      `json:"creation_method"`
	Details        *string     `json:"details"`
	DeletedAt      *string     `json:"deleted_at"`
	Description    string      `json:"description"`
	CreatedBy      *User       `json:"created_by"`
	Users          []UserShare `json:"users"`

	// raw is the record as the API sent it, written back unchanged
	raw json.RawMessage
}

type plainExpense Expense

func (e *Expense) UnmarshalJSON(data []byte) error {
	var p plainExpense
	if err := json.Unmarshal(data, &p); err != nil {
		return err
	}
	*e = Expense(p)
	e.raw = append(json.RawMessage(nil), data...)
	return nil
}

// MarshalJSON returns the decoded record untouched, including the fields
// this package does not model. Expenses built in code are encoded from
// their typed fields.
func (e Expense) MarshalJSON() ([]byte, error) {
	if len(e.raw) > 0 {
		return e.raw, nil
	}
	return json.Marshal(plainExpense(e))
}

func (e *Expense) Deleted() bool {
	return e.DeletedAt != nil && *e.DeletedAt != ""
}

func (e *Expense) IsPayment() bool {
	return e.CreationMethod == PaymentMethod
}

func (e *Expense) DetailsText() string {
	if e.Details == nil {
		return ""
	}
	return *e.Details
}

func (e *Expense) Creator() string {
	if e.CreatedBy == nil {
		return ""
	}
	return e.CreatedBy.FullName()
}

// Validate checks the fields the notifier relies on.
func (e *Expense) Validate() error {
	if e.ID == 0 {
		return errors.New("expense without id")
	}
	if e.Deleted() {
		// deleted expenses are only used for diffing
		return nil
	}
	if e.CreatedAt.IsZero() {
		return errors.Errorf("expense %d: missing created_at", e.ID)
	}
	if e.CurrencyCode == "" {
		return errors.Errorf("expense %d: missing currency_code", e.ID)
	}
	if _, err := e.Cost.Decimal(); err != nil {
		return errors.Errorf("expense %d: cost: %v", e.ID, err)
	}
	for i, share := range e.Users {
		for _, a := range []Amount{share.PaidShare, share.OwedShare, share.NetBalance} {
			if _, err := a.Decimal(); err != nil {
				return errors.Errorf("expense %d: share %d: %v", e.ID, i, err)
			}
		}
	}
	return nil
}
