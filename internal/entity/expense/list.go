package expense

import "github.com/pkg/errors"

// List mirrors the get_expenses response body. The same shape is used for
// the persisted state snapshot.
type List struct {
	Expenses []Expense `json:"expenses"`
}

type Snapshot = List

func (l *List) Validate() error {
	if l.Expenses == nil {
		return errors.New("missing expenses array")
	}
	for i := range l.Expenses {
		if err := l.Expenses[i].Validate(); err != nil {
			return err
		}
	}
	return nil
}

// IDs returns the set of expense ids, used for diffing against the next fetch.
func (l *List) IDs() map[int64]struct{} {
	if l == nil {
		return map[int64]struct{}{}
	}
	ids := make(map[int64]struct{}, len(l.Expenses))
	for _, e := range l.Expenses {
		ids[e.ID] = struct{}{}
	}
	return ids
}

type Group struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

type GroupList struct {
	Groups []Group `json:"groups"`
}

func (l *GroupList) Validate() error {
	if l.Groups == nil {
		return errors.New("missing groups array")
	}
	return nil
}

func (l *GroupList) Names() map[int64]string {
	names := make(map[int64]string, len(l.Groups))
	for _, g := range l.Groups {
		names[g.ID] = g.Name
	}
	return names
}

// ValidateIDs is the looser check applied to a stored snapshot: only the
// ids are consumed, so only they have to be sound.
func (l *List) ValidateIDs() error {
	if l.Expenses == nil {
		return errors.New("missing expenses array")
	}
	for i, e := range l.Expenses {
		if e.ID == 0 {
			return errors.Errorf("expense at index %d has no id", i)
		}
	}
	return nil
}
