package storage

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"max.ks1230/splitwise-slack/internal/entity/expense"
	"max.ks1230/splitwise-slack/internal/model/customerr"
)

func snapshotOf(ids ...int64) *expense.Snapshot {
	s := &expense.Snapshot{Expenses: []expense.Expense{}}
	for _, id := range ids {
		s.Expenses = append(s.Expenses, expense.Expense{
			ID:           id,
			CreatedAt:    time.Date(2016, 2, 1, 10, 0, 0, 0, time.UTC),
			Cost:         "10.00",
			CurrencyCode: "USD",
		})
	}
	return s
}

func Test_OnMissingFile_ShouldReturnNoState(t *testing.T) {
	s := NewFileStorage(filepath.Join(t.TempDir(), "state.json"))

	snapshot, err := s.Load(context.Background())

	assert.NoError(t, err)
	assert.Nil(t, snapshot)
	assert.Empty(t, snapshot.IDs())
}

func Test_OnSaveThenLoad_ShouldKeepIDs(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "state.json")
	s := NewFileStorage(path)

	require.NoError(t, s.Save(context.Background(), snapshotOf(1, 2, 3)))
	snapshot, err := s.Load(context.Background())

	require.NoError(t, err)
	assert.Equal(t, map[int64]struct{}{1: {}, 2: {}, 3: {}}, snapshot.IDs())
	assert.Equal(t, expense.Amount("10.00"), snapshot.Expenses[0].Cost)

	leftovers, err := filepath.Glob(filepath.Join(filepath.Dir(path), "*.tmp"))
	require.NoError(t, err)
	assert.Empty(t, leftovers)
}

func Test_OnSave_ShouldOverwriteWholeFile(t *testing.T) {
	s := NewFileStorage(filepath.Join(t.TempDir(), "state.json"))

	require.NoError(t, s.Save(context.Background(), snapshotOf(1, 2, 3, 4, 5)))
	require.NoError(t, s.Save(context.Background(), snapshotOf(9)))
	snapshot, err := s.Load(context.Background())

	require.NoError(t, err)
	assert.Equal(t, map[int64]struct{}{9: {}}, snapshot.IDs())
}

func Test_OnCorruptedFile_ShouldReturnParseError(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{name: "truncated", content: `{"expenses":[{"id":1`},
		{name: "wrong shape", content: `[1,2,3]`},
		{name: "no expenses array", content: `{"groups":[]}`},
		{name: "zero id", content: `{"expenses":[{"id":0}]}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "state.json")
			require.NoError(t, os.WriteFile(path, []byte(tt.content), 0o644))

			_, err := NewFileStorage(path).Load(context.Background())

			var parseErr *customerr.ParseError
			require.True(t, errors.As(err, &parseErr), "got %v", err)
			assert.Equal(t, path, parseErr.Source)
		})
	}
}

func Test_OnLegacyStateFile_ShouldLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state.json")
	legacy := `{"expenses":[{"id":7,"cost":"3.5","deleted_at":"2016-01-01T00:00:00Z","users":[]},{"id":8,"cost":12}]}`
	require.NoError(t, os.WriteFile(path, []byte(legacy), 0o644))

	snapshot, err := NewFileStorage(path).Load(context.Background())

	require.NoError(t, err)
	assert.Equal(t, map[int64]struct{}{7: {}, 8: {}}, snapshot.IDs())
	assert.Equal(t, expense.Amount("12"), snapshot.Expenses[1].Cost)
}

func Test_OnUnwritableDir_ShouldFailSave(t *testing.T) {
	dir := t.TempDir()
	blocker := filepath.Join(dir, "file")
	require.NoError(t, os.WriteFile(blocker, nil, 0o644))

	err := NewFileStorage(filepath.Join(blocker, "state.json")).Save(context.Background(), snapshotOf(1))

	assert.Error(t, err)
}

const apiExpenses = `{"expenses":[{"id":5,"group_id":null,"category":{"id":18,"name":"General"},` +
	`"repayments":[{"from":2,"to":1,"amount":"5.0"}],"payment":false,"cost":"10.00","currency_code":"USD",` +
	`"created_at":"2016-02-01T10:00:00Z","deleted_at":null,` +
	`"users":[{"user_id":1,"user":{"id":1,"first_name":"Ann","last_name":"Lee","picture":{"medium":"a.png"}},` +
	`"paid_share":"10.00","owed_share":"5.00","net_balance":"5.00"}]}]}`

func Test_OnSaveFetchedList_ShouldKeepRecordsVerbatim(t *testing.T) {
	fetched := &expense.List{}
	require.NoError(t, json.Unmarshal([]byte(apiExpenses), fetched))
	path := filepath.Join(t.TempDir(), "state.json")

	require.NoError(t, NewFileStorage(path).Save(context.Background(), fetched))

	saved, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.JSONEq(t, apiExpenses, string(saved))

	var doc struct {
		Expenses []map[string]json.RawMessage `json:"expenses"`
	}
	require.NoError(t, json.Unmarshal(saved, &doc))
	require.Len(t, doc.Expenses, 1)
	assert.JSONEq(t, `{"id":18,"name":"General"}`, string(doc.Expenses[0]["category"]))
	assert.NotContains(t, doc.Expenses[0], "description")
	assert.NotContains(t, doc.Expenses[0], "details")
}
