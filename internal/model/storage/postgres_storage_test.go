package storage

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"max.ks1230/splitwise-slack/internal/entity/expense"
)

func Test_OnLoadQuery_ShouldSelectByKey(t *testing.T) {
	query, args, err := loadQuery("default").ToSql()

	require.NoError(t, err)
	assert.Equal(t, "SELECT snapshot FROM notifier_state WHERE state_key = $1", query)
	assert.Equal(t, []interface{}{"default"}, args)
}

func Test_OnSaveQuery_ShouldUpsertAsText(t *testing.T) {
	now := time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC)

	query, args, err := saveQuery("default", []byte(`{"expenses":[]}`), now).ToSql()

	require.NoError(t, err)
	assert.Equal(t, "INSERT INTO notifier_state (state_key,snapshot,updated_at) VALUES ($1,$2,$3) "+
		"ON CONFLICT(state_key) DO UPDATE SET snapshot = EXCLUDED.snapshot, updated_at = EXCLUDED.updated_at", query)
	assert.Equal(t, []interface{}{"default", `{"expenses":[]}`, now}, args)
}

func Test_OnSaveQueryOfFetchedList_ShouldCarryRawRecords(t *testing.T) {
	fetched := &expense.List{}
	require.NoError(t, json.Unmarshal([]byte(apiExpenses), fetched))

	raw, err := encodeSnapshot(fetched)
	require.NoError(t, err)
	_, args, err := saveQuery("default", raw, time.Now()).ToSql()

	require.NoError(t, err)
	require.Len(t, args, 3)
	assert.JSONEq(t, apiExpenses, args[1].(string))
}
