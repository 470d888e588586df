package reportapi_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/raysh454/reportview/internal/reportapi"
)

func TestParamsQuery(t *testing.T) {
	t.Parallel()
	name := "alice"
	var nilPtr *string

	q, err := reportapi.Params{
		"str":     "a b",
		"int":     42,
		"float":   1.5,
		"bool":    true,
		"nil":     nil,
		"nilptr":  nilPtr,
		"ptr":     &name,
		"ids":     []int{1, 2},
		"filters": map[string]any{"status": "open"},
		"since":   time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC),
	}.Query()
	require.NoError(t, err)

	assert.Equal(t, "a b", q.Get("str"))
	assert.Equal(t, "42", q.Get("int"))
	assert.Equal(t, "1.5", q.Get("float"))
	assert.Equal(t, "true", q.Get("bool"))
	assert.Equal(t, "alice", q.Get("ptr"))
	assert.Equal(t, []string{"1", "2"}, q["ids[]"])
	assert.Equal(t, `{"status":"open"}`, q.Get("filters"))
	assert.Equal(t, "2024-01-02T03:04:05Z", q.Get("since"))
	assert.NotContains(t, q, "nil")
	assert.NotContains(t, q, "nilptr")
	assert.NotContains(t, q, "ids")
}

func TestParamsQuery_Nil(t *testing.T) {
	t.Parallel()
	var p reportapi.Params
	q, err := p.Query()
	require.NoError(t, err)
	assert.Empty(t, q)
}

func TestParamsQuery_UnencodableValue(t *testing.T) {
	t.Parallel()
	_, err := reportapi.Params{"bad": map[string]any{"ch": make(chan int)}}.Query()
	assert.Error(t, err)
}
