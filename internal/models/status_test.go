package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNextStatuses(t *testing.T) {
	tests := []struct {
		status OrderStatus
		want   []OrderStatus
		final  bool
	}{
		{StatusPending, []OrderStatus{StatusProcessing}, false},
		{StatusProcessing, []OrderStatus{StatusCompleted, StatusCancelled}, false},
		{StatusCompleted, nil, true},
		{StatusCancelled, nil, true},
		{OrderStatus("shipped"), nil, false},
	}
	for _, tt := range tests {
		t.Run(string(tt.status), func(t *testing.T) {
			assert.Equal(t, tt.want, tt.status.NextStatuses())
			assert.Equal(t, tt.final, tt.status.IsFinal())
		})
	}
}

func TestViewOrders(t *testing.T) {
	views := ViewOrders([]Order{
		{ID: 1, Status: StatusPending},
		{ID: 2, Status: StatusCompleted},
	})
	require.Len(t, views, 2)
	assert.Equal(t, []OrderStatus{StatusProcessing}, views[0].Actions)
	assert.False(t, views[0].Final)
	assert.Empty(t, views[1].Actions)
	assert.True(t, views[1].Final)

	raw, err := json.Marshal(views[1])
	require.NoError(t, err)
	assert.Contains(t, string(raw), `"actions":[]`)
	assert.Contains(t, string(raw), `"id":2`)
	assert.Contains(t, string(raw), `"status":"completed"`)

	assert.NotNil(t, ViewOrders(nil))
}
