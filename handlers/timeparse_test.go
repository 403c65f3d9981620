package handlers_test

import (
	"encoding/json"
	"testing"
	"time"

	"sustainshare-api/handlers"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFlexibleTime(t *testing.T) {
	tests := []struct {
		in   string
		want time.Time
	}{
		{`"2024-05-01T17:30:00Z"`, time.Date(2024, 5, 1, 17, 30, 0, 0, time.UTC)},
		{`"2024-05-01T17:30:00"`, time.Date(2024, 5, 1, 17, 30, 0, 0, time.Local)},
		{`"2024-05-01T17:30"`, time.Date(2024, 5, 1, 17, 30, 0, 0, time.Local)},
		{`"2024-05-01"`, time.Date(2024, 5, 1, 0, 0, 0, 0, time.Local)},
		{`1714579200000`, time.UnixMilli(1714579200000)},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			var ft handlers.FlexibleTime
			require.NoError(t, json.Unmarshal([]byte(tt.in), &ft))
			assert.True(t, tt.want.Equal(ft.Time), "got %v", ft.Time)
			require.NotNil(t, ft.Ptr())
		})
	}

	var empty struct {
		At *handlers.FlexibleTime `json:"at"`
	}
	require.NoError(t, json.Unmarshal([]byte(`{"at":null}`), &empty))
	assert.Nil(t, empty.At.Ptr())

	var blank handlers.FlexibleTime
	require.NoError(t, json.Unmarshal([]byte(`""`), &blank))
	assert.Nil(t, blank.Ptr())

	var bad handlers.FlexibleTime
	assert.Error(t, json.Unmarshal([]byte(`"next tuesday"`), &bad))
	assert.Error(t, json.Unmarshal([]byte(`1.5e3`), &bad))
	assert.Error(t, json.Unmarshal([]byte(`true`), &bad))
}
