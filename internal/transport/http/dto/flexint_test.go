package dto

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFlexInt_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    int64
		wantErr bool
	}{
		{name: "plain number", input: `7`, want: 7},
		{name: "numeric string", input: `"7"`, want: 7},
		{name: "padded numeric string", input: `" 42 "`, want: 42},
		{name: "negative", input: `-3`, want: -3},
		{name: "zero", input: `0`, want: 0},
		{name: "empty string reads zero", input: `""`, want: 0},
		{name: "null reads zero", input: `null`, want: 0},
		{name: "whole float", input: `7.0`, want: 7},
		{name: "fractional number rejected", input: `7.5`, wantErr: true},
		{name: "fractional string rejected", input: `"7.5"`, wantErr: true},
		{name: "word rejected", input: `"seven"`, wantErr: true},
		{name: "object rejected", input: `{}`, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var n FlexInt
			err := json.Unmarshal([]byte(tt.input), &n)

			if tt.wantErr {
				assert.Error(t, err)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, n.Int64())
		})
	}
}

func TestFlexInt_InRequestStruct(t *testing.T) {
	var req CreateTicketRequest
	body := `{"event_id":"7","username":"alice","email":"alice@example.com","quantity":2,"ticket_type":"VIP"}`

	require.NoError(t, json.Unmarshal([]byte(body), &req))
	assert.Equal(t, int64(7), req.EventID.Int64())
	assert.Equal(t, int64(2), req.Quantity.Int64())
}

func TestUpdateAlbumRequest_Fields(t *testing.T) {
	t.Run("only present fields are included", func(t *testing.T) {
		var req UpdateAlbumRequest
		require.NoError(t, json.Unmarshal([]byte(`{"image_url":"b.jpg"}`), &req))

		fields := req.Fields()
		assert.Equal(t, map[string]interface{}{"image_url": "b.jpg"}, fields)
	})

	t.Run("empty body yields no fields", func(t *testing.T) {
		var req UpdateAlbumRequest
		require.NoError(t, json.Unmarshal([]byte(`{}`), &req))

		assert.Empty(t, req.Fields())
	})
}
