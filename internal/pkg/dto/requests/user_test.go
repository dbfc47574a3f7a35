package requests

import (
	"testing"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUpsertUser_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name        string
		body        string
		wantName    string
		wantProfile map[string]interface{}
	}{
		{
			name:     "name only",
			body:     `{"name":"Ada"}`,
			wantName: "Ada",
		},
		{
			name:     "profile fields kept",
			body:     `{"name":"Ada","phone":"555-0100","age":36}`,
			wantName: "Ada",
			wantProfile: map[string]interface{}{
				"phone": "555-0100",
				"age":   float64(36),
			},
		},
		{
			name:        "owned and operator keys dropped",
			body:        `{"role":"admin","email":"b@x.com","_id":"x","$set":{"role":"admin"},"a.b":1,"city":"Dhaka"}`,
			wantProfile: map[string]interface{}{"city": "Dhaka"},
		},
		{
			name: "non string name ignored",
			body: `{"name":42}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			request := new(UpsertUser)

			err := json.Unmarshal([]byte(tt.body), request)

			require.NoError(t, err)
			assert.Equal(t, tt.wantName, request.Name)
			assert.Equal(t, tt.wantProfile, request.Profile)
			assert.Empty(t, request.Email, "email only ever comes from the path")
		})
	}
}

func TestUpsertUser_UnmarshalJSONRejectsNonObject(t *testing.T) {
	err := json.Unmarshal([]byte(`["a"]`), new(UpsertUser))

	assert.Error(t, err)
}
