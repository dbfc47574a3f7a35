package requests

import (
	"strings"

	"github.com/goccy/go-json"
)

// Keys the account owns outright; a body cannot set them through the profile.
var reservedUserKeys = map[string]bool{
	"_id":       true,
	"email":     true,
	"name":      true,
	"role":      true,
	"profile":   true,
	"createdAt": true,
	"updatedAt": true,
}

type UpsertUser struct {
	Email string `json:"-" validate:"required,email"`
	Name  string `json:"name" validate:"omitempty,max=120"`
	// Profile holds every other top level body field, stored as is.
	Profile map[string]interface{} `json:"-" validate:"max=32"`
}

func (u *UpsertUser) UnmarshalJSON(data []byte) error {
	var body map[string]interface{}
	err := json.Unmarshal(data, &body)
	if err != nil {
		return err
	}

	if name, ok := body["name"].(string); ok {
		u.Name = name
	}
	for key, value := range body {
		if reservedUserKeys[key] || key == "" || strings.HasPrefix(key, "$") || strings.Contains(key, ".") {
			continue
		}
		if u.Profile == nil {
			u.Profile = make(map[string]interface{})
		}
		u.Profile[key] = value
	}
	return nil
}
