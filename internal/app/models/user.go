package models

import "doctors-portal-service/internal/pkg/constvars"

type User struct {
	ID    string `json:"_id,omitempty" bson:"_id,omitempty"`
	Email string `json:"email" bson:"email"`
	Name  string `json:"name,omitempty" bson:"name,omitempty"`
	Role  string `json:"role,omitempty" bson:"role,omitempty"`
	// Profile is opaque to access control and merged key by key on upsert.
	Profile   map[string]interface{} `json:"profile,omitempty" bson:"profile,omitempty"`
	TimeModel `bson:",inline"`
}

// IsAdmin reports whether the account holds the admin role. An absent role means patient.
func (u *User) IsAdmin() bool {
	return u != nil && u.Role == constvars.RoleAdmin
}

// UserUpsertResult mirrors the counters MongoDB returns for an update with upsert.
type UserUpsertResult struct {
	MatchedCount  int64  `json:"matchedCount"`
	ModifiedCount int64  `json:"modifiedCount"`
	UpsertedCount int64  `json:"upsertedCount"`
	UpsertedID    string `json:"upsertedId,omitempty"`
}
