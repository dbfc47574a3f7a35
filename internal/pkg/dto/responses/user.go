package responses

import "doctors-portal-service/internal/app/models"

type UpsertUser struct {
	Result models.UserUpsertResult `json:"result"`
	Token  string                  `json:"token"`
}

type AdminStatus struct {
	Admin bool `json:"admin"`
}

type UpdateResult struct {
	MatchedCount  int64 `json:"matchedCount"`
	ModifiedCount int64 `json:"modifiedCount"`
}
