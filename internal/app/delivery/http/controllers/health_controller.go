package controllers

import (
	"doctors-portal-service/internal/pkg/constvars"
	"doctors-portal-service/internal/pkg/dto/responses"
	"doctors-portal-service/internal/pkg/utils"
	"net/http"
)

func Health(w http.ResponseWriter, r *http.Request) {
	utils.BuildJSONResponse(w, constvars.StatusOK, responses.Health{
		Status:  constvars.ResponseSuccess,
		Message: constvars.HealthMessage,
	})
}
