package routers

import (
	"doctors-portal-service/internal/app/delivery/http/controllers"
	"doctors-portal-service/internal/app/delivery/http/middlewares"

	"github.com/go-chi/chi/v5"
)

func attachDoctorRoutes(router chi.Router, middlewares *middlewares.Middlewares, doctorController *controllers.DoctorController) {
	router.Use(middlewares.Authenticate, middlewares.RequireAdmin)

	router.Post("/", doctorController.CreateDoctor)
	router.Get("/", doctorController.ListDoctors)
	router.Delete("/{email}", doctorController.DeleteDoctor)
}
