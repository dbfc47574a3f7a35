package routers

import (
	"doctors-portal-service/internal/app/config"
	"doctors-portal-service/internal/app/delivery/http/controllers"
	"doctors-portal-service/internal/app/delivery/http/middlewares"

	"github.com/go-chi/chi/v5"
)

func attachUserRoutes(router chi.Router, internalConfig *config.InternalConfig, mw *middlewares.Middlewares, userController *controllers.UserController) {
	upsertLimiter := middlewares.NewRateLimiter(
		mw.Log,
		internalConfig.App.UserUpsertRatePerSecond,
		internalConfig.App.UserUpsertBurst,
		userUpsertBlockTime,
	)

	router.With(mw.Authenticate, mw.RequireAdmin).Get("/", userController.ListUsers)
	router.With(upsertLimiter.Limit).Put("/{email}", userController.UpsertUser)
	router.With(mw.Authenticate, mw.RequireAdmin).Put("/{email}/admin", userController.MakeAdmin)
	router.Get("/{email}/admin", userController.CheckAdmin)
}
