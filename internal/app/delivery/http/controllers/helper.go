package controllers

import (
	"context"
	"doctors-portal-service/internal/app/config"
	"doctors-portal-service/internal/pkg/exceptions"
	"errors"
	"net/http"
	"time"
)

const defaultRequestTimeout = 10 * time.Second

func requestContext(r *http.Request, internalConfig *config.InternalConfig) (context.Context, context.CancelFunc) {
	timeout := defaultRequestTimeout
	if internalConfig != nil && internalConfig.App.RequestTimeoutInSeconds > 0 {
		timeout = time.Duration(internalConfig.App.RequestTimeoutInSeconds) * time.Second
	}
	return context.WithTimeout(r.Context(), timeout)
}

// mapUsecaseError turns an expired request context into a 504, everything else passes through.
func mapUsecaseError(err error) error {
	if errors.Is(err, context.DeadlineExceeded) {
		return exceptions.ErrServerDeadlineExceeded(err)
	}
	return err
}
