package routes

import (
	"context"

	"github.com/danielgtaylor/huma/v2"
	"go.uber.org/zap"

	appmiddleware "github.com/socialcontract/app/internal/middleware"
	"github.com/socialcontract/app/internal/respond"
)

// Register wires all API routes into the provided router.
func Register(api huma.API) {
	registerHealth(api)
}

// HealthData models the success payload for the health route.
type HealthData struct {
	Message string `json:"message" doc:"Health status message" example:"healthy"`
}

func registerHealth(api huma.API) {
	huma.Get(api, "/health", func(ctx context.Context, _ *struct{}) (*respond.Body[HealthData], error) {
		appmiddleware.LogInfo(ctx, "health check", zap.String("path", "/health"))
		out := respond.Success(ctx, HealthData{Message: "healthy"})
		return &out, nil
	})
}
