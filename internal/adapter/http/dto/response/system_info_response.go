package response

import (
	"time"

	"github.com/JOJOMDS11/jojovendas/internal/domain/entities"
)

type SystemInfoBody struct {
	Environment string                 `json:"environment"`
	Version     string                 `json:"version"`
	Timestamp   time.Time              `json:"timestamp"`
	Packages    []entities.CoinPackage `json:"packages"`
}

// SystemInfoResponse exposes the static catalog and build environment.
type SystemInfoResponse struct {
	Success bool           `json:"success"`
	System  SystemInfoBody `json:"system"`
}

func FromSystemInfo(environment, version string, packages []entities.CoinPackage) SystemInfoResponse {
	return SystemInfoResponse{
		Success: true,
		System: SystemInfoBody{
			Environment: environment,
			Version:     version,
			Timestamp:   time.Now().UTC(),
			Packages:    packages,
		},
	}
}

// HealthResponse is the liveness probe body.
type HealthResponse struct {
	Status    string    `json:"status"`
	Timestamp time.Time `json:"timestamp"`
	Service   string    `json:"service"`
}
