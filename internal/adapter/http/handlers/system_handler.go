package handlers

import (
	"net/http"
	"os"
	"time"

	response "github.com/JOJOMDS11/jojovendas/internal/adapter/http/dto/response"
	"github.com/JOJOMDS11/jojovendas/internal/domain/entities"

	"github.com/gin-gonic/gin"
)

const serviceName = "JojoVendas Purple Coins"
const serviceVersion = "1.0.0"

// SystemHandler serves the unauthenticated service endpoints: health probe
// and the static catalog listing.

type SystemHandler struct{}

func NewSystemHandler() *SystemHandler {
	return &SystemHandler{}
}

func (h *SystemHandler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, response.HealthResponse{
		Status:    "ok",
		Timestamp: time.Now().UTC(),
		Service:   serviceName,
	})
}

// SystemInfo lists the purchasable packages plus environment metadata.
func (h *SystemHandler) SystemInfo(c *gin.Context) {
	env := os.Getenv("APP_ENV")
	if env == "" {
		env = "development"
	}
	c.JSON(http.StatusOK, response.FromSystemInfo(env, serviceVersion, entities.AllPackages()))
}
