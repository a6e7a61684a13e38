package handlers

import (
	"log"
	"net/http"

	response "github.com/JOJOMDS11/jojovendas/internal/adapter/http/dto/response"
	"github.com/JOJOMDS11/jojovendas/internal/usecase"
	"github.com/JOJOMDS11/jojovendas/pkg"

	"github.com/gin-gonic/gin"
)

var errAdminUnauthorized = pkg.NewDomainErrorSimple("UNAUTHORIZED", "Não autorizado", http.StatusUnauthorized)

// AdminHandler serves the read-only reporting endpoints behind the shared
// admin secret.

type AdminHandler struct {
	usecase     usecase.IOrderUseCase
	adminSecret string
}

func NewAdminHandler(uc usecase.IOrderUseCase, adminSecret string) *AdminHandler {
	return &AdminHandler{usecase: uc, adminSecret: adminSecret}
}

// RequireAdmin guards the admin group with a static bearer secret. An empty
// configured secret rejects everything rather than opening the panel up.
func (h *AdminHandler) RequireAdmin(c *gin.Context) {
	auth := c.GetHeader("Authorization")
	if h.adminSecret == "" || auth != "Bearer "+h.adminSecret {
		log.Printf("[admin][handler] unauthorized path=%s", c.FullPath())
		c.AbortWithStatusJSON(errAdminUnauthorized.HTTPStatus, errAdminUnauthorized.ToHTTPError())
		return
	}
	c.Next()
}

// Stats returns sales aggregates and the most recent orders.
func (h *AdminHandler) Stats(c *gin.Context) {
	stats, recent, err := h.usecase.GetSalesStats(c.Request.Context())
	if err != nil {
		log.Printf("[admin][handler] stats failed err=%v", err)
		appErr := pkg.NewDomainError("INTERNAL_ERROR", "Erro interno", err, http.StatusInternalServerError)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromSalesStats(stats, recent))
}
