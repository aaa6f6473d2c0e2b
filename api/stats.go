package api

import (
	"net/http"

	"github.com/Domenick1991/stadiumbooking/internal/service/catalog"
	"github.com/Domenick1991/stadiumbooking/internal/service/stats"
	"github.com/gin-gonic/gin"
)

// OwnerHandler serves the owner dashboard. Routes expect RequireRole to have
// put an owner principal on the context.
type OwnerHandler struct {
	catalog catalog.CatalogUseCase
	stats   stats.StatsUseCase
}

func NewOwnerHandler(catalog catalog.CatalogUseCase, stats stats.StatsUseCase) *OwnerHandler {
	return &OwnerHandler{catalog: catalog, stats: stats}
}

func (h *OwnerHandler) Register(router *gin.RouterGroup) {
	router.GET("/venues", h.venues)
	router.GET("/stats", h.ownerStats)
}

func (h *OwnerHandler) venues(c *gin.Context) {
	p, ok := principalFrom(c)
	if !ok {
		c.JSON(http.StatusForbidden, gin.H{"error": "sign in required"})
		return
	}
	venues, err := h.catalog.OwnerVenues(c.Request.Context(), p.ID)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, venues)
}

func (h *OwnerHandler) ownerStats(c *gin.Context) {
	p, ok := principalFrom(c)
	if !ok {
		c.JSON(http.StatusForbidden, gin.H{"error": "sign in required"})
		return
	}
	s, err := h.stats.OwnerStats(c.Request.Context(), p.ID)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, s)
}

type AdminHandler struct {
	stats stats.StatsUseCase
}

func NewAdminHandler(stats stats.StatsUseCase) *AdminHandler {
	return &AdminHandler{stats: stats}
}

func (h *AdminHandler) Register(router *gin.RouterGroup) {
	router.GET("/stats", h.adminStats)
}

func (h *AdminHandler) adminStats(c *gin.Context) {
	s, err := h.stats.AdminStats(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, s)
}
