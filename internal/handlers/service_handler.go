package handlers

import (
	"encoding/json"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/agendabi/bi-scheduler/internal/cache"
	"github.com/agendabi/bi-scheduler/internal/httperr"
	"github.com/agendabi/bi-scheduler/internal/httpresp"
	"github.com/agendabi/bi-scheduler/internal/models"
)

const servicesCacheKey = "catalog:services"

const catalogCacheTTL = 5 * time.Minute

// ======================================================
// HANDLER
// ======================================================

type ServiceHandler struct {
	db    *gorm.DB
	cache cache.Cache
}

func NewServiceHandler(db *gorm.DB, cache cache.Cache) *ServiceHandler {
	return &ServiceHandler{db: db, cache: cache}
}

// ======================================================
// PUBLIC
// ======================================================

func (h *ServiceHandler) List(c *gin.Context) {
	ctx := c.Request.Context()

	if raw, hit, err := h.cache.Get(ctx, servicesCacheKey); err == nil && hit {
		var cached []models.Service
		if json.Unmarshal(raw, &cached) == nil {
			httpresp.List(c, cached)
			return
		}
	}

	var services []models.Service
	if err := h.db.
		Where("active = ?", true).
		Order("name ASC").
		Find(&services).Error; err != nil {
		httperr.Internal(c, "service_list_failed", "Erro ao listar serviços.")
		return
	}

	if raw, err := json.Marshal(services); err == nil {
		_ = h.cache.Set(ctx, servicesCacheKey, raw, catalogCacheTTL)
	}

	httpresp.List(c, services)
}

func (h *ServiceHandler) Get(c *gin.Context) {
	id := c.Param("id")

	var svc models.Service
	if err := h.db.Where("id = ?", id).First(&svc).Error; err != nil {
		httperr.NotFound(c, "service_not_found", "Serviço não encontrado.")
		return
	}

	httpresp.OK(c, svc)
}

// ======================================================
// ADMIN
// ======================================================

type ServiceRequest struct {
	Name         string   `json:"name" binding:"required"`
	Description  string   `json:"description"`
	Duration     string   `json:"duration"`
	Price        string   `json:"price"`
	Requirements []string `json:"requirements"`
	Category     string   `json:"category"`
	Active       *bool    `json:"active"`
}

func (h *ServiceHandler) Create(c *gin.Context) {
	var req ServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	svc := models.Service{
		ID:           uuid.NewString(),
		Name:         req.Name,
		Description:  req.Description,
		Duration:     req.Duration,
		Price:        req.Price,
		Requirements: req.Requirements,
		Category:     req.Category,
		Active:       true,
	}
	if req.Active != nil {
		svc.Active = *req.Active
	}

	if err := h.db.Create(&svc).Error; err != nil {
		httperr.Internal(c, "service_create_failed", "Erro ao criar serviço.")
		return
	}

	_ = h.cache.Delete(c.Request.Context(), servicesCacheKey)

	c.JSON(201, svc)
}

func (h *ServiceHandler) Update(c *gin.Context) {
	id := c.Param("id")

	var svc models.Service
	if err := h.db.Where("id = ?", id).First(&svc).Error; err != nil {
		httperr.NotFound(c, "service_not_found", "Serviço não encontrado.")
		return
	}

	var req ServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	svc.Name = req.Name
	svc.Description = req.Description
	svc.Duration = req.Duration
	svc.Price = req.Price
	svc.Requirements = req.Requirements
	svc.Category = req.Category
	if req.Active != nil {
		svc.Active = *req.Active
	}

	if err := h.db.Save(&svc).Error; err != nil {
		httperr.Internal(c, "service_update_failed", "Erro ao atualizar serviço.")
		return
	}

	_ = h.cache.Delete(c.Request.Context(), servicesCacheKey)

	httpresp.OK(c, svc)
}

func (h *ServiceHandler) Delete(c *gin.Context) {
	id := c.Param("id")

	if err := h.db.Delete(&models.Service{}, "id = ?", id).Error; err != nil {
		httperr.Internal(c, "service_delete_failed", "Erro ao remover serviço.")
		return
	}

	_ = h.cache.Delete(c.Request.Context(), servicesCacheKey)

	c.JSON(200, gin.H{"message": "Serviço removido."})
}
