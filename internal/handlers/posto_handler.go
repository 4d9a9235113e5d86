package handlers

import (
	"encoding/json"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/agendabi/bi-scheduler/internal/cache"
	"github.com/agendabi/bi-scheduler/internal/httperr"
	"github.com/agendabi/bi-scheduler/internal/httpresp"
	"github.com/agendabi/bi-scheduler/internal/models"
)

const postosCacheKey = "catalog:postos"

// ======================================================
// HANDLER
// ======================================================

type PostoHandler struct {
	db    *gorm.DB
	cache cache.Cache
}

func NewPostoHandler(db *gorm.DB, cache cache.Cache) *PostoHandler {
	return &PostoHandler{db: db, cache: cache}
}

// ======================================================
// PUBLIC
// ======================================================

// List devolve os postos ativos, com filtros opcionais de província, nível
// de disponibilidade e busca textual. Só o resultado sem filtros vai ao
// cache; filtros são variados demais para valer a pena.
func (h *PostoHandler) List(c *gin.Context) {
	ctx := c.Request.Context()

	province := c.Query("province")
	availability := c.Query("availability")
	search := strings.ToLower(strings.TrimSpace(c.Query("q")))

	unfiltered := province == "" && availability == "" && search == ""

	if unfiltered {
		if raw, hit, err := h.cache.Get(ctx, postosCacheKey); err == nil && hit {
			var cached []models.Posto
			if json.Unmarshal(raw, &cached) == nil {
				httpresp.List(c, cached)
				return
			}
		}
	}

	q := h.db.
		Where("status = ?", "ACTIVE").
		Order("name ASC")

	if province != "" {
		q = q.Where("province = ?", province)
	}
	if availability != "" {
		q = q.Where("availability = ?", availability)
	}
	if search != "" {
		like := "%" + search + "%"
		q = q.Where(
			"LOWER(name) LIKE ? OR LOWER(address) LIKE ? OR LOWER(municipality) LIKE ?",
			like, like, like,
		)
	}

	var postos []models.Posto
	if err := q.Find(&postos).Error; err != nil {
		httperr.Internal(c, "posto_list_failed", "Erro ao listar postos.")
		return
	}

	if unfiltered {
		if raw, err := json.Marshal(postos); err == nil {
			_ = h.cache.Set(ctx, postosCacheKey, raw, catalogCacheTTL)
		}
	}

	httpresp.List(c, postos)
}

func (h *PostoHandler) Get(c *gin.Context) {
	id := c.Param("id")

	var posto models.Posto
	if err := h.db.
		Preload("Services").
		Where("id = ?", id).
		First(&posto).Error; err != nil {
		httperr.NotFound(c, "posto_not_found", "Posto não encontrado.")
		return
	}

	httpresp.OK(c, posto)
}

// ======================================================
// ADMIN
// ======================================================

type PostoRequest struct {
	Name         string `json:"name" binding:"required"`
	Address      string `json:"address"`
	Municipality string `json:"municipality"`
	Province     string `json:"province"`
	Phone        string `json:"phone"`
	Hours        string `json:"hours"`
	Capacity     int    `json:"capacity"`
	Availability string `json:"availability"`
	Status       string `json:"status"`
}

func (h *PostoHandler) Create(c *gin.Context) {
	var req PostoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	posto := models.Posto{
		ID:           uuid.NewString(),
		Name:         req.Name,
		Address:      req.Address,
		Municipality: req.Municipality,
		Province:     req.Province,
		Phone:        req.Phone,
		Hours:        req.Hours,
		Capacity:     req.Capacity,
		Availability: req.Availability,
		Status:       req.Status,
	}
	if posto.Availability == "" {
		posto.Availability = "MEDIUM"
	}
	if posto.Status == "" {
		posto.Status = "ACTIVE"
	}

	if err := h.db.Create(&posto).Error; err != nil {
		httperr.Internal(c, "posto_create_failed", "Erro ao criar posto.")
		return
	}

	_ = h.cache.Delete(c.Request.Context(), postosCacheKey)

	c.JSON(201, posto)
}

func (h *PostoHandler) Update(c *gin.Context) {
	id := c.Param("id")

	var posto models.Posto
	if err := h.db.Where("id = ?", id).First(&posto).Error; err != nil {
		httperr.NotFound(c, "posto_not_found", "Posto não encontrado.")
		return
	}

	var req PostoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	posto.Name = req.Name
	posto.Address = req.Address
	posto.Municipality = req.Municipality
	posto.Province = req.Province
	posto.Phone = req.Phone
	posto.Hours = req.Hours
	posto.Capacity = req.Capacity
	if req.Availability != "" {
		posto.Availability = req.Availability
	}
	if req.Status != "" {
		posto.Status = req.Status
	}

	if err := h.db.Save(&posto).Error; err != nil {
		httperr.Internal(c, "posto_update_failed", "Erro ao atualizar posto.")
		return
	}

	_ = h.cache.Delete(c.Request.Context(), postosCacheKey)

	httpresp.OK(c, posto)
}

func (h *PostoHandler) Delete(c *gin.Context) {
	id := c.Param("id")

	if err := h.db.Delete(&models.Posto{}, "id = ?", id).Error; err != nil {
		httperr.Internal(c, "posto_delete_failed", "Erro ao remover posto.")
		return
	}

	_ = h.cache.Delete(c.Request.Context(), postosCacheKey)

	c.JSON(200, gin.H{"message": "Posto removido."})
}
