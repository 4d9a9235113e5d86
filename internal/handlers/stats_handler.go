package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/agendabi/bi-scheduler/internal/httperr"
	"github.com/agendabi/bi-scheduler/internal/models"
)

// ======================================================
// HANDLER
// ======================================================

type StatsHandler struct {
	db *gorm.DB
}

func NewStatsHandler(db *gorm.DB) *StatsHandler {
	return &StatsHandler{db: db}
}

type countByKey struct {
	Key   string `json:"key"`
	Count int64  `json:"count"`
}

// Get monta o painel administrativo: totais, contagens agrupadas e os
// agendamentos mais recentes com paginação.
func (h *StatsHandler) Get(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	if page <= 0 {
		page = 1
	}

	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "5"))
	if limit <= 0 || limit > 50 {
		limit = 5
	}

	offset := (page - 1) * limit

	// --------------------------------------------------
	// Totais
	// --------------------------------------------------

	var totalUsers, totalAppointments, totalServices, totalPostos int64
	h.db.Model(&models.User{}).Count(&totalUsers)
	h.db.Model(&models.Appointment{}).Count(&totalAppointments)
	h.db.Model(&models.Service{}).Count(&totalServices)
	h.db.Model(&models.Posto{}).Count(&totalPostos)

	// --------------------------------------------------
	// Agrupamentos
	// --------------------------------------------------

	var appointmentStats []countByKey
	if err := h.db.Model(&models.Appointment{}).
		Select("status AS key, COUNT(*) AS count").
		Group("status").
		Scan(&appointmentStats).Error; err != nil {
		httperr.Internal(c, "stats_failed", "Erro ao calcular estatísticas.")
		return
	}

	var userStats []countByKey
	h.db.Model(&models.User{}).
		Select("role AS key, COUNT(*) AS count").
		Group("role").
		Scan(&userStats)

	var postoStats []countByKey
	h.db.Model(&models.Posto{}).
		Select("status AS key, COUNT(*) AS count").
		Group("status").
		Scan(&postoStats)

	// --------------------------------------------------
	// Recentes
	// --------------------------------------------------

	var recent []models.Appointment
	h.db.
		Preload("User").
		Preload("Service").
		Preload("Posto").
		Order("created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&recent)

	c.JSON(200, gin.H{
		"totals": gin.H{
			"users":        totalUsers,
			"appointments": totalAppointments,
			"services":     totalServices,
			"postos":       totalPostos,
		},
		"appointment_stats":   appointmentStats,
		"user_stats":          userStats,
		"posto_stats":         postoStats,
		"recent_appointments": recent,
		"pagination": gin.H{
			"page":  page,
			"limit": limit,
			"total": totalAppointments,
		},
	})
}
