package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/agendabi/bi-scheduler/internal/httperr"
	"github.com/agendabi/bi-scheduler/internal/httpresp"
	"github.com/agendabi/bi-scheduler/internal/middleware"
	ucAppointment "github.com/agendabi/bi-scheduler/internal/usecase/appointment"
)

// ======================================================
// HANDLER
// ======================================================

type AppointmentHandler struct {
	checkAvailability *ucAppointment.CheckAvailability
	dayAvailability   *ucAppointment.DayAvailability
	createBooking     *ucAppointment.CreateBooking
	setStatus         *ucAppointment.SetStatus
	cancelBooking     *ucAppointment.CancelBooking
	purge             *ucAppointment.PurgeAppointment
	list              *ucAppointment.ListAppointments
}

func NewAppointmentHandler(
	checkAvailability *ucAppointment.CheckAvailability,
	dayAvailability *ucAppointment.DayAvailability,
	createBooking *ucAppointment.CreateBooking,
	setStatus *ucAppointment.SetStatus,
	cancelBooking *ucAppointment.CancelBooking,
	purge *ucAppointment.PurgeAppointment,
	list *ucAppointment.ListAppointments,
) *AppointmentHandler {
	return &AppointmentHandler{
		checkAvailability: checkAvailability,
		dayAvailability:   dayAvailability,
		createBooking:     createBooking,
		setStatus:         setStatus,
		cancelBooking:     cancelBooking,
		purge:             purge,
		list:              list,
	}
}

// ======================================================
// AVAILABILITY
// ======================================================

func (h *AppointmentHandler) Availability(c *gin.Context) {
	available, err := h.checkAvailability.Execute(
		c.Request.Context(),
		c.Query("posto"),
		c.Query("date"),
		c.Query("time"),
	)
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	c.JSON(200, gin.H{"available": available})
}

func (h *AppointmentHandler) DayAvailability(c *gin.Context) {
	slots, err := h.dayAvailability.Execute(
		c.Request.Context(),
		c.Query("posto"),
		c.Query("date"),
	)
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	c.JSON(200, gin.H{
		"posto_id": c.Query("posto"),
		"date":     c.Query("date"),
		"slots":    slots,
	})
}

// ======================================================
// CREATE (confirmação do wizard)
// ======================================================

type CreateAppointmentRequest struct {
	ServiceID       string `json:"service_id" binding:"required"`
	PostoID         string `json:"posto_id" binding:"required"`
	AppointmentDate string `json:"appointment_date" binding:"required"`
	AppointmentTime string `json:"appointment_time" binding:"required"`
	Notes           string `json:"notes"`
}

func (h *AppointmentHandler) Create(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(string)

	var req CreateAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	ap, err := h.createBooking.Execute(c.Request.Context(), ucAppointment.CreateBookingInput{
		UserID:    userID,
		ServiceID: req.ServiceID,
		PostoID:   req.PostoID,
		Date:      req.AppointmentDate,
		Time:      req.AppointmentTime,
		Notes:     req.Notes,
	})
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	c.JSON(201, ap)
}

// ======================================================
// LIST
// ======================================================

func (h *AppointmentHandler) List(c *gin.Context) {
	aps, err := h.list.Execute(c.Request.Context(), actorFrom(c))
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.List(c, aps)
}

// ListForPosto: visão diária dos funcionários de atendimento.
func (h *AppointmentHandler) ListForPosto(c *gin.Context) {
	aps, err := h.list.ExecuteForPosto(
		c.Request.Context(),
		c.Query("posto"),
		c.Query("date"),
	)
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.List(c, aps)
}

// ======================================================
// STATUS
// ======================================================

type SetStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

func (h *AppointmentHandler) SetStatus(c *gin.Context) {
	var req SetStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	ap, err := h.setStatus.Execute(
		c.Request.Context(),
		actorFrom(c),
		c.Param("id"),
		req.Status,
	)
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	c.JSON(200, ap)
}

func (h *AppointmentHandler) Cancel(c *gin.Context) {
	ap, err := h.cancelBooking.Execute(
		c.Request.Context(),
		actorFrom(c),
		c.Param("id"),
	)
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	c.JSON(200, ap)
}

// ======================================================
// PURGE (admin)
// ======================================================

func (h *AppointmentHandler) Purge(c *gin.Context) {
	if err := h.purge.Execute(
		c.Request.Context(),
		actorFrom(c),
		c.Param("id"),
	); err != nil {
		httperr.Respond(c, err)
		return
	}

	c.JSON(200, gin.H{"message": "Agendamento removido."})
}
