package appointment

import (
	"context"

	"github.com/agendabi/bi-scheduler/internal/models"
)

type Repository interface {
	// -------- Catalog --------
	GetService(
		ctx context.Context,
		id string,
	) (*models.Service, error)

	GetPosto(
		ctx context.Context,
		id string,
	) (*models.Posto, error)

	// -------- Slot occupancy --------
	SlotTaken(
		ctx context.Context,
		postoID string,
		date string,
		timeLabel string,
	) (bool, error)

	// -------- Appointment (create / conflict) --------
	// CreateAppointment é atômico: revalida o slot e insere na mesma
	// transação; devolve slot_taken se outro agendamento chegou antes.
	CreateAppointment(
		ctx context.Context,
		ap *models.Appointment,
	) error

	// -------- Appointment (state change) --------
	GetAppointmentByID(
		ctx context.Context,
		id string,
	) (*models.Appointment, error)

	UpdateAppointment(
		ctx context.Context,
		ap *models.Appointment,
	) error

	DeleteAppointment(
		ctx context.Context,
		id string,
	) error

	// -------- Listing --------
	ListAppointmentsForUser(
		ctx context.Context,
		userID string,
	) ([]models.Appointment, error)

	ListAllAppointments(
		ctx context.Context,
	) ([]models.Appointment, error)

	ListAppointmentsForPostoDate(
		ctx context.Context,
		postoID string,
		date string,
	) ([]models.Appointment, error)
}
