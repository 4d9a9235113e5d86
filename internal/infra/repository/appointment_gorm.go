package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	domain "github.com/agendabi/bi-scheduler/internal/domain/appointment"
	"github.com/agendabi/bi-scheduler/internal/httperr"
	"github.com/agendabi/bi-scheduler/internal/models"
)

type AppointmentGormRepository struct {
	db *gorm.DB
}

func NewAppointmentGormRepository(db *gorm.DB) *AppointmentGormRepository {
	return &AppointmentGormRepository{db: db}
}

// --------------------------------------------------
// Catalog
// --------------------------------------------------

func (r *AppointmentGormRepository) GetService(
	ctx context.Context,
	id string,
) (*models.Service, error) {

	var svc models.Service
	if err := r.db.WithContext(ctx).
		Where("id = ?", id).
		First(&svc).Error; err != nil {
		return nil, err
	}
	return &svc, nil
}

func (r *AppointmentGormRepository) GetPosto(
	ctx context.Context,
	id string,
) (*models.Posto, error) {

	var posto models.Posto
	if err := r.db.WithContext(ctx).
		Where("id = ?", id).
		First(&posto).Error; err != nil {
		return nil, err
	}
	return &posto, nil
}

// --------------------------------------------------
// Slot occupancy
// --------------------------------------------------

func (r *AppointmentGormRepository) SlotTaken(
	ctx context.Context,
	postoID string,
	date string,
	timeLabel string,
) (bool, error) {

	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.Appointment{}).
		Where(
			"posto_id = ? AND appointment_date = ? AND appointment_time = ? AND status = ?",
			postoID, date, timeLabel, string(domain.StatusScheduled),
		).
		Count(&count).Error; err != nil {
		return false, err
	}

	return count > 0, nil
}

// --------------------------------------------------
// Appointment (create / conflict)
// --------------------------------------------------

// CreateAppointment revalida o slot e insere na mesma transação. O índice
// único parcial em (posto_id, appointment_date, appointment_time) para
// status SCHEDULED é o backstop: quem perder a corrida recebe slot_taken.
func (r *AppointmentGormRepository) CreateAppointment(
	ctx context.Context,
	ap *models.Appointment,
) error {

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {

		var count int64
		if err := tx.
			Model(&models.Appointment{}).
			Where(
				"posto_id = ? AND appointment_date = ? AND appointment_time = ? AND status = ?",
				ap.PostoID, ap.AppointmentDate, ap.AppointmentTime,
				string(domain.StatusScheduled),
			).
			Count(&count).Error; err != nil {
			return err
		}

		if count > 0 {
			return httperr.ErrBusiness("slot_taken")
		}

		return tx.Omit(clause.Associations).Create(ap).Error
	})

	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return httperr.ErrBusiness("slot_taken")
	}

	return err
}

// --------------------------------------------------
// Appointment (state change)
// --------------------------------------------------

func (r *AppointmentGormRepository) GetAppointmentByID(
	ctx context.Context,
	id string,
) (*models.Appointment, error) {

	var ap models.Appointment
	if err := r.db.WithContext(ctx).
		Preload("User").
		Preload("Service").
		Preload("Posto").
		Where("id = ?", id).
		First(&ap).Error; err != nil {
		return nil, err
	}

	return &ap, nil
}

func (r *AppointmentGormRepository) UpdateAppointment(
	ctx context.Context,
	ap *models.Appointment,
) error {
	return r.db.WithContext(ctx).
		Omit(clause.Associations).
		Save(ap).Error
}

func (r *AppointmentGormRepository) DeleteAppointment(
	ctx context.Context,
	id string,
) error {
	return r.db.WithContext(ctx).
		Delete(&models.Appointment{}, "id = ?", id).Error
}

// --------------------------------------------------
// Listing
// --------------------------------------------------

func (r *AppointmentGormRepository) ListAppointmentsForUser(
	ctx context.Context,
	userID string,
) ([]models.Appointment, error) {

	var aps []models.Appointment
	if err := r.db.WithContext(ctx).
		Preload("Service").
		Preload("Posto").
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&aps).Error; err != nil {
		return nil, err
	}

	return aps, nil
}

func (r *AppointmentGormRepository) ListAllAppointments(
	ctx context.Context,
) ([]models.Appointment, error) {

	var aps []models.Appointment
	if err := r.db.WithContext(ctx).
		Preload("User").
		Preload("Service").
		Preload("Posto").
		Order("created_at DESC").
		Find(&aps).Error; err != nil {
		return nil, err
	}

	return aps, nil
}

func (r *AppointmentGormRepository) ListAppointmentsForPostoDate(
	ctx context.Context,
	postoID string,
	date string,
) ([]models.Appointment, error) {

	var aps []models.Appointment
	if err := r.db.WithContext(ctx).
		Preload("User").
		Preload("Service").
		Where("posto_id = ? AND appointment_date = ?", postoID, date).
		Order("appointment_time ASC").
		Find(&aps).Error; err != nil {
		return nil, err
	}

	return aps, nil
}

// Compile-time check
var _ domain.Repository = (*AppointmentGormRepository)(nil)
