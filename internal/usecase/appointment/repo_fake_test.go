package appointment

import (
	"context"
	"sync"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/agendabi/bi-scheduler/internal/audit"
	domain "github.com/agendabi/bi-scheduler/internal/domain/appointment"
	"github.com/agendabi/bi-scheduler/internal/httperr"
	"github.com/agendabi/bi-scheduler/internal/models"
)

// fakeRepo implementa domain.Repository em memória. O CreateAppointment é
// atômico sob o mutex, como o repositório real é sob a transação + índice
// único.
type fakeRepo struct {
	mu sync.Mutex

	services     map[string]*models.Service
	postos       map[string]*models.Posto
	appointments map[string]*models.Appointment
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{
		services:     make(map[string]*models.Service),
		postos:       make(map[string]*models.Posto),
		appointments: make(map[string]*models.Appointment),
	}
}

func (r *fakeRepo) addService(id string) {
	r.services[id] = &models.Service{ID: id, Name: "Serviço " + id, Active: true}
}

func (r *fakeRepo) addPosto(id, status string) {
	r.postos[id] = &models.Posto{ID: id, Name: "Posto " + id, Status: status}
}

func (r *fakeRepo) GetService(ctx context.Context, id string) (*models.Service, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if svc, ok := r.services[id]; ok {
		out := *svc
		return &out, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeRepo) GetPosto(ctx context.Context, id string) (*models.Posto, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if posto, ok := r.postos[id]; ok {
		out := *posto
		return &out, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeRepo) SlotTaken(ctx context.Context, postoID, date, timeLabel string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.slotTakenLocked(postoID, date, timeLabel), nil
}

func (r *fakeRepo) slotTakenLocked(postoID, date, timeLabel string) bool {
	for _, ap := range r.appointments {
		if ap.PostoID == postoID &&
			ap.AppointmentDate == date &&
			ap.AppointmentTime == timeLabel &&
			ap.Status == string(domain.StatusScheduled) {
			return true
		}
	}
	return false
}

func (r *fakeRepo) CreateAppointment(ctx context.Context, ap *models.Appointment) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.slotTakenLocked(ap.PostoID, ap.AppointmentDate, ap.AppointmentTime) {
		return httperr.ErrBusiness("slot_taken")
	}

	stored := *ap
	r.appointments[ap.ID] = &stored
	return nil
}

func (r *fakeRepo) GetAppointmentByID(ctx context.Context, id string) (*models.Appointment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if ap, ok := r.appointments[id]; ok {
		out := *ap
		return &out, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeRepo) UpdateAppointment(ctx context.Context, ap *models.Appointment) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.appointments[ap.ID]; !ok {
		return gorm.ErrRecordNotFound
	}

	stored := *ap
	r.appointments[ap.ID] = &stored
	return nil
}

func (r *fakeRepo) DeleteAppointment(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.appointments, id)
	return nil
}

func (r *fakeRepo) ListAppointmentsForUser(ctx context.Context, userID string) ([]models.Appointment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var out []models.Appointment
	for _, ap := range r.appointments {
		if ap.UserID == userID {
			out = append(out, *ap)
		}
	}
	return out, nil
}

func (r *fakeRepo) ListAllAppointments(ctx context.Context) ([]models.Appointment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var out []models.Appointment
	for _, ap := range r.appointments {
		out = append(out, *ap)
	}
	return out, nil
}

func (r *fakeRepo) ListAppointmentsForPostoDate(ctx context.Context, postoID, date string) ([]models.Appointment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var out []models.Appointment
	for _, ap := range r.appointments {
		if ap.PostoID == postoID && ap.AppointmentDate == date {
			out = append(out, *ap)
		}
	}
	return out, nil
}

var _ domain.Repository = (*fakeRepo)(nil)

// --------------------------------------------------
// Helpers
// --------------------------------------------------

type noopAuditWriter struct{}

func (noopAuditWriter) Log(userID *string, action, entity string, entityID *string, metadata any) error {
	return nil
}

func newTestDispatcher() *audit.Dispatcher {
	return audit.NewDispatcher(noopAuditWriter{}, zap.NewNop())
}
