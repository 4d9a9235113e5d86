package appointment

import (
	"context"

	"github.com/agendabi/bi-scheduler/internal/audit"
	domain "github.com/agendabi/bi-scheduler/internal/domain/appointment"
	"github.com/agendabi/bi-scheduler/internal/httperr"
	"github.com/agendabi/bi-scheduler/internal/models"
	"github.com/agendabi/bi-scheduler/internal/timezone"
)

type SetStatus struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewSetStatus(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *SetStatus {
	return &SetStatus{
		repo:  repo,
		audit: audit,
	}
}

// Execute aplica uma transição de status. Só o dono ou um administrador
// pode transicionar; SCHEDULED é o único estado não-terminal.
func (uc *SetStatus) Execute(
	ctx context.Context,
	actor domain.Actor,
	appointmentID string,
	newStatus string,
) (*models.Appointment, error) {

	next, err := domain.ParseStatus(newStatus)
	if err != nil {
		return nil, err
	}

	ap, err := uc.repo.GetAppointmentByID(ctx, appointmentID)
	if err != nil {
		return nil, httperr.ErrBusiness("appointment_not_found")
	}

	if !actor.CanManage(ap) {
		return nil, httperr.ErrBusiness("forbidden")
	}

	if err := domain.Transition(ap, next, timezone.Now()); err != nil {
		return nil, err
	}

	if err := uc.repo.UpdateAppointment(ctx, ap); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &actor.ID,
		Action:   "appointment_status_" + string(next),
		Entity:   "appointment",
		EntityID: &ap.ID,
	})

	return ap, nil
}
