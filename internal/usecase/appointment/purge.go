package appointment

import (
	"context"

	"github.com/agendabi/bi-scheduler/internal/audit"
	domain "github.com/agendabi/bi-scheduler/internal/domain/appointment"
	"github.com/agendabi/bi-scheduler/internal/httperr"
)

type PurgeAppointment struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewPurgeAppointment(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *PurgeAppointment {
	return &PurgeAppointment{
		repo:  repo,
		audit: audit,
	}
}

// Execute remove o registro em definitivo. Expurgo é exclusivo de
// administradores; cancelamento de cidadão é transição de status.
func (uc *PurgeAppointment) Execute(
	ctx context.Context,
	actor domain.Actor,
	appointmentID string,
) error {

	if !actor.IsAdmin() {
		return httperr.ErrBusiness("forbidden")
	}

	ap, err := uc.repo.GetAppointmentByID(ctx, appointmentID)
	if err != nil {
		return httperr.ErrBusiness("appointment_not_found")
	}

	if err := uc.repo.DeleteAppointment(ctx, ap.ID); err != nil {
		return err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &actor.ID,
		Action:   "appointment_purged",
		Entity:   "appointment",
		EntityID: &ap.ID,
	})

	return nil
}
