package appointment

import (
	"context"

	"github.com/agendabi/bi-scheduler/internal/audit"
	domain "github.com/agendabi/bi-scheduler/internal/domain/appointment"
	"github.com/agendabi/bi-scheduler/internal/httperr"
	"github.com/agendabi/bi-scheduler/internal/models"
	"github.com/agendabi/bi-scheduler/internal/timezone"
)

type CancelBooking struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewCancelBooking(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *CancelBooking {
	return &CancelBooking{
		repo:  repo,
		audit: audit,
	}
}

// Execute é o cancelamento canônico: transição para CANCELLED, preservando
// o histórico. O registro não é removido (remoção é expurgo administrativo)
// e o slot volta a ficar livre, já que a ocupação só conta SCHEDULED.
func (uc *CancelBooking) Execute(
	ctx context.Context,
	actor domain.Actor,
	appointmentID string,
) (*models.Appointment, error) {

	ap, err := uc.repo.GetAppointmentByID(ctx, appointmentID)
	if err != nil {
		return nil, httperr.ErrBusiness("appointment_not_found")
	}

	if !actor.CanManage(ap) {
		return nil, httperr.ErrBusiness("forbidden")
	}

	if err := domain.Cancel(ap, timezone.Now()); err != nil {
		return nil, err
	}

	if err := uc.repo.UpdateAppointment(ctx, ap); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &actor.ID,
		Action:   "appointment_cancelled",
		Entity:   "appointment",
		EntityID: &ap.ID,
	})

	return ap, nil
}
