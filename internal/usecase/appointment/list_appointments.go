package appointment

import (
	"context"

	domain "github.com/agendabi/bi-scheduler/internal/domain/appointment"
	"github.com/agendabi/bi-scheduler/internal/httperr"
	"github.com/agendabi/bi-scheduler/internal/models"
)

type ListAppointments struct {
	repo domain.Repository
}

func NewListAppointments(repo domain.Repository) *ListAppointments {
	return &ListAppointments{repo: repo}
}

// Execute lista os agendamentos visíveis ao ator: administradores veem
// todos, cidadãos veem apenas os próprios.
func (uc *ListAppointments) Execute(
	ctx context.Context,
	actor domain.Actor,
) ([]models.Appointment, error) {

	if actor.IsAdmin() {
		return uc.repo.ListAllAppointments(ctx)
	}

	return uc.repo.ListAppointmentsForUser(ctx, actor.ID)
}

// ExecuteForPosto lista os agendamentos de um posto em uma data, para as
// telas de atendimento dos funcionários.
func (uc *ListAppointments) ExecuteForPosto(
	ctx context.Context,
	postoID string,
	date string,
) ([]models.Appointment, error) {

	if postoID == "" {
		return nil, httperr.ErrBusiness("missing_posto")
	}
	if date == "" {
		return nil, httperr.ErrBusiness("missing_date")
	}

	if _, err := domain.ParseDate(date); err != nil {
		return nil, err
	}

	return uc.repo.ListAppointmentsForPostoDate(ctx, postoID, date)
}
