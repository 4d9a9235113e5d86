package appointment

import (
	"context"

	domain "github.com/agendabi/bi-scheduler/internal/domain/appointment"
	"github.com/agendabi/bi-scheduler/internal/httperr"
)

type DayAvailability struct {
	repo  domain.Repository
	slots domain.SlotConfig
}

func NewDayAvailability(
	repo domain.Repository,
	slots domain.SlotConfig,
) *DayAvailability {
	return &DayAvailability{
		repo:  repo,
		slots: slots,
	}
}

// Execute devolve cada horário do dia com sua disponibilidade no posto,
// para a etapa data/hora do wizard. A marcação é consultiva: a confirmação
// sempre revalida no servidor.
func (uc *DayAvailability) Execute(
	ctx context.Context,
	postoID string,
	date string,
) ([]domain.SlotStatus, error) {

	if postoID == "" {
		return nil, httperr.ErrBusiness("missing_posto")
	}

	if _, err := domain.ParseDate(date); err != nil {
		return nil, err
	}

	scheduled, err := uc.repo.ListAppointmentsForPostoDate(ctx, postoID, date)
	if err != nil {
		return nil, err
	}

	taken := make(map[string]bool, len(scheduled))
	for _, ap := range scheduled {
		if ap.Status == string(domain.StatusScheduled) {
			taken[ap.AppointmentTime] = true
		}
	}

	labels := uc.slots.Slots()
	out := make([]domain.SlotStatus, 0, len(labels))
	for _, label := range labels {
		out = append(out, domain.SlotStatus{
			Time:      label,
			Available: !taken[label],
		})
	}

	return out, nil
}
