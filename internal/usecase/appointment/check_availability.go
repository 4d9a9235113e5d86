package appointment

import (
	"context"

	domain "github.com/agendabi/bi-scheduler/internal/domain/appointment"
)

type CheckAvailability struct {
	repo domain.Repository
}

func NewCheckAvailability(repo domain.Repository) *CheckAvailability {
	return &CheckAvailability{repo: repo}
}

// Execute decide se o slot (posto, data, hora) está livre: livre quando não
// existe agendamento SCHEDULED para a tupla. Agendamentos cancelados,
// concluídos ou com falta não ocupam o slot.
//
// Sem posto selecionado (etapas iniciais do wizard) a resposta é "livre" de
// propósito, para não travar o fluxo antes da escolha do posto.
func (uc *CheckAvailability) Execute(
	ctx context.Context,
	postoID string,
	date string,
	timeLabel string,
) (bool, error) {

	if postoID == "" {
		return true, nil
	}

	taken, err := uc.repo.SlotTaken(ctx, postoID, date, timeLabel)
	if err != nil {
		return false, err
	}

	return !taken, nil
}
