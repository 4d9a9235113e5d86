package appointment

import (
	"context"

	"github.com/google/uuid"

	"github.com/agendabi/bi-scheduler/internal/audit"
	domain "github.com/agendabi/bi-scheduler/internal/domain/appointment"
	"github.com/agendabi/bi-scheduler/internal/httperr"
	"github.com/agendabi/bi-scheduler/internal/models"
	"github.com/agendabi/bi-scheduler/internal/timezone"
)

// ======================================================
// INPUT
// ======================================================

type CreateBookingInput struct {
	UserID string

	ServiceID string
	PostoID   string

	Date  string
	Time  string
	Notes string
}

// ======================================================
// USE CASE
// ======================================================

type CreateBooking struct {
	repo  domain.Repository
	slots domain.SlotConfig
	audit *audit.Dispatcher
}

func NewCreateBooking(
	repo domain.Repository,
	slots domain.SlotConfig,
	audit *audit.Dispatcher,
) *CreateBooking {
	return &CreateBooking{
		repo:  repo,
		slots: slots,
		audit: audit,
	}
}

// ======================================================
// EXECUTE
// ======================================================

// Execute é a etapa de confirmação do wizard: revalida tudo no servidor e
// cria o agendamento. A checagem de disponibilidade do cliente é apenas
// consultiva; a fonte de verdade é a inserção atômica do repositório, que
// devolve slot_taken para quem perder a corrida.
func (uc *CreateBooking) Execute(
	ctx context.Context,
	in CreateBookingInput,
) (*models.Appointment, error) {

	// --------------------------------------------------
	// 1. Campos obrigatórios
	// --------------------------------------------------
	if in.ServiceID == "" {
		return nil, httperr.ErrBusiness("missing_service")
	}
	if in.PostoID == "" {
		return nil, httperr.ErrBusiness("missing_posto")
	}
	if in.Date == "" {
		return nil, httperr.ErrBusiness("missing_date")
	}
	if in.Time == "" {
		return nil, httperr.ErrBusiness("missing_time")
	}

	// --------------------------------------------------
	// 2. Data e horário dentro da política
	// --------------------------------------------------
	date, err := domain.ParseDate(in.Date)
	if err != nil {
		return nil, err
	}

	if !domain.IsBookableDate(date, timezone.Now()) {
		return nil, httperr.ErrBusiness("date_not_bookable")
	}

	if !uc.slots.IsValidSlot(in.Time) {
		return nil, httperr.ErrBusiness("invalid_time")
	}

	// --------------------------------------------------
	// 3. Serviço
	// --------------------------------------------------
	if _, err := uc.repo.GetService(ctx, in.ServiceID); err != nil {
		return nil, httperr.ErrBusiness("service_not_found")
	}

	// --------------------------------------------------
	// 4. Posto ativo
	// --------------------------------------------------
	// Não há validação cruzada serviço×posto: qualquer posto ativo atende
	// qualquer serviço.
	posto, err := uc.repo.GetPosto(ctx, in.PostoID)
	if err != nil {
		return nil, httperr.ErrBusiness("posto_not_found")
	}
	if posto.Status != "ACTIVE" {
		return nil, httperr.ErrBusiness("posto_unavailable")
	}

	// --------------------------------------------------
	// 5. Disponibilidade (pré-checagem rápida)
	// --------------------------------------------------
	taken, err := uc.repo.SlotTaken(ctx, in.PostoID, in.Date, in.Time)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, httperr.ErrBusiness("slot_taken")
	}

	// --------------------------------------------------
	// 6. Criação atômica
	// --------------------------------------------------
	ap := &models.Appointment{
		ID:              uuid.NewString(),
		ReferenceNumber: domain.GenerateReferenceNumber(),
		UserID:          in.UserID,
		ServiceID:       in.ServiceID,
		PostoID:         in.PostoID,
		AppointmentDate: in.Date,
		AppointmentTime: in.Time,
		Status:          string(domain.InitialStatus()),
		Notes:           in.Notes,
	}

	if err := uc.repo.CreateAppointment(ctx, ap); err != nil {
		return nil, err
	}

	// --------------------------------------------------
	// 7. Auditoria
	// --------------------------------------------------
	uc.audit.Dispatch(audit.Event{
		UserID:   &in.UserID,
		Action:   "appointment_created",
		Entity:   "appointment",
		EntityID: &ap.ID,
	})

	// --------------------------------------------------
	// 8. Registro expandido para exibição
	// --------------------------------------------------
	full, err := uc.repo.GetAppointmentByID(ctx, ap.ID)
	if err != nil {
		return ap, nil
	}

	return full, nil
}
