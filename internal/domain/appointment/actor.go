package appointment

import "github.com/agendabi/bi-scheduler/internal/models"

const (
	RoleUser     = "USER"
	RoleAdmin    = "ADMIN"
	RoleEmployee = "EMPLOYEE"
)

// Actor é o usuário autenticado executando a operação. Sempre explícito:
// nenhuma operação do domínio lê sessão ou contexto ambiente.
type Actor struct {
	ID   string
	Role string
}

func (a Actor) IsAdmin() bool {
	return a.Role == RoleAdmin
}

// CanManage: dono do agendamento ou administrador.
func (a Actor) CanManage(ap *models.Appointment) bool {
	return a.IsAdmin() || (a.ID != "" && a.ID == ap.UserID)
}
