package httperr

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Mensagens e status por código de negócio. Conflito de slot responde 409
// (distinto de erro de validação) para a UI reabrir a escolha de horário.
var businessStatus = map[string]struct {
	status  int
	message string
}{
	"missing_service":       {http.StatusBadRequest, "Serviço obrigatório."},
	"missing_posto":         {http.StatusBadRequest, "Posto obrigatório."},
	"missing_date":          {http.StatusBadRequest, "Data obrigatória."},
	"missing_time":          {http.StatusBadRequest, "Hora obrigatória."},
	"invalid_date":          {http.StatusBadRequest, "Data inválida."},
	"invalid_time":          {http.StatusBadRequest, "Horário inválido."},
	"date_not_bookable":     {http.StatusBadRequest, "Data indisponível para agendamento."},
	"invalid_status":        {http.StatusBadRequest, "Status inválido."},
	"invalid_state":         {http.StatusBadRequest, "Agendamento não admite esta transição."},
	"posto_unavailable":     {http.StatusBadRequest, "Posto indisponível."},
	"service_not_found":     {http.StatusNotFound, "Serviço não encontrado."},
	"posto_not_found":       {http.StatusNotFound, "Posto não encontrado."},
	"appointment_not_found": {http.StatusNotFound, "Agendamento não encontrado."},
	"slot_taken":            {http.StatusConflict, "Horário não disponível."},
	"forbidden":             {http.StatusForbidden, "Sem permissão."},
}

// Respond traduz um erro de caso de uso para a resposta HTTP. Erros que não
// são de negócio viram falha interna genérica.
func Respond(c *gin.Context, err error) {
	code := CodeOf(err)
	if m, ok := businessStatus[code]; ok {
		Write(c, m.status, code, m.message)
		return
	}

	Internal(c, "internal_error", "Erro interno.")
}
