package appointment

import (
	"time"

	"github.com/agendabi/bi-scheduler/internal/httperr"
)

// ===============================
// Time Slots
// ===============================

// SlotConfig enumera os horários agendáveis de um dia. A lista é fixa por
// deployment (não deriva do campo de horário de cada posto).
type SlotConfig struct {
	Open        string
	Close       string
	LunchStart  string
	LunchEnd    string
	IntervalMin int
}

func DefaultSlotConfig() SlotConfig {
	return SlotConfig{
		Open:        "08:00",
		Close:       "16:30",
		LunchStart:  "13:00",
		LunchEnd:    "14:00",
		IntervalMin: 30,
	}
}

// Slots devolve os rótulos de horário do dia, pulando o intervalo de almoço.
func (c SlotConfig) Slots() []string {
	open := parseHM(c.Open)
	closing := parseHM(c.Close)
	lunchStart := parseHM(c.LunchStart)
	lunchEnd := parseHM(c.LunchEnd)

	interval := time.Duration(c.IntervalMin) * time.Minute

	var slots []string
	for cur := open; cur.Before(closing); cur = cur.Add(interval) {
		if !cur.Before(lunchStart) && cur.Before(lunchEnd) {
			continue
		}
		slots = append(slots, cur.Format("15:04"))
	}

	return slots
}

// IsValidSlot: o rótulo precisa estar na lista enumerada.
func (c SlotConfig) IsValidSlot(label string) bool {
	for _, s := range c.Slots() {
		if s == label {
			return true
		}
	}
	return false
}

func parseHM(hm string) time.Time {
	t, _ := time.Parse("15:04", hm)
	return t
}

// ===============================
// Date Policy
// ===============================

// ParseDate valida o formato ISO da data do agendamento.
func ParseDate(dateStr string) (time.Time, error) {
	d, err := time.Parse("2006-01-02", dateStr)
	if err != nil {
		return time.Time{}, httperr.ErrBusiness("invalid_date")
	}
	return d, nil
}

// IsBookableDate: sem datas passadas e, por política, sem fins de semana.
func IsBookableDate(date time.Time, today time.Time) bool {
	day := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, time.UTC)
	ref := time.Date(today.Year(), today.Month(), today.Day(), 0, 0, 0, 0, time.UTC)

	if day.Before(ref) {
		return false
	}

	wd := day.Weekday()
	return wd != time.Saturday && wd != time.Sunday
}
