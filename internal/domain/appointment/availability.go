package appointment

// SlotStatus é um horário do dia com sua disponibilidade calculada.
type SlotStatus struct {
	Time      string `json:"time"`
	Available bool   `json:"available"`
}
