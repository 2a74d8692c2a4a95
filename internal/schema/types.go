package schema

// EmergencyContact is the nested contact stored on a patient record.
type EmergencyContact struct {
	Name     string `json:"name"`
	Phone    string `json:"phone"`
	Relation string `json:"relation"`
}

// Schedule describes when a routine runs: a clock time plus weekdays.
// Time is "HH:MM" in 24-hour format; Days holds lowercase weekday names.
type Schedule struct {
	Time string   `json:"time"`
	Days []string `json:"days"`
}

// AlertPayload carries the device-reported detail of an alert.
type AlertPayload struct {
	Message string  `json:"message,omitempty"`
	Lat     float64 `json:"lat,omitempty"`
	Lon     float64 `json:"lon,omitempty"`
}
