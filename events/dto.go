package events

// InsertEventRequest represents the event creation payload. Start and end
// arrive as RFC 3339 strings; the validation layer checks the format and the
// service checks the start<end window.
type InsertEventRequest struct {
	Title       string   `json:"title" validate:"required" example:"Reunião de planejamento"`
	Attendees   []string `json:"attendees" validate:"required,min=1,dive,required,email" example:"ana@example.com"`
	Start       string   `json:"start" validate:"required,datetime=2006-01-02T15:04:05Z07:00" example:"2024-01-01T10:00:00Z"`
	End         string   `json:"end" validate:"required,datetime=2006-01-02T15:04:05Z07:00" example:"2024-01-01T11:00:00Z"`
	Location    string   `json:"location" validate:"required,min=5" example:"Main Hall"`
	Description *string  `json:"description,omitempty" example:"Pauta do trimestre"`
}

// EditEventRequest represents a partial event update. A field absent from
// the payload keeps its stored value. Description is the one clearable
// field: sending it as an empty string empties it; the structurally
// required fields ignore empty values.
type EditEventRequest struct {
	Title       *string  `json:"title,omitempty"`
	Attendees   []string `json:"attendees,omitempty" validate:"omitempty,min=1,dive,required,email"`
	Start       *string  `json:"start,omitempty" validate:"omitempty,datetime=2006-01-02T15:04:05Z07:00"`
	End         *string  `json:"end,omitempty" validate:"omitempty,datetime=2006-01-02T15:04:05Z07:00"`
	Location    *string  `json:"location,omitempty" validate:"omitempty,min=5"`
	Description *string  `json:"description,omitempty"`
}

// DeleteEventResponse confirms an event deletion.
type DeleteEventResponse struct {
	ID      string `json:"id"`
	Message string `json:"message" example:"Evento deletado com sucesso!"`
}
