package events

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"

	"github.com/user/eventos-go/apperror"
	"github.com/user/eventos-go/auth"
)

// EventService defines the event operations. Handlers depend on this
// interface; the pgx-backed implementation below is the production one.
type EventService interface {
	Insert(ctx context.Context, organizer *auth.User, req InsertEventRequest) (*Event, error)
	Edit(ctx context.Context, id string, organizerID uuid.UUID, req EditEventRequest) (*Event, error)
	Delete(ctx context.Context, id string, organizerID uuid.UUID) (*DeleteEventResponse, error)
	ListAll(ctx context.Context) ([]Event, error)
	ListByOrganizer(ctx context.Context, organizerID uuid.UUID) ([]Event, error)
	GetByID(ctx context.Context, id string) (*Event, error)
}

type eventService struct {
	db     *pgxpool.Pool
	logger zerolog.Logger
}

// NewEventService creates the pgx-backed EventService.
func NewEventService(db *pgxpool.Pool, logger zerolog.Logger) EventService {
	return &eventService{db: db, logger: logger}
}

func eventNotFound() *apperror.AppError {
	return apperror.NewNotFoundError("Evento não encontrado!", nil)
}

func genericError(err error) *apperror.AppError {
	return apperror.NewDatabaseError("Houve um erro, por favor tente mais tarde!", err)
}

// checkWindow enforces the start<end invariant.
func checkWindow(start, end time.Time) *apperror.AppError {
	if !start.Before(end) {
		return apperror.NewValidationError("A data de início deve ser anterior à data de término!", nil)
	}
	return nil
}

// parseWindow converts the already format-validated RFC 3339 strings.
func parseWindow(startStr, endStr string) (time.Time, time.Time, *apperror.AppError) {
	start, err := time.Parse(time.RFC3339, startStr)
	if err != nil {
		return time.Time{}, time.Time{}, apperror.NewValidationError("Formato de data inválido. Use YYYY-MM-DDTHH:mm:ssZ!", err)
	}
	end, err := time.Parse(time.RFC3339, endStr)
	if err != nil {
		return time.Time{}, time.Time{}, apperror.NewValidationError("Formato de data inválido. Use YYYY-MM-DDTHH:mm:ssZ!", err)
	}
	return start, end, nil
}

// applyPatch merges an edit request into a copy of the stored event and
// re-checks the time window against the effective post-merge values, so an
// edit that supplies only a new start is still compared with the persisted
// end. Description is clearable; the other text fields ignore empty values.
func applyPatch(ev Event, req EditEventRequest) (Event, *apperror.AppError) {
	if req.Title != nil && *req.Title != "" {
		ev.Title = *req.Title
	}
	if len(req.Attendees) > 0 {
		ev.Attendees = req.Attendees
	}
	if req.Start != nil && *req.Start != "" {
		start, err := time.Parse(time.RFC3339, *req.Start)
		if err != nil {
			return ev, apperror.NewValidationError("Formato de data inválido. Use YYYY-MM-DDTHH:mm:ssZ!", err)
		}
		ev.Start = start
	}
	if req.End != nil && *req.End != "" {
		end, err := time.Parse(time.RFC3339, *req.End)
		if err != nil {
			return ev, apperror.NewValidationError("Formato de data inválido. Use YYYY-MM-DDTHH:mm:ssZ!", err)
		}
		ev.End = end
	}
	if req.Location != nil && *req.Location != "" {
		ev.Location = *req.Location
	}
	if req.Description != nil {
		ev.Description = req.Description
	}

	if appErr := checkWindow(ev.Start, ev.End); appErr != nil {
		return ev, appErr
	}
	return ev, nil
}

// Insert creates an event. The organizer snapshot is captured from the
// authenticated user's current identity; no duplicate or scheduling-conflict
// checks are performed.
func (s *eventService) Insert(ctx context.Context, organizer *auth.User, req InsertEventRequest) (*Event, error) {
	start, end, appErr := parseWindow(req.Start, req.End)
	if appErr != nil {
		return nil, appErr
	}
	if appErr := checkWindow(start, end); appErr != nil {
		return nil, appErr
	}

	id, err := NewEventID()
	if err != nil {
		return nil, apperror.NewInternalError("Houve um erro, por favor tente mais tarde!", err)
	}

	ev := &Event{
		ID:    id,
		Title: req.Title,
		Organizer: Organizer{
			ID:    organizer.ID,
			Name:  organizer.Name,
			Email: organizer.Email,
		},
		Attendees:   req.Attendees,
		Start:       start,
		End:         end,
		Location:    req.Location,
		Description: req.Description,
	}

	query := `INSERT INTO events
	            (id, title, organizer_id, organizer_name, organizer_email,
	             attendees, start_at, end_at, location, description)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	          RETURNING created_at, updated_at`
	err = s.db.QueryRow(ctx, query,
		ev.ID, ev.Title, ev.Organizer.ID, ev.Organizer.Name, ev.Organizer.Email,
		ev.Attendees, ev.Start, ev.End, ev.Location, ev.Description,
	).Scan(&ev.CreatedAt, &ev.UpdatedAt)
	if err != nil {
		return nil, genericError(err)
	}

	s.logger.Info().Str("event_id", ev.ID).Str("organizer_id", ev.Organizer.ID.String()).Msg("event created")
	return ev, nil
}

// Edit applies a partial update to an event owned by the caller.
func (s *eventService) Edit(ctx context.Context, id string, organizerID uuid.UUID, req EditEventRequest) (*Event, error) {
	ev, err := s.ownedEvent(ctx, id, organizerID, "editar")
	if err != nil {
		return nil, err
	}

	merged, appErr := applyPatch(*ev, req)
	if appErr != nil {
		return nil, appErr
	}

	query := `UPDATE events
	          SET title = $1, attendees = $2, start_at = $3, end_at = $4,
	              location = $5, description = $6, updated_at = now()
	          WHERE id = $7
	          RETURNING updated_at`
	err = s.db.QueryRow(ctx, query,
		merged.Title, merged.Attendees, merged.Start, merged.End,
		merged.Location, merged.Description, merged.ID,
	).Scan(&merged.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, eventNotFound()
		}
		return nil, genericError(err)
	}

	return &merged, nil
}

// Delete removes an event owned by the caller.
func (s *eventService) Delete(ctx context.Context, id string, organizerID uuid.UUID) (*DeleteEventResponse, error) {
	ev, err := s.ownedEvent(ctx, id, organizerID, "deletar")
	if err != nil {
		return nil, err
	}

	if _, err := s.db.Exec(ctx, `DELETE FROM events WHERE id = $1`, ev.ID); err != nil {
		return nil, genericError(err)
	}

	s.logger.Info().Str("event_id", ev.ID).Msg("event deleted")
	return &DeleteEventResponse{ID: ev.ID, Message: "Evento deletado com sucesso!"}, nil
}

// ListAll returns every event, newest first. Any authenticated user sees
// every event; there is no per-user filtering and no pagination.
func (s *eventService) ListAll(ctx context.Context) ([]Event, error) {
	return s.list(ctx, selectEvents+` ORDER BY created_at DESC`)
}

// ListByOrganizer returns the events organized by the given user, newest first.
func (s *eventService) ListByOrganizer(ctx context.Context, organizerID uuid.UUID) ([]Event, error) {
	return s.list(ctx, selectEvents+` WHERE organizer_id = $1 ORDER BY created_at DESC`, organizerID)
}

// GetByID returns a single event. A malformed id and a missing row are the
// same failure: "Evento não encontrado!".
func (s *eventService) GetByID(ctx context.Context, id string) (*Event, error) {
	if !validEventID(id) {
		return nil, eventNotFound()
	}

	row := s.db.QueryRow(ctx, selectEvents+` WHERE id = $1`, id)
	ev, err := scanEvent(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, eventNotFound()
		}
		return nil, genericError(err)
	}
	return ev, nil
}

// ownedEvent loads an event and asserts that the caller is its organizer.
// Both edit and delete consume this; action names the attempted operation
// in the permission message.
func (s *eventService) ownedEvent(ctx context.Context, id string, organizerID uuid.UUID, action string) (*Event, error) {
	ev, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if ev.Organizer.ID != organizerID {
		return nil, apperror.NewAuthError(fmt.Sprintf("Você não tem permissão para %s este evento!", action), nil)
	}
	return ev, nil
}

const selectEvents = `SELECT id, title, organizer_id, organizer_name, organizer_email,
       attendees, start_at, end_at, location, description, created_at, updated_at
FROM events`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanEvent(row rowScanner) (*Event, error) {
	var ev Event
	err := row.Scan(
		&ev.ID, &ev.Title, &ev.Organizer.ID, &ev.Organizer.Name, &ev.Organizer.Email,
		&ev.Attendees, &ev.Start, &ev.End, &ev.Location, &ev.Description,
		&ev.CreatedAt, &ev.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &ev, nil
}

func (s *eventService) list(ctx context.Context, query string, args ...any) ([]Event, error) {
	rows, err := s.db.Query(ctx, query, args...)
	if err != nil {
		return nil, genericError(err)
	}
	defer rows.Close()

	events := []Event{}
	for rows.Next() {
		ev, err := scanEvent(rows)
		if err != nil {
			return nil, genericError(err)
		}
		events = append(events, *ev)
	}
	if err := rows.Err(); err != nil {
		return nil, genericError(err)
	}
	return events, nil
}
