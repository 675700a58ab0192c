package events

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/user/eventos-go/apperror"
	"github.com/user/eventos-go/auth"
)

type fakeEventService struct {
	insertResp *Event
	insertErr  error
	editResp   *Event
	editErr    error
	deleteResp *DeleteEventResponse
	deleteErr  error
	listAll    []Event
	listMine   []Event
	getResp    *Event
	getErr     error

	lastEditID     string
	lastEditUserID uuid.UUID
	lastListUserID uuid.UUID
}

func (f *fakeEventService) Insert(_ context.Context, _ *auth.User, _ InsertEventRequest) (*Event, error) {
	return f.insertResp, f.insertErr
}

func (f *fakeEventService) Edit(_ context.Context, id string, organizerID uuid.UUID, _ EditEventRequest) (*Event, error) {
	f.lastEditID = id
	f.lastEditUserID = organizerID
	return f.editResp, f.editErr
}

func (f *fakeEventService) Delete(_ context.Context, _ string, _ uuid.UUID) (*DeleteEventResponse, error) {
	return f.deleteResp, f.deleteErr
}

func (f *fakeEventService) ListAll(_ context.Context) ([]Event, error) {
	return f.listAll, nil
}

func (f *fakeEventService) ListByOrganizer(_ context.Context, organizerID uuid.UUID) ([]Event, error) {
	f.lastListUserID = organizerID
	return f.listMine, nil
}

func (f *fakeEventService) GetByID(_ context.Context, _ string) (*Event, error) {
	return f.getResp, f.getErr
}

func eventRouter(svc EventService) chi.Router {
	r := chi.NewRouter()
	NewHandlers(svc).RegisterRoutes(r)
	return r
}

func doRequest(router chi.Router, method, path, body string, user *auth.User) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	if user != nil {
		req = req.WithContext(auth.WithUser(req.Context(), user))
	}
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func errorsOf(t *testing.T, rec *httptest.ResponseRecorder) []string {
	t.Helper()
	var body apperror.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body.Errors
}

func testUser() *auth.User {
	return &auth.User{ID: uuid.New(), Name: "Ana", Email: "ana@example.com"}
}

func sampleEvent(organizer *auth.User) *Event {
	return &Event{
		ID:    "01J0000000000000000000TEST",
		Title: "Planejamento",
		Organizer: Organizer{
			ID:    organizer.ID,
			Name:  organizer.Name,
			Email: organizer.Email,
		},
		Attendees: []string{"bob@example.com"},
		Start:     time.Date(2024, 1, 1, 10, 0, 0, 0, time.UTC),
		End:       time.Date(2024, 1, 1, 11, 0, 0, 0, time.UTC),
		Location:  "Main Hall",
	}
}

func TestInsertCreated(t *testing.T) {
	user := testUser()
	svc := &fakeEventService{insertResp: sampleEvent(user)}
	router := eventRouter(svc)

	body := `{"title":"Planejamento","attendees":["bob@example.com"],"start":"2024-01-01T10:00:00Z","end":"2024-01-01T11:00:00Z","location":"Main Hall"}`
	rec := doRequest(router, http.MethodPost, "/", body, user)

	require.Equal(t, http.StatusCreated, rec.Code)

	var got Event
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Equal(t, user.ID, got.Organizer.ID)
	require.Equal(t, "Planejamento", got.Title)
}

func TestInsertWithoutUser(t *testing.T) {
	router := eventRouter(&fakeEventService{})

	rec := doRequest(router, http.MethodPost, "/", `{}`, nil)

	require.Equal(t, http.StatusUnauthorized, rec.Code)
	require.Equal(t, []string{"Acesso negado!"}, errorsOf(t, rec))
}

func TestInsertEmptyBodyReportsAllRules(t *testing.T) {
	router := eventRouter(&fakeEventService{})

	rec := doRequest(router, http.MethodPost, "/", "", testUser())

	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	require.Equal(t, []string{
		"O título é obrigatório!",
		"O campo \"participantes\" é obrigatório!",
		"O inicio do evento é obrigatória!",
		"O fim do evento é obrigatória!",
		"O local do evento é obrigatório!",
	}, errorsOf(t, rec))
}

func TestInsertInvertedWindow(t *testing.T) {
	svc := &fakeEventService{
		insertErr: apperror.NewValidationError("A data de início deve ser anterior à data de término!", nil),
	}
	router := eventRouter(svc)

	body := `{"title":"Planejamento","attendees":["bob@example.com"],"start":"2024-01-01T11:00:00Z","end":"2024-01-01T10:00:00Z","location":"Main Hall"}`
	rec := doRequest(router, http.MethodPost, "/", body, testUser())

	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	require.Equal(t, []string{"A data de início deve ser anterior à data de término!"}, errorsOf(t, rec))
}

func TestListAll(t *testing.T) {
	user := testUser()
	svc := &fakeEventService{listAll: []Event{*sampleEvent(user)}}
	router := eventRouter(svc)

	rec := doRequest(router, http.MethodGet, "/", "", user)

	require.Equal(t, http.StatusOK, rec.Code)

	var got []Event
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Len(t, got, 1)
}

func TestListAllEmptyIsArray(t *testing.T) {
	svc := &fakeEventService{listAll: []Event{}}
	router := eventRouter(svc)

	rec := doRequest(router, http.MethodGet, "/", "", testUser())

	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "[]", strings.TrimSpace(rec.Body.String()))
}

func TestListUserEventsPassesCallerID(t *testing.T) {
	user := testUser()
	svc := &fakeEventService{listMine: []Event{}}
	router := eventRouter(svc)

	rec := doRequest(router, http.MethodGet, "/user", "", user)

	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, user.ID, svc.lastListUserID)
}

func TestGetByIDNotFound(t *testing.T) {
	svc := &fakeEventService{getErr: apperror.NewNotFoundError("Evento não encontrado!", nil)}
	router := eventRouter(svc)

	rec := doRequest(router, http.MethodGet, "/not-a-ulid", "", testUser())

	require.Equal(t, http.StatusNotFound, rec.Code)
	require.Equal(t, []string{"Evento não encontrado!"}, errorsOf(t, rec))
}

func TestEditForwardsPathAndCaller(t *testing.T) {
	user := testUser()
	ev := sampleEvent(user)
	svc := &fakeEventService{editResp: ev}
	router := eventRouter(svc)

	rec := doRequest(router, http.MethodPut, "/"+ev.ID, `{"title":"Retrospectiva"}`, user)

	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, ev.ID, svc.lastEditID)
	require.Equal(t, user.ID, svc.lastEditUserID)
}

func TestEditByNonOrganizer(t *testing.T) {
	svc := &fakeEventService{
		editErr: apperror.NewAuthError("Você não tem permissão para editar este evento!", nil),
	}
	router := eventRouter(svc)

	rec := doRequest(router, http.MethodPut, "/01J0000000000000000000TEST", `{"title":"X"}`, testUser())

	require.Equal(t, http.StatusUnauthorized, rec.Code)
	require.Equal(t, []string{"Você não tem permissão para editar este evento!"}, errorsOf(t, rec))
}

func TestDeleteResponseShape(t *testing.T) {
	svc := &fakeEventService{
		deleteResp: &DeleteEventResponse{ID: "01J0000000000000000000TEST", Message: "Evento deletado com sucesso!"},
	}
	router := eventRouter(svc)

	rec := doRequest(router, http.MethodDelete, "/01J0000000000000000000TEST", "", testUser())

	require.Equal(t, http.StatusOK, rec.Code)

	var got DeleteEventResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Equal(t, "01J0000000000000000000TEST", got.ID)
	require.Equal(t, "Evento deletado com sucesso!", got.Message)
}

func TestDeleteByNonOrganizer(t *testing.T) {
	svc := &fakeEventService{
		deleteErr: apperror.NewAuthError("Você não tem permissão para deletar este evento!", nil),
	}
	router := eventRouter(svc)

	rec := doRequest(router, http.MethodDelete, "/01J0000000000000000000TEST", "", testUser())

	require.Equal(t, http.StatusUnauthorized, rec.Code)
	require.Equal(t, []string{"Você não tem permissão para deletar este evento!"}, errorsOf(t, rec))
}

func TestOrganizerSnapshotIsACopy(t *testing.T) {
	user := testUser()
	ev := sampleEvent(user)

	user.Name = "Renomeada"
	user.Email = "nova@example.com"
	require.Equal(t, "Ana", ev.Organizer.Name)
	require.Equal(t, "ana@example.com", ev.Organizer.Email)
}
