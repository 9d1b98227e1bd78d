package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iliyamo/event-ticket-booking/internal/model"
	"github.com/iliyamo/event-ticket-booking/internal/service"
)

func newEventTestHandler(store *stubStore, creator *stubEventCreator) *EventHandler {
	queries := service.NewQueryService(store, stubUsers{store}, store)
	return NewEventHandler(creator, queries)
}

func doJSON(t *testing.T, h echo.HandlerFunc, method, target, body string) *httptest.ResponseRecorder {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	require.NoError(t, h(e.NewContext(req, rec)))
	return rec
}

func TestCreateEventMissingFields(t *testing.T) {
	h := newEventTestHandler(newStubStore(), &stubEventCreator{})

	cases := []struct {
		name string
		body string
		want string
	}{
		{"no event_name", `{"location":"x","date":"2030-01-01 10:00:00","max_tickets":5,"type":"concert"}`, "event_name"},
		{"no location", `{"event_name":"x","date":"2030-01-01 10:00:00","max_tickets":5,"type":"concert"}`, "location"},
		{"no date", `{"event_name":"x","location":"x","max_tickets":5,"type":"concert"}`, "date"},
		{"no max_tickets", `{"event_name":"x","location":"x","date":"2030-01-01 10:00:00","type":"concert"}`, "max_tickets"},
		{"no type", `{"event_name":"x","location":"x","date":"2030-01-01 10:00:00","max_tickets":5}`, "type"},
		{"bad json", `{`, "invalid JSON"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rec := doJSON(t, h.CreateEvent, http.MethodPost, "/event", tc.body)
			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assert.Contains(t, rec.Body.String(), tc.want)
		})
	}
}

func TestCreateEventBadDateFormat(t *testing.T) {
	h := newEventTestHandler(newStubStore(), &stubEventCreator{})
	body := `{"event_name":"x","location":"x","date":"2030-01-01T10:00:00Z","max_tickets":5,"type":"concert"}`
	rec := doJSON(t, h.CreateEvent, http.MethodPost, "/event", body)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "YYYY-MM-DD HH:MM:SS")
}

func TestCreateEventSuccess(t *testing.T) {
	creator := &stubEventCreator{}
	h := newEventTestHandler(newStubStore(), creator)
	body := `{"event_name":"GopherCon","location":"Berlin","date":"2030-01-01 10:00:00","max_tickets":100,"type":"conference"}`
	rec := doJSON(t, h.CreateEvent, http.MethodPost, "/event", body)

	require.Equal(t, http.StatusOK, rec.Code)
	var resp map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.EqualValues(t, 7, resp["id"])

	assert.Equal(t, "GopherCon", creator.created.EventName)
	assert.Equal(t, 100, creator.created.MaxTickets)
	assert.True(t, creator.created.Date.Equal(time.Date(2030, 1, 1, 10, 0, 0, 0, time.UTC)))
}

func TestCreateEventZeroCapacityAllowed(t *testing.T) {
	creator := &stubEventCreator{}
	h := newEventTestHandler(newStubStore(), creator)
	body := `{"event_name":"x","location":"x","date":"2030-01-01 10:00:00","max_tickets":0,"type":"concert"}`
	rec := doJSON(t, h.CreateEvent, http.MethodPost, "/event", body)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 0, creator.created.MaxTickets)
}

func TestGetEventParamHandling(t *testing.T) {
	store := newStubStore()
	store.events[5] = model.Event{ID: 5, EventName: "show", Date: time.Date(2030, 1, 1, 10, 0, 0, 0, time.UTC), MaxTickets: 2, Type: "theater"}
	h := newEventTestHandler(store, &stubEventCreator{})

	rec := doJSON(t, h.GetEvent, http.MethodGet, "/event", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "event_id")

	rec = doJSON(t, h.GetEvent, http.MethodGet, "/event?event_id=999", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "event does not exist")

	rec = doJSON(t, h.GetEvent, http.MethodGet, "/event?event_id=5", "")
	require.Equal(t, http.StatusOK, rec.Code)
	var resp eventResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "show", resp.EventName)
	assert.Equal(t, "2030-01-01 10:00:00", resp.Date)
}

func TestCurrentEventsListsOnlyFuture(t *testing.T) {
	store := newStubStore()
	store.events[1] = model.Event{ID: 1, EventName: "past", Date: time.Now().UTC().Add(-time.Hour)}
	store.events[2] = model.Event{ID: 2, EventName: "future", Date: time.Now().UTC().Add(time.Hour)}
	h := newEventTestHandler(store, &stubEventCreator{})

	rec := doJSON(t, h.CurrentEvents, http.MethodGet, "/event/current", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var resp []eventResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Len(t, resp, 1)
	assert.Equal(t, "future", resp[0].EventName)
}

func TestCurrentEventsStoreFailure(t *testing.T) {
	store := newStubStore()
	store.err = assert.AnError
	h := newEventTestHandler(store, &stubEventCreator{})

	rec := doJSON(t, h.CurrentEvents, http.MethodGet, "/event/current", "")
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, rec.Body.String(), "database error")
}
