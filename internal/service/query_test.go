package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iliyamo/event-ticket-booking/internal/repository"
)

func newTestQueries(store *memStore) *QueryService {
	return NewQueryService(store, userStore{store}, store)
}

func TestCurrentEventsFiltersByDate(t *testing.T) {
	now := time.Date(2025, time.June, 1, 0, 0, 0, 0, time.UTC)
	store := newMemStore()
	store.addEvent(1, 10, now.Add(-time.Hour)) // already happened
	store.addEvent(2, 10, now.Add(time.Hour))
	store.addEvent(3, 10, now) // date == now is not "after"
	queries := newTestQueries(store)

	events, err := queries.CurrentEvents(context.Background(), now)
	require.NoError(t, err)
	require.Len(t, events, 1)
	assert.Equal(t, uint64(2), events[0].ID)
}

func TestCurrentEventsEmptyIsNotAnError(t *testing.T) {
	queries := newTestQueries(newMemStore())

	events, err := queries.CurrentEvents(context.Background(), time.Now())
	require.NoError(t, err)
	assert.NotNil(t, events)
	assert.Empty(t, events)
}

func TestEventByIDNotFound(t *testing.T) {
	queries := newTestQueries(newMemStore())

	_, err := queries.EventByID(context.Background(), 404)
	assert.ErrorIs(t, err, repository.ErrEventNotFound)
}

func TestTicketsForUserRequiresExistingUser(t *testing.T) {
	store := newMemStore()
	queries := newTestQueries(store)

	_, err := queries.TicketsForUser(context.Background(), 999)
	assert.ErrorIs(t, err, repository.ErrUserNotFound)
}

func TestTicketsForUserEmptyAndPopulated(t *testing.T) {
	store := newMemStore()
	store.addUser(1)
	store.addEvent(1, 5, time.Now().Add(time.Hour))
	queries := newTestQueries(store)

	tickets, err := queries.TicketsForUser(context.Background(), 1)
	require.NoError(t, err)
	assert.NotNil(t, tickets)
	assert.Empty(t, tickets)

	_, err = store.Create(context.Background(), 1, 1, time.Now())
	require.NoError(t, err)

	tickets, err = queries.TicketsForUser(context.Background(), 1)
	require.NoError(t, err)
	assert.Len(t, tickets, 1)
}

func TestReadsAreIdempotent(t *testing.T) {
	store := newMemStore()
	store.addUser(1)
	store.addEvent(1, 5, time.Now().Add(time.Hour))
	_, err := store.Create(context.Background(), 1, 1, time.Now())
	require.NoError(t, err)
	queries := newTestQueries(store)

	first, err := queries.TicketsForEvent(context.Background(), 1)
	require.NoError(t, err)
	second, err := queries.TicketsForEvent(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, first, second)

	ev1, err := queries.EventByID(context.Background(), 1)
	require.NoError(t, err)
	ev2, err := queries.EventByID(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, ev1, ev2)
}
