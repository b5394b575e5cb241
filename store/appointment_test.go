package store

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestBookAppointmentInPastFails(t *testing.T) {
	s := newTestStore(t)

	_, err := s.BookAppointment(1, 1, 1, time.Now().Add(-time.Hour))
	require.ErrorIs(t, err, ErrValidation)

	appointments, err := s.ListAppointments()
	require.NoError(t, err)
	require.Empty(t, appointments)
}

func TestBookAppointmentInFutureAppearsUpcoming(t *testing.T) {
	s := newTestStore(t)

	booked, err := s.BookAppointment(1, 2, 3, time.Now().Add(time.Hour))
	require.NoError(t, err)
	require.NotZero(t, booked.ID)

	upcoming, err := s.UpcomingAppointments(1)
	require.NoError(t, err)
	require.Len(t, upcoming, 1)
	require.Equal(t, booked.ID, upcoming[0].ID)

	// Another customer sees nothing.
	other, err := s.UpcomingAppointments(2)
	require.NoError(t, err)
	require.Empty(t, other)
}

func TestUpcomingAppointmentsSkipsPastRows(t *testing.T) {
	s := newTestStore(t)

	booked, err := s.BookAppointment(1, 1, 1, time.Now().Add(50*time.Millisecond))
	require.NoError(t, err)

	time.Sleep(100 * time.Millisecond)

	upcoming, err := s.UpcomingAppointments(1)
	require.NoError(t, err)
	require.Empty(t, upcoming)

	// The row itself is still there; upcoming is a query, not a status.
	_, err = s.GetAppointmentByID(booked.ID)
	require.NoError(t, err)
}

func TestCancelAppointment(t *testing.T) {
	s := newTestStore(t)

	booked, err := s.BookAppointment(1, 1, 1, time.Now().Add(time.Hour))
	require.NoError(t, err)

	require.NoError(t, s.CancelAppointment(booked.ID))

	_, err = s.GetAppointmentByID(booked.ID)
	require.ErrorIs(t, err, ErrNotFound)

	require.ErrorIs(t, s.CancelAppointment(booked.ID), ErrNotFound)
}
