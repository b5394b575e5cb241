package store

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCreateServiceRejectsNonPositivePrice(t *testing.T) {
	s := newTestStore(t)

	_, err := s.CreateService("Swedish Massage", "Relaxing full-body massage", 0)
	require.ErrorIs(t, err, ErrValidation)

	_, err = s.CreateService("Swedish Massage", "Relaxing full-body massage", -5)
	require.ErrorIs(t, err, ErrValidation)
}

func TestListServicesEmptyIsNotAnError(t *testing.T) {
	s := newTestStore(t)

	services, err := s.ListServices()
	require.NoError(t, err)
	require.NotNil(t, services)
	require.Empty(t, services)
}

func TestServiceRoundTrip(t *testing.T) {
	s := newTestStore(t)

	created, err := s.CreateService("Facial Treatment", "Deep skin cleansing", 75.0)
	require.NoError(t, err)

	got, err := s.GetServiceByID(created.ID)
	require.NoError(t, err)
	require.Equal(t, created.Name, got.Name)
	require.Equal(t, created.Description, got.Description)
	require.Equal(t, created.Price, got.Price)

	services, err := s.ListServices()
	require.NoError(t, err)
	require.Len(t, services, 1)
}

func TestUpdateServicePrice(t *testing.T) {
	s := newTestStore(t)

	created, err := s.CreateService("Aromatherapy", "Essential oils", 60.0)
	require.NoError(t, err)

	price := 65.0
	updated, err := s.UpdateService(created.ID, nil, nil, &price)
	require.NoError(t, err)
	require.Equal(t, 65.0, updated.Price)
	require.Equal(t, "Aromatherapy", updated.Name)

	bad := -1.0
	_, err = s.UpdateService(created.ID, nil, nil, &bad)
	require.ErrorIs(t, err, ErrValidation)

	_, err = s.UpdateService(999, nil, nil, &price)
	require.ErrorIs(t, err, ErrNotFound)
}

func TestDeleteServiceThenGetFails(t *testing.T) {
	s := newTestStore(t)

	created, err := s.CreateService("Hot Stone Therapy", "Heat therapy", 90.0)
	require.NoError(t, err)

	require.NoError(t, s.DeleteService(created.ID))

	_, err = s.GetServiceByID(created.ID)
	require.ErrorIs(t, err, ErrNotFound)
}
