package store

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCreateStaffRequiresNameAndRole(t *testing.T) {
	s := newTestStore(t)

	_, err := s.CreateStaff("", "Therapist")
	require.ErrorIs(t, err, ErrValidation)

	_, err = s.CreateStaff("Emma Davis", "")
	require.ErrorIs(t, err, ErrValidation)

	_, err = s.CreateStaff("Emma Davis", "Therapist")
	require.NoError(t, err)
}

func TestListStaffByRole(t *testing.T) {
	s := newTestStore(t)

	_, err := s.CreateStaff("Emma Davis", "Therapist")
	require.NoError(t, err)
	_, err = s.CreateStaff("Sophie Turner", "Therapist")
	require.NoError(t, err)
	_, err = s.CreateStaff("Chris Evans", "Manager")
	require.NoError(t, err)

	therapists, err := s.ListStaffByRole("Therapist")
	require.NoError(t, err)
	require.Len(t, therapists, 2)

	cleaners, err := s.ListStaffByRole("Cleaner")
	require.NoError(t, err)
	require.Empty(t, cleaners)

	everyone, err := s.ListStaff()
	require.NoError(t, err)
	require.Len(t, everyone, 3)
}

func TestUpdateStaffRole(t *testing.T) {
	s := newTestStore(t)

	created, err := s.CreateStaff("John Doe", "Receptionist")
	require.NoError(t, err)

	updated, err := s.UpdateStaffRole(created.ID, "Manager")
	require.NoError(t, err)
	require.Equal(t, "Manager", updated.Role)

	_, err = s.UpdateStaffRole(created.ID, "")
	require.ErrorIs(t, err, ErrValidation)

	_, err = s.UpdateStaffRole(999, "Manager")
	require.ErrorIs(t, err, ErrNotFound)
}

func TestDeleteStaff(t *testing.T) {
	s := newTestStore(t)

	created, err := s.CreateStaff("Emma Davis", "Therapist")
	require.NoError(t, err)

	require.NoError(t, s.DeleteStaff(created.ID))
	require.ErrorIs(t, s.DeleteStaff(created.ID), ErrNotFound)

	_, err = s.GetStaffByID(created.ID)
	require.ErrorIs(t, err, ErrNotFound)
}
