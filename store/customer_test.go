package store

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestCreateCustomerRoundTrip(t *testing.T) {
	s := newTestStore(t)

	created, err := s.CreateCustomer("Alice Johnson", "alice@gmail.com", "1234567890")
	require.NoError(t, err)
	require.NotZero(t, created.ID)
	require.False(t, created.CreatedAt.IsZero())

	byID, err := s.GetCustomerByID(created.ID)
	require.NoError(t, err)
	require.Equal(t, created.Name, byID.Name)
	require.Equal(t, created.Email, byID.Email)
	require.Equal(t, created.Phone, byID.Phone)

	byEmail, err := s.GetCustomerByEmail("alice@gmail.com")
	require.NoError(t, err)
	require.Equal(t, created.ID, byEmail.ID)
}

func TestCreateCustomerValidation(t *testing.T) {
	s := newTestStore(t)

	_, err := s.CreateCustomer("", "alice@gmail.com", "1234567890")
	require.ErrorIs(t, err, ErrValidation)

	_, err = s.CreateCustomer("Alice", "", "1234567890")
	require.ErrorIs(t, err, ErrValidation)

	_, err = s.CreateCustomer("Alice", "alice@gmail.com", "")
	require.ErrorIs(t, err, ErrValidation)
}

func TestCreateCustomerDuplicateEmail(t *testing.T) {
	s := newTestStore(t)

	_, err := s.CreateCustomer("Alice", "alice@gmail.com", "1234567890")
	require.NoError(t, err)

	_, err = s.CreateCustomer("Another Alice", "alice@gmail.com", "0987654321")
	require.ErrorIs(t, err, ErrValidation)
}

func TestGetCustomerByEmailNotFound(t *testing.T) {
	s := newTestStore(t)

	_, err := s.GetCustomerByEmail("nobody@gmail.com")
	require.ErrorIs(t, err, ErrNotFound)
}

func TestUpdateCustomerPartialFields(t *testing.T) {
	s := newTestStore(t)

	created, err := s.CreateCustomer("Alice", "alice@gmail.com", "1234567890")
	require.NoError(t, err)

	phone := "5556667777"
	updated, err := s.UpdateCustomer(created.ID, nil, nil, &phone)
	require.NoError(t, err)
	require.Equal(t, "Alice", updated.Name)
	require.Equal(t, "alice@gmail.com", updated.Email)
	require.Equal(t, phone, updated.Phone)
}

func TestUpdateCustomerNoFieldsRefreshesUpdatedAt(t *testing.T) {
	s := newTestStore(t)

	created, err := s.CreateCustomer("Alice", "alice@gmail.com", "1234567890")
	require.NoError(t, err)

	before := created.UpdatedAt
	time.Sleep(20 * time.Millisecond)

	updated, err := s.UpdateCustomer(created.ID, nil, nil, nil)
	require.NoError(t, err)
	require.Equal(t, created.Name, updated.Name)
	require.Equal(t, created.Email, updated.Email)
	require.Equal(t, created.Phone, updated.Phone)
	require.True(t, updated.UpdatedAt.After(before))
}

func TestUpdateCustomerNotFound(t *testing.T) {
	s := newTestStore(t)

	name := "Ghost"
	_, err := s.UpdateCustomer(42, &name, nil, nil)
	require.ErrorIs(t, err, ErrNotFound)
}

func TestDeleteCustomerThenGetFails(t *testing.T) {
	s := newTestStore(t)

	created, err := s.CreateCustomer("Alice", "alice@gmail.com", "1234567890")
	require.NoError(t, err)

	require.NoError(t, s.DeleteCustomer(created.ID))

	_, err = s.GetCustomerByID(created.ID)
	require.ErrorIs(t, err, ErrNotFound)

	require.ErrorIs(t, s.DeleteCustomer(created.ID), ErrNotFound)
}

func TestListCustomersEmpty(t *testing.T) {
	s := newTestStore(t)

	customers, err := s.ListCustomers()
	require.NoError(t, err)
	require.Empty(t, customers)
}
