package store

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestProcessPaymentRejectsNonPositiveAmount(t *testing.T) {
	s := newTestStore(t)

	_, err := s.ProcessPayment(1, 1, 0)
	require.ErrorIs(t, err, ErrValidation)

	_, err = s.ProcessPayment(1, 1, -10)
	require.ErrorIs(t, err, ErrValidation)

	payments, err := s.ListPayments()
	require.NoError(t, err)
	require.Empty(t, payments)
}

func TestProcessPaymentAppearsInHistory(t *testing.T) {
	s := newTestStore(t)

	payment, err := s.ProcessPayment(1, 1, 49.99)
	require.NoError(t, err)
	require.NotEmpty(t, payment.Reference)
	require.False(t, payment.PaymentDate.IsZero())

	history, err := s.PaymentHistory(1)
	require.NoError(t, err)
	require.Len(t, history, 1)
	require.Equal(t, 49.99, history[0].Amount)

	other, err := s.PaymentHistory(2)
	require.NoError(t, err)
	require.Empty(t, other)
}

func TestRefundPayment(t *testing.T) {
	s := newTestStore(t)

	payment, err := s.ProcessPayment(1, 1, 50)
	require.NoError(t, err)

	require.NoError(t, s.RefundPayment(payment.ID))

	_, err = s.GetPaymentByID(payment.ID)
	require.ErrorIs(t, err, ErrNotFound)

	require.ErrorIs(t, s.RefundPayment(payment.ID), ErrNotFound)
}
