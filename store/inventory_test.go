package store

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestAddInventoryValidation(t *testing.T) {
	s := newTestStore(t)

	_, err := s.AddInventoryItem("", 5)
	require.ErrorIs(t, err, ErrValidation)

	_, err = s.AddInventoryItem("Lavender Massage Oil", -1)
	require.ErrorIs(t, err, ErrValidation)

	item, err := s.AddInventoryItem("Lavender Massage Oil", 0)
	require.NoError(t, err)
	require.Equal(t, 0, item.Quantity)
}

func TestSetStock(t *testing.T) {
	s := newTestStore(t)

	item, err := s.AddInventoryItem("Facial Cleanser", 15)
	require.NoError(t, err)

	updated, err := s.SetStock(item.ID, 30)
	require.NoError(t, err)
	require.Equal(t, 30, updated.Quantity)

	_, err = s.SetStock(item.ID, -1)
	require.ErrorIs(t, err, ErrValidation)

	_, err = s.SetStock(999, 10)
	require.ErrorIs(t, err, ErrNotFound)
}

func TestAdjustStock(t *testing.T) {
	s := newTestStore(t)

	item, err := s.AddInventoryItem("Hot Stones", 10)
	require.NoError(t, err)

	updated, err := s.AdjustStock(item.ID, 5)
	require.NoError(t, err)
	require.Equal(t, 15, updated.Quantity)

	updated, err = s.AdjustStock(item.ID, -7)
	require.NoError(t, err)
	require.Equal(t, 8, updated.Quantity)

	_, err = s.AdjustStock(item.ID, -9)
	require.ErrorIs(t, err, ErrInsufficientStock)

	// Stock untouched by the failed adjustment.
	got, err := s.GetInventoryItemByID(item.ID)
	require.NoError(t, err)
	require.Equal(t, 8, got.Quantity)

	_, err = s.AdjustStock(999, -1)
	require.ErrorIs(t, err, ErrNotFound)
}

func TestLowStockItems(t *testing.T) {
	s := newTestStore(t)

	low, err := s.AddInventoryItem("Essential Oils Set", 3)
	require.NoError(t, err)
	_, err = s.AddInventoryItem("Lavender Massage Oil", 20)
	require.NoError(t, err)
	// Exactly at the threshold is not low stock.
	_, err = s.AddInventoryItem("Facial Cleanser", 5)
	require.NoError(t, err)

	items, err := s.LowStockItems()
	require.NoError(t, err)
	require.Len(t, items, 1)
	require.Equal(t, low.ID, items[0].ID)
}

func TestDeleteInventoryItem(t *testing.T) {
	s := newTestStore(t)

	item, err := s.AddInventoryItem("Hot Stones", 10)
	require.NoError(t, err)

	require.NoError(t, s.DeleteInventoryItem(item.ID))
	require.ErrorIs(t, s.DeleteInventoryItem(item.ID), ErrNotFound)
}
