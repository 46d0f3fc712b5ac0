package services

import (
	"testing"

	"github.com/kasiam87/eCommerceApp/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListItems(t *testing.T) {
	db := newTestDB(t)
	svc := NewItemService(repository.NewItemRepository(db))

	seedItem(t, db, "Round Widget", 299)
	seedItem(t, db, "Square Widget", 199)

	items, err := svc.List()
	require.NoError(t, err)
	assert.Len(t, items, 2)
}

func TestGetItemByID(t *testing.T) {
	db := newTestDB(t)
	svc := NewItemService(repository.NewItemRepository(db))

	item := seedItem(t, db, "Round Widget", 299)

	found, err := svc.GetByID(item.ID)
	require.NoError(t, err)
	assert.Equal(t, "Round Widget", found.Name)

	_, err = svc.GetByID(9999)
	assert.ErrorIs(t, err, ErrItemNotFound)
}

func TestGetItemsByName(t *testing.T) {
	db := newTestDB(t)
	svc := NewItemService(repository.NewItemRepository(db))

	seedItem(t, db, "Round Widget", 299)
	seedItem(t, db, "Round Widget", 350)

	items, err := svc.GetByName("Round Widget")
	require.NoError(t, err)
	assert.Len(t, items, 2)
}

func TestGetItemsByNameEmptyResultIsNotFound(t *testing.T) {
	db := newTestDB(t)
	svc := NewItemService(repository.NewItemRepository(db))

	// unknown name and known-but-empty behave identically
	_, err := svc.GetByName("No Such Widget")
	assert.ErrorIs(t, err, ErrNoMatchingItems)
}
