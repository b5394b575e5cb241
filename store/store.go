// Package store is the domain layer: validated create/read/update/delete
// operations for every entity, each scoped to a single unit of work on the
// database handle the Store was built with.
package store

import (
	"gorm.io/gorm"
)

type Store struct {
	db *gorm.DB
}

func New(db *gorm.DB) *Store {
	return &Store{db: db}
}
