// Package storage provides abstractions for persistent data storage.
package storage

import (
	"context"
	"errors"

	"github.com/mmynk/kirat/internal/models"
)

// ErrNotFound is returned (wrapped) when a requested record does not exist.
var ErrNotFound = errors.New("not found")

// DataLoader is the read boundary the report engine is fed through.
// The engine never sees how data was fetched, only the typed snapshots.
type DataLoader interface {
	// LoadBuildingData returns the building with its owner groups, its
	// properties, the payments of those properties for year, and the
	// building's expenses for year.
	LoadBuildingData(ctx context.Context, buildingID string, year int) (*models.BuildingData, error)

	// GetPerson retrieves a person by ID, with BuildingsOwned and
	// PropertiesRented recomputed from building and property records.
	GetPerson(ctx context.Context, personID string) (*models.Person, error)

	// ListPersonBuildingIDs returns the IDs of every building where the
	// person is a member or rents a property.
	ListPersonBuildingIDs(ctx context.Context, personID string) ([]string, error)
}

// Store defines the interface for ledger storage operations.
// This abstraction allows swapping storage backends (SQLite, PostgreSQL, etc.)
// without changing the service layer.
type Store interface {
	DataLoader

	// CreateBuilding persists a building with its owner groups and members.
	// Missing IDs are generated.
	CreateBuilding(ctx context.Context, building *models.Building) error

	// GetBuilding retrieves a building with its owner groups.
	GetBuilding(ctx context.Context, buildingID string) (*models.Building, error)

	// ListBuildings returns all buildings ordered by name.
	ListBuildings(ctx context.Context) ([]*models.Building, error)

	// UpdateOwnership replaces a building's total kirats and owner groups.
	// Groups keep their IDs when provided so scoped expenses stay attached.
	UpdateOwnership(ctx context.Context, building *models.Building) error

	// CreateProperty persists a new property in an existing building.
	CreateProperty(ctx context.Context, property *models.Property) error

	// RecordPayment stores a payment, replacing any existing payment for
	// the same property, year and month.
	RecordPayment(ctx context.Context, payment *models.Payment) error

	// CreateExpense persists a new building expense.
	CreateExpense(ctx context.Context, expense *models.Expense) error

	// CreatePerson inserts a new person.
	CreatePerson(ctx context.Context, person *models.Person) error

	// GetPersonByEmail retrieves a person by login email.
	GetPersonByEmail(ctx context.Context, email string) (*models.Person, error)

	// Close releases any resources held by the store.
	Close() error
}
