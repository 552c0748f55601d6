package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/mmynk/kirat/internal/models"
	"github.com/mmynk/kirat/internal/storage"
)

// CreatePerson inserts a new person into the database.
func (s *SQLiteStore) CreatePerson(ctx context.Context, person *models.Person) error {
	query := `
		INSERT INTO persons (id, email, display_name, phone, password_hash, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`

	_, err := s.db.ExecContext(ctx, query,
		person.ID,
		person.Email,
		person.DisplayName,
		person.Phone,
		person.PasswordHash,
		person.CreatedAt,
		person.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create person: %w", err)
	}

	return nil
}

// GetPersonByEmail retrieves a person by their email address.
func (s *SQLiteStore) GetPersonByEmail(ctx context.Context, email string) (*models.Person, error) {
	return s.getPerson(ctx, "email", email)
}

// GetPerson retrieves a person by ID with the buildings they own and the
// properties they rent.
func (s *SQLiteStore) GetPerson(ctx context.Context, personID string) (*models.Person, error) {
	person, err := s.getPerson(ctx, "id", personID)
	if err != nil {
		return nil, err
	}

	person.BuildingsOwned, err = s.queryIDs(ctx, `
		SELECT DISTINCT og.building_id
		FROM members m
		JOIN owner_groups og ON og.id = m.group_id
		WHERE m.user_id = ?
		ORDER BY og.building_id`,
		personID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to get owned buildings: %w", err)
	}

	person.PropertiesRented, err = s.queryIDs(ctx,
		"SELECT id FROM properties WHERE renter_id = ? ORDER BY id",
		personID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to get rented properties: %w", err)
	}

	return person, nil
}

// ListPersonBuildingIDs returns every building the person owns kirats in
// or rents a property in.
func (s *SQLiteStore) ListPersonBuildingIDs(ctx context.Context, personID string) ([]string, error) {
	ids, err := s.queryIDs(ctx, `
		SELECT og.building_id FROM members m
		JOIN owner_groups og ON og.id = m.group_id
		WHERE m.user_id = ?
		UNION
		SELECT building_id FROM properties WHERE renter_id = ?`,
		personID, personID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to get person buildings: %w", err)
	}
	return ids, nil
}

// getPerson looks a person up by a unique column.
func (s *SQLiteStore) getPerson(ctx context.Context, column, value string) (*models.Person, error) {
	query := fmt.Sprintf(`
		SELECT id, email, display_name, phone, password_hash, created_at, updated_at
		FROM persons
		WHERE %s = ?
	`, column)

	person := &models.Person{}
	err := s.db.QueryRowContext(ctx, query, value).Scan(
		&person.ID,
		&person.Email,
		&person.DisplayName,
		&person.Phone,
		&person.PasswordHash,
		&person.CreatedAt,
		&person.UpdatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("person %s: %w", value, storage.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get person: %w", err)
	}

	return person, nil
}

func (s *SQLiteStore) queryIDs(ctx context.Context, query string, args ...any) ([]string, error) {
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	ids := []string{}
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}
