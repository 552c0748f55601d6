package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/mmynk/kirat/internal/models"
	"github.com/mmynk/kirat/internal/storage"
)

// CreateBuilding persists a new building with its owner groups and members.
func (s *SQLiteStore) CreateBuilding(ctx context.Context, building *models.Building) error {
	if building.ID == "" {
		building.ID = uuid.New().String()
	}
	if building.CreatedAt == 0 {
		building.CreatedAt = time.Now().Unix()
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx,
		"INSERT INTO buildings (id, name, address, total_kirats, created_at) VALUES (?, ?, ?, ?, ?)",
		building.ID, building.Name, building.Address, building.TotalKirats, building.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert building: %w", err)
	}

	if err := insertGroups(ctx, tx, building); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}

// UpdateOwnership replaces the total kirats and the owner-group tree of a building.
func (s *SQLiteStore) UpdateOwnership(ctx context.Context, building *models.Building) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	result, err := tx.ExecContext(ctx,
		"UPDATE buildings SET total_kirats = ? WHERE id = ?",
		building.TotalKirats, building.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update building: %w", err)
	}
	if rows, _ := result.RowsAffected(); rows == 0 {
		return fmt.Errorf("building %s: %w", building.ID, storage.ErrNotFound)
	}

	// Members are removed by ON DELETE CASCADE.
	if _, err := tx.ExecContext(ctx, "DELETE FROM owner_groups WHERE building_id = ?", building.ID); err != nil {
		return fmt.Errorf("failed to delete owner groups: %w", err)
	}

	if err := insertGroups(ctx, tx, building); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}

func insertGroups(ctx context.Context, tx *sql.Tx, building *models.Building) error {
	for i := range building.OwnerGroups {
		group := &building.OwnerGroups[i]
		if group.ID == "" {
			group.ID = uuid.New().String()
		}

		_, err := tx.ExecContext(ctx,
			"INSERT INTO owner_groups (id, building_id, position, name, kirats) VALUES (?, ?, ?, ?, ?)",
			group.ID, building.ID, i, group.Name, group.Kirats,
		)
		if err != nil {
			return fmt.Errorf("failed to insert owner group: %w", err)
		}

		for j, member := range group.Members {
			_, err = tx.ExecContext(ctx,
				"INSERT INTO members (group_id, position, name, kirats, user_id) VALUES (?, ?, ?, ?, ?)",
				group.ID, j, member.Name, member.Kirats, nullable(member.UserID),
			)
			if err != nil {
				return fmt.Errorf("failed to insert member: %w", err)
			}
		}
	}
	return nil
}

// GetBuilding retrieves a building by ID, including owner groups and members.
func (s *SQLiteStore) GetBuilding(ctx context.Context, buildingID string) (*models.Building, error) {
	building := &models.Building{}
	err := s.db.QueryRowContext(ctx,
		"SELECT id, name, address, total_kirats, created_at FROM buildings WHERE id = ?",
		buildingID,
	).Scan(&building.ID, &building.Name, &building.Address, &building.TotalKirats, &building.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("building %s: %w", buildingID, storage.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get building: %w", err)
	}

	groups, err := s.loadGroups(ctx, buildingID)
	if err != nil {
		return nil, err
	}
	building.OwnerGroups = groups

	return building, nil
}

// ListBuildings retrieves all buildings ordered by name.
func (s *SQLiteStore) ListBuildings(ctx context.Context) ([]*models.Building, error) {
	rows, err := s.db.QueryContext(ctx, "SELECT id FROM buildings ORDER BY name, id")
	if err != nil {
		return nil, fmt.Errorf("failed to list buildings: %w", err)
	}

	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			rows.Close()
			return nil, fmt.Errorf("failed to scan building: %w", err)
		}
		ids = append(ids, id)
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate buildings: %w", err)
	}

	buildings := make([]*models.Building, 0, len(ids))
	for _, id := range ids {
		b, err := s.GetBuilding(ctx, id)
		if err != nil {
			return nil, err
		}
		buildings = append(buildings, b)
	}
	return buildings, nil
}

// loadGroups reads the owner groups of a building in position order.
func (s *SQLiteStore) loadGroups(ctx context.Context, buildingID string) ([]models.OwnerGroup, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT id, name, kirats FROM owner_groups WHERE building_id = ? ORDER BY position",
		buildingID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to get owner groups: %w", err)
	}

	groups := []models.OwnerGroup{}
	for rows.Next() {
		var g models.OwnerGroup
		if err := rows.Scan(&g.ID, &g.Name, &g.Kirats); err != nil {
			rows.Close()
			return nil, fmt.Errorf("failed to scan owner group: %w", err)
		}
		groups = append(groups, g)
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate owner groups: %w", err)
	}

	// Members are read after the group cursor is closed: the store holds a
	// single connection.
	for i := range groups {
		members, err := s.loadMembers(ctx, groups[i].ID)
		if err != nil {
			return nil, err
		}
		groups[i].Members = members
	}

	return groups, nil
}

func (s *SQLiteStore) loadMembers(ctx context.Context, groupID string) ([]models.Member, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT name, kirats, user_id FROM members WHERE group_id = ? ORDER BY position",
		groupID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to get members: %w", err)
	}
	defer rows.Close()

	members := []models.Member{}
	for rows.Next() {
		var m models.Member
		var userID sql.NullString
		if err := rows.Scan(&m.Name, &m.Kirats, &userID); err != nil {
			return nil, fmt.Errorf("failed to scan member: %w", err)
		}
		m.UserID = userID.String
		members = append(members, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate members: %w", err)
	}

	return members, nil
}
