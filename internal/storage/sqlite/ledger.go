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

// CreateProperty inserts a property into an existing building.
func (s *SQLiteStore) CreateProperty(ctx context.Context, property *models.Property) error {
	if err := s.requireBuilding(ctx, property.BuildingID); err != nil {
		return err
	}
	if property.ID == "" {
		property.ID = uuid.New().String()
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO properties (id, building_id, unit, type, payment_type, fixed_rent, renter_id)
		VALUES (?, ?, ?, ?, ?, ?, ?)`,
		property.ID, property.BuildingID, property.Unit, string(property.Type),
		string(property.PaymentType), property.FixedRent, nullable(property.RenterID),
	)
	if err != nil {
		return fmt.Errorf("failed to insert property: %w", err)
	}
	return nil
}

// RecordPayment upserts the payment for (property, year, month).
func (s *SQLiteStore) RecordPayment(ctx context.Context, payment *models.Payment) error {
	var exists int
	err := s.db.QueryRowContext(ctx, "SELECT 1 FROM properties WHERE id = ?", payment.PropertyID).Scan(&exists)
	if errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("property %s: %w", payment.PropertyID, storage.ErrNotFound)
	}
	if err != nil {
		return fmt.Errorf("failed to get property: %w", err)
	}

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO payments (property_id, year, month, amount) VALUES (?, ?, ?, ?)
		ON CONFLICT (property_id, year, month) DO UPDATE SET amount = excluded.amount`,
		payment.PropertyID, payment.Year, payment.Month, payment.Amount,
	)
	if err != nil {
		return fmt.Errorf("failed to record payment: %w", err)
	}
	return nil
}

// CreateExpense inserts a building expense. The owner group is not checked:
// groups may later be removed and reports tolerate dangling references.
func (s *SQLiteStore) CreateExpense(ctx context.Context, expense *models.Expense) error {
	if err := s.requireBuilding(ctx, expense.BuildingID); err != nil {
		return err
	}
	if expense.ID == "" {
		expense.ID = uuid.New().String()
	}
	if expense.CreatedAt == 0 {
		expense.CreatedAt = time.Now().Unix()
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO expenses (id, building_id, year, description, amount, expense_type, owner_group_id, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		expense.ID, expense.BuildingID, expense.Year, expense.Description, expense.Amount,
		string(expense.ExpenseType), nullable(expense.OwnerGroupID), expense.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert expense: %w", err)
	}
	return nil
}

func (s *SQLiteStore) requireBuilding(ctx context.Context, buildingID string) error {
	var exists int
	err := s.db.QueryRowContext(ctx, "SELECT 1 FROM buildings WHERE id = ?", buildingID).Scan(&exists)
	if errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("building %s: %w", buildingID, storage.ErrNotFound)
	}
	if err != nil {
		return fmt.Errorf("failed to get building: %w", err)
	}
	return nil
}

// LoadBuildingData assembles the report snapshot of one building for a year.
func (s *SQLiteStore) LoadBuildingData(ctx context.Context, buildingID string, year int) (*models.BuildingData, error) {
	building, err := s.GetBuilding(ctx, buildingID)
	if err != nil {
		return nil, err
	}

	data := &models.BuildingData{Building: *building}

	if data.Properties, err = s.listProperties(ctx, buildingID); err != nil {
		return nil, err
	}
	if data.Payments, err = s.listPayments(ctx, buildingID, year); err != nil {
		return nil, err
	}
	if data.Expenses, err = s.listExpenses(ctx, buildingID, year); err != nil {
		return nil, err
	}

	return data, nil
}

func (s *SQLiteStore) listProperties(ctx context.Context, buildingID string) ([]models.Property, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, building_id, unit, type, payment_type, fixed_rent, renter_id
		FROM properties WHERE building_id = ?`,
		buildingID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to get properties: %w", err)
	}
	defer rows.Close()

	properties := []models.Property{}
	for rows.Next() {
		var p models.Property
		var propType, paymentType string
		var renterID sql.NullString
		if err := rows.Scan(&p.ID, &p.BuildingID, &p.Unit, &propType, &paymentType, &p.FixedRent, &renterID); err != nil {
			return nil, fmt.Errorf("failed to scan property: %w", err)
		}
		p.Type = models.PropertyType(propType)
		p.PaymentType = models.PaymentType(paymentType)
		p.RenterID = renterID.String
		properties = append(properties, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate properties: %w", err)
	}
	return properties, nil
}

func (s *SQLiteStore) listPayments(ctx context.Context, buildingID string, year int) ([]models.Payment, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT pay.property_id, pay.year, pay.month, pay.amount
		FROM payments pay
		JOIN properties p ON p.id = pay.property_id
		WHERE p.building_id = ? AND pay.year = ?`,
		buildingID, year,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to get payments: %w", err)
	}
	defer rows.Close()

	payments := []models.Payment{}
	for rows.Next() {
		var pay models.Payment
		if err := rows.Scan(&pay.PropertyID, &pay.Year, &pay.Month, &pay.Amount); err != nil {
			return nil, fmt.Errorf("failed to scan payment: %w", err)
		}
		payments = append(payments, pay)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate payments: %w", err)
	}
	return payments, nil
}

func (s *SQLiteStore) listExpenses(ctx context.Context, buildingID string, year int) ([]models.Expense, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, building_id, year, description, amount, expense_type, owner_group_id, created_at
		FROM expenses WHERE building_id = ? AND year = ?
		ORDER BY created_at, rowid`,
		buildingID, year,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to get expenses: %w", err)
	}
	defer rows.Close()

	expenses := []models.Expense{}
	for rows.Next() {
		var e models.Expense
		var expenseType string
		var groupID sql.NullString
		if err := rows.Scan(&e.ID, &e.BuildingID, &e.Year, &e.Description, &e.Amount, &expenseType, &groupID, &e.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan expense: %w", err)
		}
		e.ExpenseType = models.ExpenseType(expenseType)
		e.OwnerGroupID = groupID.String
		expenses = append(expenses, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate expenses: %w", err)
	}
	return expenses, nil
}
