// Package models defines the core domain models for Kirat.
//
// # Ownership
//
// A Building is divided into a fixed number of kirats. Owner groups hold a
// share of those kirats and each group divides its share among members:
//   - Building: the unit of ownership, with TotalKirats (commonly 24)
//   - OwnerGroup: a named set of members jointly holding kirats
//   - Member: one owner inside a group, optionally linked to a Person
//
// # Income and expenses
//
//   - Property: a rentable unit (apartment or store) inside a building
//   - Payment: a recorded rent payment for one property and month
//   - Expense: a yearly building expense, split proportionally or equally
//
// # Reports
//
// The report types (YearlyReport, BuildingDivisionReport,
// PersonConsolidatedReport) are derived, never persisted. They are produced
// by the calculator package from a BuildingData snapshot.
//
// # Design Principles
//
// 1. **Money is decimal**: every amount is a decimal.Decimal, never a float
// 2. **Weak references**: Member.UserID and Property.RenterID are plain IDs
// 3. **Read-only inputs**: the calculator never mutates a snapshot
package models
