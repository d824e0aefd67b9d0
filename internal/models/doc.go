// Package models defines the core domain models for potluck.
//
// # Models
//
//   - Group: a set of people sharing expenses, addressed by a mutable public ID
//   - Member: one person inside a group, identified by an opaque ID
//   - Receipt: an expense paid by one member, with weighted Splits
//   - Settlement: a suggested payment between two members (derived, never stored)
//
// # Design Principles
//
//  1. Money is always decimal.Decimal, never float64
//  2. Relationships use ID strings instead of pointers
//  3. Balances and settlements are recomputed from receipts on demand
package models
