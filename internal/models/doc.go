// Package models defines the core domain entities for splitledger.
//
// # Entities
//
//   - User: a registered participant, referenced by expenses and splits
//   - Expense: money paid by one user on behalf of the group
//   - ExpenseSplit: the portion of an expense owed by one user
//
// # Design Principles
//
//  1. **Value types**: entities are plain structs with no behavior beyond data;
//     validation and aggregation live in the ledger package
//  2. **Avoid circular references**: relationships use ID strings, not pointers
//  3. **Exclusive ownership**: splits belong to exactly one expense and are
//     destroyed with it
package models
