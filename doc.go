// Package fleet provides the types and functions to manage a small fleet of
// boats: what was paid for each boat, and how much has been spent on it since.
//
// The core functionalities include:
//   - Record Model: the [Boat] entity and its fixed-width report line.
//   - Catalog Import/Export: parsing the human-editable, comma separated
//     catalog format into a [Fleet], and writing it back.
//   - Snapshot Persistence: a versioned binary encoding of the whole fleet,
//     used to continue a session where the previous one stopped.
//   - Fleet Operations: lookup, add, remove and expense authorization. An
//     expense is authorized only if the boat's expenses stay lower or equal
//     to the price paid for it.
//
// Amounts are exact decimals, no floating point arithmetic is involved in the
// expense authorization rule.
//
// This package serves as the foundational logic for the `fms` command-line
// tool.
package fleet
