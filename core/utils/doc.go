// Package utils provides loose value conversion for ledger object fields.
// Sui renders u64 values as decimal strings and nests Move structs under
// "fields"; these helpers flatten both into Go scalars.
package utils
