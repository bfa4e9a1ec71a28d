// Package pagination provides the --limit/--offset/--page and --sort handling
// shared by list-style commands such as rank.
//
//   - Params: CLI flag parsing and validation
//   - Meta: page metadata attached to JSON output
//   - SupplierSorter: field-validated stable sorting of a supplier ranking
package pagination
