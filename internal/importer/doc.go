// Package importer reads raw café sales exports into tabular form.
//
// Both CSV and Excel (.xlsx) sources are supported; the loader picks the
// reader from the file extension. All cell values are kept as strings so
// the cleaning pipeline can decide how to interpret sentinels and blanks.
package importer
