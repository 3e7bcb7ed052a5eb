// Package diag is the assembler diagnostic catalog.
//
// Diagnostics come in three categories. A Fatal diagnostic stops the
// assembly, a Serious diagnostic invalidates the offending line, and a
// Warning is advisory. Each diagnostic is identified by a Key, its category
// and numeric code, and carries a message from the catalog text.
package diag
