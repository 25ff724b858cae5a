// Package cli implements the command-line interface for kalendarz.
//
// The cli package provides the Cobra-based command that downloads the
// liturgical calendar for one year, converts it to JSON and writes
// <year>.json into the chosen directory. It coordinates the config, source,
// liturgy, export and storage packages and maps outcomes to exit codes.
package cli
