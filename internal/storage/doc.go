// Package storage writes exported calendars to disk.
//
// Each year is stored as <dir>/<year>.json. The directory is created on the
// first write, so a run that produces nothing leaves the filesystem alone.
package storage
