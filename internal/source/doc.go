// Package source downloads the yearly liturgical ICS feed.
//
// The feed lives at <base>/calendar/ics/<year>-pl-PL.ics?v=3. A 404 means
// the calendar for that year has not been published yet and is reported as
// ErrNotPublished so callers can treat it as an expected outcome.
package source
