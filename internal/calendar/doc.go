// Package calendar reads the liturgical ICS feed.
//
// The feed is not parsed as general RFC 5545. The extractor walks the lines,
// tracks VEVENT blocks and keeps the two properties the export needs: the
// whole-day start date and the (possibly folded) summary.
package calendar
