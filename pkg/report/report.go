// Package report ranks drivers by lap time and renders the result.
package report

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/stefanyuk/racing-report/pkg/abbreviations"
	"github.com/stefanyuk/racing-report/pkg/helper"
	"github.com/stefanyuk/racing-report/pkg/laptimes"
)

const (
	SourceStart         = "start"
	SourceAbbreviations = "abbreviations"
)

type Order int

const (
	Asc Order = iota
	Desc
)

func (o Order) String() string {
	if o == Desc {
		return "desc"
	}
	return "asc"
}

// ParseOrder returns Desc only for "desc", every other value sorts ascending.
func ParseOrder(s string) Order {
	if strings.EqualFold(strings.TrimSpace(s), "desc") {
		return Desc
	}
	return Asc
}

type Options struct {
	Order Order
	// Driver limits the report to the driver with this full name.
	Driver string
}

// Entry is one driver line of the report. Rank always reflects the ascending
// lap time position, whatever order the entries are shown in.
type Entry struct {
	Code string
	Name string
	Car  string
	Lap  time.Duration
	Rank int
}

func (e Entry) LapTime() string {
	return helper.FormatLapTime(e.Lap)
}

type Entries []Entry

func (es Entries) Find(name string) (Entry, bool) {
	for _, e := range es {
		if e.Name == name {
			return e, true
		}
	}
	return Entry{}, false
}

// Filter returns the entry of the named driver, or an empty report when there
// is no such driver.
func (es Entries) Filter(name string) Entries {
	if e, found := es.Find(name); found {
		return Entries{e}
	}
	return Entries{}
}

// MissingRecordError is returned when a driver with a lap end has no matching
// lap start or abbreviation.
type MissingRecordError struct {
	Code   string
	Source string
}

func (e *MissingRecordError) Error() string {
	return fmt.Sprintf("driver %q has a lap end but no record in %s", e.Code, e.Source)
}

// Build joins lap starts, lap ends and abbreviations by driver code. Every
// driver with a lap end must be known to the other two sources.
func Build(start, end laptimes.Times, drivers abbreviations.Drivers, opts Options) (Entries, error) {
	codes := make([]string, 0, len(end))
	for code := range end {
		codes = append(codes, code)
	}
	sort.Strings(codes)

	entries := make(Entries, 0, len(codes))
	for _, code := range codes {
		started, ok := start[code]
		if !ok {
			return nil, &MissingRecordError{Code: code, Source: SourceStart}
		}
		driver, ok := drivers[code]
		if !ok {
			return nil, &MissingRecordError{Code: code, Source: SourceAbbreviations}
		}

		entries = append(entries, Entry{
			Code: code,
			Name: driver.Name,
			Car:  driver.Car,
			Lap:  end[code].Sub(started),
		})
	}

	// codes are already sorted so equal laps keep code order
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Lap < entries[j].Lap
	})
	for i := range entries {
		entries[i].Rank = i + 1
	}

	if opts.Order == Desc {
		for i, j := 0, len(entries)-1; i < j; i, j = i+1, j-1 {
			entries[i], entries[j] = entries[j], entries[i]
		}
	}

	if opts.Driver != "" {
		return entries.Filter(opts.Driver), nil
	}
	return entries, nil
}
