// Package laptimes reads lap start and lap end logs.
//
// Every record is a driver code of any three characters immediately followed
// by a timestamp such as 2018-05-24_12:02:58.917. The hour is read on a 12-hour
// clock without a meridiem, so 12 (or 00) is the first hour.
package laptimes

import (
	"bufio"
	"fmt"
	"io"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/pkg/errors"

	"github.com/stefanyuk/racing-report/pkg/helper"
)

const (
	layout         = "2006-1-2_15:4:5"
	fractionDigits = 6
)

// month, day, hour, minute and second may drop their leading zero
var timestampPattern = regexp.MustCompile(`^(\d{4}-\d{1,2}-\d{1,2}_(?:1[0-2]|0?\d):\d{1,2}:\d{1,2})\.(\d{1,6})$`)

// Times maps a driver code to the moment logged for it.
type Times map[string]time.Time

// FormatError is returned when a record does not hold a valid timestamp.
type FormatError struct {
	Line int
	Text string
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("line %d: format of the time in the provided data is not correct: %q", e.Line, e.Text)
}

// Parse reads one record per line. Blank lines are skipped and a later record
// for the same driver replaces an earlier one.
func Parse(r io.Reader) (Times, error) {
	times := Times{}

	scanner := bufio.NewScanner(r)
	line := 0
	for scanner.Scan() {
		line++
		text := strings.TrimSpace(scanner.Text())
		if text == "" {
			continue
		}

		code, t, ok := parseRecord(text)
		if !ok {
			return nil, &FormatError{Line: line, Text: text}
		}
		times[code] = t
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrap(err, "scan lap times")
	}

	return times, nil
}

func parseRecord(text string) (string, time.Time, bool) {
	code, rest, ok := helper.SplitDriverCode(text)
	if !ok {
		return "", time.Time{}, false
	}

	m := timestampPattern.FindStringSubmatch(rest)
	if m == nil {
		return "", time.Time{}, false
	}

	t, err := time.Parse(layout, m[1])
	if err != nil {
		return "", time.Time{}, false
	}
	if t.Hour() == 12 {
		t = t.Add(-12 * time.Hour)
	}

	// "5" means 500000 microseconds, like any decimal fraction
	micros, err := strconv.Atoi(m[2] + strings.Repeat("0", fractionDigits-len(m[2])))
	if err != nil {
		return "", time.Time{}, false
	}

	return code, t.Add(time.Duration(micros) * time.Microsecond), true
}
