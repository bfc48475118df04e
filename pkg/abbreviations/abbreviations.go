// Package abbreviations reads the file explaining every driver code.
package abbreviations

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/dimchansky/utfbom"
	"github.com/pkg/errors"

	"github.com/stefanyuk/racing-report/pkg/helper"
)

const (
	separator  = "_"
	fieldCount = 3
)

// Driver is a single line of the abbreviations file.
type Driver struct {
	Code string
	Name string
	Car  string
}

// Drivers maps a driver code to its explanation.
type Drivers map[string]Driver

// MalformedRecordError is returned for a line that cannot be read as a driver.
type MalformedRecordError struct {
	Line   int
	Text   string
	Reason string
}

func (e *MalformedRecordError) Error() string {
	return fmt.Sprintf("line %d: malformed abbreviation %q: %s", e.Line, e.Text, e.Reason)
}

// Parse reads lines of the form CODE_Full Name_Car Model.
func Parse(r io.Reader) (Drivers, error) {
	drivers := Drivers{}
	codesByName := map[string]string{}

	scanner := bufio.NewScanner(utfbom.SkipOnly(r))
	line := 0
	for scanner.Scan() {
		line++
		text := strings.TrimSpace(scanner.Text())
		if text == "" {
			continue
		}

		driver, reason := parseRecord(text)
		if reason == "" {
			if _, exists := drivers[driver.Code]; exists {
				reason = fmt.Sprintf("driver code %q is already defined", driver.Code)
			} else if code, exists := codesByName[driver.Name]; exists {
				reason = fmt.Sprintf("full name %q is already used by %s", driver.Name, code)
			}
		}
		if reason != "" {
			return nil, &MalformedRecordError{Line: line, Text: text, Reason: reason}
		}

		drivers[driver.Code] = driver
		codesByName[driver.Name] = driver.Code
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrap(err, "scan abbreviations")
	}

	return drivers, nil
}

func parseRecord(text string) (Driver, string) {
	fields := strings.Split(text, separator)
	if len(fields) != fieldCount {
		return Driver{}, fmt.Sprintf("expected %d fields separated by %q, got %d", fieldCount, separator, len(fields))
	}
	for i := range fields {
		fields[i] = strings.TrimSpace(fields[i])
		if fields[i] == "" {
			return Driver{}, fmt.Sprintf("field %d is empty", i+1)
		}
	}
	if !helper.IsDriverCode(fields[0]) {
		return Driver{}, fmt.Sprintf("driver code %q must be %d characters", fields[0], helper.DriverCodeLength)
	}

	return Driver{Code: fields[0], Name: fields[1], Car: fields[2]}, ""
}
