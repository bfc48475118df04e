package helper

import (
	"fmt"
	"time"
	"unicode"
	"unicode/utf8"
)

const DriverCodeLength = 3

// method to convert a lap duration to hours:minutes:seconds.milliseconds
// sub-millisecond digits are dropped, not rounded
func FormatLapTime(d time.Duration) string {
	sign := ""
	if d < 0 {
		sign = "-"
		d = -d
	}
	d = d.Truncate(time.Millisecond)

	hours := d / time.Hour
	d -= hours * time.Hour
	minutes := d / time.Minute
	d -= minutes * time.Minute
	seconds := d / time.Second
	d -= seconds * time.Second
	milliseconds := d / time.Millisecond

	return fmt.Sprintf("%s%d:%02d:%02d.%03d", sign, hours, minutes, seconds, milliseconds)
}

// IsDriverCode reports whether code has exactly three visible characters.
func IsDriverCode(code string) bool {
	if utf8.RuneCountInString(code) != DriverCodeLength {
		return false
	}
	for _, r := range code {
		if unicode.IsSpace(r) || !unicode.IsPrint(r) {
			return false
		}
	}
	return true
}

// SplitDriverCode cuts a log record into its driver code, which is any three
// characters, and the rest of the line. ok is false when the line is too short.
func SplitDriverCode(line string) (code, rest string, ok bool) {
	if utf8.RuneCountInString(line) < DriverCodeLength {
		return "", "", false
	}
	i := 0
	for n := 0; n < DriverCodeLength; n++ {
		_, size := utf8.DecodeRuneInString(line[i:])
		i += size
	}
	return line[:i], line[i:], true
}
