package utils

import (
	"errors"
	"fmt"
	"time"
)

// DateTimeLayout is the canonical interchange form for datetimes, both
// on the wire and when writing to MySQL ("YYYY-MM-DD HH:MM:SS").
const DateTimeLayout = "2006-01-02 15:04:05"

// binaryDateTimeLen is the size of the compact storage form: a
// little-endian 2-byte year followed by single bytes for month, day,
// hour, minute and second.
const binaryDateTimeLen = 7

// ErrInvalidDateTime is returned when a value cannot be interpreted as
// either the canonical string form or the compact binary form.
var ErrInvalidDateTime = errors.New("invalid datetime value")

// FormatDateTime renders t in the canonical string form, in UTC.
func FormatDateTime(t time.Time) string {
	return t.UTC().Format(DateTimeLayout)
}

// ParseDateTime parses the canonical "YYYY-MM-DD HH:MM:SS" form into a
// UTC time.
func ParseDateTime(s string) (time.Time, error) {
	t, err := time.Parse(DateTimeLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidDateTime, s)
	}
	return t.UTC(), nil
}

// DecodeBinaryDateTime decodes the compact 7-byte storage form.  The
// year occupies the first two bytes little-endian; the remaining bytes
// are month, day, hour, minute and second.  Values that do not form a
// real calendar date are rejected so a corrupted row cannot round-trip
// silently.
func DecodeBinaryDateTime(raw []byte) (time.Time, error) {
	if len(raw) != binaryDateTimeLen {
		return time.Time{}, fmt.Errorf("%w: expected %d bytes, got %d", ErrInvalidDateTime, binaryDateTimeLen, len(raw))
	}
	year := int(raw[0]) | int(raw[1])<<8
	month := int(raw[2])
	day := int(raw[3])
	hour := int(raw[4])
	minute := int(raw[5])
	second := int(raw[6])

	t := time.Date(year, time.Month(month), day, hour, minute, second, 0, time.UTC)
	// time.Date normalizes out-of-range components; reject anything that moved.
	if t.Year() != year || t.Month() != time.Month(month) || t.Day() != day ||
		t.Hour() != hour || t.Minute() != minute || t.Second() != second {
		return time.Time{}, fmt.Errorf("%w: out-of-range components", ErrInvalidDateTime)
	}
	return t, nil
}

// EncodeBinaryDateTime packs t into the compact 7-byte storage form.
// Inverse of DecodeBinaryDateTime for any datetime whose year fits in
// two bytes.
func EncodeBinaryDateTime(t time.Time) []byte {
	t = t.UTC()
	out := make([]byte, binaryDateTimeLen)
	out[0] = byte(t.Year() & 0xff)
	out[1] = byte(t.Year() >> 8)
	out[2] = byte(t.Month())
	out[3] = byte(t.Day())
	out[4] = byte(t.Hour())
	out[5] = byte(t.Minute())
	out[6] = byte(t.Second())
	return out
}

// DecodeDateTime interprets a datetime column value coming back from
// the driver.  MySQL may hand the column over either as the canonical
// string or as the compact binary form, so both are accepted.
func DecodeDateTime(raw []byte) (time.Time, error) {
	if len(raw) == binaryDateTimeLen {
		if t, err := DecodeBinaryDateTime(raw); err == nil {
			return t, nil
		}
	}
	return ParseDateTime(string(raw))
}
