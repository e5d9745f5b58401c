package service

import "regexp"

// Credential scans come from many barcode formats, so the student id is
// fished out of the raw text with a fixed pattern order, first match wins.
var scanPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)ID:\s*(\d+)`),      // ID: 12345
	regexp.MustCompile(`(?i)Student:\s*(\d+)`), // Student: 12345
	regexp.MustCompile(`(\d{6,10})`),           // bare 6-10 digit run
	regexp.MustCompile(`(?i)SID:\s*(\d+)`),     // SID: 12345
}

var anyDigits = regexp.MustCompile(`\d+`)

// ExtractStudentID parses raw decoded scanner text into a best-effort student
// id. It never fails: with no labeled pattern it falls back to the first
// digit run, and with no digits at all it returns the input unchanged so the
// downstream suffix comparison simply mismatches.
func ExtractStudentID(raw string) string {
	for _, pattern := range scanPatterns {
		if m := pattern.FindStringSubmatch(raw); m != nil && m[1] != "" {
			return m[1]
		}
	}

	if m := anyDigits.FindString(raw); m != "" {
		return m
	}

	return raw
}
