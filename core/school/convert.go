package school

import (
	"strconv"
	"strings"
	"time"
)

// AmountFromString extracts a currency amount from a raw sheet cell.
// Cells arrive in mixed shapes ("300000", "Rp 300.000", "Rp300,000,-");
// only digits count, and a cell with no digits is zero.
func AmountFromString(s string) int64 {
	var digits strings.Builder
	for _, ch := range s {
		if ch >= '0' && ch <= '9' {
			digits.WriteRune(ch)
		}
	}
	if digits.Len() == 0 {
		return 0
	}
	n, err := strconv.ParseInt(digits.String(), 10, 64)
	if err != nil {
		return 0
	}
	return n
}

// DateFromString parses the sheets' YYYY-MM-DD dates, tolerating a trailing
// time part ("2025-01-15T00:00:00.000Z"). The zero time is the documented
// "unparseable" sentinel; callers sort those last and display them as "-".
func DateFromString(s string) time.Time {
	s = strings.TrimSpace(s)
	if i := strings.IndexByte(s, 'T'); i > 0 {
		s = s[:i]
	}
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return time.Time{}
	}
	return t
}

// NormalizeSemester maps the many spellings found in the sheets
// ("1", "Semester 1", "Ganjil", "I", "Genap", ...) onto "1" or "2".
// Unrecognized input normalizes to "" rather than guessing.
func NormalizeSemester(s string) string {
	lower := strings.ToLower(strings.TrimSpace(s))
	switch {
	case lower == "":
		return ""
	case strings.Contains(lower, "2") || strings.Contains(lower, "genap") || strings.Contains(lower, "ii"):
		return "2"
	case strings.Contains(lower, "1") || strings.Contains(lower, "ganjil") || strings.Contains(lower, "i"):
		return "1"
	}
	return ""
}

// StatusPaid interprets an SPP status cell: paid means it mentions "lunas"
// without "belum" ("Belum Lunas" is an outstanding bill, not a paid one).
func StatusPaid(status string) bool {
	lower := strings.ToLower(status)
	return strings.Contains(lower, "lunas") && !strings.Contains(lower, "belum")
}
