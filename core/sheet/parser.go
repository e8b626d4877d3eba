// Package sheet parses the delimited text served by published spreadsheet
// exports into uniform field-name -> value records.
package sheet

import "strings"

// Record maps a header field name to the row's value for that field.
// Every record produced from one parse shares the same field-name set;
// field order carries no meaning and consumers address fields by name.
type Record map[string]string

// Parse converts raw comma-delimited text into records. The first line is the
// header row; double quotes optionally wrap fields and make embedded commas
// literal. Data rows whose value count does not match the header count are
// dropped: trailing malformed rows are common in hand-edited sheets and must
// not poison the rest of the table.
func Parse(text string) []Record {
	lines := splitLines(strings.TrimSpace(text))
	if len(lines) < 2 {
		return nil
	}

	header := parseLine(lines[0])
	records := make([]Record, 0, len(lines)-1)

	for _, line := range lines[1:] {
		if line == "" {
			continue
		}
		values := parseLine(line)
		if len(values) != len(header) {
			continue
		}
		rec := make(Record, len(header))
		for i, name := range header {
			rec[name] = values[i]
		}
		records = append(records, rec)
	}
	return records
}

// parseLine splits one line into fields, honoring quote state: a double quote
// toggles "inside quoted field", and commas inside that state are literal.
// Each value is trimmed and stripped of surrounding quotes.
func parseLine(line string) []string {
	var values []string
	var current strings.Builder
	var inQuotes bool

	for _, ch := range line {
		switch {
		case ch == '"':
			inQuotes = !inQuotes
		case ch == ',' && !inQuotes:
			values = append(values, cleanValue(current.String()))
			current.Reset()
		default:
			current.WriteRune(ch)
		}
	}
	values = append(values, cleanValue(current.String()))
	return values
}

func cleanValue(v string) string {
	v = strings.TrimSpace(v)
	v = strings.TrimPrefix(v, `"`)
	v = strings.TrimSuffix(v, `"`)
	return strings.TrimSpace(v)
}

// splitLines splits on any newline convention.
func splitLines(text string) []string {
	return strings.Split(strings.ReplaceAll(text, "\r\n", "\n"), "\n")
}

// Marshal renders records back into delimited text with the given header
// order, quoting values that contain the separator. Parse(Marshal(recs)) is
// identity for well-formed records.
func Marshal(records []Record, header []string) string {
	var b strings.Builder
	writeRow := func(values []string) {
		for i, v := range values {
			if i > 0 {
				b.WriteByte(',')
			}
			if strings.Contains(v, ",") || strings.Contains(v, `"`) {
				b.WriteByte('"')
				b.WriteString(v)
				b.WriteByte('"')
			} else {
				b.WriteString(v)
			}
		}
		b.WriteByte('\n')
	}

	writeRow(header)
	row := make([]string, len(header))
	for _, rec := range records {
		for i, name := range header {
			row[i] = rec[name]
		}
		writeRow(row)
	}
	return b.String()
}
