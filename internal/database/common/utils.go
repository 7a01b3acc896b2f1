package common

import (
	"fmt"
	"regexp"
	"strings"
	"time"
)

var (
	commentRegex = regexp.MustCompile(`(?m)^\s*--.*$`)
	stringRegex  = regexp.MustCompile(`'(?:[^']|'')*'|"(?:[^"]|"")*"|` + "`(?:[^`]|``)*`")
)

// ParseSQLStatements splits a script into statements on semicolons that are
// not inside quoted literals. Line comments are dropped.
func ParseSQLStatements(sql string) []string {
	sql = commentRegex.ReplaceAllString(sql, "")

	quoted := make(map[int]bool)
	for _, match := range stringRegex.FindAllStringIndex(sql, -1) {
		for i := match[0]; i < match[1]; i++ {
			quoted[i] = true
		}
	}

	statements := make([]string, 0, strings.Count(sql, ";")+1)
	var current strings.Builder

	flush := func() {
		stmt := strings.TrimSpace(current.String())
		if stmt != "" && !strings.HasPrefix(stmt, "/*") {
			statements = append(statements, stmt)
		}
		current.Reset()
	}

	for i, char := range sql {
		if char == ';' && !quoted[i] {
			flush()
			continue
		}
		current.WriteRune(char)
	}
	flush()

	return statements
}

var dateLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02 15:04:05.999999999-07:00",
	"2006-01-02 15:04:05.999999999 -0700 MST",
	"2006-01-02 15:04:05",
	"2006-01-02T15:04:05",
	"2006-01-02",
}

// ParseDate converts a scanned DATE value into a UTC calendar date. Drivers
// hand these back as time.Time, string or []byte depending on the provider.
func ParseDate(src interface{}) (time.Time, error) {
	var t time.Time
	switch v := src.(type) {
	case time.Time:
		t = v
	case string:
		parsed, err := parseDateString(v)
		if err != nil {
			return time.Time{}, err
		}
		t = parsed
	case []byte:
		parsed, err := parseDateString(string(v))
		if err != nil {
			return time.Time{}, err
		}
		t = parsed
	case nil:
		return time.Time{}, fmt.Errorf("date is NULL")
	default:
		return time.Time{}, fmt.Errorf("unsupported date type %T", src)
	}

	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC), nil
}

func parseDateString(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("cannot parse date %q", s)
}
