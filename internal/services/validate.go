package services

import "regexp"

// Months and dates stay opaque sortable strings end to end; the services
// only check the shape, never parse them into calendar values.
var (
	monthPattern = regexp.MustCompile(`^\d{4}-(0[1-9]|1[0-2])$`)
	datePattern  = regexp.MustCompile(`^\d{4}-(0[1-9]|1[0-2])-(0[1-9]|[12]\d|3[01])$`)
)

func isValidMonth(month string) bool {
	return monthPattern.MatchString(month)
}

func isValidDate(date string) bool {
	return datePattern.MatchString(date)
}
