package models

import (
	"fmt"
	"strings"
)

// Report holds the ordered diagnosis finding lines.
type Report struct {
	Lines []string
}

// Addf appends one formatted finding line.
func (r *Report) Addf(format string, args ...any) {
	r.Lines = append(r.Lines, fmt.Sprintf(format, args...))
}

// Text renders the report body without a trailing newline.
func (r *Report) Text() string {
	return strings.Join(r.Lines, "\n")
}
