package domain

import (
	"encoding/json"
	"fmt"
	"strings"
)

// ClassList is the canonical representation of the classes a teacher
// handles. Older exports stored this field as a comma-joined string;
// UnmarshalJSON migrates that form on load and it is never written back.
type ClassList []string

func (c *ClassList) UnmarshalJSON(data []byte) error {
	var arr []string
	if err := json.Unmarshal(data, &arr); err == nil {
		*c = arr
		return nil
	}

	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("classes must be a string array or a comma-joined string: %w", err)
	}
	*c = SplitClasses(s)
	return nil
}

// SplitClasses parses a comma-joined class string into a ClassList,
// trimming whitespace and dropping empty entries.
func SplitClasses(s string) ClassList {
	var out ClassList
	for _, part := range strings.Split(s, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// String renders the list for display and for edit-form prefill.
func (c ClassList) String() string {
	return strings.Join(c, ", ")
}
