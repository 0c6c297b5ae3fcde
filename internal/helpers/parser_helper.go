package helpers

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

const dateLayout = "2006-01-02"

func ParseUint(s string) (uint, error) {
	n, err := strconv.ParseUint(s, 10, 32)
	if err != nil {
		return 0, err
	}
	return uint(n), nil
}

func ParseDate(s string) (time.Time, error) {
	return time.Parse(dateLayout, s)
}

// ParseCategoryIDs splits a comma-separated id list. Blank parts are
// skipped; an empty input yields an empty set, meaning no filter.
func ParseCategoryIDs(s string) ([]uint, error) {
	var ids []uint
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		id, err := ParseUint(part)
		if err != nil {
			return nil, fmt.Errorf("invalid category id %q", part)
		}
		ids = append(ids, id)
	}
	return ids, nil
}
