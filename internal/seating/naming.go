package seating

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/dlclark/regexp2"

	"github.com/Emmabm/web-lasrocas-sub000/internal/domain"
)

const tableNamePrefix = "M"

var tableNumberPattern = regexp2.MustCompile(`^M(?<n>\d+)$`, regexp2.IgnoreCase)

// TableNumber parses a standard table name of the form M<n>, in either case.
func TableNumber(name string) (int, bool) {
	m, err := tableNumberPattern.FindStringMatch(strings.TrimSpace(name))
	if err != nil || m == nil {
		return 0, false
	}
	n, err := strconv.Atoi(m.GroupByName("n").String())
	if err != nil || n < 1 {
		return 0, false
	}
	return n, true
}

func FormatTableName(n int) string {
	return fmt.Sprintf("%s%d", tableNamePrefix, n)
}

// NormalizeTableName trims name and rewrites any M<n> spelling ("m1", "M01") to its canonical form.
func NormalizeTableName(name string) string {
	name = strings.TrimSpace(name)
	if n, ok := TableNumber(name); ok {
		return FormatTableName(n)
	}
	return name
}

// IsMainTableName reports whether name is reserved for the main table.
func IsMainTableName(name string) bool {
	return strings.EqualFold(strings.TrimSpace(name), domain.MainTableName)
}

// NextTableName returns the lowest free M<n> among the used standard tables other than selfID.
// Gaps left by vacated tables are reused.
func NextTableName(tables []domain.Table, selfID string) string {
	taken := make(map[int]bool)
	for _, t := range tables {
		if t.ID == selfID || !isStandard(t) || !t.IsUsed {
			continue
		}
		if n, ok := TableNumber(t.TableName); ok {
			taken[n] = true
		}
	}

	n := 1
	for taken[n] {
		n++
	}
	return FormatTableName(n)
}

// NameTaken reports whether another used standard table already carries name.
func NameTaken(tables []domain.Table, selfID, name string) bool {
	for _, t := range tables {
		if t.ID == selfID || !isStandard(t) || !t.IsUsed {
			continue
		}
		if strings.EqualFold(NormalizeTableName(t.TableName), NormalizeTableName(name)) {
			return true
		}
	}
	return false
}

func isStandard(t domain.Table) bool {
	return t.IsAssignable && !t.IsMain
}
