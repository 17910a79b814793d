package schedule

import (
	"strconv"
	"strings"
)

// KeySeparator joins subject, catalog and section into the composite key.
const KeySeparator = "_"

// NumFields is the number of positional columns an input line must carry.
const NumFields = 9

// Item is one row of the schedule.
type Item struct {
	Subject    string
	Catalog    string
	Section    string
	Component  string
	Session    string
	Units      int
	TotEnrl    int
	CapEnrl    int
	Instructor string // "Last, First"
}

// Key returns subject_catalog_section.
func (it Item) Key() string {
	return it.Subject + KeySeparator + it.Catalog + KeySeparator + it.Section
}

// InstructorLastName returns the instructor name up to the first comma.
func (it Item) InstructorLastName() string {
	if i := strings.Index(it.Instructor, ","); i >= 0 {
		return it.Instructor[:i]
	}
	return it.Instructor
}

// Equal reports whether both items describe the same section.
// Only subject, catalog and section take part.
func (it Item) Equal(other Item) bool {
	return it.Subject == other.Subject && it.Catalog == other.Catalog && it.Section == other.Section
}

// Fields returns the columns in file order.
func (it Item) Fields() []string {
	return []string{
		it.Subject,
		it.Catalog,
		it.Section,
		it.Component,
		it.Session,
		strconv.Itoa(it.Units),
		strconv.Itoa(it.TotEnrl),
		strconv.Itoa(it.CapEnrl),
		it.Instructor,
	}
}

// String renders the item as a tab-separated line without the trailing newline.
func (it Item) String() string {
	return strings.Join(it.Fields(), "\t")
}
