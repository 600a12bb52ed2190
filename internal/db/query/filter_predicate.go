package query

import "strings"

// FilterPredicate assembles a parameterised WHERE clause. Column names are
// written verbatim and must come from code, never from user input.
type FilterPredicate struct {
	predicate strings.Builder
	args      []interface{}
}

func NewFilterPredicate() *FilterPredicate {
	return &FilterPredicate{}
}

func (fp *FilterPredicate) Open() *FilterPredicate {
	fp.predicate.WriteString("(")
	return fp
}

func (fp *FilterPredicate) Close() *FilterPredicate {
	fp.predicate.WriteString(")")
	return fp
}

func (fp *FilterPredicate) And() *FilterPredicate {
	fp.predicate.WriteString(" AND ")
	return fp
}

func (fp *FilterPredicate) Or() *FilterPredicate {
	fp.predicate.WriteString(" OR ")
	return fp
}

func (fp *FilterPredicate) Not() *FilterPredicate {
	fp.predicate.WriteString("NOT ")
	return fp
}

func (fp *FilterPredicate) Equal(column string, value interface{}) *FilterPredicate {
	return fp.compare(column, "=", value)
}

func (fp *FilterPredicate) NotEqual(column string, value interface{}) *FilterPredicate {
	return fp.compare(column, "<>", value)
}

func (fp *FilterPredicate) GreaterOrEqual(column string, value interface{}) *FilterPredicate {
	return fp.compare(column, ">=", value)
}

func (fp *FilterPredicate) LessThan(column string, value interface{}) *FilterPredicate {
	return fp.compare(column, "<", value)
}

func (fp *FilterPredicate) Between(column string, v1, v2 interface{}) *FilterPredicate {
	fp.predicate.WriteString(column + " BETWEEN ? AND ?")
	fp.args = append(fp.args, v1, v2)
	return fp
}

// In matches any of values; an empty list matches nothing.
func (fp *FilterPredicate) In(column string, values ...interface{}) *FilterPredicate {
	if len(values) == 0 {
		fp.predicate.WriteString("1 = 0")
		return fp
	}
	fp.predicate.WriteString(column + " IN ?")
	fp.args = append(fp.args, values)
	return fp
}

func (fp *FilterPredicate) compare(column, op string, value interface{}) *FilterPredicate {
	fp.predicate.WriteString(column + " " + op + " ?")
	fp.args = append(fp.args, value)
	return fp
}

// Build returns the clause and its positional arguments, ready for
// gorm's Where.
func (fp *FilterPredicate) Build() (string, []interface{}) {
	return fp.predicate.String(), fp.args
}
