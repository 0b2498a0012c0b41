package sequencer

// Range selects the rows a run covers. From and To are 1-based and
// inclusive, as typed by the user; All ignores them.
type Range struct {
	All  bool
	From int
	To   int
}

// AllRows selects every row of the table.
func AllRows() Range {
	return Range{All: true}
}

// Rows selects rows from..to (1-based, inclusive).
func Rows(from, to int) Range {
	return Range{From: from, To: to}
}

// Resolve converts r into a half-open 0-based interval [start, end) over a
// table of rowCount rows. To is clamped to rowCount and From below 1 is
// treated as 1. An inverted range resolves to an empty interval.
func (r Range) Resolve(rowCount int) (start, end int) {
	if rowCount < 0 {
		rowCount = 0
	}
	if r.All {
		return 0, rowCount
	}

	start = r.From - 1
	if start < 0 {
		start = 0
	}
	end = r.To
	if end > rowCount {
		end = rowCount
	}
	if end < start {
		end = start
	}
	return start, end
}
