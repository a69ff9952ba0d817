package term

// MinRows is the smallest grid worth rendering.
const MinRows = 4

// Fit returns the largest grid with a 2:1 column to row ratio that fits a
// w×h terminal. Characters are about twice as tall as they are wide, so
// this keeps pixels square. ok is false when the terminal is too small.
func Fit(w, h int) (cols, rows int, ok bool) {
	rows = min(h, w/2)
	if rows < MinRows {
		return 0, 0, false
	}
	return rows * 2, rows, true
}
