package termtext

import "strings"

// Column is one block of text laid out by FormatColumns, wrapped to Columns cells.
type Column struct {
	Text    string
	Columns int
}

// PadEnd appends spaces to text until it occupies columns cells.
func (r *Ruler) PadEnd(text string, columns int) string {
	if missing := columns - r.Columns(text); missing > 0 {
		return text + strings.Repeat(" ", missing)
	}
	return text
}

// Wrap breaks every line of text into chunks of at most columns cells and pads
// each chunk with spaces to exactly columns cells, so the block is rectangular.
func (r *Ruler) Wrap(text string, columns int) ([]string, error) {
	var lines []string
	for _, line := range strings.Split(text, "\n") {
		chunks, err := r.Chunks(line, columns)
		if err != nil {
			return nil, err
		}
		if len(chunks) == 0 {
			chunks = []string{""}
		}
		for _, chunk := range chunks {
			lines = append(lines, r.PadEnd(chunk, columns))
		}
	}
	return lines, nil
}

// AddColumn places right, wrapped to rightColumns cells, next to the block left.
// Left lines are padded to the widest left line plus the Ruler's padding; rows
// missing on either side are treated as empty.
func (r *Ruler) AddColumn(left, right string, rightColumns int) (string, error) {
	rightLines, err := r.Wrap(right, rightColumns)
	if err != nil {
		return "", err
	}
	if left == "" {
		return strings.Join(rightLines, "\n"), nil
	}

	leftLines := strings.Split(left, "\n")
	leftColumns := 0
	for _, line := range leftLines {
		leftColumns = max(leftColumns, r.Columns(line))
	}

	gap := strings.Repeat(" ", r.padding)
	rows := make([]string, max(len(leftLines), len(rightLines)))
	for i := range rows {
		var l, rt string
		if i < len(leftLines) {
			l = leftLines[i]
		}
		if i < len(rightLines) {
			rt = rightLines[i]
		}
		rows[i] = r.PadEnd(l, leftColumns) + gap + rt
	}
	return strings.Join(rows, "\n"), nil
}

// FormatColumns lays out columns side by side, left to right.
func (r *Ruler) FormatColumns(columns ...Column) (string, error) {
	var out string
	for _, col := range columns {
		var err error
		out, err = r.AddColumn(out, col.Text, col.Columns)
		if err != nil {
			return "", err
		}
	}
	return out, nil
}
