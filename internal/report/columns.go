package report

// DefaultColumnWidth is the render width of every derived column, in pixels.
const DefaultColumnWidth = 200

// Column describes one table column inferred from the record keys.
type Column struct {
	Key    string `json:"key"`
	Header string `json:"header"`
	Width  int    `json:"size"`
}

// DeriveColumns returns one column per distinct key across all object rows,
// ordered by first appearance. Non-object rows are skipped.
func DeriveColumns(rows []Row) []Column {
	seen := make(map[string]struct{})
	cols := []Column{}
	for _, row := range rows {
		if !row.IsObject() {
			continue
		}
		for _, k := range row.Record.keys {
			if _, ok := seen[k]; ok {
				continue
			}
			seen[k] = struct{}{}
			cols = append(cols, Column{Key: k, Header: k, Width: DefaultColumnWidth})
		}
	}
	return cols
}
