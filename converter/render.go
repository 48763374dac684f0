package converter

import (
	"bufio"
	"fmt"
	"io"
)

// Render writes the SQL script for rows into w: one TRUNCATE followed by
// one INSERT per row. With index set, the "index" column carries
// PatternRow.Index.
//
// Table, patterns and mime types are written verbatim. The registry is a
// trusted, hand-maintained file, so no quoting or escaping is applied.
func Render(w io.Writer, table string, rows []PatternRow, index bool) error {
	bw := bufio.NewWriter(w)

	fmt.Fprintf(bw, "TRUNCATE %s;\n", table)
	for _, row := range rows {
		if index {
			fmt.Fprintf(bw, "INSERT INTO %s (extension, mimetype, \"index\") VALUES ('%s', '%s', %d);\n",
				table, row.Pattern, row.MimeType, row.Index)
			continue
		}
		fmt.Fprintf(bw, "INSERT INTO %s (extension, mimetype) VALUES ('%s', '%s');\n",
			table, row.Pattern, row.MimeType)
	}

	return bw.Flush()
}
