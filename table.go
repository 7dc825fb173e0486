package svgtiles

import (
	"io"
	"strconv"
	"strings"
)

// WriteTable writes tiles as a script assigning a nested table to
// variable:
//
//	window.VectorTilesLib = {"name":{
//		"y1":[
//			[0,0, 1,0, 1,1],
//			[5,5, 6,5]
//		]
//	}
//	};
//
// Buckets without chains are left out.
func WriteTable(w io.Writer, variable string, tiles []TileChains) error {
	var sb strings.Builder
	sb.WriteString(variable)
	sb.WriteString(" = {")
	for i, t := range tiles {
		if i > 0 {
			sb.WriteString(",\n")
		}
		sb.WriteString(strconv.Quote(t.Name))
		sb.WriteString(":{\n")

		first := true
		for b, chains := range t.Buckets {
			if len(chains) == 0 {
				continue
			}
			if !first {
				sb.WriteString(",\n")
			}
			first = false
			sb.WriteString("\t")
			sb.WriteString(strconv.Quote(Bucket(b).String()))
			sb.WriteString(":[\n")
			for j, c := range chains {
				if j > 0 {
					sb.WriteString(",\n")
				}
				sb.WriteString("\t\t[")
				sb.WriteString(c.String())
				sb.WriteString("]")
			}
			sb.WriteString("\n\t]")
		}
		sb.WriteString("\n}")
	}
	sb.WriteString("\n};")

	_, err := io.WriteString(w, sb.String())
	return err
}
