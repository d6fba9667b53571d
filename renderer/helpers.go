package renderer

import (
	"bytes"
	"io"
	"strings"
)

// ConditionalBlock let you fully write a block and decide at the end to print it or not.
// If the block function returns true, the content is printed to w, otherwise it is discarded.
func ConditionalBlock(w io.Writer, block func(io.Writer) bool) {
	bw := &bytes.Buffer{}
	if block(bw) {
		io.Copy(w, bw)
	}
}

// escape makes a cell safe inside a markdown table row.
func escape(cell string) string {
	return strings.ReplaceAll(cell, "|", `\|`)
}

// numeric reports whether a cell should be right aligned.
func numeric(cell any) bool {
	switch v := cell.(type) {
	case int, int64, float64:
		return true
	case string:
		return strings.HasPrefix(v, "$")
	default:
		return false
	}
}
