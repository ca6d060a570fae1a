package harness

import (
	"strconv"
	"strings"

	"github.com/katalvlaran/twocolor/bipartite"
)

// Describe renders c as text: the colouring (0/1 per vertex) when the graph is
// bipartite, the odd cycle otherwise.
func Describe(c *bipartite.Checker) string {
	var sb strings.Builder
	if !c.IsBipartite() {
		sb.WriteString("Graph has an odd-length cycle:")
		for _, v := range c.OddCycle() {
			sb.WriteByte(' ')
			sb.WriteString(strconv.Itoa(v))
		}
		sb.WriteByte('\n')

		return sb.String()
	}

	sb.WriteString("Graph is bipartite\n")
	for v := 0; v < c.VertexCount(); v++ {
		side, _ := c.Color(v) // v is in range and the graph is bipartite
		sb.WriteString(strconv.Itoa(v))
		if side {
			sb.WriteString(": 1\n")
		} else {
			sb.WriteString(": 0\n")
		}
	}

	return sb.String()
}
