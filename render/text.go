// Package render formats a participant's message tree for human
// consumption: a plain post-order text dump and a Graphviz DOT dump.
// Both are computed at output time from the first-class core.Path type
// rather than a digit-encoded string, so there is no limit on how many
// participants can be rendered.
package render

import (
	"fmt"
	"strings"

	"github.com/dipak93/Byzantine-Generals-Problem/core"
	"github.com/dipak93/Byzantine-Generals-Problem/oral"
)

// Tree is the minimal view render needs of a participant's message tree,
// satisfied by *oral.Participant paired with *oral.Topology.
type Tree interface {
	Node(path core.Path) (core.Node, bool)
}

// Text renders participant's tree rooted at root, children first.
func Text(t Tree, topo *oral.Topology, root core.Path) string {
	var b strings.Builder
	dumpText(&b, t, topo, root)
	return b.String()
}

func dumpText(b *strings.Builder, t Tree, topo *oral.Topology, path core.Path) {
	for _, child := range topo.Children(path) {
		dumpText(b, t, topo, child)
	}
	node, ok := t.Node(path)
	input, output := core.Faulty, core.Faulty
	if ok {
		input, output = node.Input, node.Output
	}
	fmt.Fprintf(b, "{%s,%s,%s}\n", input, path, output)
}
