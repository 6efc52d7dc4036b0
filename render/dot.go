package render

import (
	"fmt"
	"strings"

	"github.com/dipak93/Byzantine-Generals-Problem/core"
	"github.com/dipak93/Byzantine-Generals-Problem/oral"
)

// DOT renders participant's tree rooted at root as a Graphviz "digraph
// byz": rankdir=LR, one quoted node per path, one edge per parent-child
// relation, and a synthetic "General" node as the root's parent.
func DOT(t Tree, topo *oral.Topology, root core.Path) string {
	var b strings.Builder
	b.WriteString("digraph byz {\n")
	b.WriteString("rankdir=LR;\n")
	dumpDOT(&b, t, topo, root, true)
	b.WriteString("}\n")
	return b.String()
}

func dumpDOT(b *strings.Builder, t Tree, topo *oral.Topology, path core.Path, root bool) {
	for _, child := range topo.Children(path) {
		dumpDOT(b, t, topo, child, false)
	}

	if root {
		fmt.Fprintf(b, "General->%s;\n", quotedLabel(t, path))
		return
	}

	parent := path.Parent()
	fmt.Fprintf(b, "%s->%s;\n", quotedLabel(t, parent), quotedLabel(t, path))
}

func quotedLabel(t Tree, path core.Path) string {
	node, ok := t.Node(path)
	input, output := core.Faulty, core.Faulty
	if ok {
		input, output = node.Input, node.Output
	}
	return fmt.Sprintf("\"{%s,%s,%s}\"", input, path, output)
}
