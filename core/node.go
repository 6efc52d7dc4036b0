package core

// Node is a single slot in a participant's message tree: the value it
// received this protocol run (Input), and the value the bottom-up majority
// reduction assigns it during the decision phase (Output).
type Node struct {
	Input  Value
	Output Value
}
