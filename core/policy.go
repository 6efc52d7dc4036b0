package core

// Policy is the capability record that characterizes one simulation run.
// A non-faulty participant must implement ValueToSend as the identity on
// intended; only IsFaulty(sender) participants are allowed to diverge.
type Policy interface {
	SourceID() int
	M() int
	N() int
	Debug() bool

	SourceValue() Node
	ValueToSend(intended Value, sender, receiver int, path Path) Value
	DefaultValue() Value
	IsFaulty(id int) bool
}
