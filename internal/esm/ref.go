package esm

import "github.com/ebkarlson404/StarFieldMiner/internal/value"

// refField reads a reference-valued field written raw or decorated.
func refField(n *value.Node) (string, bool) {
	text, err := n.Text()
	if err != nil || text == "" {
		return "", false
	}

	return value.FormRef(text), true
}
