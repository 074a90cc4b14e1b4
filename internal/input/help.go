package input

// Help maps input sequences (in keyspec notation) to explanations of what
// they do.
type Help = map[string]string

// GetHelp returns the help for all sequences in the tree.
func (t *Tree) GetHelp() Help {
	return t.root.help()
}

func (n *node) help() Help {
	result := Help{}

	if n.action != nil {
		result[""] = n.action.Explain()
	} else {
		for k, c := range n.children {
			for partialCombo, explanation := range c.help() {
				result[ToConfigIdentifierString(k)+partialCombo] = explanation
			}
		}
	}

	return result
}
