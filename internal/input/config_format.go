package input

// Keyspec is a key sequence in configuration notation, e.g. "gg" or "<c-d>".
type Keyspec string

// Actionspec names an action a key sequence can be mapped to.
type Actionspec string
