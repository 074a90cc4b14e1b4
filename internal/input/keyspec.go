package input

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/gdamore/tcell/v2"
)

var (
	identifierToKey map[string]Key
	keyToIdentifier map[Key]string
)

func init() {
	identifierToKey = map[string]Key{
		"space": {Key: tcell.KeyRune, Ch: ' '},
		"cr":    {Key: tcell.KeyEnter},
		"esc":   {Key: tcell.KeyESC},
		"del":   {Key: tcell.KeyDelete},
		"bs":    {Key: tcell.KeyBackspace2},
		"tab":   {Key: tcell.KeyTab},
		"left":  {Key: tcell.KeyLeft},
		"right": {Key: tcell.KeyRight},
		"up":    {Key: tcell.KeyUp},
		"down":  {Key: tcell.KeyDown},
		"pgup":  {Key: tcell.KeyPgUp},
		"pgdn":  {Key: tcell.KeyPgDn},
		"home":  {Key: tcell.KeyHome},
		"end":   {Key: tcell.KeyEnd},

		"c-space": {Key: tcell.KeyCtrlSpace},
		"c-bs":    {Key: tcell.KeyBackspace},
	}
	// tcell reuses codes for some control keys (<c-i> is <tab>, <c-m> is <cr>),
	// those keep their named identifier.
	for c := 'a'; c <= 'z'; c++ {
		k := Key{Key: tcell.KeyCtrlA + tcell.Key(c-'a')}
		identifierToKey["c-"+string(c)] = k
	}

	keyToIdentifier = make(map[Key]string, len(identifierToKey))
	for id, k := range identifierToKey {
		if _, taken := keyToIdentifier[k]; taken && len(id) == 3 && strings.HasPrefix(id, "c-") {
			continue
		}
		keyToIdentifier[k] = id
	}
}

// ConfigKeyspecToKeys converts full key sequence specification strings (e.g.
// "<space>qw" meaning the SPACE key, then the Q key, then the W key) to the
// appropriate sequence of Keys (or an error, if invalid).
func ConfigKeyspecToKeys(spec Keyspec) ([]Key, error) {
	if len(spec) == 0 {
		return nil, fmt.Errorf("empty keyspec")
	}

	var result []Key
	var special []rune
	inSpecial := false

	for pos, r := range string(spec) {
		switch {
		case r == '<' && !inSpecial:
			inSpecial = true
			special = special[:0]
		case r == '<':
			return nil, fmt.Errorf("illegal second opening special context ('<') before previous is closed (pos %d)", pos)
		case r == '>' && inSpecial:
			inSpecial = false
			key, err := KeyIdentifierToKey(string(special))
			if err != nil {
				return nil, fmt.Errorf("error mapping identifier '<%s>' to key: %w", string(special), err)
			}
			result = append(result, key)
		case r == '>':
			return nil, fmt.Errorf("illegal closing of special context ('>') while none open (pos %d)", pos)
		case inSpecial:
			if !unicode.IsLetter(r) && r != '-' {
				return nil, fmt.Errorf("illegal character '%c' in special context (pos %d)", r, pos)
			}
			special = append(special, r)
		default:
			result = append(result, Key{Key: tcell.KeyRune, Ch: r})
		}
	}
	if inSpecial {
		return nil, fmt.Errorf("unclosed special context in '%s'", spec)
	}

	return result, nil
}

// KeyIdentifierToKey converts the given special identifier (without the
// enclosing angle brackets) to the appropriate key.
func KeyIdentifierToKey(identifier string) (Key, error) {
	key, ok := identifierToKey[strings.ToLower(identifier)]
	if !ok {
		return Key{}, fmt.Errorf("no mapping present for identifier '%s'", identifier)
	}
	return key, nil
}

// ToConfigIdentifierString converts the given key to its configuration
// identifier.
func ToConfigIdentifierString(k Key) string {
	if identifier, ok := keyToIdentifier[k]; ok {
		return "<" + identifier + ">"
	}
	if k.Key == tcell.KeyRune {
		return string(k.Ch)
	}
	return fmt.Sprintf("<%s>", strings.ToLower(tcell.KeyNames[k.Key]))
}
