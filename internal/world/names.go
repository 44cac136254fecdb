package world

import "math/rand/v2"

// NoName is picked from an empty or missing word list.
const NoName = "NONAME"

// NameList identifies one word list of a culture.
type NameList uint8

const (
	PersonalNames NameList = iota
	nameListCount
)

// NameLists holds name-generation word lists. Only cultures carry them, so
// they live in a sidecar store rather than on every Record.
type NameLists [nameListCount][]string

func (n *NameLists) Get(l NameList) []string {
	if n == nil {
		return nil
	}
	return n[l]
}

// With returns n with list l replaced.
func (n NameLists) With(l NameList, words []string) NameLists {
	n[l] = words
	return n
}

// PickRandomly returns a uniformly chosen word from list l.
func (n *NameLists) PickRandomly(l NameList, rng *rand.Rand) string {
	words := n.Get(l)
	if len(words) == 0 {
		return NoName
	}
	return words[rng.IntN(len(words))]
}
