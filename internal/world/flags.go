package world

// Flag is a boolean trait of an entity.
type Flag uint8

const (
	IsFaction Flag = iota
	IsLocation
	IsPerson
	IsPlace
	IsCard
)

var flagNames = [...]string{"is_faction", "is_location", "is_person", "is_place", "is_card"}

func (f Flag) String() string {
	if int(f) < len(flagNames) {
		return flagNames[f]
	}
	return "unknown"
}

// ParseFlag maps a content name such as "is_person" back to its Flag.
func ParseFlag(s string) (Flag, bool) {
	for i, n := range flagNames {
		if n == s {
			return Flag(i), true
		}
	}
	return 0, false
}

// Flags is a small bitset of Flag values.
type Flags uint8

func FlagSet(fs ...Flag) Flags {
	var out Flags
	for _, f := range fs {
		out |= 1 << f
	}
	return out
}

func (s Flags) Has(f Flag) bool { return s&(1<<f) != 0 }

// HasAll reports whether every flag in mask is set.
func (s Flags) HasAll(mask Flags) bool { return s&mask == mask }

func (s *Flags) Set(f Flag, v bool) {
	if v {
		*s |= 1 << f
	} else {
		*s &^= 1 << f
	}
}
