package mergecache

// Origin names one of the four merge sources. The set is closed: the cache
// holds exactly one slot per origin and never grows new keys.
type Origin string

const (
	OriginDefault Origin = "default"
	OriginBlocks  Origin = "blocks"
	OriginTheme   Origin = "theme"
	OriginCustom  Origin = "custom"
)

// origins in slot order. Iteration over the slot map would do, but a fixed
// order keeps logs and Clear deterministic.
var origins = [...]Origin{OriginDefault, OriginBlocks, OriginTheme, OriginCustom}

// Valid reports whether o is a member of the closed origin set.
func (o Origin) Valid() bool {
	switch o {
	case OriginDefault, OriginBlocks, OriginTheme, OriginCustom:
		return true
	}
	return false
}

func (o Origin) String() string { return string(o) }

// Origins returns the four valid origins in slot order.
func Origins() []Origin {
	out := make([]Origin, len(origins))
	copy(out, origins[:])
	return out
}
