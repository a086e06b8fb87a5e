package binding

import "fmt"

//go:generate go tool stringer -type=FetchMode -linecomment -output=fetchmode_string.go

// FetchMode governs how associated elements are retrieved.
type FetchMode int

const (
	FetchSelect    FetchMode = iota // select
	FetchJoin                       // join
	FetchSubselect                  // subselect

	// FetchModeTotal is the number of declared fetch modes.
	FetchModeTotal = int(iota)
)

// IsValid reports whether m is a declared fetch mode.
func (m FetchMode) IsValid() bool {
	return m >= FetchSelect && int(m) < FetchModeTotal
}

// IsEager reports whether elements are loaded together with the owner.
func (m FetchMode) IsEager() bool {
	return m == FetchJoin
}

// ParseFetchMode parses a fetch mode name. The empty string is FetchSelect.
func ParseFetchMode(s string) (FetchMode, error) {
	name := normalizeEnumName(s)
	if name == "" {
		return FetchSelect, nil
	}

	for m := FetchSelect; int(m) < FetchModeTotal; m++ {
		if m.String() == name {
			return m, nil
		}
	}

	return 0, fmt.Errorf("unknown fetch mode %q", s)
}
