package standings

import (
	"strings"

	"github.com/okian/fairway/internal/domain/model"
)

// MatchKind records how a roster golfer was resolved against the feed.
type MatchKind int

const (
	Unmatched MatchKind = iota
	MatchExact
	MatchSurname
)

func (k MatchKind) String() string {
	switch k {
	case MatchExact:
		return "exact"
	case MatchSurname:
		return "surname"
	default:
		return "unmatched"
	}
}

// NameIndex resolves roster golfer strings, which are often a bare surname
// in capitals, to snapshot entries. Build one per snapshot.
type NameIndex struct {
	snap     model.Snapshot
	surnames map[string]string // lowercase surname -> full lowercase key
}

// NewNameIndex builds the surname index for snap. When two contestants
// share a surname the later one in feed order wins.
func NewNameIndex(snap model.Snapshot) *NameIndex {
	ix := &NameIndex{
		snap:     snap,
		surnames: make(map[string]string, snap.Len()),
	}
	for _, key := range snap.Keys() {
		fields := strings.Fields(snap.Entries[key].Name)
		if len(fields) == 0 {
			continue
		}
		ix.surnames[strings.ToLower(fields[len(fields)-1])] = key
	}
	return ix
}

// Resolve looks golfer up by exact lowercase key, then by surname.
func (ix *NameIndex) Resolve(golfer string) (model.LeaderboardEntry, MatchKind) {
	key := strings.ToLower(golfer)
	if e, ok := ix.snap.Lookup(key); ok {
		return e, MatchExact
	}
	if full, ok := ix.surnames[key]; ok {
		if e, ok := ix.snap.Lookup(full); ok {
			return e, MatchSurname
		}
	}
	return model.LeaderboardEntry{}, Unmatched
}
