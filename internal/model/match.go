package model

// Match is stored with the pair in canonical order (A < B) so one row covers
// both orderings.
type Match struct {
	Movie   MovieID
	ViewerA ViewerID
	ViewerB ViewerID
}

func NewMatch(movie MovieID, x, y ViewerID) Match {
	if y < x {
		x, y = y, x
	}
	return Match{Movie: movie, ViewerA: x, ViewerB: y}
}

// Pair is the fixed pair of participants a deployment serves.
type Pair struct {
	Self    ViewerID
	Partner ViewerID
}

// Counterpart returns the other member of the pair, or false when v is not
// part of it.
func (p Pair) Counterpart(v ViewerID) (ViewerID, bool) {
	switch v {
	case p.Self:
		return p.Partner, true
	case p.Partner:
		return p.Self, true
	default:
		return 0, false
	}
}

func (p Pair) Contains(v ViewerID) bool {
	_, ok := p.Counterpart(v)
	return ok
}
