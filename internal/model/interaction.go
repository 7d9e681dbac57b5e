package model

type ViewerID int64

type Reaction int

const (
	PassReaction Reaction = 0
	LikeReaction Reaction = 1
)

func (r Reaction) IsLike() bool {
	return r == LikeReaction
}

func (r Reaction) String() string {
	switch r {
	case PassReaction:
		return "pass"
	case LikeReaction:
		return "like"
	default:
		return "other"
	}
}

type Interaction struct {
	Viewer   ViewerID
	Movie    MovieID
	Reaction Reaction
}

// Recorded reports what one Record call changed: Stored is false for a
// replay of an existing reaction.
type Recorded struct {
	Stored bool
	Match  bool
}

// Outcome is what the caller learns after recording an interaction.
type Outcome struct {
	Movie MovieID
	Match bool
}
