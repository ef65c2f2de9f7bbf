package ays

// Basin is the attraction basin an episode ends in.
type Basin int

const (
	// None marks a state that is not terminal yet
	None Basin = iota
	// BlackFP is the fossil-fueled equilibrium, inside the boundaries
	// but unsustainable
	BlackFP
	// GreenFP is the sustainable renewable equilibrium
	GreenFP
	// CarbonBoundary is crossed when atmospheric carbon leaves the safe
	// operating space
	CarbonBoundary
	// SocialFoundation is crossed when economic output drops below the
	// social foundation
	SocialFoundation
	// OutOfTime marks an episode that reached the horizon undecided
	OutOfTime
)

func (b Basin) String() string {
	switch b {
	case BlackFP:
		return "black"
	case GreenFP:
		return "green"
	case CarbonBoundary:
		return "A_PB"
	case SocialFoundation:
		return "Y_SF"
	case OutOfTime:
		return "out-of-time"
	}
	return "none"
}

// Terminal reports whether the basin ends an episode.
func (b Basin) Terminal() bool {
	return b == BlackFP || b == GreenFP || b == CarbonBoundary || b == SocialFoundation
}
