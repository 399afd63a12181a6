package gamification

// Badge names awarded off the profile counters.
const (
	BadgeBronzeSupporter   = "Bronze Supporter"
	BadgeSilverSupporter   = "Silver Supporter"
	BadgeGoldSupporter     = "Gold Supporter"
	BadgePlatinumSupporter = "Platinum Supporter"

	BadgeProblemSolver    = "Problem Solver"
	BadgeExpertResolver   = "Expert Resolver"
	BadgeMasterTechnician = "Master Technician"

	BadgeSpeedDemon    = "Speed Demon"
	BadgeLightningFast = "Lightning Fast"
)

type pointsBadge struct {
	name      string
	threshold int
}

var pointsBadges = []pointsBadge{
	{BadgeBronzeSupporter, 1000},
	{BadgeSilverSupporter, 5000},
	{BadgeGoldSupporter, 10000},
	{BadgePlatinumSupporter, 25000},
}

var resolvedBadges = []pointsBadge{
	{BadgeProblemSolver, 10},
	{BadgeExpertResolver, 50},
	{BadgeMasterTechnician, 100},
}

// EarnedBadges returns every badge the given counters qualify for, in a
// stable order. Speed badges require at least one resolution so a fresh
// profile's zero average does not count as instant work.
func EarnedBadges(totalPoints, resolvedCount int, avgResolutionHours float64) []string {
	badges := []string{}

	for _, b := range pointsBadges {
		if totalPoints >= b.threshold {
			badges = append(badges, b.name)
		}
	}

	for _, b := range resolvedBadges {
		if resolvedCount >= b.threshold {
			badges = append(badges, b.name)
		}
	}

	if resolvedCount > 0 && avgResolutionHours > 0 {
		if avgResolutionHours <= 2 {
			badges = append(badges, BadgeSpeedDemon)
		}
		if avgResolutionHours <= 1 {
			badges = append(badges, BadgeLightningFast)
		}
	}

	return badges
}
