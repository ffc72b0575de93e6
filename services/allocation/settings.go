package allocation

import "templeseva/config"

// override copies a configured value over the default. Nil leaves the
// default; zero is a real setting.
func override[T any](dst *T, v *T) {
	if v != nil {
		*dst = *v
	}
}

func overrideCount(dst *int, v *int) {
	if v != nil && *v >= 0 {
		*dst = *v
	}
}

// WeightedConfigFrom applies the configured overrides to the default weighted table.
func WeightedConfigFrom(c config.Config) WeightedConfig {
	cfg := DefaultWeightedConfig()
	overrideCount(&cfg.Alternates, c.WeightedAlternates)
	if len(c.WeightedFallbackLangs) > 0 {
		cfg.FallbackLanguages = c.WeightedFallbackLangs
	}
	override(&cfg.AvailabilityPoints, c.WeightedAvailability)
	override(&cfg.UnknownLocationPoints, c.WeightedUnknownLocPts)
	return cfg
}

// PriorityConfigFrom applies the configured overrides to the default priority weights.
func PriorityConfigFrom(c config.Config) PriorityConfig {
	cfg := DefaultPriorityConfig()
	overrideCount(&cfg.Alternates, c.PriorityAlternates)
	override(&cfg.LocationMultiplier, c.PriorityLocationMult)
	override(&cfg.AvailabilityMultiplier, c.PriorityAvailMult)
	override(&cfg.RatingMultiplier, c.PriorityRatingMult)
	override(&cfg.VerifiedBonus, c.PriorityVerifiedBonus)
	override(&cfg.ExperiencePerYear, c.PriorityExpPerYear)
	override(&cfg.ExperienceCap, c.PriorityExpCap)
	override(&cfg.DefaultRating, c.PriorityDefaultRating)
	return cfg
}
