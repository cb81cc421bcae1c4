package miner

// FieldPolicy decides what happens when a property sheet value is missing.
type FieldPolicy struct {
	// Required makes a missing value fail the seed.
	Required bool
	// Default is used when the value is missing and not required.
	Default float64
}

// Policy holds the switchable behaviors of the ShipWeapon miner.
type Policy struct {
	// ExplosionFlagGated follows a projectile's explosion link only when its
	// "Flags"."Explosion" field is set.
	ExplosionFlagGated bool
	// CrewRating governs the crew capacity property.
	CrewRating FieldPolicy
}

// DefaultPolicy returns the conservative policy: explosions are flag gated
// and a missing crew rating fails the seed.
func DefaultPolicy() Policy {
	return Policy{
		ExplosionFlagGated: true,
		CrewRating:         FieldPolicy{Required: true, Default: 0.25},
	}
}
