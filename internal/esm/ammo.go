package esm

import "github.com/ebkarlson404/StarFieldMiner/internal/record"

// Ammo is an AMMO record.
type Ammo struct {
	*record.Base
}

// ProjectileRef returns the raw form id of the projectile, if any.
func (a *Ammo) ProjectileRef() (string, bool) {
	return refField(a.Payload().Field("DNAM - DNAM").Field("Projectile"))
}

// Projectile resolves the projectile fired by this ammunition.
func (a *Ammo) Projectile() (*Projectile, bool) {
	ref, ok := a.ProjectileRef()
	if !ok {
		return nil, false
	}

	return record.Find[*Projectile](a.Registry(), ref)
}
