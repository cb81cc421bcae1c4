package esm

import "github.com/ebkarlson404/StarFieldMiner/internal/record"

const (
	fieldProjectileData = "PROD - Data"
	fieldFlags          = "Flags"
	fieldExplosion      = "Explosion"
)

// Projectile is a PROJ record.
type Projectile struct {
	*record.Base
}

// Speed returns the projectile speed, 0 when absent.
func (p *Projectile) Speed() int {
	return p.Payload().Field(fieldProjectileData).Field("Speed").IntOr(0)
}

// ExplosionFlag reports whether the "Flags"."Explosion" bit is set.
func (p *Projectile) ExplosionFlag() bool {
	return p.Payload().Field(fieldProjectileData).Field(fieldFlags).Field(fieldExplosion).BoolOr(false)
}

// ExplosionRef returns the raw form id of the explosion, if any.
func (p *Projectile) ExplosionRef() (string, bool) {
	return refField(p.Payload().Field(fieldProjectileData).Field(fieldExplosion))
}

// Explosion resolves the projectile's explosion. When gated is set the link
// is only followed if ExplosionFlag is set.
func (p *Projectile) Explosion(gated bool) (*Explosion, bool) {
	if gated && !p.ExplosionFlag() {
		return nil, false
	}

	ref, ok := p.ExplosionRef()
	if !ok {
		return nil, false
	}

	return record.Find[*Explosion](p.Registry(), ref)
}
