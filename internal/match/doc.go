// Package match ranks editor ids by similarity to a query.
//
// It backs the "did you mean" hints printed when an inspected editor id is
// not in the registry. Ids are normalized before comparison so that
// "SpaceshipWeapon_Railgun" and "spaceshipweaponrailgun" are equal, then
// scored by normalized Levenshtein distance with a bonus for substrings.
package match
