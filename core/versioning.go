package core

import "time"

// VersionPolicy implements the STIX versioning discipline: a new version of an
// object keeps its id and created timestamp and advances only modified. The
// clock is injectable so tests can drive it deterministically; the default is
// time.Now.
type VersionPolicy struct {
	now func() time.Time
}

// NewVersionPolicy returns a policy backed by the system clock.
func NewVersionPolicy() *VersionPolicy {
	return &VersionPolicy{now: time.Now}
}

// NewVersionPolicyWithClock returns a policy backed by the given clock
// function. Intended for tests and for callers that need a controlled
// time source.
func NewVersionPolicyWithClock(now func() time.Time) *VersionPolicy {
	return &VersionPolicy{now: now}
}

// NewVersion advances the object to a new version by setting modified to the
// current clock reading. The reading must be strictly after the current
// modified timestamp; otherwise the object is left untouched and
// ErrNoTemporalProgress is returned so the caller can wait and retry rather
// than silently violate monotonicity. ID and created are never modified.
func (p *VersionPolicy) NewVersion(c *CommonProperties) error {
	now := p.now().UTC().Truncate(time.Millisecond)
	if !now.After(c.ModifiedAt) {
		return ErrNoTemporalProgress
	}
	c.ModifiedAt = now
	return nil
}

// Revoke marks the object as revoked as part of a new version. Revocation is
// one-way: revoked objects stay revoked, and callers that need a live
// replacement must create a new logical object with a new identifier.
// Returns ErrAlreadyRevoked without mutating if the object is already
// revoked, and ErrNoTemporalProgress without mutating if the clock has not
// advanced.
func (p *VersionPolicy) Revoke(c *CommonProperties) error {
	if c.Revoked {
		return ErrAlreadyRevoked
	}
	if err := p.NewVersion(c); err != nil {
		return err
	}
	c.Revoked = true
	return nil
}
