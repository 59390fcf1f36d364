package core

import (
	"errors"
	"testing"
	"time"
)

// manualClock returns a clock function and a way to advance it.
func manualClock(start time.Time) (func() time.Time, func(d time.Duration)) {
	current := start
	return func() time.Time { return current }, func(d time.Duration) { current = current.Add(d) }
}

func TestVersionPolicy_NewVersion(t *testing.T) {
	start := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	clock, advance := manualClock(start)
	policy := NewVersionPolicyWithClock(clock)

	obj := NewCommonProperties("malware", "")
	obj.CreatedAt = start
	obj.ModifiedAt = start
	originalID := obj.ObjectID

	advance(5 * time.Second)
	if err := policy.NewVersion(&obj); err != nil {
		t.Fatalf("NewVersion failed: %v", err)
	}
	if !obj.ModifiedAt.Equal(start.Add(5 * time.Second)) {
		t.Errorf("modified = %v, want %v", obj.ModifiedAt, start.Add(5*time.Second))
	}
	if obj.ObjectID != originalID {
		t.Error("id changed across versions")
	}
	if !obj.CreatedAt.Equal(start) {
		t.Error("created changed across versions")
	}
}

func TestVersionPolicy_NoTemporalProgress(t *testing.T) {
	start := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	clock, advance := manualClock(start)
	policy := NewVersionPolicyWithClock(clock)

	obj := NewCommonProperties("indicator", "")
	obj.ModifiedAt = start

	advance(time.Second)
	if err := policy.NewVersion(&obj); err != nil {
		t.Fatalf("first NewVersion failed: %v", err)
	}
	firstModified := obj.ModifiedAt

	// Second call with the same clock reading must refuse and leave the
	// object untouched.
	err := policy.NewVersion(&obj)
	if !errors.Is(err, ErrNoTemporalProgress) {
		t.Fatalf("err = %v, want ErrNoTemporalProgress", err)
	}
	if !obj.ModifiedAt.Equal(firstModified) {
		t.Error("modified changed despite NoTemporalProgress")
	}
}

func TestVersionPolicy_Revoke(t *testing.T) {
	start := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	clock, advance := manualClock(start)
	policy := NewVersionPolicyWithClock(clock)

	obj := NewCommonProperties("campaign", "")
	obj.ModifiedAt = start

	advance(time.Second)
	if err := policy.Revoke(&obj); err != nil {
		t.Fatalf("Revoke failed: %v", err)
	}
	if !obj.Revoked {
		t.Error("object not marked revoked")
	}

	advance(time.Second)
	if err := policy.Revoke(&obj); !errors.Is(err, ErrAlreadyRevoked) {
		t.Errorf("second Revoke err = %v, want ErrAlreadyRevoked", err)
	}
}

func TestVersionPolicy_RevokeNeedsClockProgress(t *testing.T) {
	start := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	clock, _ := manualClock(start)
	policy := NewVersionPolicyWithClock(clock)

	obj := NewCommonProperties("tool", "")
	obj.ModifiedAt = start

	if err := policy.Revoke(&obj); !errors.Is(err, ErrNoTemporalProgress) {
		t.Fatalf("err = %v, want ErrNoTemporalProgress", err)
	}
	if obj.Revoked {
		t.Error("object marked revoked despite clock stall")
	}
}

func TestVersionPolicy_SystemClock(t *testing.T) {
	policy := NewVersionPolicy()
	obj := NewCommonProperties("report", "")
	obj.ModifiedAt = obj.ModifiedAt.Add(-time.Minute)

	if err := policy.NewVersion(&obj); err != nil {
		t.Fatalf("NewVersion against system clock failed: %v", err)
	}
}
