package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCanTransition(t *testing.T) {
	tests := []struct {
		name    string
		entity  Entity
		from    string
		to      string
		allowed bool
	}{
		{"package pending to matched", EntityPackage, PackagePending, PackageMatched, true},
		{"package pending to cancelled", EntityPackage, PackagePending, PackageCancelled, true},
		{"package pending to delivered skips transit", EntityPackage, PackagePending, PackageDelivered, false},
		{"package matched back to pending", EntityPackage, PackageMatched, PackagePending, true},
		{"package delivered is terminal", EntityPackage, PackageDelivered, PackagePending, false},
		{"package no-op rejected", EntityPackage, PackagePending, PackagePending, false},

		{"ride available to full", EntityRide, RideAvailable, RideFull, true},
		{"ride full back to available", EntityRide, RideFull, RideAvailable, true},
		{"ride completed is terminal", EntityRide, RideCompleted, RideAvailable, false},

		{"match proposed to accepted by sender", EntityMatch, MatchProposed, MatchAcceptedBySender, true},
		{"match proposed straight to confirmed", EntityMatch, MatchProposed, MatchConfirmed, false},
		{"match accepted to confirmed", EntityMatch, MatchAcceptedByCarrier, MatchConfirmed, true},
		{"match confirmed can cancel", EntityMatch, MatchConfirmed, MatchCancelled, true},
		{"match rejected is terminal", EntityMatch, MatchRejected, MatchProposed, false},

		{"payment pending to completed", EntityPayment, PaymentPending, PaymentCompleted, true},
		{"payment completed to refunded", EntityPayment, PaymentCompleted, PaymentRefunded, true},
		{"payment pending to refunded", EntityPayment, PaymentPending, PaymentRefunded, false},
		{"payment failed retries", EntityPayment, PaymentFailed, PaymentPending, true},
		{"payment refunded is terminal", EntityPayment, PaymentRefunded, PaymentPending, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.allowed, CanTransition(tc.entity, tc.from, tc.to))
		})
	}
}

func TestValidStatus(t *testing.T) {
	assert.True(t, ValidStatus(EntityPackage, PackageInTransit))
	assert.True(t, ValidStatus(EntityPayment, PaymentFailed))
	assert.False(t, ValidStatus(EntityPackage, "SHIPPED"))
	assert.False(t, ValidStatus(EntityRide, ""))
	assert.False(t, ValidStatus(Entity("unknown"), PackagePending))
}

func TestValidRole(t *testing.T) {
	assert.True(t, ValidRole(RoleSender))
	assert.True(t, ValidRole(RoleCarrier))
	assert.True(t, ValidRole(RoleAdmin))
	assert.False(t, ValidRole("SUPERUSER"))
	assert.False(t, ValidRole("sender"))
}
