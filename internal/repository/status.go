package repository

// Status values are closed sets per entity. Every mutation goes through
// CanTransition; the database never sees a value outside these sets.

const (
	PackagePending   = "PENDING"
	PackageMatched   = "MATCHED"
	PackageInTransit = "IN_TRANSIT"
	PackageDelivered = "DELIVERED"
	PackageCancelled = "CANCELLED"
)

const (
	RideAvailable = "AVAILABLE"
	RideFull      = "FULL"
	RideCompleted = "COMPLETED"
	RideCancelled = "CANCELLED"
)

const (
	MatchProposed          = "PROPOSED"
	MatchAcceptedBySender  = "ACCEPTED_BY_SENDER"
	MatchAcceptedByCarrier = "ACCEPTED_BY_CARRIER"
	MatchConfirmed         = "CONFIRMED"
	MatchRejected          = "REJECTED"
	MatchCancelled         = "CANCELLED"
)

const (
	PaymentPending   = "PENDING"
	PaymentCompleted = "COMPLETED"
	PaymentFailed    = "FAILED"
	PaymentRefunded  = "REFUNDED"
)

const (
	RoleSender  = "SENDER"
	RoleCarrier = "CARRIER"
	RoleAdmin   = "ADMIN"
)

type Entity string

const (
	EntityPackage Entity = "package"
	EntityRide    Entity = "ride"
	EntityMatch   Entity = "match"
	EntityPayment Entity = "payment"
)

var transitions = map[Entity]map[string][]string{
	EntityPackage: {
		PackagePending:   {PackageMatched, PackageCancelled},
		PackageMatched:   {PackageInTransit, PackagePending, PackageCancelled},
		PackageInTransit: {PackageDelivered, PackageCancelled},
		PackageDelivered: {},
		PackageCancelled: {},
	},
	EntityRide: {
		RideAvailable: {RideFull, RideCompleted, RideCancelled},
		RideFull:      {RideAvailable, RideCompleted, RideCancelled},
		RideCompleted: {},
		RideCancelled: {},
	},
	EntityMatch: {
		MatchProposed:          {MatchAcceptedBySender, MatchAcceptedByCarrier, MatchRejected, MatchCancelled},
		MatchAcceptedBySender:  {MatchConfirmed, MatchRejected, MatchCancelled},
		MatchAcceptedByCarrier: {MatchConfirmed, MatchRejected, MatchCancelled},
		MatchConfirmed:         {MatchCancelled},
		MatchRejected:          {},
		MatchCancelled:         {},
	},
	EntityPayment: {
		PaymentPending:   {PaymentCompleted, PaymentFailed},
		PaymentCompleted: {PaymentRefunded},
		PaymentFailed:    {PaymentPending},
		PaymentRefunded:  {},
	},
}

// ValidStatus reports whether s is a known status for the entity.
func ValidStatus(e Entity, s string) bool {
	_, ok := transitions[e][s]
	return ok
}

// CanTransition reports whether moving from -> to is allowed for the entity.
// A no-op transition (from == to) is always rejected; callers surface it
// as an invalid transition.
func CanTransition(e Entity, from, to string) bool {
	for _, allowed := range transitions[e][from] {
		if allowed == to {
			return true
		}
	}
	return false
}

func ValidRole(r string) bool {
	return r == RoleSender || r == RoleCarrier || r == RoleAdmin
}
