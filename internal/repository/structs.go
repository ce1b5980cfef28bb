package repository

import (
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrObjectNotFound    = errors.New("not found")
	ErrDuplicateEmail    = errors.New("email already registered")
	ErrInvalidTransition = errors.New("invalid status transition")
)

type User struct {
	ID          string    `db:"id" json:"id"`
	Email       string    `db:"email" json:"email"`
	Password    *string   `db:"password" json:"-"`
	Name        *string   `db:"name" json:"name"`
	FirstName   *string   `db:"first_name" json:"firstName"`
	LastName    *string   `db:"last_name" json:"lastName"`
	PhoneNumber *string   `db:"phone_number" json:"phoneNumber"`
	Address     *string   `db:"address" json:"address"`
	Image       *string   `db:"image" json:"image"`
	Role        string    `db:"role" json:"role"`
	IsVerified  bool      `db:"is_verified" json:"isVerified"`
	CreatedAt   time.Time `db:"created_at" json:"createdAt"`
	UpdatedAt   time.Time `db:"updated_at" json:"updatedAt"`
}

// UserRef is the projection of a user embedded into other entities'
// responses, mirroring what list endpoints expose about related users.
type UserRef struct {
	Name  *string `db:"name" json:"name"`
	Email string  `db:"email" json:"email"`
}

type Package struct {
	ID              string    `db:"id" json:"id"`
	UserID          string    `db:"user_id" json:"userId"`
	Title           string    `db:"title" json:"title"`
	Description     *string   `db:"description" json:"description"`
	Weight          *float64  `db:"weight" json:"weight"`
	Dimensions      *string   `db:"dimensions" json:"dimensions"`
	PickupAddress   string    `db:"pickup_address" json:"pickupAddress"`
	DeliveryAddress string    `db:"delivery_address" json:"deliveryAddress"`
	PickupLat       *float64  `db:"pickup_lat" json:"pickupLat"`
	PickupLng       *float64  `db:"pickup_lng" json:"pickupLng"`
	DeliveryLat     *float64  `db:"delivery_lat" json:"deliveryLat"`
	DeliveryLng     *float64  `db:"delivery_lng" json:"deliveryLng"`
	ImageURL        *string   `db:"image_url" json:"imageUrl"`
	Status          string    `db:"status" json:"status"`
	CreatedAt       time.Time `db:"created_at" json:"createdAt"`
	UpdatedAt       time.Time `db:"updated_at" json:"updatedAt"`

	UserName  *string `db:"user_name" json:"-"`
	UserEmail *string `db:"user_email" json:"-"`
}

type Ride struct {
	ID                   string     `db:"id" json:"id"`
	UserID               string     `db:"user_id" json:"userId"`
	StartLocation        string     `db:"start_location" json:"startLocation"`
	EndLocation          string     `db:"end_location" json:"endLocation"`
	StartLat             *float64   `db:"start_lat" json:"startLat"`
	StartLng             *float64   `db:"start_lng" json:"startLng"`
	EndLat               *float64   `db:"end_lat" json:"endLat"`
	EndLng               *float64   `db:"end_lng" json:"endLng"`
	DepartureTime        time.Time  `db:"departure_time" json:"departureTime"`
	EstimatedArrivalTime *time.Time `db:"estimated_arrival_time" json:"estimatedArrivalTime"`
	VehicleType          *string    `db:"vehicle_type" json:"vehicleType"`
	AvailableSeats       *int       `db:"available_seats" json:"availableSeats"`
	MaxPackageWeight     *float64   `db:"max_package_weight" json:"maxPackageWeight"`
	MaxPackageSize       *string    `db:"max_package_size" json:"maxPackageSize"`
	PricePerKg           *float64   `db:"price_per_kg" json:"pricePerKg"`
	PricePerSeat         *float64   `db:"price_per_seat" json:"pricePerSeat"`
	Notes                *string    `db:"notes" json:"notes"`
	Status               string     `db:"status" json:"status"`
	CreatedAt            time.Time  `db:"created_at" json:"createdAt"`
	UpdatedAt            time.Time  `db:"updated_at" json:"updatedAt"`

	UserName  *string `db:"user_name" json:"-"`
	UserEmail *string `db:"user_email" json:"-"`
}

type Match struct {
	ID               string    `db:"id" json:"id"`
	PackageID        string    `db:"package_id" json:"packageId"`
	RideID           string    `db:"ride_id" json:"rideId"`
	Status           string    `db:"status" json:"status"`
	Price            *float64  `db:"price" json:"price"`
	ProposedByUserID *string   `db:"proposed_by_user_id" json:"proposedByUserId"`
	CreatedAt        time.Time `db:"created_at" json:"createdAt"`
	UpdatedAt        time.Time `db:"updated_at" json:"updatedAt"`

	PackageTitle  *string `db:"package_title" json:"-"`
	StartLocation *string `db:"start_location" json:"-"`
	EndLocation   *string `db:"end_location" json:"-"`
}

type Payment struct {
	ID              string     `db:"id" json:"id"`
	UserID          string     `db:"user_id" json:"userId"`
	MatchID         string     `db:"match_id" json:"matchId"`
	Amount          float64    `db:"amount" json:"amount"`
	Currency        string     `db:"currency" json:"currency"`
	Status          string     `db:"status" json:"status"`
	PaymentMethod   *string    `db:"payment_method" json:"paymentMethod"`
	TransactionID   *string    `db:"transaction_id" json:"transactionId"`
	PaymentIntentID *string    `db:"payment_intent_id" json:"paymentIntentId"`
	RefundedAt      *time.Time `db:"refunded_at" json:"refundedAt"`
	CreatedAt       time.Time  `db:"created_at" json:"createdAt"`
	UpdatedAt       time.Time  `db:"updated_at" json:"updatedAt"`

	UserName      *string `db:"user_name" json:"userName,omitempty"`
	UserEmail     *string `db:"user_email" json:"userEmail,omitempty"`
	PackageTitle  *string `db:"package_title" json:"packageTitle,omitempty"`
	StartLocation *string `db:"start_location" json:"startLocation,omitempty"`
	EndLocation   *string `db:"end_location" json:"endLocation,omitempty"`
}

type Message struct {
	ID          string    `db:"id" json:"id"`
	SenderID    string    `db:"sender_id" json:"senderId"`
	RecipientID string    `db:"recipient_id" json:"recipientId"`
	MatchID     *string   `db:"match_id" json:"matchId"`
	Subject     *string   `db:"subject" json:"subject"`
	Content     string    `db:"content" json:"content"`
	Read        bool      `db:"read" json:"read"`
	CreatedAt   time.Time `db:"created_at" json:"createdAt"`

	SenderName     *string `db:"sender_name" json:"-"`
	SenderEmail    *string `db:"sender_email" json:"-"`
	RecipientName  *string `db:"recipient_name" json:"-"`
	RecipientEmail *string `db:"recipient_email" json:"-"`
}

type Notification struct {
	ID        string    `db:"id" json:"id"`
	UserID    string    `db:"user_id" json:"userId"`
	Type      string    `db:"type" json:"type"`
	Message   string    `db:"message" json:"message"`
	Link      *string   `db:"link" json:"link"`
	Read      bool      `db:"read" json:"read"`
	CreatedAt time.Time `db:"created_at" json:"createdAt"`
}

type TaskStatus string

const (
	TaskStatusCreated    TaskStatus = "CREATED"
	TaskStatusProcessing TaskStatus = "PROCESSING"
	TaskStatusFailed     TaskStatus = "FAILED"
	TaskStatusDone       TaskStatus = "DONE"
)

type OutboxTask struct {
	ID          uuid.UUID       `db:"id"`
	Status      TaskStatus      `db:"status"`
	Topic       string          `db:"topic"`
	Payload     json.RawMessage `db:"payload"`
	Attempts    int             `db:"attempts"`
	LastError   *string         `db:"last_error"`
	CreatedAt   time.Time       `db:"created_at"`
	UpdatedAt   time.Time       `db:"updated_at"`
	CompletedAt *time.Time      `db:"completed_at"`
}

// NotificationEvent is the payload shipped through the outbox to the
// notification topic.
type NotificationEvent struct {
	NotificationID string    `json:"notification_id"`
	UserID         string    `json:"user_id"`
	Type           string    `json:"type"`
	Message        string    `json:"message"`
	Link           string    `json:"link,omitempty"`
	CreatedAt      time.Time `json:"created_at"`
}
