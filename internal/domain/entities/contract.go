package entities

import (
	"time"

	"estudio_admin/internal/domain/money"
)

// DateLayout is the calendar-date format used for event and due dates.
const DateLayout = "2006-01-02"

// ContractStatus is the workflow state shown on the admin calendar.
//
// A contract may carry no explicit status; in that case the effective status
// is derived from the payment/completion flags (see services.EffectiveStatus).
type ContractStatus string

const (
	ContractStatusPending         ContractStatus = "pending"
	ContractStatusBooked          ContractStatus = "booked"
	ContractStatusConfirmed       ContractStatus = "confirmed"
	ContractStatusDelivered       ContractStatus = "delivered"
	ContractStatusCancelled       ContractStatus = "cancelled"
	ContractStatusPendingPayment  ContractStatus = "pending_payment"
	ContractStatusPendingApproval ContractStatus = "pending_approval"
	ContractStatusReleased        ContractStatus = "released"
)

func (s ContractStatus) Valid() bool {
	switch s {
	case ContractStatusPending, ContractStatusBooked, ContractStatusConfirmed, ContractStatusDelivered,
		ContractStatusCancelled, ContractStatusPendingPayment, ContractStatusPendingApproval, ContractStatusReleased:
		return true
	}
	return false
}

// ContractFlag names one of the independently toggled booleans of a contract.
type ContractFlag string

const (
	ContractFlagDepositPaid      ContractFlag = "depositPaid"
	ContractFlagFinalPaymentPaid ContractFlag = "finalPaymentPaid"
	ContractFlagEventCompleted   ContractFlag = "eventCompleted"
)

func (f ContractFlag) Valid() bool {
	switch f {
	case ContractFlagDepositPaid, ContractFlagFinalPaymentPaid, ContractFlagEventCompleted:
		return true
	}
	return false
}

// ServiceItem is a photography package line. Price is kept exactly as the
// booking form stored it ("R$ 1.200"); only its digits are meaningful.
type ServiceItem struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Price    string `json:"price"`
	Quantity int    `json:"quantity"`
}

// StoreItem is a merchandise line with a numeric unit price.
type StoreItem struct {
	ID       string      `json:"id"`
	Name     string      `json:"name"`
	Price    money.Cents `json:"price"`
	Quantity int         `json:"quantity"`
}

// Contract is a studio booking persisted in DynamoDB.
//
// Storage model (DynamoDB):
//   - PK: id
//
// Monetary representation:
//   - TotalAmount is the last persisted total. It doubles as the fallback
//     source of truth for contracts booked as a single opaque package.
//   - DepositAmount/RemainingAmount are a snapshot written on update; readers
//     recompute them from the line items instead of trusting the snapshot.
type Contract struct {
	ID              string `json:"id"`
	ClientName      string `json:"client_name"`
	ClientEmail     string `json:"client_email"`
	ClientPhone     string `json:"client_phone"`
	EventType       string `json:"event_type"`
	EventDate       string `json:"event_date"`
	EventTime       string `json:"event_time"`
	EventLocation   string `json:"event_location"`
	PackageTitle    string `json:"package_title"`
	PackageDuration string `json:"package_duration"`
	PaymentMethod   string `json:"payment_method"`
	Message         string `json:"message"`

	Services   []ServiceItem `json:"services"`
	StoreItems []StoreItem   `json:"store_items"`

	TravelFee       money.Cents `json:"travel_fee"`
	TotalAmount     money.Cents `json:"total_amount"`
	DepositAmount   money.Cents `json:"deposit_amount"`
	RemainingAmount money.Cents `json:"remaining_amount"`

	DepositPaid      bool           `json:"deposit_paid"`
	FinalPaymentPaid bool           `json:"final_payment_paid"`
	EventCompleted   bool           `json:"event_completed"`
	Status           ContractStatus `json:"status"`

	// Workflow is the production checklist. Empty means the default
	// checklist applies.
	Workflow []WorkflowCategory `json:"workflow"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// EventDay parses EventDate; ok is false when the date is missing or malformed.
func (c Contract) EventDay() (time.Time, bool) {
	d, err := time.Parse(DateLayout, c.EventDate)
	if err != nil {
		return time.Time{}, false
	}
	return d, true
}

// Flag reports the current value of a toggleable flag.
func (c Contract) Flag(f ContractFlag) bool {
	switch f {
	case ContractFlagDepositPaid:
		return c.DepositPaid
	case ContractFlagFinalPaymentPaid:
		return c.FinalPaymentPaid
	case ContractFlagEventCompleted:
		return c.EventCompleted
	}
	return false
}

// ContractAmounts is the output of the revenue calculator. It is recomputed
// on demand and never treated as the source of truth.
type ContractAmounts struct {
	ServicesTotal   money.Cents `json:"services_total"`
	StoreTotal      money.Cents `json:"store_total"`
	Travel          money.Cents `json:"travel"`
	TotalAmount     money.Cents `json:"total_amount"`
	DepositAmount   money.Cents `json:"deposit_amount"`
	RemainingAmount money.Cents `json:"remaining_amount"`
}
