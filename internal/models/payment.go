package models

import "time"

const (
	PaymentPending  = "pending"
	PaymentPaid     = "paid"
	PaymentFailed   = "failed"
	PaymentRefunded = "refunded"
)

var PaymentStatuses = []string{PaymentPending, PaymentPaid, PaymentFailed, PaymentRefunded}

const DefaultCurrency = "BRL"

type Payment struct {
	ID            uint `gorm:"primaryKey" json:"id"`
	AppointmentID uint `gorm:"not null;index" json:"appointment"`

	Amount   float64    `gorm:"type:numeric(10,2);not null" json:"amount"`
	Currency string     `gorm:"size:3;not null" json:"currency"`
	Status   string     `gorm:"size:20;not null;index" json:"status"`
	PaidAt   *time.Time `json:"paid_at"`

	Provider          string `gorm:"size:50;index" json:"provider"`
	ProviderReference string `gorm:"size:100" json:"provider_reference"`
}
