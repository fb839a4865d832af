// Package model holds the wire-level records exchanged with the booking API.
// The API owns all invariants; these are plain data carriers.
package model

import "github.com/shopspring/decimal"

// Appointment statuses as the API emits them.
const (
	StatusPending   = "PENDING"
	StatusConfirmed = "CONFIRMED"
	StatusCancelled = "CANCELLED"
	StatusCompleted = "COMPLETED"
)

type Customer struct {
	CustomerID  int64  `json:"customerId"`
	Name        string `json:"name"`
	PhoneNumber string `json:"phoneNumber,omitempty"`
	Email       string `json:"email,omitempty"`
}

type Staff struct {
	StaffID int64  `json:"staffId"`
	Name    string `json:"name"`
	Role    string `json:"role,omitempty"`
}

type Service struct {
	ServiceID   int64           `json:"serviceId"`
	ServiceName string          `json:"serviceName"`
	Description string          `json:"description,omitempty"`
	Duration    int             `json:"duration"` // minutes
	Price       decimal.Decimal `json:"price"`
	CreatedAt   string          `json:"createdAt,omitempty"`
}

type Appointment struct {
	AppointmentID   int64  `json:"appointmentId"`
	CustomerID      int64  `json:"customerId"`
	ServiceID       int64  `json:"serviceId"`
	StaffID         int64  `json:"staffId"`
	AppointmentDate string `json:"appointmentDate"`
	Status          string `json:"status"`
	CreatedAt       string `json:"createdAt,omitempty"`
	UpdatedAt       string `json:"updatedAt,omitempty"`

	// Denormalized copies some list endpoints include.
	Customer *Customer `json:"customer,omitempty"`
	Service  *Service  `json:"service,omitempty"`
	Staff    *Staff    `json:"staff,omitempty"`
}

type Slot struct {
	SlotID    int64  `json:"slotId"`
	StaffID   int64  `json:"staffId"`
	Date      string `json:"date"`
	StartTime string `json:"startTime"`
	EndTime   string `json:"endTime"`
	IsBooked  bool   `json:"isBooked"`

	Staff *Staff `json:"staff,omitempty"`
}

type StaffSchedule struct {
	ScheduleID  int64  `json:"scheduleId"`
	StaffID     int64  `json:"staffId"`
	DayOfWeek   string `json:"dayOfWeek"` // Monday .. Sunday
	StartTime   string `json:"startTime"`
	EndTime     string `json:"endTime"`
	IsAvailable bool   `json:"isAvailable"`
}

// CallLog is a server-authored record of one voice-call session. Status is a
// free-form string; compare case-insensitively.
type CallLog struct {
	CallLogID     int64            `json:"callLogId"`
	CallID        string           `json:"callId"`
	PhoneNumber   string           `json:"phoneNumber,omitempty"`
	Transcript    string           `json:"transcript,omitempty"`
	RecordingURL  string           `json:"recordingUrl,omitempty"`
	Cost          *decimal.Decimal `json:"cost,omitempty"`
	Status        string           `json:"status"`
	AppointmentID int64            `json:"appointmentId,omitempty"`
	CreatedAt     string           `json:"createdAt,omitempty"`
	UpdatedAt     string           `json:"updatedAt,omitempty"`

	Appointment *Appointment `json:"appointment,omitempty"`
}

type User struct {
	UserID int64  `json:"userId"`
	Email  string `json:"email"`
}
