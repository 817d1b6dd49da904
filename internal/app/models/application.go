package models

import "time"

// Application defines the hostel application model based on the
// 'applications' table. One application exists per student, ever; the
// student name/PNR/year fields are a snapshot taken at submission time.
type Application struct {
	ID               int64             `json:"id" db:"id" example:"1"`
	StudentID        int64             `json:"studentId" db:"student_id"`
	HostelID         int64             `json:"hostelId" db:"hostel_id"`
	StudentName      string            `json:"studentName" db:"student_name"`
	StudentPNR       string            `json:"studentPNR" db:"student_pnr"`
	StudentYear      string            `json:"studentYear" db:"student_year"`
	Branch           string            `json:"branch" db:"branch"`
	Caste            string            `json:"caste" db:"caste"`
	DateOfBirth      string            `json:"dateOfBirth" db:"date_of_birth"`
	AadharCard       string            `json:"aadharCard" db:"aadhar_card"`
	AdmissionReceipt string            `json:"admissionReceipt" db:"admission_receipt"`
	Status           ApplicationStatus `json:"status" db:"status" example:"PENDING"`
	AppliedOn        time.Time         `json:"appliedOn" db:"applied_on"`
	ApprovedOn       *time.Time        `json:"approvedOn,omitempty" db:"approved_on"`
	RejectionReason  string            `json:"rejectionReason" db:"rejection_reason"`
	Remarks          string            `json:"remarks" db:"remarks"`
	RoomNumber       string            `json:"roomNumber" db:"room_number"`
	Floor            string            `json:"floor" db:"floor"`
	CreatedAt        time.Time         `json:"createdAt" db:"created_at"`
	UpdatedAt        time.Time         `json:"updatedAt" db:"updated_at"`

	// Relations (populated when needed)
	Student *Student `json:"student,omitempty"`
	Hostel  *Hostel  `json:"hostel,omitempty"`
}
