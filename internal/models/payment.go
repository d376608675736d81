package models

// PaymentHandoff carries the data a client needs to start the
// redirect-based gateway flow for a paid enrollment.
type PaymentHandoff struct {
	EnrollmentID int    `json:"enrollmentId"`
	PaymentID    string `json:"paymentId"`
	ApprovalURL  string `json:"approvalUrl"`
}

// PaymentConfirmation is the outcome of a successful gateway
// confirmation; CourseID is the redirect target for the client.
type PaymentConfirmation struct {
	EnrollmentID int `json:"enrollmentId"`
	CourseID     int `json:"courseId"`
}

// PaymentCancelResult is the informational outcome of a cancelled
// gateway flow; no enrollment state changes on cancel.
type PaymentCancelResult struct {
	Message string `json:"message"`
}
