package models

import "errors"

// Sentinel errors shared across repositories, services, and handlers.
// Handlers translate them to HTTP statuses with errors.Is; wrapped
// variants produced with fmt.Errorf("...: %w", err) still match.
var (
	// ErrNotFound indicates the requested record does not exist
	ErrNotFound = errors.New("not found")

	// ErrForbidden indicates a role or ownership mismatch
	ErrForbidden = errors.New("forbidden")

	// ErrDuplicateEnrollment indicates an enrollment already exists for the (user, course) pair
	ErrDuplicateEnrollment = errors.New("already enrolled in this course")

	// ErrDuplicateBooking indicates a booking already exists for the (user, lesson, lesson type) triple
	ErrDuplicateBooking = errors.New("lesson already booked")

	// ErrInvalidLessonType indicates an unknown lesson type was supplied
	ErrInvalidLessonType = errors.New("invalid lesson type")

	// ErrInvalidEnrollmentType indicates an unknown enrollment type was supplied
	ErrInvalidEnrollmentType = errors.New("invalid enrollment type")

	// ErrPaymentNotRequired indicates a payment flow was started for a free trial enrollment
	ErrPaymentNotRequired = errors.New("enrollment does not require payment")

	// ErrAlreadyPaid indicates a payment flow was started for an enrollment that is already paid
	ErrAlreadyPaid = errors.New("enrollment already paid")

	// ErrInvalidSchedule indicates the schedule could not be parsed as a date-time
	ErrInvalidSchedule = errors.New("invalid schedule format")

	// ErrPaymentFailed indicates the gateway reported or caused a payment failure;
	// the enrollment ledger is left unchanged
	ErrPaymentFailed = errors.New("payment could not be processed")

	// ErrTransientGateway indicates a network or availability problem talking to
	// the gateway; retried once before surfacing as ErrPaymentFailed
	ErrTransientGateway = errors.New("payment gateway unavailable")
)
