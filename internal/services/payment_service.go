package services

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/englishlessons/backend/internal/auth"
	"github.com/englishlessons/backend/internal/gateway"
	"github.com/englishlessons/backend/internal/models"
)

const retryBackoff = 500 * time.Millisecond

// PaymentGateway defines the gateway operations the payment coordinator uses
type PaymentGateway interface {
	// CreatePayment creates a redirect-based payment at the gateway
	CreatePayment(ctx context.Context, req gateway.CreatePaymentRequest) (*gateway.Payment, error)
	// Find retrieves a payment by its gateway ID
	Find(ctx context.Context, paymentID string) (*gateway.Payment, error)
	// Execute captures an approved payment
	Execute(ctx context.Context, paymentID, payerID string) (*gateway.Payment, error)
}

// PaymentEnrollmentRepository defines the ledger operations the payment
// coordinator uses
type PaymentEnrollmentRepository interface {
	GetByID(ctx context.Context, id int) (*models.Enrollment, error)
	MarkPaid(ctx context.Context, id int) error
}

// PaymentCourseRepository defines the course lookups the payment
// coordinator uses for pricing
type PaymentCourseRepository interface {
	GetByID(ctx context.Context, id int) (*models.Course, error)
}

type paymentService struct {
	gw             PaymentGateway
	enrollmentRepo PaymentEnrollmentRepository
	courseRepo     PaymentCourseRepository
	policy         auth.Policy
	returnURL      string
	cancelURL      string
	timeout        time.Duration
}

// NewPaymentService creates a new payment coordinator
func NewPaymentService(
	gw PaymentGateway,
	enrollmentRepo PaymentEnrollmentRepository,
	courseRepo PaymentCourseRepository,
	policy auth.Policy,
	returnURL, cancelURL string,
	timeout time.Duration,
) *paymentService {
	return &paymentService{
		gw:             gw,
		enrollmentRepo: enrollmentRepo,
		courseRepo:     courseRepo,
		policy:         policy,
		returnURL:      returnURL,
		cancelURL:      cancelURL,
		timeout:        timeout,
	}
}

// Initiate creates a gateway payment for a pending paid enrollment and
// returns the approval URL the payer must be redirected to. The
// enrollment ID rides along as the payment's custom metadata so the
// confirmation callback can find the ledger entry without guessing.
func (s *paymentService) Initiate(ctx context.Context, actor auth.Actor, enrollmentID int) (*models.PaymentHandoff, error) {
	enrollment, err := s.enrollmentRepo.GetByID(ctx, enrollmentID)
	if err != nil {
		return nil, fmt.Errorf("failed to get enrollment: %w", err)
	}

	if err := s.policy.Allow(actor, auth.ActionInitiatePayment, enrollment.UserID); err != nil {
		return nil, err
	}

	if enrollment.EnrollmentType != models.EnrollmentTypePaid {
		return nil, fmt.Errorf("enrollment %d: %w", enrollmentID, models.ErrPaymentNotRequired)
	}
	if enrollment.Status == models.EnrollmentStatusPaid {
		return nil, fmt.Errorf("enrollment %d: %w", enrollmentID, models.ErrAlreadyPaid)
	}

	course, err := s.courseRepo.GetByID(ctx, enrollment.CourseID)
	if err != nil {
		return nil, fmt.Errorf("failed to get course: %w", err)
	}

	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	payment, err := s.gw.CreatePayment(ctx, gateway.CreatePaymentRequest{
		Total:       course.Price,
		Currency:    "USD",
		Description: fmt.Sprintf("Enrollment in %s", course.Title),
		Custom:      strconv.Itoa(enrollment.ID),
		ReturnURL:   s.returnURL,
		CancelURL:   s.cancelURL,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create payment: %w", models.ErrPaymentFailed)
	}

	approvalURL := payment.ApprovalURL()
	if approvalURL == "" {
		return nil, fmt.Errorf("payment %s has no approval link: %w", payment.ID, models.ErrPaymentFailed)
	}

	return &models.PaymentHandoff{
		EnrollmentID: enrollment.ID,
		PaymentID:    payment.ID,
		ApprovalURL:  approvalURL,
	}, nil
}

// Confirm executes an approved payment and marks the enrollment paid.
// The ledger is only touched after the gateway reports the payment
// approved; any gateway failure leaves the enrollment unpaid so the
// payer can retry.
func (s *paymentService) Confirm(ctx context.Context, paymentID, payerID string) (*models.PaymentConfirmation, error) {
	if paymentID == "" || payerID == "" {
		return nil, fmt.Errorf("missing payment parameters: %w", models.ErrPaymentFailed)
	}

	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	payment, err := s.findPayment(ctx, paymentID)
	if err != nil {
		return nil, fmt.Errorf("failed to look up payment: %w", models.ErrPaymentFailed)
	}

	executed, err := s.gw.Execute(ctx, payment.ID, payerID)
	if err != nil {
		return nil, fmt.Errorf("failed to execute payment: %w", models.ErrPaymentFailed)
	}
	if executed.State != gateway.StateApproved {
		return nil, fmt.Errorf("payment %s in state %q: %w", executed.ID, executed.State, models.ErrPaymentFailed)
	}

	enrollmentID, err := strconv.Atoi(executed.Custom())
	if err != nil {
		return nil, fmt.Errorf("payment %s carries no enrollment reference: %w", executed.ID, models.ErrPaymentFailed)
	}

	enrollment, err := s.enrollmentRepo.GetByID(ctx, enrollmentID)
	if err != nil {
		return nil, fmt.Errorf("enrollment %d not found for payment %s: %w", enrollmentID, executed.ID, models.ErrPaymentFailed)
	}

	if err := s.enrollmentRepo.MarkPaid(ctx, enrollment.ID); err != nil {
		return nil, fmt.Errorf("failed to mark enrollment paid: %w", err)
	}

	return &models.PaymentConfirmation{
		EnrollmentID: enrollment.ID,
		CourseID:     enrollment.CourseID,
	}, nil
}

// Cancel acknowledges that the payer backed out at the gateway. The
// enrollment stays pending; nothing in the ledger changes.
func (s *paymentService) Cancel() *models.PaymentCancelResult {
	return &models.PaymentCancelResult{
		Message: "Payment cancelled. Your enrollment is still pending; you can retry the payment at any time.",
	}
}

// findPayment looks up a payment, retrying once when the gateway is
// briefly unreachable
func (s *paymentService) findPayment(ctx context.Context, paymentID string) (*gateway.Payment, error) {
	payment, err := s.gw.Find(ctx, paymentID)
	if err == nil {
		return payment, nil
	}
	if !errors.Is(err, models.ErrTransientGateway) {
		return nil, err
	}

	select {
	case <-time.After(retryBackoff):
	case <-ctx.Done():
		return nil, ctx.Err()
	}

	return s.gw.Find(ctx, paymentID)
}
