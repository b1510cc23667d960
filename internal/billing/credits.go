package billing

import (
	"errors"
	"time"

	"jobmate/board-service/internal/model"
)

// Subscription statuses.
const (
	StatusActive    = "active"
	StatusCancelled = "cancelled"
	StatusExpired   = "expired"
	StatusTrial     = "trial"
)

// StarterCredits is the credit grant of every new employer subscription.
const StarterCredits = 10

var (
	ErrUnknownPlan    = errors.New("unknown plan")
	ErrUnknownPackage = errors.New("unknown credit package")
	ErrNoCredits      = errors.New("no job post credits remaining")
)

const dateLayout = "2006-01-02"

// Subscribe starts planID for userID today. The previous subscription, if
// any, is replaced along with its credits.
func Subscribe(userID, planID string, today time.Time) (model.Subscription, error) {
	plan, ok := FindPlan(planID)
	if !ok {
		return model.Subscription{}, ErrUnknownPlan
	}
	credits := 0
	if plan.Audience == AudienceEmployer {
		credits = StarterCredits
	}
	return model.Subscription{
		UserID:    userID,
		PlanID:    plan.ID,
		Status:    StatusActive,
		StartDate: today.Format(dateLayout),
		Credits:   credits,
		AutoRenew: true,
	}, nil
}

// PurchaseCredits adds a credit package to cur. A zero cur (no subscription
// yet) becomes an active pay-per-post subscription starting today.
func PurchaseCredits(cur model.Subscription, packageID string, today time.Time) (model.Subscription, error) {
	pkg, ok := FindPackage(packageID)
	if !ok {
		return cur, ErrUnknownPackage
	}
	next := cur
	if next.PlanID == "" {
		next.PlanID = PayPerPost
	}
	if next.StartDate == "" {
		next.StartDate = today.Format(dateLayout)
	}
	next.Status = StatusActive
	next.Credits += pkg.Total()
	return next, nil
}

// ConsumeCredit spends one job-post credit.
func ConsumeCredit(cur model.Subscription) (model.Subscription, error) {
	if cur.Remaining() <= 0 {
		return cur, ErrNoCredits
	}
	cur.UsedCredits++
	return cur, nil
}
