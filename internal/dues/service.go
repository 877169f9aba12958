package dues

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/leaguedesk/league-dues/internal/interfaces"
	"github.com/leaguedesk/league-dues/internal/models"
	"github.com/leaguedesk/league-dues/internal/models/events"
	"github.com/leaguedesk/league-dues/internal/reconcile"
)

// Service is the payment-facing entry point. It pulls a user's registration
// data through the store, runs reconciliation, and publishes a best-effort
// event when overdue registrations surface.
type Service struct {
	store      interfaces.RegistrationStore
	publisher  interfaces.EventPublisher
	reconciler *reconcile.Reconciler
}

// NewService wires a store and publisher into a reconciliation service.
func NewService(store interfaces.RegistrationStore, publisher interfaces.EventPublisher, reconciler *reconcile.Reconciler) *Service {
	return &Service{
		store:      store,
		publisher:  publisher,
		reconciler: reconciler,
	}
}

// registrationData is one immutable snapshot of a user's inputs.
type registrationData struct {
	entries     []models.LedgerEntry
	memberships []models.TeamMembership
	leagues     map[int64]models.LeagueDue
}

// fetchAll loads the three reconciliation inputs concurrently; none depends
// on another's result.
func (s *Service) fetchAll(ctx context.Context, userID int64) (registrationData, error) {
	var data registrationData
	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		entries, err := s.store.LedgerEntriesByUser(ctx, userID)
		if err != nil {
			return fmt.Errorf("fetch ledger entries: %w", err)
		}
		data.entries = entries
		return nil
	})
	g.Go(func() error {
		memberships, err := s.store.MembershipsByUser(ctx, userID)
		if err != nil {
			return fmt.Errorf("fetch memberships: %w", err)
		}
		data.memberships = memberships
		return nil
	})
	g.Go(func() error {
		leagues, err := s.store.LeaguesByUser(ctx, userID)
		if err != nil {
			return fmt.Errorf("fetch league pricing: %w", err)
		}
		data.leagues = leagues
		return nil
	})
	if err := g.Wait(); err != nil {
		return registrationData{}, err
	}
	return data, nil
}

// UserPayments reconciles all of a user's registrations at the given
// reference time.
func (s *Service) UserPayments(ctx context.Context, userID int64, now time.Time) ([]models.PaymentView, error) {
	data, err := s.fetchAll(ctx, userID)
	if err != nil {
		return nil, err
	}
	views := s.reconciler.Reconcile(userID, data.entries, data.memberships, data.leagues, now)
	s.publishReconciled(ctx, userID, views, now)
	return views, nil
}

// UserSummary reduces a user's reconciled registrations to dashboard totals.
func (s *Service) UserSummary(ctx context.Context, userID int64, now time.Time) (models.PaymentSummary, error) {
	views, err := s.UserPayments(ctx, userID, now)
	if err != nil {
		return zeroSummary(), err
	}
	return reconcile.SummarizeViews(views), nil
}

// UserPaymentsOrEmpty collapses fetch failures to an empty result. A user
// checking what they owe sees nothing rather than an error page; the failure
// is logged here and nowhere else.
func (s *Service) UserPaymentsOrEmpty(ctx context.Context, userID int64, now time.Time) []models.PaymentView {
	views, err := s.UserPayments(ctx, userID, now)
	if err != nil {
		logrus.WithError(err).WithField("user_id", userID).Warn("payment reconciliation degraded to empty result")
		return []models.PaymentView{}
	}
	return views
}

// UserSummaryOrZero collapses fetch failures to an all-zero summary.
func (s *Service) UserSummaryOrZero(ctx context.Context, userID int64, now time.Time) models.PaymentSummary {
	summary, err := s.UserSummary(ctx, userID, now)
	if err != nil {
		logrus.WithError(err).WithField("user_id", userID).Warn("payment summary degraded to zero result")
		return zeroSummary()
	}
	return summary
}

// publishReconciled emits a PaymentsReconciled event when the run surfaced
// overdue registrations. Publishing is best effort: a broker failure must
// never block a user from seeing what they owe.
func (s *Service) publishReconciled(ctx context.Context, userID int64, views []models.PaymentView, now time.Time) {
	summary := reconcile.SummarizeViews(views)
	if summary.OverdueCount == 0 {
		return
	}
	event := events.PaymentsReconciled{
		EventID:          uuid.New().String(),
		UserID:           userID,
		TotalOutstanding: summary.TotalOutstanding,
		TotalPaid:        summary.TotalPaid,
		PendingCount:     summary.PendingCount,
		OverdueCount:     summary.OverdueCount,
		OccurredAt:       now,
	}
	if err := s.publisher.Publish(ctx, event); err != nil {
		logrus.WithError(err).WithField("user_id", userID).Warn("failed to publish payments reconciled event")
	}
}

func zeroSummary() models.PaymentSummary {
	return reconcile.Summarize(nil)
}
