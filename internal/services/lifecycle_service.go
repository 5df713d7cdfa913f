package services

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"autozar_backend/internal/dto"
	"autozar_backend/internal/logger"
	"autozar_backend/internal/models"
	"autozar_backend/internal/repositories"
	"autozar_backend/internal/validator"
	"autozar_backend/pkg/apperrors"

	"github.com/google/uuid"
)

// LifecycleService moves seller listings through
// draft -> reviewing -> published -> rejected/deleted.
type LifecycleService interface {
	// Autosave
	SaveDraft(ctx context.Context, userID string, c models.Category, payload json.RawMessage) error
	GetDraft(ctx context.Context, userID string, c models.Category) (json.RawMessage, error)

	// Transitions
	Submit(ctx context.Context, userID string, req *dto.SubmitListingRequest) (*models.Listing, error)
	ConfirmPayment(ctx context.Context, userID, listingID string, plan models.Plan) (*dto.Publication, error)
	Moderate(ctx context.Context, listingID string, outcome models.ModerationOutcome, reason string) (*models.Listing, error)
	Withdraw(ctx context.Context, userID, listingID string) error

	// Owner views
	MyListings(ctx context.Context, userID string) ([]*dto.ListingDetail, error)
	MyListing(ctx context.Context, userID, listingID string) (*dto.ListingDetail, error)
	PaymentHistory(ctx context.Context, userID, listingID string) ([]models.PaymentRecord, error)
}

type lifecycleService struct {
	listingRepo repositories.ListingRepository
	paymentRepo repositories.PaymentRepository
	draftRepo   repositories.DraftRepository
	validator   *validator.Validator
	now         func() time.Time
}

// NewLifecycleService builds the lifecycle manager. A nil clock means time.Now.
func NewLifecycleService(
	listingRepo repositories.ListingRepository,
	paymentRepo repositories.PaymentRepository,
	draftRepo repositories.DraftRepository,
	v *validator.Validator,
	now func() time.Time,
) LifecycleService {
	if now == nil {
		now = time.Now
	}
	return &lifecycleService{
		listingRepo: listingRepo,
		paymentRepo: paymentRepo,
		draftRepo:   draftRepo,
		validator:   v,
		now:         now,
	}
}

// ---------------- Autosave ----------------

func (s *lifecycleService) SaveDraft(ctx context.Context, userID string, c models.Category, payload json.RawMessage) error {
	if !c.Valid() {
		return apperrors.NewBadRequestError(fmt.Sprintf("unknown category %q", c))
	}
	if !json.Valid(payload) {
		return apperrors.NewBadRequestError("draft payload is not valid JSON")
	}
	if err := s.draftRepo.Save(ctx, userID, c, payload); err != nil {
		return apperrors.StorageError(err)
	}
	logger.CtxDebug(ctx, "Draft autosaved", "category", c, "bytes", len(payload))
	return nil
}

// GetDraft returns nil when nothing was autosaved for (user, category).
func (s *lifecycleService) GetDraft(ctx context.Context, userID string, c models.Category) (json.RawMessage, error) {
	if !c.Valid() {
		return nil, apperrors.NewBadRequestError(fmt.Sprintf("unknown category %q", c))
	}
	raw, err := s.draftRepo.Find(ctx, userID, c)
	if err != nil {
		return nil, apperrors.StorageError(err)
	}
	return raw, nil
}

// ---------------- Transitions ----------------

func (s *lifecycleService) Submit(ctx context.Context, userID string, req *dto.SubmitListingRequest) (*models.Listing, error) {
	if err := s.validator.Validate(req); err != nil {
		return nil, validationFailure(err)
	}

	l := req.ToListing()
	if !l.HasAttributesFor(l.Category) {
		return nil, apperrors.ErrAttributesMismatch
	}
	l.ID = uuid.NewString()
	l.OwnerID = userID
	l.Status = models.ListingStatusDraft
	l.CreatedAt = s.now().UTC()

	if err := s.listingRepo.Create(ctx, &l); err != nil {
		return nil, apperrors.StorageError(err)
	}
	if err := s.draftRepo.Delete(ctx, userID, l.Category); err != nil {
		logger.CtxWithError(ctx, "Failed to clear autosave slot", err, "category", l.Category)
	}

	logger.CtxInfo(ctx, "Listing submitted", "listing_id", l.ID, "category", l.Category)
	return &l, nil
}

func (s *lifecycleService) ConfirmPayment(ctx context.Context, userID, listingID string, plan models.Plan) (pub *dto.Publication, err error) {
	defer func() { observeTransition(opRecordPayment, err) }()

	if err := validatePlan(plan); err != nil {
		return nil, err
	}

	var from models.ListingStatus
	updated, err := s.listingRepo.Mutate(ctx, listingID, func(l *models.Listing) error {
		if l.OwnerID != userID {
			return apperrors.ErrNotListingOwner
		}
		to, err := nextStatus(l.Status, opRecordPayment)
		if err != nil {
			return err
		}
		from = l.Status

		publishedAt := s.now().UTC()
		expiresAt := publishedAt.AddDate(0, 0, plan.DurationDays)
		l.Status = to
		l.Tier = plan.Tier
		l.DurationDays = plan.DurationDays
		l.PublishedAt = &publishedAt
		l.ExpiresAt = &expiresAt
		return nil
	})
	if err != nil {
		return nil, translateRepoError(err)
	}

	rec := &models.PaymentRecord{
		ID:           uuid.NewString(),
		ListingID:    updated.ID,
		Method:       plan.Method,
		Tier:         plan.Tier,
		DurationDays: plan.DurationDays,
		AmountMnt:    plan.AmountMnt,
		Status:       models.PaymentStatusPaid,
		CreatedAt:    *updated.PublishedAt,
	}
	if err := s.paymentRepo.Append(ctx, rec); err != nil {
		// The listing is already published; the missing record is reported, not rolled back.
		logger.CtxWithError(ctx, "Failed to append payment record", err, "listing_id", updated.ID)
		return nil, apperrors.StorageError(err)
	}

	logger.CtxInfo(ctx, "Listing published",
		"listing_id", updated.ID,
		"from", from,
		"to", updated.Status,
		"tier", updated.Tier,
		"duration_days", updated.DurationDays,
	)
	return &dto.Publication{
		ListingID:   updated.ID,
		Status:      updated.Status,
		Tier:        updated.Tier,
		PublishedAt: *updated.PublishedAt,
		ExpiresAt:   *updated.ExpiresAt,
	}, nil
}

func validatePlan(p models.Plan) error {
	details := map[string]string{}
	if !p.Tier.Valid() {
		details["tier"] = "Must be one of: gold, silver, general"
	}
	if p.DurationDays < 1 {
		details["durationDays"] = "Must be at least 1"
	}
	if p.AmountMnt < 0 {
		details["amountMnt"] = "Must be at least 0"
	}
	if !p.Method.Valid() {
		details["method"] = "Must be one of: qpay, socialpay, card, bank"
	}
	if len(details) > 0 {
		return apperrors.ValidationError(details)
	}
	return nil
}

// Moderate changes status only; tier and price are never touched.
func (s *lifecycleService) Moderate(ctx context.Context, listingID string, outcome models.ModerationOutcome, reason string) (_ *models.Listing, err error) {
	if !outcome.Valid() {
		return nil, apperrors.ValidationError(map[string]string{"outcome": "Must be one of: review, reject"})
	}
	op := moderationOp(outcome)
	defer func() { observeTransition(op, err) }()

	var from models.ListingStatus
	updated, err := s.listingRepo.Mutate(ctx, listingID, func(l *models.Listing) error {
		to, err := nextStatus(l.Status, op)
		if err != nil {
			return err
		}
		from = l.Status
		l.Status = to
		return nil
	})
	if err != nil {
		return nil, translateRepoError(err)
	}

	logger.CtxInfo(ctx, "Listing moderated",
		"listing_id", listingID,
		"from", from,
		"to", updated.Status,
		"reason", reason,
	)
	return updated, nil
}

func (s *lifecycleService) Withdraw(ctx context.Context, userID, listingID string) (err error) {
	defer func() { observeTransition(opWithdraw, err) }()

	var from models.ListingStatus
	_, err = s.listingRepo.Mutate(ctx, listingID, func(l *models.Listing) error {
		if l.OwnerID != userID {
			return apperrors.ErrNotListingOwner
		}
		to, err := nextStatus(l.Status, opWithdraw)
		if err != nil {
			return err
		}
		from = l.Status
		l.Status = to
		return nil
	})
	if err != nil {
		return translateRepoError(err)
	}

	logger.CtxInfo(ctx, "Listing withdrawn", "listing_id", listingID, "from", from)
	return nil
}

// ---------------- Owner views ----------------

// MyListings includes expired and deleted listings; the owner sees everything.
func (s *lifecycleService) MyListings(ctx context.Context, userID string) ([]*dto.ListingDetail, error) {
	ls, err := s.listingRepo.FindByOwner(ctx, userID)
	if err != nil {
		return nil, apperrors.StorageError(err)
	}
	now := s.now()
	out := make([]*dto.ListingDetail, 0, len(ls))
	for i := range ls {
		out = append(out, dto.NewListingDetail(&ls[i], now))
	}
	return out, nil
}

func (s *lifecycleService) MyListing(ctx context.Context, userID, listingID string) (*dto.ListingDetail, error) {
	l, err := s.ownedListing(ctx, userID, listingID)
	if err != nil {
		return nil, err
	}
	return dto.NewListingDetail(l, s.now()), nil
}

func (s *lifecycleService) PaymentHistory(ctx context.Context, userID, listingID string) ([]models.PaymentRecord, error) {
	if _, err := s.ownedListing(ctx, userID, listingID); err != nil {
		return nil, err
	}
	recs, err := s.paymentRepo.FindByListing(ctx, listingID)
	if err != nil {
		return nil, apperrors.StorageError(err)
	}
	return recs, nil
}

func (s *lifecycleService) ownedListing(ctx context.Context, userID, listingID string) (*models.Listing, error) {
	l, err := s.listingRepo.FindByID(ctx, listingID)
	if err != nil {
		return nil, translateRepoError(err)
	}
	if l.OwnerID != userID {
		return nil, apperrors.ErrNotListingOwner
	}
	return l, nil
}
