package services

import (
	"autozar_backend/internal/models"
	"autozar_backend/pkg/apperrors"
)

type lifecycleOp string

const (
	opRecordPayment lifecycleOp = "recordPayment"
	opReview        lifecycleOp = "review"
	opReject        lifecycleOp = "reject"
	opWithdraw      lifecycleOp = "withdraw"
)

// transitions lists every allowed (op, from) pair. Anything missing is an
// invalid transition.
var transitions = map[lifecycleOp]map[models.ListingStatus]models.ListingStatus{
	opRecordPayment: {
		models.ListingStatusDraft:     models.ListingStatusPublished,
		models.ListingStatusReviewing: models.ListingStatusPublished,
	},
	opReview: {
		models.ListingStatusDraft: models.ListingStatusReviewing,
	},
	opReject: {
		models.ListingStatusReviewing: models.ListingStatusRejected,
		models.ListingStatusPublished: models.ListingStatusRejected,
	},
	opWithdraw: {
		models.ListingStatusDraft:     models.ListingStatusDeleted,
		models.ListingStatusReviewing: models.ListingStatusDeleted,
		models.ListingStatusPublished: models.ListingStatusDeleted,
		models.ListingStatusRejected:  models.ListingStatusDeleted,
	},
}

func nextStatus(from models.ListingStatus, op lifecycleOp) (models.ListingStatus, error) {
	to, ok := transitions[op][from]
	if !ok {
		return "", apperrors.ErrInvalidTransition(string(from), string(op))
	}
	return to, nil
}

func moderationOp(o models.ModerationOutcome) lifecycleOp {
	if o == models.ModerationReject {
		return opReject
	}
	return opReview
}
