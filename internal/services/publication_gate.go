package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"autozar_backend/internal/catalog"
	"autozar_backend/internal/logger"
	"autozar_backend/internal/metrics"
	"autozar_backend/internal/models"
	"autozar_backend/internal/repositories"
	"autozar_backend/internal/validator"
)

const unknownRegion = "unknown"

// PublicationGate is the only place where the seed catalog and persisted
// publications are merged into what the public can see.
type PublicationGate interface {
	// Snapshot returns the seed listings for c followed by every persisted
	// listing of c that is published and not expired at now. Malformed
	// persisted records are skipped and counted.
	Snapshot(ctx context.Context, c models.Category, now time.Time) ([]models.Listing, error)

	// Lookup returns a publicly visible listing by id, or nil.
	Lookup(ctx context.Context, id string, now time.Time) (*models.Listing, error)

	// Audit decodes every persisted record of c without filtering on status.
	Audit(ctx context.Context, c models.Category) (AuditReport, error)
}

// AuditReport summarizes the persisted records of one category.
type AuditReport struct {
	Category  models.Category              `json:"category"`
	Valid     int                          `json:"valid"`
	Malformed int                          `json:"malformed"`
	ByStatus  map[models.ListingStatus]int `json:"byStatus"`
}

type publicationGate struct {
	catalog     catalog.Catalog
	listingRepo repositories.ListingRepository
	validator   *validator.Validator
	placeholder string
}

func NewPublicationGate(
	cat catalog.Catalog,
	listingRepo repositories.ListingRepository,
	v *validator.Validator,
	placeholder string,
) PublicationGate {
	return &publicationGate{
		catalog:     cat,
		listingRepo: listingRepo,
		validator:   v,
		placeholder: placeholder,
	}
}

func (g *publicationGate) Snapshot(ctx context.Context, c models.Category, now time.Time) ([]models.Listing, error) {
	out := g.catalog.Listings(c)

	persisted, err := g.persisted(ctx, c)
	if err != nil {
		return nil, err
	}
	for i := range persisted {
		if persisted[i].Visible(now) {
			out = append(out, persisted[i])
		}
	}
	return out, nil
}

func (g *publicationGate) Lookup(ctx context.Context, id string, now time.Time) (*models.Listing, error) {
	for _, c := range models.Categories {
		for _, l := range g.catalog.Listings(c) {
			if l.ID == id {
				return &l, nil
			}
		}
	}

	l, err := g.listingRepo.FindByID(ctx, id)
	if errors.Is(err, repositories.ErrListingNotFound) {
		return nil, nil
	}
	if errors.Is(err, repositories.ErrMalformedRecord) {
		g.reportMalformed(ctx, "", id, err)
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("lookup listing %s: %w", id, err)
	}
	if err := g.normalize(l, l.Category); err != nil {
		g.reportMalformed(ctx, l.Category, id, err)
		return nil, nil
	}
	if !l.Visible(now) {
		return nil, nil
	}
	return l, nil
}

func (g *publicationGate) Audit(ctx context.Context, c models.Category) (AuditReport, error) {
	report := AuditReport{Category: c, ByStatus: map[models.ListingStatus]int{}}

	raw, err := g.listingRepo.RawRecords(ctx, c)
	if errors.Is(err, repositories.ErrCorruptBlob) {
		report.Malformed++
		return report, nil
	}
	if err != nil {
		return report, fmt.Errorf("audit %s: %w", c, err)
	}
	for _, rec := range raw {
		l, err := g.decode(rec, c)
		if err != nil {
			report.Malformed++
			continue
		}
		report.Valid++
		report.ByStatus[l.Status]++
	}
	return report, nil
}

// persisted decodes the category namespace one record at a time.
func (g *publicationGate) persisted(ctx context.Context, c models.Category) ([]models.Listing, error) {
	raw, err := g.listingRepo.RawRecords(ctx, c)
	if errors.Is(err, repositories.ErrCorruptBlob) {
		g.reportMalformed(ctx, c, "", err)
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("load persisted %s: %w", c, err)
	}

	out := make([]models.Listing, 0, len(raw))
	for i, rec := range raw {
		l, err := g.decode(rec, c)
		if err != nil {
			g.reportMalformed(ctx, c, fmt.Sprintf("#%d", i), err)
			continue
		}
		out = append(out, *l)
	}
	return out, nil
}

func (g *publicationGate) decode(raw json.RawMessage, c models.Category) (*models.Listing, error) {
	var l models.Listing
	if err := json.Unmarshal(raw, &l); err != nil {
		return nil, err
	}
	if err := g.normalize(&l, c); err != nil {
		return nil, err
	}
	return &l, nil
}

func (g *publicationGate) reportMalformed(ctx context.Context, c models.Category, record string, err error) {
	metrics.MalformedRecords.WithLabelValues(string(c)).Inc()
	logger.CtxWarn(ctx, "Skipping malformed listing record",
		"category", c,
		"record", record,
		"error", err,
	)
}

// normalize fills category defaults and then validates the record shape.
func (g *publicationGate) normalize(l *models.Listing, c models.Category) error {
	if l.Category != c {
		return fmt.Errorf("record category %q in %s namespace", l.Category, c)
	}
	if !l.HasAttributesFor(c) {
		return fmt.Errorf("attribute set does not match %s", c)
	}
	if !l.WindowConsistent() {
		return fmt.Errorf("publication window of %s ends before it starts", l.ID)
	}

	if strings.TrimSpace(l.Region) == "" {
		l.Region = unknownRegion
	}
	if len(l.Media) == 0 && g.placeholder != "" {
		l.Media = []string{g.placeholder}
	}
	applyAttributeDefaults(l)

	return g.validator.Validate(l)
}

func applyAttributeDefaults(l *models.Listing) {
	switch {
	case l.Vehicle != nil:
		v := l.Vehicle
		v.Fuel = orDefault(v.Fuel, "petrol")
		v.Transmission = orDefault(v.Transmission, "automatic")
		v.BodyType = orDefault(v.BodyType, "other")
		v.Steering = orDefault(v.Steering, "left")
	case l.Tire != nil:
		t := l.Tire
		t.Season = orDefault(t.Season, "all_season")
		t.Condition = orDefault(t.Condition, "used")
	case l.Part != nil:
		p := l.Part
		p.PartType = orDefault(p.PartType, "other")
		p.Condition = orDefault(p.Condition, "used")
	case l.Rental != nil:
		r := l.Rental
		r.Fuel = orDefault(r.Fuel, "petrol")
		r.Transmission = orDefault(r.Transmission, "automatic")
	case l.ServiceCenter != nil:
		l.ServiceCenter.ServiceType = orDefault(l.ServiceCenter.ServiceType, "other")
	}
}

func orDefault(v, fallback string) string {
	if strings.TrimSpace(v) == "" {
		return fallback
	}
	return v
}
