package services

import (
	"encoding/json"
	"testing"
	"time"

	"autozar_backend/internal/catalog"
	"autozar_backend/internal/dto"
	"autozar_backend/internal/models"
	"autozar_backend/internal/repositories"
	"autozar_backend/pkg/apperrors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func persistedVehicle(id string, status models.ListingStatus) models.Listing {
	return models.Listing{
		ID:        id,
		Category:  models.CategoryVehicle,
		OwnerID:   "u9",
		Status:    status,
		Tier:      models.TierSilver,
		CreatedAt: baseTime.Add(-time.Hour),
		Region:    "Улаанбаатар",
		PriceMnt:  15000000,
		Vehicle: &models.VehicleAttrs{
			Manufacturer: "Honda",
			Model:        "Fit",
			Year:         2014,
			Fuel:         "petrol",
			Transmission: "automatic",
			BodyType:     "hatchback",
			Steering:     "right",
		},
	}
}

func ids(ls []models.Listing) []string {
	out := make([]string, len(ls))
	for i, l := range ls {
		out[i] = l.ID
	}
	return out
}

func TestSnapshot_MergesSeedThenPersisted(t *testing.T) {
	e := newTestEnv(t, catalog.MustLoad())
	l := e.publish(t, "u1", tireRequest(), goldPlan(30))

	snap, err := e.gate.Snapshot(e.ctx, models.CategoryTire, e.clock.Now())
	require.NoError(t, err)
	assert.Equal(t, []string{"seed-tire-001", "seed-tire-002", "seed-tire-003", "seed-tire-004", l.ID}, ids(snap))

	// Newest within the gold tier first, then silver, then general.
	assert.Equal(t,
		[]string{l.ID, "seed-tire-001", "seed-tire-003", "seed-tire-004", "seed-tire-002"},
		searchIDs(t, e, &dto.TireQuery{}),
	)
}

func TestSnapshot_SkipsMalformedAndPreservesThemOnWrite(t *testing.T) {
	e := newTestEnv(t, catalog.Empty{})

	malformed := json.RawMessage(`{"id":"bad1","category":"vehicle","status":"published"}`)
	wrongCategory := persistedVehicle("wrong", models.ListingStatusPublished)
	wrongCategory.Category = models.CategoryTire
	records := []json.RawMessage{
		mustJSON(t, persistedVehicle("p1", models.ListingStatusPublished)),
		malformed,
		json.RawMessage(`42`),
		mustJSON(t, persistedVehicle("d1", models.ListingStatusDraft)),
		mustJSON(t, wrongCategory),
	}
	require.NoError(t, e.kv.Set(e.ctx, repositories.ListingsKey(models.CategoryVehicle), mustJSON(t, records)))

	snap, err := e.gate.Snapshot(e.ctx, models.CategoryVehicle, e.clock.Now())
	require.NoError(t, err)
	assert.Equal(t, []string{"p1"}, ids(snap))

	l := e.publish(t, "u1", vehicleRequest("Toyota", "Prius", 2016), goldPlan(7))

	snap, err = e.gate.Snapshot(e.ctx, models.CategoryVehicle, e.clock.Now())
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"p1", l.ID}, ids(snap))

	raw, err := e.listings.RawRecords(e.ctx, models.CategoryVehicle)
	require.NoError(t, err)
	require.Len(t, raw, 6)
	assert.JSONEq(t, string(malformed), string(raw[1]))
	assert.JSONEq(t, `42`, string(raw[2]))

	report, err := e.gate.Audit(e.ctx, models.CategoryVehicle)
	require.NoError(t, err)
	assert.Equal(t, 3, report.Valid)
	assert.Equal(t, 3, report.Malformed)
	assert.Equal(t, 2, report.ByStatus[models.ListingStatusPublished])
	assert.Equal(t, 1, report.ByStatus[models.ListingStatusDraft])
}

func TestSnapshot_CorruptNamespaceReadsAsEmpty(t *testing.T) {
	e := newTestEnv(t, catalog.MustLoad())
	require.NoError(t, e.kv.Set(e.ctx, repositories.ListingsKey(models.CategoryTire), json.RawMessage(`{not json`)))

	snap, err := e.gate.Snapshot(e.ctx, models.CategoryTire, e.clock.Now())
	require.NoError(t, err)
	assert.Len(t, snap, 4)

	got, err := e.gate.Lookup(e.ctx, "seed-tire-002", e.clock.Now())
	require.NoError(t, err)
	require.NotNil(t, got)

	got, err = e.gate.Lookup(e.ctx, "anything", e.clock.Now())
	require.NoError(t, err)
	assert.Nil(t, got)

	report, err := e.gate.Audit(e.ctx, models.CategoryTire)
	require.NoError(t, err)
	assert.Equal(t, 1, report.Malformed)
}

func TestLookup_NormalizesPersistedRecords(t *testing.T) {
	e := newTestEnv(t, catalog.Empty{})

	l := persistedVehicle("p1", models.ListingStatusPublished)
	l.Region = ""
	l.Vehicle.Fuel = ""
	l.Vehicle.Steering = ""
	require.NoError(t, e.listings.Create(e.ctx, &l))

	got, err := e.gate.Lookup(e.ctx, "p1", e.clock.Now())
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "unknown", got.Region)
	assert.Equal(t, "petrol", got.Vehicle.Fuel)
	assert.Equal(t, "left", got.Vehicle.Steering)
	assert.Equal(t, []string{placeholder}, got.Media)

	draft := persistedVehicle("d1", models.ListingStatusDraft)
	require.NoError(t, e.listings.Create(e.ctx, &draft))
	got, err = e.gate.Lookup(e.ctx, "d1", e.clock.Now())
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestLookup_UndecodableRecordReadsAsMissing(t *testing.T) {
	e := newTestEnv(t, catalog.Empty{})
	records := []json.RawMessage{
		json.RawMessage(`{"id":"bad-1","category":"tire","status":"published","createdAt":"not-a-time","tire":{}}`),
	}
	require.NoError(t, e.kv.Set(e.ctx, repositories.ListingsKey(models.CategoryTire), mustJSON(t, records)))

	got, err := e.gate.Lookup(e.ctx, "bad-1", e.clock.Now())
	require.NoError(t, err)
	assert.Nil(t, got)

	detail, err := e.query.Get(e.ctx, "bad-1")
	require.NoError(t, err)
	assert.Nil(t, detail)

	snap, err := e.gate.Snapshot(e.ctx, models.CategoryTire, e.clock.Now())
	require.NoError(t, err)
	assert.Empty(t, snap)

	_, err = e.lifecycle.ConfirmPayment(e.ctx, "u1", "bad-1", goldPlan(7))
	assert.ErrorIs(t, err, apperrors.ErrListingNotFound)

	_, err = e.lifecycle.Moderate(e.ctx, "bad-1", models.ModerationReject, "spam")
	assert.ErrorIs(t, err, apperrors.ErrListingNotFound)

	err = e.lifecycle.Withdraw(e.ctx, "u1", "bad-1")
	assert.ErrorIs(t, err, apperrors.ErrListingNotFound)

	raw, err := e.listings.RawRecords(e.ctx, models.CategoryTire)
	require.NoError(t, err)
	require.Len(t, raw, 1)
	assert.JSONEq(t, string(records[0]), string(raw[0]))
}

func TestSnapshot_SkipsInconsistentPublicationWindow(t *testing.T) {
	e := newTestEnv(t, catalog.Empty{})

	published := baseTime.Add(-24 * time.Hour)
	consistent := persistedVehicle("ok", models.ListingStatusPublished)
	consistent.PublishedAt = &published
	expires := published.Add(30 * 24 * time.Hour)
	consistent.ExpiresAt = &expires

	reversed := persistedVehicle("reversed", models.ListingStatusPublished)
	later := baseTime.Add(24 * time.Hour)
	earlier := baseTime.Add(12 * time.Hour)
	reversed.PublishedAt = &later
	reversed.ExpiresAt = &earlier

	unpublished := persistedVehicle("no-start", models.ListingStatusPublished)
	unpublished.ExpiresAt = &later

	open := persistedVehicle("open", models.ListingStatusPublished)

	records := []json.RawMessage{
		mustJSON(t, consistent),
		mustJSON(t, reversed),
		mustJSON(t, unpublished),
		mustJSON(t, open),
	}
	require.NoError(t, e.kv.Set(e.ctx, repositories.ListingsKey(models.CategoryVehicle), mustJSON(t, records)))

	snap, err := e.gate.Snapshot(e.ctx, models.CategoryVehicle, e.clock.Now())
	require.NoError(t, err)
	assert.Equal(t, []string{"ok", "open"}, ids(snap))

	got, err := e.gate.Lookup(e.ctx, "reversed", e.clock.Now())
	require.NoError(t, err)
	assert.Nil(t, got)

	report, err := e.gate.Audit(e.ctx, models.CategoryVehicle)
	require.NoError(t, err)
	assert.Equal(t, 2, report.Valid)
	assert.Equal(t, 2, report.Malformed)
}
