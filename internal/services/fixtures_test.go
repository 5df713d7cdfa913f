package services

import (
	"context"
	"encoding/json"
	"sync"
	"testing"
	"time"

	"autozar_backend/internal/catalog"
	"autozar_backend/internal/dto"
	"autozar_backend/internal/models"
	"autozar_backend/internal/repositories"
	"autozar_backend/internal/storage"
	"autozar_backend/internal/validator"
	"autozar_backend/pkg/apperrors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const placeholder = "/static/placeholder.png"

var baseTime = time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)

type fakeClock struct {
	mu sync.Mutex
	t  time.Time
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.t
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.t = c.t.Add(d)
}

type testEnv struct {
	ctx       context.Context
	kv        *storage.MemoryStore
	clock     *fakeClock
	listings  repositories.ListingRepository
	gate      PublicationGate
	lifecycle LifecycleService
	query     QueryService
	favorites FavoritesService
}

func newTestEnv(t *testing.T, cat catalog.Catalog) *testEnv {
	t.Helper()

	kv := storage.NewMemoryStore()
	clock := &fakeClock{t: baseTime}
	v := validator.New()

	listings := repositories.NewListingRepository(kv)
	gate := NewPublicationGate(cat, listings, v, placeholder)

	return &testEnv{
		ctx:      context.Background(),
		kv:       kv,
		clock:    clock,
		listings: listings,
		gate:     gate,
		lifecycle: NewLifecycleService(
			listings,
			repositories.NewPaymentRepository(kv),
			repositories.NewDraftRepository(kv),
			v,
			clock.Now,
		),
		query: NewQueryService(gate, QueryOptions{
			DefaultPageSize: 12,
			MaxPageSize:     100,
			Placeholder:     placeholder,
		}, clock.Now),
		favorites: NewFavoritesService(
			gate,
			repositories.NewFavoritesRepository(kv),
			repositories.NewRecentRepository(kv, RecentLimit),
			placeholder,
			clock.Now,
		),
	}
}

func tireRequest() *dto.SubmitListingRequest {
	return &dto.SubmitListingRequest{
		Category: models.CategoryTire,
		Region:   "Улаанбаатар, Баянзүрх",
		PriceMnt: 640000,
		Contact:  models.Contact{Name: "Бат", Phone: "99112233"},
		Tire: &models.TireAttrs{
			Brand:       "Michelin",
			Width:       205,
			AspectRatio: 55,
			RimDiameter: 16,
			Season:      "winter",
			Condition:   "new",
			Quantity:    4,
		},
	}
}

func vehicleRequest(manufacturer, model string, year int) *dto.SubmitListingRequest {
	return &dto.SubmitListingRequest{
		Category: models.CategoryVehicle,
		Region:   "Улаанбаатар, Хан-Уул",
		PriceMnt: 30000000,
		Vehicle: &models.VehicleAttrs{
			Manufacturer: manufacturer,
			Model:        model,
			Year:         year,
			MileageKm:    100000,
			Fuel:         "petrol",
			Transmission: "automatic",
			BodyType:     "sedan",
			Steering:     "right",
		},
	}
}

func goldPlan(days int) models.Plan {
	return models.Plan{Tier: models.TierGold, DurationDays: days, Method: models.PaymentMethodQPay, AmountMnt: 20000}
}

// publish submits req as userID and pays for it.
func (e *testEnv) publish(t *testing.T, userID string, req *dto.SubmitListingRequest, plan models.Plan) *models.Listing {
	t.Helper()
	l, err := e.lifecycle.Submit(e.ctx, userID, req)
	require.NoError(t, err)
	_, err = e.lifecycle.ConfirmPayment(e.ctx, userID, l.ID, plan)
	require.NoError(t, err)
	return l
}

func assertCode(t *testing.T, err error, code apperrors.ErrorCode) {
	t.Helper()
	require.Error(t, err)
	appErr, ok := apperrors.AsAppError(err)
	require.True(t, ok, "expected *AppError, got %T: %v", err, err)
	assert.Equal(t, code, appErr.Code, appErr.Error())
}

func mustJSON(t *testing.T, v any) json.RawMessage {
	t.Helper()
	raw, err := json.Marshal(v)
	require.NoError(t, err)
	return raw
}

func searchIDs(t *testing.T, e *testEnv, q dto.ListingQuery) []string {
	t.Helper()
	resp, err := e.query.Search(e.ctx, q)
	require.NoError(t, err)
	views := resp.Data.([]dto.ListItemView)
	ids := make([]string, len(views))
	for i, v := range views {
		ids[i] = v.ID
	}
	return ids
}
