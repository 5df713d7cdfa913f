package services

import (
	"context"
	"fmt"
	"math/rand/v2"
	"time"

	"autozar_backend/internal/algorithms"
	"autozar_backend/internal/dto"
	"autozar_backend/internal/logger"
	"autozar_backend/internal/metrics"
	"autozar_backend/internal/models"
	"autozar_backend/pkg/apperrors"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

var tracer = otel.Tracer("autozar_backend/services")

// QueryOptions tune the read path.
type QueryOptions struct {
	// SimulatedLatency is the upper bound of a uniform random delay added
	// before every query. Zero disables it.
	SimulatedLatency time.Duration
	DefaultPageSize  int
	MaxPageSize      int
	Placeholder      string
}

// QueryService answers public read queries over a publication snapshot.
type QueryService interface {
	Search(ctx context.Context, q dto.ListingQuery) (*dto.PaginatedResponse, error)
	Facets(ctx context.Context, q dto.ListingQuery, d algorithms.Dimension) (*dto.FacetResponse, error)
	// Get returns nil when the listing is not publicly visible.
	Get(ctx context.Context, id string) (*dto.ListingDetail, error)
}

type queryService struct {
	gate PublicationGate
	opts QueryOptions
	now  func() time.Time
}

func NewQueryService(gate PublicationGate, opts QueryOptions, now func() time.Time) QueryService {
	if now == nil {
		now = time.Now
	}
	if opts.DefaultPageSize <= 0 {
		opts.DefaultPageSize = 12
	}
	if opts.MaxPageSize <= 0 {
		opts.MaxPageSize = 100
	}
	return &queryService{gate: gate, opts: opts, now: now}
}

func (s *queryService) Search(ctx context.Context, lq dto.ListingQuery) (_ *dto.PaginatedResponse, err error) {
	q := lq.ToQuery()
	params := lq.Params()

	ctx, span := s.startSpan(ctx, "QueryService.Search", q)
	defer func() { endSpan(span, err) }()
	defer observeQuery(q.Category, "search", time.Now())

	if err := q.Validate(); err != nil {
		return nil, apperrors.ErrInvalidInput(err)
	}
	pageSize, err := s.pageSize(params.PageSize)
	if err != nil {
		return nil, err
	}

	snapshot, err := s.snapshot(ctx, q.Category)
	if err != nil {
		return nil, err
	}

	sorted := algorithms.Sort(algorithms.Filter(snapshot, q), q.Sort)
	page, err := algorithms.Paginate(sorted, params.Page, pageSize)
	if err != nil {
		return nil, apperrors.ErrInvalidInput(err)
	}
	views := algorithms.MapPage(page, func(l models.Listing) dto.ListItemView {
		return dto.NewListItemView(&l, s.opts.Placeholder)
	})

	span.SetAttributes(attribute.Int("results.total", page.Total))
	logger.CtxDebug(ctx, "Search served",
		"category", q.Category,
		"total", page.Total,
		"page", page.Page,
		"seq", params.Seq,
	)
	return dto.NewPaginatedResponse(views, params.Seq), nil
}

func (s *queryService) Facets(ctx context.Context, lq dto.ListingQuery, d algorithms.Dimension) (_ *dto.FacetResponse, err error) {
	q := lq.ToQuery()

	ctx, span := s.startSpan(ctx, "QueryService.Facets", q)
	defer func() { endSpan(span, err) }()
	defer observeQuery(q.Category, "facet", time.Now())
	span.SetAttributes(attribute.String("dimension", string(d)))

	if err := q.Validate(); err != nil {
		return nil, apperrors.ErrInvalidInput(err)
	}
	if !algorithms.HasDimension(q.Category, d) {
		return nil, apperrors.ErrInvalidInput(fmt.Errorf("%w: %s/%s", algorithms.ErrUnknownDimension, q.Category, d))
	}

	snapshot, err := s.snapshot(ctx, q.Category)
	if err != nil {
		return nil, err
	}
	counts, err := algorithms.Facet(snapshot, q, d)
	if err != nil {
		return nil, apperrors.ErrInvalidInput(err)
	}
	return &dto.FacetResponse{
		Category:  q.Category,
		Dimension: d,
		Values:    counts,
		Seq:       lq.Params().Seq,
	}, nil
}

func (s *queryService) Get(ctx context.Context, id string) (_ *dto.ListingDetail, err error) {
	ctx, span := tracer.Start(ctx, "QueryService.Get", trace.WithAttributes(attribute.String("listing.id", id)))
	defer func() { endSpan(span, err) }()
	started := time.Now()

	if err := s.simulateLatency(ctx); err != nil {
		return nil, err
	}
	now := s.now()
	l, err := s.gate.Lookup(ctx, id, now)
	if err != nil {
		return nil, apperrors.StorageError(err)
	}
	if l != nil {
		observeQuery(l.Category, "get", started)
	}
	return dto.NewListingDetail(l, now), nil
}

func (s *queryService) snapshot(ctx context.Context, c models.Category) ([]models.Listing, error) {
	if err := s.simulateLatency(ctx); err != nil {
		return nil, err
	}
	snapshot, err := s.gate.Snapshot(ctx, c, s.now())
	if err != nil {
		return nil, apperrors.StorageError(err)
	}
	return snapshot, nil
}

func (s *queryService) pageSize(requested *int) (int, error) {
	if requested == nil {
		return s.opts.DefaultPageSize, nil
	}
	size := *requested
	if size <= 0 || size > s.opts.MaxPageSize {
		return 0, apperrors.ErrInvalidInput(
			fmt.Errorf("%w: %d (max %d)", algorithms.ErrInvalidPageSize, size, s.opts.MaxPageSize),
		)
	}
	return size, nil
}

// simulateLatency waits a uniform random duration in [0, SimulatedLatency).
func (s *queryService) simulateLatency(ctx context.Context) error {
	if s.opts.SimulatedLatency <= 0 {
		return nil
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	t := time.NewTimer(rand.N(s.opts.SimulatedLatency))
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}

func (s *queryService) startSpan(ctx context.Context, name string, q algorithms.Query) (context.Context, trace.Span) {
	return tracer.Start(ctx, name, trace.WithAttributes(
		attribute.String("listing.category", string(q.Category)),
		attribute.String("query.sort", string(q.Sort)),
		attribute.Int("query.constraints", len(q.Enums)+len(q.Ranges)),
	))
}

func endSpan(span trace.Span, err error) {
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	span.End()
}

func observeQuery(c models.Category, kind string, started time.Time) {
	metrics.QueriesTotal.WithLabelValues(string(c), kind).Inc()
	metrics.QueryDuration.WithLabelValues(kind).Observe(time.Since(started).Seconds())
}
