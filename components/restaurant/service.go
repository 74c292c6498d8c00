package restaurant

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/goliatone/go-fastfood-admin/components/tabular"
	"github.com/goliatone/go-fastfood-admin/pkg/activity"
	"github.com/google/uuid"
)

var (
	errMissingStore = errors.New("restaurant: store not configured")
	errMissingFetch = errors.New("restaurant: loader has no fetch function")
	errMissingID    = errors.New("restaurant: id is required")
)

// Options configures the restaurant Service. Every collaborator is an
// interface so hosts can swap the in-memory defaults.
type Options struct {
	Store           Store
	Validator       FormValidator
	NoticeHook      NoticeHook
	Telemetry       Telemetry
	Logger          *slog.Logger
	ActivityHooks   activity.Hooks
	ActivityConfig  activity.Config
	CategoryRevenue CategoryRevenueRepository
	HourlySales     HourlySalesRepository
	// Clock drives promotion status and the default history range.
	Clock func() time.Time
	// NewID mints ids for promotions, staff and roles.
	NewID func() string
}

// Service orchestrates the admin screens on top of a Store.
type Service struct {
	opts     Options
	logger   *slog.Logger
	activity *activity.Emitter
}

// NewService builds a Service with safe defaults.
func NewService(opts Options) *Service {
	if opts.Validator == nil {
		opts.Validator = NewJSONSchemaValidator()
	}
	if opts.NoticeHook == nil {
		opts.NoticeHook = noopNoticeHook{}
	}
	opts.Telemetry = normalizeTelemetry(opts.Telemetry)
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}
	if opts.Clock == nil {
		opts.Clock = time.Now
	}
	if opts.NewID == nil {
		opts.NewID = uuid.NewString
	}
	if opts.CategoryRevenue == nil && opts.Store != nil {
		opts.CategoryRevenue = storeAnalytics{store: opts.Store}
	}
	if opts.HourlySales == nil && opts.Store != nil {
		opts.HourlySales = storeAnalytics{store: opts.Store}
	}
	return &Service{
		opts:     opts,
		logger:   opts.Logger.With(slog.String("component", "restaurant")),
		activity: activity.NewEmitter(opts.ActivityHooks, opts.ActivityConfig),
	}
}

// Now returns the service clock reading.
func (s *Service) Now() time.Time {
	return s.opts.Clock()
}

func (s *Service) store() (Store, error) {
	if s.opts.Store == nil {
		return nil, errMissingStore
	}
	return s.opts.Store, nil
}

func (s *Service) recordTelemetry(ctx context.Context, event string, payload map[string]any) {
	s.opts.Telemetry.Record(ctx, event, payload)
}

// notify delivers a notice. Hook failures are logged, never returned.
func (s *Service) notify(ctx context.Context, notice Notice) {
	if notice.At.IsZero() {
		notice.At = s.Now()
	}
	if err := s.opts.NoticeHook.Notice(ctx, notice); err != nil {
		s.logger.WarnContext(ctx, "notice hook failed", slog.String("title", notice.Title), slog.Any("error", err))
	}
}

func (s *Service) success(ctx context.Context, title, message, subject string) {
	s.notify(ctx, Notice{Kind: NoticeSuccess, Title: title, Message: message, Subject: subject})
}

// reject raises an error notice for validation failures and returns err.
func (s *Service) reject(ctx context.Context, err error) error {
	var verr *ValidationError
	if errors.As(err, &verr) {
		message := "Please check the highlighted fields."
		if len(verr.Problems) > 0 {
			message = verr.Problems[0]
		}
		s.notify(ctx, Notice{Kind: NoticeError, Title: "Invalid " + verr.Form, Message: message})
	}
	return err
}

func (s *Service) validate(ctx context.Context, form string, payload any) error {
	if err := s.opts.Validator.Validate(form, payload); err != nil {
		return s.reject(ctx, err)
	}
	return nil
}

func (s *Service) emitActivity(ctx context.Context, verb, objectType, objectID string, metadata map[string]any) {
	if !s.activity.Enabled() {
		return
	}
	op := OperatorFrom(ctx)
	if op.RoleID != "" {
		withRole := map[string]any{"operator_role": op.RoleID}
		for key, value := range metadata {
			withRole[key] = value
		}
		metadata = withRole
	}
	err := s.activity.Emit(ctx, activity.Event{
		Verb:       verb,
		ActorID:    op.StaffID,
		UserID:     op.StaffID,
		TenantID:   op.StoreID,
		ObjectType: objectType,
		ObjectID:   objectID,
		Metadata:   metadata,
		OccurredAt: s.Now(),
	})
	if err != nil {
		s.logger.WarnContext(ctx, "activity emit failed", slog.String("verb", verb), slog.Any("error", err))
	}
}

// mutated logs, records and audits a successful mutation.
func (s *Service) mutated(ctx context.Context, verb, objectType, objectID string, metadata map[string]any) {
	s.logger.InfoContext(ctx, verb, slog.String("object_type", objectType), slog.String("object_id", objectID))
	payload := map[string]any{"object_id": objectID}
	for key, value := range metadata {
		payload[key] = value
	}
	s.recordTelemetry(ctx, verb, payload)
	s.emitActivity(ctx, verb, objectType, objectID, metadata)
}

// run executes q against rows, noting rule fields the schema lacks. Unknown
// fields degrade inside the engine rather than fail the query.
func run[R any](ctx context.Context, s *Service, screen string, rows []R, schema tabular.Schema[R], q tabular.Query) tabular.Result[R] {
	if err := schema.Validate(q); err != nil {
		var unknown *tabular.UnknownFieldError
		if errors.As(err, &unknown) {
			s.recordTelemetry(ctx, "restaurant.query.unknown_fields", map[string]any{
				"screen": screen,
				"fields": unknown.Fields,
			})
		}
	}
	result := tabular.Run(rows, schema, q)
	s.recordTelemetry(ctx, "restaurant.query", map[string]any{
		"screen":  screen,
		"total":   result.Total,
		"matched": result.Matched,
	})
	return result
}
