package football

import (
	"context"
	"log/slog"
	"net/url"
	"strconv"
	"time"

	"github.com/lacerdaedaniella-eng/goalmind-backend/internal/logging"
	"github.com/lacerdaedaniella-eng/goalmind-backend/internal/metrics"
	"github.com/lacerdaedaniella-eng/goalmind-backend/internal/timeutil"
	"github.com/lacerdaedaniella-eng/goalmind-backend/internal/upstream"
)

// Options configures a Service. Zero values fall back to time.Now and no-op metrics.
type Options struct {
	Season  int
	Now     func() time.Time
	Metrics *metrics.Recorder
	Logger  *slog.Logger
}

// Result is what an endpoint returns to the client on success.
// Body is either the upstream envelope or a projected slice.
type Result struct {
	Body  any
	Empty bool
}

// Service implements the football endpoints on top of a Fetcher.
// It holds no mutable state and is safe for concurrent use.
type Service struct {
	fetcher upstream.Fetcher
	season  string
	now     func() time.Time
	metrics *metrics.Recorder
	logger  *slog.Logger
}

// NewService constructs a Service with the provided Fetcher.
func NewService(fetcher upstream.Fetcher, opts Options) *Service {
	now := opts.Now
	if now == nil {
		now = time.Now
	}
	return &Service{
		fetcher: fetcher,
		season:  strconv.Itoa(opts.Season),
		now:     now,
		metrics: opts.Metrics,
		logger:  opts.Logger,
	}
}

// Teams lists the teams of a league for the configured season.
func (s *Service) Teams(ctx context.Context, params url.Values) (Result, error) {
	league, err := requireLeague(EndpointTeams, params)
	if err != nil {
		return Result{}, s.rejected(ctx, err)
	}
	q := url.Values{}
	q.Set("league", league)
	q.Set("season", s.season)
	return s.passthrough(ctx, EndpointTeams, pathTeams, q, msgNoTeams)
}

// Stats returns a team's statistics within a league for the configured season.
func (s *Service) Stats(ctx context.Context, params url.Values) (Result, error) {
	team, league, err := requireTeamAndLeague(EndpointStats, params)
	if err != nil {
		return Result{}, s.rejected(ctx, err)
	}
	q := url.Values{}
	q.Set("league", league)
	q.Set("team", team)
	q.Set("season", s.season)
	return s.passthrough(ctx, EndpointStats, pathStatistics, q, msgNoStats)
}

// Fixtures returns a league's fixtures from today through the next two weeks,
// optionally narrowed to one team.
func (s *Service) Fixtures(ctx context.Context, params url.Values) (Result, error) {
	league, err := requireLeague(EndpointFixtures, params)
	if err != nil {
		return Result{}, s.rejected(ctx, err)
	}
	team, err := optionalTeam(EndpointFixtures, params)
	if err != nil {
		return Result{}, s.rejected(ctx, err)
	}

	from, to := FixtureWindow(s.now())
	q := url.Values{}
	q.Set("league", league)
	q.Set("season", s.season)
	q.Set("from", from)
	q.Set("to", to)
	if team != "" {
		q.Set("team", team)
	}
	return s.passthrough(ctx, EndpointFixtures, pathFixtures, q, msgNoFixtures)
}

// Live returns all fixtures currently in play.
func (s *Service) Live(ctx context.Context, _ url.Values) (Result, error) {
	q := url.Values{}
	q.Set("live", "all")
	return s.passthrough(ctx, EndpointLive, pathFixtures, q, msgNoLive)
}

// Standings returns the top of a league table for the configured season.
func (s *Service) Standings(ctx context.Context, params url.Values) (Result, error) {
	league, err := requireLeague(EndpointStandings, params)
	if err != nil {
		return Result{}, s.rejected(ctx, err)
	}
	q := url.Values{}
	q.Set("league", league)
	q.Set("season", s.season)

	payload, err := s.fetch(ctx, EndpointStandings, pathStandings, q)
	if err != nil {
		return Result{}, err
	}
	rows, err := projectStandings(pathStandings, payload, standingsLimit)
	if err != nil {
		return Result{}, s.failed(ctx, EndpointStandings, q, err)
	}
	if len(rows) == 0 {
		s.emptied(ctx, EndpointStandings)
		return Result{Body: rows, Empty: true}, nil
	}
	return Result{Body: rows}, nil
}

// FixtureWindow returns the from/to dates used for the fixtures query.
func FixtureWindow(now time.Time) (from, to string) {
	return timeutil.Window(now, fixtureWindowDays)
}

func (s *Service) passthrough(ctx context.Context, endpoint, path string, q url.Values, emptyMsg string) (Result, error) {
	payload, err := s.fetch(ctx, endpoint, path, q)
	if err != nil {
		return Result{}, err
	}
	empty, err := passthrough(path, payload)
	if err != nil {
		return Result{}, s.failed(ctx, endpoint, q, err)
	}
	if empty {
		payload[MessageField] = emptyMsg
		s.emptied(ctx, endpoint)
	}
	return Result{Body: payload, Empty: empty}, nil
}

func (s *Service) fetch(ctx context.Context, endpoint, path string, q url.Values) (upstream.Payload, error) {
	if s.fetcher == nil {
		return nil, s.failed(ctx, endpoint, q, upstream.ErrProviderUnavailable)
	}
	payload, err := s.fetcher.Fetch(ctx, path, q)
	if err != nil {
		return nil, s.failed(ctx, endpoint, q, err)
	}
	return payload, nil
}

func (s *Service) rejected(ctx context.Context, err error) error {
	if vErr, ok := AsValidationError(err); ok {
		s.metrics.RecordValidationFailure(vErr.Endpoint)
		logging.Debug(logging.FromContext(ctx, s.logger), "request rejected",
			logging.FieldEndpoint, vErr.Endpoint,
			"field", vErr.Field,
		)
	}
	return err
}

func (s *Service) failed(ctx context.Context, endpoint string, q url.Values, err error) error {
	args := []any{logging.FieldEndpoint, endpoint, logging.FieldError, err}
	if league := q.Get(paramLeague); league != "" {
		args = append(args, logging.FieldLeague, league)
	}
	if team := q.Get(paramTeam); team != "" {
		args = append(args, logging.FieldTeam, team)
	}
	logging.Warn(logging.FromContext(ctx, s.logger), "endpoint fetch failed", args...)
	return &FetchError{Endpoint: endpoint, Err: err}
}

func (s *Service) emptied(ctx context.Context, endpoint string) {
	s.metrics.RecordEmptyResult(endpoint)
	logging.Info(logging.FromContext(ctx, s.logger), "empty upstream result",
		logging.FieldEndpoint, endpoint,
	)
}
