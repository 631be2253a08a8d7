package analytics

import (
	"context"
	"sort"
	"time"

	"github.com/2beens/swimcoach/internal/athletes"
	"github.com/2beens/swimcoach/internal/telemetry/metrics"
	"github.com/2beens/swimcoach/internal/telemetry/tracing"

	"github.com/prometheus/client_golang/prometheus"
	"go.opentelemetry.io/otel/attribute"
)

//go:generate mockgen -source=$GOFILE -destination=service_mocks_test.go -package=analytics_test

type analyticsRepo interface {
	Details(ctx context.Context, q DetailQuery) ([]DetailRow, error)
	Sessions(ctx context.Context, athleteID int, from *time.Time) ([]SessionRow, error)
}

type athletesRepo interface {
	Get(ctx context.Context, id, coachID int) (*athletes.Athlete, error)
}

const (
	DefaultMonths = 3
	DefaultWeeks  = 12

	// a last time above avg*alertThreshold is flagged
	alertThreshold = 1.1
)

type TimeEvolutionParams struct {
	Distance  *int
	SwimStyle *string
	Months    int
}

type TimeEvolutionPoint struct {
	Date        time.Time `json:"date"`
	Distance    int       `json:"distance"`
	Style       string    `json:"style"`
	TimeSeconds float64   `json:"timeSeconds"`
}

type Alert struct {
	Distance int       `json:"distance"`
	Time     float64   `json:"time"`
	AvgTime  float64   `json:"avgTime"`
	Date     time.Time `json:"date"`
}

type MetricPoint struct {
	Date          time.Time `json:"date"`
	Weight        *float64  `json:"weight"`
	HRRest        *int      `json:"hrRest"`
	HRDuring      *int      `json:"hrDuring"`
	HRAfter       *int      `json:"hrAfter"`
	PhysicalState *int      `json:"physicalState"`
}

type SeriesEfficiency struct {
	Series        int      `json:"series"`
	AvgEfficiency *float64 `json:"avgEfficiency"`
}

type SeriesConsistency struct {
	Series int      `json:"series"`
	StdDev *float64 `json:"stdDev"`
}

type WeeklyDuration struct {
	Week    string `json:"week"`
	Minutes int    `json:"minutes"`
}

type WeeklyDistance struct {
	Week   string `json:"week"`
	Meters int    `json:"meters"`
}

type LoadAndVolume struct {
	WeeklyDuration []WeeklyDuration `json:"weeklyDuration"`
	WeeklyDistance []WeeklyDistance `json:"weeklyDistance"`
}

type WeeklySessions struct {
	Week     string `json:"week"`
	Sessions int    `json:"sessions"`
}

type GeneralConsistency struct {
	Weeks                  int              `json:"weeks"`
	SessionsPerWeek        []WeeklySessions `json:"sessionsPerWeek"`
	CoefficientOfVariation *float64         `json:"coefficientOfVariation"`
}

type Variability struct {
	Distance int      `json:"distance"`
	Samples  int      `json:"samples"`
	Variance *float64 `json:"variance"`
	StdDev   *float64 `json:"stdDev"`
}

// Service computes the per-athlete reports. Every report first checks that
// the athlete belongs to the requesting coach; nothing else is read otherwise.
type Service struct {
	repo     analyticsRepo
	athletes athletesRepo
	metrics  *metrics.Manager
	now      func() time.Time
}

func NewService(repo analyticsRepo, athletesRepo athletesRepo, metricsManager *metrics.Manager) *Service {
	return &Service{
		repo:     repo,
		athletes: athletesRepo,
		metrics:  metricsManager,
		now:      time.Now,
	}
}

// WithClock replaces the time source, for tests.
func (s *Service) WithClock(now func() time.Time) *Service {
	s.now = now
	return s
}

func (s *Service) assertAthleteOwnedByCoach(ctx context.Context, athleteID, coachID int) (*athletes.Athlete, error) {
	return s.athletes.Get(ctx, athleteID, coachID)
}

func (s *Service) startReport(ctx context.Context, report string, athleteID int) (context.Context, func(*error)) {
	timer := prometheus.NewTimer(s.metrics.HistogramAnalyticsDuration.WithLabelValues(report))
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.analytics."+report)
	span.SetAttributes(attribute.Int("athleteId", athleteID))
	return ctx, func(err *error) {
		timer.ObserveDuration()
		tracing.EndSpanWithErrCheck(span, *err)
	}
}

// TimeEvolution lists the athlete's detail times over the last params.Months
// months, optionally narrowed to one distance and style, oldest first.
func (s *Service) TimeEvolution(ctx context.Context, coachID, athleteID int, params TimeEvolutionParams) (_ []TimeEvolutionPoint, err error) {
	ctx, done := s.startReport(ctx, "time-evolution", athleteID)
	defer func() { done(&err) }()

	if _, err := s.assertAthleteOwnedByCoach(ctx, athleteID, coachID); err != nil {
		return nil, err
	}

	months := params.Months
	if months <= 0 {
		months = DefaultMonths
	}
	cutoff := s.now().AddDate(0, -months, 0)

	rows, err := s.repo.Details(ctx, DetailQuery{
		AthleteID: athleteID,
		Distance:  params.Distance,
		SwimStyle: params.SwimStyle,
		From:      &cutoff,
	})
	if err != nil {
		return nil, err
	}

	points := make([]TimeEvolutionPoint, 0, len(rows))
	for _, r := range rows {
		points = append(points, TimeEvolutionPoint{
			Date:        r.TrainingDate,
			Distance:    r.Distance,
			Style:       r.SwimStyle,
			TimeSeconds: r.TimeSeconds,
		})
	}
	return points, nil
}

// PerformanceAlerts flags, per distance, the most recently created detail
// when it is more than 10% slower than the all-time average for that distance.
func (s *Service) PerformanceAlerts(ctx context.Context, coachID, athleteID int) (_ []Alert, err error) {
	ctx, done := s.startReport(ctx, "performance-alerts", athleteID)
	defer func() { done(&err) }()

	if _, err := s.assertAthleteOwnedByCoach(ctx, athleteID, coachID); err != nil {
		return nil, err
	}

	rows, err := s.repo.Details(ctx, DetailQuery{AthleteID: athleteID})
	if err != nil {
		return nil, err
	}

	times := make(map[int][]float64)
	last := make(map[int]DetailRow)
	for _, r := range rows {
		times[r.Distance] = append(times[r.Distance], r.TimeSeconds)
		if l, ok := last[r.Distance]; !ok || createdAfter(r, l) {
			last[r.Distance] = r
		}
	}

	alerts := make([]Alert, 0)
	for distance, ts := range times {
		avg := *mean(ts)
		l := last[distance]
		if l.TimeSeconds > avg*alertThreshold {
			alerts = append(alerts, Alert{
				Distance: distance,
				Time:     l.TimeSeconds,
				AvgTime:  avg,
				Date:     l.CreatedAt,
			})
		}
	}
	sort.Slice(alerts, func(i, j int) bool {
		return alerts[i].Distance < alerts[j].Distance
	})

	return alerts, nil
}

func createdAfter(a, b DetailRow) bool {
	if a.CreatedAt.Equal(b.CreatedAt) {
		return a.ID > b.ID
	}
	return a.CreatedAt.After(b.CreatedAt)
}

// TimeSeriesMetrics projects the physiological fields of every training, oldest first.
func (s *Service) TimeSeriesMetrics(ctx context.Context, coachID, athleteID int) (_ []MetricPoint, err error) {
	ctx, done := s.startReport(ctx, "time-series-metrics", athleteID)
	defer func() { done(&err) }()

	if _, err := s.assertAthleteOwnedByCoach(ctx, athleteID, coachID); err != nil {
		return nil, err
	}

	sessions, err := s.repo.Sessions(ctx, athleteID, nil)
	if err != nil {
		return nil, err
	}

	points := make([]MetricPoint, 0, len(sessions))
	for _, session := range sessions {
		points = append(points, MetricPoint{
			Date:          session.Date,
			Weight:        session.WeightBefore,
			HRRest:        session.HeartRateRest,
			HRDuring:      session.HeartRateDuring,
			HRAfter:       session.HeartRateAfter,
			PhysicalState: session.PhysicalStateRating,
		})
	}
	return points, nil
}

// EfficiencyBySeries averages the non-null efficiencies of each series number.
func (s *Service) EfficiencyBySeries(ctx context.Context, coachID, athleteID int) (_ []SeriesEfficiency, err error) {
	ctx, done := s.startReport(ctx, "efficiency", athleteID)
	defer func() { done(&err) }()

	if _, err := s.assertAthleteOwnedByCoach(ctx, athleteID, coachID); err != nil {
		return nil, err
	}

	rows, err := s.repo.Details(ctx, DetailQuery{AthleteID: athleteID})
	if err != nil {
		return nil, err
	}

	series, groups := groupBySeries(rows, func(r DetailRow) (float64, bool) {
		if r.Efficiency == nil {
			return 0, false
		}
		return *r.Efficiency, true
	})

	result := make([]SeriesEfficiency, 0, len(series))
	for _, n := range series {
		result = append(result, SeriesEfficiency{
			Series:        n,
			AvgEfficiency: mean(groups[n]),
		})
	}
	return result, nil
}

// IntraSessionConsistency is the sample standard deviation of times per series number.
func (s *Service) IntraSessionConsistency(ctx context.Context, coachID, athleteID int) (_ []SeriesConsistency, err error) {
	ctx, done := s.startReport(ctx, "consistency", athleteID)
	defer func() { done(&err) }()

	if _, err := s.assertAthleteOwnedByCoach(ctx, athleteID, coachID); err != nil {
		return nil, err
	}

	rows, err := s.repo.Details(ctx, DetailQuery{AthleteID: athleteID})
	if err != nil {
		return nil, err
	}

	series, groups := groupBySeries(rows, func(r DetailRow) (float64, bool) {
		return r.TimeSeconds, true
	})

	result := make([]SeriesConsistency, 0, len(series))
	for _, n := range series {
		result = append(result, SeriesConsistency{
			Series: n,
			StdDev: sampleStdDev(groups[n]),
		})
	}
	return result, nil
}

// groupBySeries collects value(r) per series number, skipping rows without
// a series number. A series is listed even when value excludes all its rows.
func groupBySeries(rows []DetailRow, value func(DetailRow) (float64, bool)) ([]int, map[int][]float64) {
	groups := make(map[int][]float64)
	for _, r := range rows {
		if r.SeriesNumber == nil {
			continue
		}
		n := *r.SeriesNumber
		if _, ok := groups[n]; !ok {
			groups[n] = nil
		}
		if v, ok := value(r); ok {
			groups[n] = append(groups[n], v)
		}
	}

	series := make([]int, 0, len(groups))
	for n := range groups {
		series = append(series, n)
	}
	sort.Ints(series)
	return series, groups
}

// LoadAndVolume sums training minutes and detail meters per ISO week.
func (s *Service) LoadAndVolume(ctx context.Context, coachID, athleteID int) (_ *LoadAndVolume, err error) {
	ctx, done := s.startReport(ctx, "total-load", athleteID)
	defer func() { done(&err) }()

	if _, err := s.assertAthleteOwnedByCoach(ctx, athleteID, coachID); err != nil {
		return nil, err
	}

	sessions, err := s.repo.Sessions(ctx, athleteID, nil)
	if err != nil {
		return nil, err
	}
	rows, err := s.repo.Details(ctx, DetailQuery{AthleteID: athleteID})
	if err != nil {
		return nil, err
	}

	minutes := make(map[string]int)
	for _, session := range sessions {
		week := isoWeek(session.Date)
		minutes[week] += derefInt(session.DurationMinutes)
	}
	meters := make(map[string]int)
	for _, r := range rows {
		meters[isoWeek(r.TrainingDate)] += r.Distance
	}

	result := &LoadAndVolume{
		WeeklyDuration: make([]WeeklyDuration, 0, len(minutes)),
		WeeklyDistance: make([]WeeklyDistance, 0, len(meters)),
	}
	for _, week := range sortedKeys(minutes) {
		result.WeeklyDuration = append(result.WeeklyDuration, WeeklyDuration{Week: week, Minutes: minutes[week]})
	}
	for _, week := range sortedKeys(meters) {
		result.WeeklyDistance = append(result.WeeklyDistance, WeeklyDistance{Week: week, Meters: meters[week]})
	}
	return result, nil
}

// GeneralConsistency counts sessions per ISO week over the trailing window
// and reports the coefficient of variation of those counts.
// Weeks without sessions are not part of the sample.
func (s *Service) GeneralConsistency(ctx context.Context, coachID, athleteID, weeks int) (_ *GeneralConsistency, err error) {
	ctx, done := s.startReport(ctx, "general-consistency", athleteID)
	defer func() { done(&err) }()

	if _, err := s.assertAthleteOwnedByCoach(ctx, athleteID, coachID); err != nil {
		return nil, err
	}

	if weeks <= 0 {
		weeks = DefaultWeeks
	}
	since := s.now().AddDate(0, 0, -7*weeks)

	sessions, err := s.repo.Sessions(ctx, athleteID, &since)
	if err != nil {
		return nil, err
	}

	counts := make(map[string]int)
	for _, session := range sessions {
		counts[isoWeek(session.Date)]++
	}

	result := &GeneralConsistency{
		Weeks:           weeks,
		SessionsPerWeek: make([]WeeklySessions, 0, len(counts)),
	}
	sample := make([]float64, 0, len(counts))
	for _, week := range sortedKeys(counts) {
		result.SessionsPerWeek = append(result.SessionsPerWeek, WeeklySessions{Week: week, Sessions: counts[week]})
		sample = append(sample, float64(counts[week]))
	}
	result.CoefficientOfVariation = coefficientOfVariation(sample)

	return result, nil
}

// VariabilityByDistance is the sample variance and standard deviation of all times at one distance.
func (s *Service) VariabilityByDistance(ctx context.Context, coachID, athleteID, distance int) (_ *Variability, err error) {
	ctx, done := s.startReport(ctx, "variability", athleteID)
	defer func() { done(&err) }()

	if _, err := s.assertAthleteOwnedByCoach(ctx, athleteID, coachID); err != nil {
		return nil, err
	}

	rows, err := s.repo.Details(ctx, DetailQuery{AthleteID: athleteID, Distance: &distance})
	if err != nil {
		return nil, err
	}

	times := make([]float64, 0, len(rows))
	for _, r := range rows {
		times = append(times, r.TimeSeconds)
	}
	return &Variability{
		Distance: distance,
		Samples:  len(times),
		Variance: sampleVariance(times),
		StdDev:   sampleStdDev(times),
	}, nil
}

func derefInt(v *int) int {
	if v == nil {
		return 0
	}
	return *v
}

func sortedKeys(m map[string]int) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
