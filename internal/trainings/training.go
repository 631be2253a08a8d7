package trainings

import (
	"slices"
	"time"

	"github.com/2beens/swimcoach/internal/factors"
	"github.com/2beens/swimcoach/pkg"
)

var (
	ErrTrainingNotFound = &pkg.KindError{Kind: pkg.ErrNotFound, Msg: "training not found"}
	ErrAthleteNotFound  = &pkg.KindError{Kind: pkg.ErrNotFound, Msg: "athlete not found"}
	ErrInvalidStatus    = &pkg.KindError{Kind: pkg.ErrInvalidInput, Msg: "status must be one of: scheduled, in-progress, completed, cancelled"}
)

const (
	StatusScheduled  = "scheduled"
	StatusInProgress = "in-progress"
	StatusCompleted  = "completed"
	StatusCancelled  = "cancelled"
)

var (
	Statuses      = []string{StatusScheduled, StatusInProgress, StatusCompleted, StatusCancelled}
	TrainingTypes = []string{"resistance", "speed", "technique", "mixed", "other"}
	SwimStyles    = []string{"freestyle", "backstroke", "breaststroke", "butterfly", "medley"}
)

func IsValidStatus(s string) bool {
	return slices.Contains(Statuses, s)
}

func IsValidTrainingType(t string) bool {
	return slices.Contains(TrainingTypes, t)
}

func IsValidSwimStyle(s string) bool {
	return slices.Contains(SwimStyles, s)
}

type AthleteSummary struct {
	ID        int     `json:"id"`
	FirstName string  `json:"firstName"`
	LastName  string  `json:"lastName"`
	Category  *string `json:"category,omitempty"`
}

type Training struct {
	ID                  int              `json:"id"`
	AthleteID           int              `json:"athleteId"`
	CoachID             int              `json:"coachId"`
	Title               *string          `json:"title"`
	Description         *string          `json:"description"`
	Location            *string          `json:"location"`
	Status              string           `json:"status"`
	Date                time.Time        `json:"date"`
	StartTime           *string          `json:"startTime"`
	EndTime             *string          `json:"endTime"`
	TrainingType        string           `json:"trainingType"`
	DurationMinutes     *int             `json:"durationMinutes"`
	IsOutdoor           bool             `json:"isOutdoor"`
	Temperature         *float64         `json:"temperature"`
	Humidity            *float64         `json:"humidity"`
	WeatherCondition    *string          `json:"weatherCondition"`
	HeartRateRest       *int             `json:"heartRateRest"`
	HeartRateDuring     *int             `json:"heartRateDuring"`
	HeartRateAfter      *int             `json:"heartRateAfter"`
	WeightBefore        *float64         `json:"weightBefore"`
	WeightAfter         *float64         `json:"weightAfter"`
	BreathingPattern    *string          `json:"breathingPattern"`
	PhysicalStateRating *int             `json:"physicalStateRating"`
	PainReported        bool             `json:"painReported"`
	SwimsuitType        *string          `json:"swimsuitType"`
	EquipmentUsed       *string          `json:"equipmentUsed"`
	Notes               *string          `json:"notes"`
	CreatedAt           time.Time        `json:"createdAt"`
	UpdatedAt           time.Time        `json:"updatedAt"`
	Athlete             *AthleteSummary  `json:"athlete,omitempty"`
	Details             []Detail         `json:"details,omitempty"`
	ExternalFactors     []factors.Factor `json:"externalFactors,omitempty"`
}

// Detail is one timed set of a training.
type Detail struct {
	ID                  int       `json:"id"`
	TrainingID          int       `json:"trainingId"`
	Distance            int       `json:"distance"`
	SwimStyle           string    `json:"swimStyle"`
	TimeSeconds         float64   `json:"timeSeconds"`
	SeriesNumber        *int      `json:"seriesNumber"`
	RepetitionNumber    *int      `json:"repetitionNumber"`
	RestIntervalSeconds *int      `json:"restIntervalSeconds"`
	StrokeCount         *int      `json:"strokeCount"`
	Efficiency          *float64  `json:"efficiency"`
	Notes               *string   `json:"notes"`
	CreatedAt           time.Time `json:"createdAt"`
}

// Upcoming is a scheduled training with its athlete's name, for the dashboard.
type Upcoming struct {
	ID           int       `json:"id"`
	Title        *string   `json:"title"`
	Date         time.Time `json:"date"`
	StartTime    *string   `json:"startTime"`
	TrainingType string    `json:"trainingType"`
	Status       string    `json:"status"`
	AthleteID    int       `json:"athleteId"`
	AthleteName  string    `json:"athleteName"`
}

type DetailRequest struct {
	Distance            int      `json:"distance" validate:"required,gt=0"`
	SwimStyle           string   `json:"swimStyle" validate:"required,oneof=freestyle backstroke breaststroke butterfly medley"`
	TimeSeconds         float64  `json:"timeSeconds" validate:"required,gt=0"`
	SeriesNumber        *int     `json:"seriesNumber" validate:"omitempty,gt=0"`
	RepetitionNumber    *int     `json:"repetitionNumber" validate:"omitempty,gt=0"`
	RestIntervalSeconds *int     `json:"restIntervalSeconds" validate:"omitempty,min=0"`
	StrokeCount         *int     `json:"strokeCount" validate:"omitempty,min=0"`
	Efficiency          *float64 `json:"efficiency"`
	Notes               *string  `json:"notes" validate:"omitempty,max=1000"`
}

// TrainingRequest is the create/update payload. Nil details or externalFactors
// leave the stored ones untouched on update; an empty list clears them.
type TrainingRequest struct {
	AthleteID           int                     `json:"athleteId" validate:"omitempty,gt=0"`
	Title               *string                 `json:"title" validate:"omitempty,max=200"`
	Description         *string                 `json:"description" validate:"omitempty,max=2000"`
	Location            *string                 `json:"location" validate:"omitempty,max=200"`
	Status              string                  `json:"status" validate:"omitempty,oneof=scheduled in-progress completed cancelled"`
	Date                string                  `json:"date" validate:"required"`
	StartTime           *string                 `json:"startTime" validate:"omitempty,datetime=15:04"`
	EndTime             *string                 `json:"endTime" validate:"omitempty,datetime=15:04"`
	TrainingType        string                  `json:"trainingType" validate:"required,oneof=resistance speed technique mixed other"`
	DurationMinutes     *int                    `json:"durationMinutes" validate:"omitempty,min=0,max=1440"`
	IsOutdoor           bool                    `json:"isOutdoor"`
	Temperature         *float64                `json:"temperature" validate:"omitempty,min=-30,max=60"`
	Humidity            *float64                `json:"humidity" validate:"omitempty,min=0,max=100"`
	WeatherCondition    *string                 `json:"weatherCondition" validate:"omitempty,oneof=sunny cloudy rainy other"`
	HeartRateRest       *int                    `json:"heartRateRest" validate:"omitempty,min=20,max=250"`
	HeartRateDuring     *int                    `json:"heartRateDuring" validate:"omitempty,min=20,max=250"`
	HeartRateAfter      *int                    `json:"heartRateAfter" validate:"omitempty,min=20,max=250"`
	WeightBefore        *float64                `json:"weightBefore" validate:"omitempty,gt=0,lt=500"`
	WeightAfter         *float64                `json:"weightAfter" validate:"omitempty,gt=0,lt=500"`
	BreathingPattern    *string                 `json:"breathingPattern" validate:"omitempty,max=200"`
	PhysicalStateRating *int                    `json:"physicalStateRating" validate:"omitempty,min=1,max=10"`
	PainReported        bool                    `json:"painReported"`
	SwimsuitType        *string                 `json:"swimsuitType" validate:"omitempty,max=100"`
	EquipmentUsed       *string                 `json:"equipmentUsed" validate:"omitempty,max=500"`
	Notes               *string                 `json:"notes" validate:"omitempty,max=2000"`
	Details             []DetailRequest         `json:"details" validate:"omitempty,dive"`
	ExternalFactors     []factors.FactorRequest `json:"externalFactors" validate:"omitempty,dive"`
}

type StatusRequest struct {
	Status string `json:"status" validate:"required"`
}

// ToTraining converts a validated request into a training carrying its
// details and factors, preserving the nil/empty distinction of both lists.
func (req TrainingRequest) ToTraining(coachID int) (Training, error) {
	date, err := pkg.ParseDate(req.Date)
	if err != nil {
		return Training{}, pkg.NewInvalidInputError("date must be a date (YYYY-MM-DD) or RFC3339 timestamp")
	}

	t := Training{
		AthleteID:           req.AthleteID,
		CoachID:             coachID,
		Title:               req.Title,
		Description:         req.Description,
		Location:            req.Location,
		Status:              req.Status,
		Date:                date,
		StartTime:           req.StartTime,
		EndTime:             req.EndTime,
		TrainingType:        req.TrainingType,
		DurationMinutes:     req.DurationMinutes,
		IsOutdoor:           req.IsOutdoor,
		Temperature:         req.Temperature,
		Humidity:            req.Humidity,
		WeatherCondition:    req.WeatherCondition,
		HeartRateRest:       req.HeartRateRest,
		HeartRateDuring:     req.HeartRateDuring,
		HeartRateAfter:      req.HeartRateAfter,
		WeightBefore:        req.WeightBefore,
		WeightAfter:         req.WeightAfter,
		BreathingPattern:    req.BreathingPattern,
		PhysicalStateRating: req.PhysicalStateRating,
		PainReported:        req.PainReported,
		SwimsuitType:        req.SwimsuitType,
		EquipmentUsed:       req.EquipmentUsed,
		Notes:               req.Notes,
	}

	if req.Details != nil {
		t.Details = make([]Detail, 0, len(req.Details))
		for _, d := range req.Details {
			t.Details = append(t.Details, Detail{
				Distance:            d.Distance,
				SwimStyle:           d.SwimStyle,
				TimeSeconds:         d.TimeSeconds,
				SeriesNumber:        d.SeriesNumber,
				RepetitionNumber:    d.RepetitionNumber,
				RestIntervalSeconds: d.RestIntervalSeconds,
				StrokeCount:         d.StrokeCount,
				Efficiency:          d.Efficiency,
				Notes:               d.Notes,
			})
		}
	}

	if req.ExternalFactors != nil {
		t.ExternalFactors = make([]factors.Factor, 0, len(req.ExternalFactors))
		for _, fr := range req.ExternalFactors {
			f, err := fr.ToFactor()
			if err != nil {
				return Training{}, err
			}
			t.ExternalFactors = append(t.ExternalFactors, f)
		}
	}

	return t, nil
}

var sortColumns = map[string]string{
	"date":          "date",
	"createdAt":     "created_at",
	"created_at":    "created_at",
	"updatedAt":     "updated_at",
	"updated_at":    "updated_at",
	"trainingType":  "training_type",
	"training_type": "training_type",
	"status":        "status",
}

const (
	defaultPageLimit = 10
	maxPageLimit     = 100
)

type ListParams struct {
	CoachID      int
	AthleteID    *int
	TrainingType string
	StartDate    *time.Time
	EndDate      *time.Time
	Page         int
	Limit        int
	Sort         string
	Order        string
}

// Normalize clamps paging and replaces an unknown sort field or order with the defaults.
func (p ListParams) Normalize() ListParams {
	if p.Page < 1 {
		p.Page = 1
	}
	if p.Limit < 1 {
		p.Limit = defaultPageLimit
	}
	if p.Limit > maxPageLimit {
		p.Limit = maxPageLimit
	}
	if _, ok := sortColumns[p.Sort]; !ok {
		p.Sort = "date"
	}
	if p.Order != "asc" {
		p.Order = "desc"
	}
	return p
}

func (p ListParams) Offset() int {
	return (p.Page - 1) * p.Limit
}

func (p ListParams) orderBy() string {
	dir := "DESC"
	if p.Order == "asc" {
		dir = "ASC"
	}
	return "t." + sortColumns[p.Sort] + " " + dir + ", t.id " + dir
}
