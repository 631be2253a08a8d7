package factors

import (
	"time"

	"github.com/2beens/swimcoach/pkg"
)

var (
	ErrFactorNotFound   = &pkg.KindError{Kind: pkg.ErrNotFound, Msg: "external factor not found"}
	ErrAthleteNotFound  = &pkg.KindError{Kind: pkg.ErrNotFound, Msg: "athlete not found"}
	ErrTrainingNotFound = &pkg.KindError{Kind: pkg.ErrNotFound, Msg: "training not found"}
	ErrTrainingMismatch = &pkg.KindError{Kind: pkg.ErrInvalidInput, Msg: "training does not belong to this athlete"}
	ErrEndBeforeStart   = &pkg.KindError{Kind: pkg.ErrInvalidInput, Msg: "endDate must not be before startDate"}
)

var FactorTypes = []string{
	"injury", "fatigue", "nutrition", "sleep", "stress", "medication", "travel", "weather", "other",
}

type AthleteRef struct {
	ID        int     `json:"id"`
	FirstName string  `json:"firstName"`
	LastName  string  `json:"lastName"`
	Category  *string `json:"category"`
}

type TrainingRef struct {
	ID           int       `json:"id"`
	Date         time.Time `json:"date"`
	Title        *string   `json:"title"`
	TrainingType string    `json:"trainingType"`
}

type Factor struct {
	ID                int          `json:"id"`
	AthleteID         int          `json:"athleteId"`
	TrainingID        *int         `json:"trainingId"`
	FactorType        string       `json:"factorType"`
	Description       string       `json:"description"`
	Severity          *int         `json:"severity"`
	StartDate         time.Time    `json:"startDate"`
	EndDate           *time.Time   `json:"endDate"`
	PerformanceImpact *int         `json:"performanceImpact"`
	Notes             *string      `json:"notes"`
	CreatedAt         time.Time    `json:"createdAt"`
	UpdatedAt         time.Time    `json:"updatedAt"`
	Athlete           *AthleteRef  `json:"athlete,omitempty"`
	Training          *TrainingRef `json:"training,omitempty"`
}

// Ongoing reports whether the factor has no end date yet.
func (f Factor) Ongoing() bool {
	return f.EndDate == nil
}

// FactorRequest is the create/update payload. A zero AthleteID means
// "take it from the route or keep the current one".
type FactorRequest struct {
	AthleteID         int     `json:"athleteId" validate:"omitempty,gt=0"`
	TrainingID        *int    `json:"trainingId" validate:"omitempty,gt=0"`
	FactorType        string  `json:"factorType" validate:"required,oneof=injury fatigue nutrition sleep stress medication travel weather other"`
	Description       string  `json:"description" validate:"required,max=2000"`
	Severity          *int    `json:"severity" validate:"omitempty,min=1,max=10"`
	StartDate         string  `json:"startDate" validate:"required"`
	EndDate           *string `json:"endDate"`
	PerformanceImpact *int    `json:"performanceImpact" validate:"omitempty,min=-10,max=10"`
	Notes             *string `json:"notes" validate:"omitempty,max=2000"`
}

func (req FactorRequest) ToFactor() (Factor, error) {
	start, err := pkg.ParseDate(req.StartDate)
	if err != nil {
		return Factor{}, pkg.NewInvalidInputError("startDate must be a date (YYYY-MM-DD) or RFC3339 timestamp")
	}

	f := Factor{
		AthleteID:         req.AthleteID,
		TrainingID:        req.TrainingID,
		FactorType:        req.FactorType,
		Description:       req.Description,
		Severity:          req.Severity,
		StartDate:         start,
		PerformanceImpact: req.PerformanceImpact,
		Notes:             req.Notes,
	}
	if req.EndDate != nil && *req.EndDate != "" {
		end, err := pkg.ParseDate(*req.EndDate)
		if err != nil {
			return Factor{}, pkg.NewInvalidInputError("endDate must be a date (YYYY-MM-DD) or RFC3339 timestamp")
		}
		if end.Before(start) {
			return Factor{}, ErrEndBeforeStart
		}
		f.EndDate = &end
	}
	return f, nil
}
