package athletes

import (
	"time"

	"github.com/2beens/swimcoach/pkg"
)

var ErrAthleteNotFound = &pkg.KindError{Kind: pkg.ErrNotFound, Msg: "athlete not found"}

type Athlete struct {
	ID          int        `json:"id"`
	CoachID     int        `json:"coachId"`
	FirstName   string     `json:"firstName"`
	LastName    string     `json:"lastName"`
	DateOfBirth *time.Time `json:"dateOfBirth"`
	Category    *string    `json:"category"`
	Height      *float64   `json:"height"`
	Weight      *float64   `json:"weight"`
	Gender      *string    `json:"gender"`
	Phone       *string    `json:"phone"`
	Email       *string    `json:"email"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   time.Time  `json:"updatedAt"`
}

func (a Athlete) FullName() string {
	return a.FirstName + " " + a.LastName
}

// AthleteRequest is the payload of create and update.
type AthleteRequest struct {
	FirstName   string   `json:"firstName" validate:"required,max=100"`
	LastName    string   `json:"lastName" validate:"required,max=100"`
	DateOfBirth *string  `json:"dateOfBirth" validate:"omitempty,datetime=2006-01-02"`
	Category    *string  `json:"category" validate:"omitempty,max=50"`
	Height      *float64 `json:"height" validate:"omitempty,gt=0,lt=300"`
	Weight      *float64 `json:"weight" validate:"omitempty,gt=0,lt=500"`
	Gender      *string  `json:"gender" validate:"omitempty,oneof=male female other"`
	Phone       *string  `json:"phone" validate:"omitempty,max=30"`
	Email       *string  `json:"email" validate:"omitempty,email"`
}

// ToAthlete converts a validated request. The date of birth must lie in the past.
func (req AthleteRequest) ToAthlete(coachID int, now time.Time) (Athlete, error) {
	a := Athlete{
		CoachID:   coachID,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Category:  req.Category,
		Height:    req.Height,
		Weight:    req.Weight,
		Gender:    req.Gender,
		Phone:     req.Phone,
		Email:     req.Email,
	}
	if req.DateOfBirth != nil {
		dob, err := time.Parse(time.DateOnly, *req.DateOfBirth)
		if err != nil {
			return Athlete{}, pkg.NewInvalidInputError("dateOfBirth must be YYYY-MM-DD")
		}
		if !dob.Before(now) {
			return Athlete{}, pkg.NewInvalidInputError("dateOfBirth must be in the past")
		}
		a.DateOfBirth = &dob
	}
	return a, nil
}
