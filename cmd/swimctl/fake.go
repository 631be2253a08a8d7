package main

import (
	"time"

	"github.com/2beens/swimcoach/internal/athletes"
	"github.com/2beens/swimcoach/internal/factors"
	"github.com/2beens/swimcoach/internal/trainings"
	"github.com/2beens/swimcoach/pkg"

	"github.com/brianvoe/gofakeit/v6"
)

var (
	categories = []string{"infantil", "junior", "absoluto", "master"}
	distances  = []int{50, 100, 200, 400}
	// rough seconds per 100m for each style
	pacePer100 = map[string]float64{
		"freestyle":    62,
		"backstroke":   70,
		"breaststroke": 78,
		"butterfly":    68,
		"medley":       72,
	}
)

func fakeAthlete(f *gofakeit.Faker, coachID int, now time.Time) athletes.Athlete {
	dob := f.DateRange(now.AddDate(-30, 0, 0), now.AddDate(-10, 0, 0))
	return athletes.Athlete{
		CoachID:     coachID,
		FirstName:   f.FirstName(),
		LastName:    f.LastName(),
		DateOfBirth: &dob,
		Category:    pkg.Ptr(f.RandomString(categories)),
		Height:      pkg.Ptr(f.Float64Range(150, 200)),
		Weight:      pkg.Ptr(f.Float64Range(45, 95)),
		Gender:      pkg.Ptr(f.RandomString([]string{"male", "female"})),
		Phone:       pkg.Ptr(f.Phone()),
		Email:       pkg.Ptr(f.Email()),
	}
}

// fakeTraining places a training in the last 6 months, or up to 2 weeks
// ahead as scheduled, with a few timed series and sometimes a factor.
func fakeTraining(f *gofakeit.Faker, coachID, athleteID int, now time.Time) trainings.Training {
	date := f.DateRange(now.AddDate(0, -6, 0), now.AddDate(0, 0, 14))
	status := trainings.StatusCompleted
	if date.After(now) {
		status = trainings.StatusScheduled
	} else if f.Number(1, 10) == 1 {
		status = trainings.StatusCancelled
	}

	t := trainings.Training{
		AthleteID:           athleteID,
		CoachID:             coachID,
		Title:               pkg.Ptr(f.RandomString(trainings.TrainingTypes) + " set"),
		Location:            pkg.Ptr(f.City()),
		Status:              status,
		Date:                date,
		TrainingType:        f.RandomString(trainings.TrainingTypes),
		DurationMinutes:     pkg.Ptr(f.Number(45, 120)),
		IsOutdoor:           f.Bool(),
		HeartRateRest:       pkg.Ptr(f.Number(48, 65)),
		HeartRateDuring:     pkg.Ptr(f.Number(130, 185)),
		HeartRateAfter:      pkg.Ptr(f.Number(80, 110)),
		WeightBefore:        pkg.Ptr(f.Float64Range(50, 90)),
		PhysicalStateRating: pkg.Ptr(f.Number(1, 10)),
		Details:             []trainings.Detail{},
		ExternalFactors:     []factors.Factor{},
	}

	style := f.RandomString(trainings.SwimStyles)
	distance := distances[f.Number(0, len(distances)-1)]
	seriesCount, reps := f.Number(1, 3), f.Number(2, 4)
	for series := 1; series <= seriesCount; series++ {
		for rep := 1; rep <= reps; rep++ {
			base := pacePer100[style] * float64(distance) / 100
			t.Details = append(t.Details, trainings.Detail{
				Distance:            distance,
				SwimStyle:           style,
				TimeSeconds:         base * f.Float64Range(0.95, 1.15),
				SeriesNumber:        pkg.Ptr(series),
				RepetitionNumber:    pkg.Ptr(rep),
				RestIntervalSeconds: pkg.Ptr(f.Number(15, 60)),
				StrokeCount:         pkg.Ptr(f.Number(14, 22) * distance / 25),
				Efficiency:          pkg.Ptr(f.Float64Range(0.5, 1)),
			})
		}
	}

	if f.Number(1, 5) == 1 {
		t.ExternalFactors = append(t.ExternalFactors, factors.Factor{
			AthleteID:         athleteID,
			FactorType:        f.RandomString(factors.FactorTypes),
			Description:       f.Sentence(6),
			Severity:          pkg.Ptr(f.Number(1, 10)),
			StartDate:         date,
			PerformanceImpact: pkg.Ptr(f.Number(-10, 10)),
		})
	}

	return t
}
