package main

import (
	"context"
	"fmt"
	"time"

	"github.com/2beens/swimcoach/internal/athletes"
	"github.com/2beens/swimcoach/internal/auth"
	"github.com/2beens/swimcoach/internal/db"
	"github.com/2beens/swimcoach/internal/factors"
	"github.com/2beens/swimcoach/internal/trainings"
	"github.com/2beens/swimcoach/pkg"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/fatih/color"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/spf13/cobra"
)

const seedPassword = "swimcoach123"

type seedOptions struct {
	coaches   int
	athletes  int
	trainings int
	seed      int64
	truncate  bool
}

var seedOpts seedOptions

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Fill the database with fake coaches, athletes and trainings",
	Long: `Create fake coaches, each with athletes and a history of trainings with
details and external factors. Every coach can log in with the password
"` + seedPassword + `".

  $ swimctl seed --coaches 2 --athletes 6 --trainings 30
  $ swimctl seed --truncate --seed 42`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runSeed(cmd.Context(), dbPool, seedOpts)
	},
}

func init() {
	seedCmd.Flags().IntVar(&seedOpts.coaches, "coaches", 1, "number of coaches")
	seedCmd.Flags().IntVar(&seedOpts.athletes, "athletes", 5, "athletes per coach")
	seedCmd.Flags().IntVar(&seedOpts.trainings, "trainings", 20, "trainings per athlete")
	seedCmd.Flags().Int64Var(&seedOpts.seed, "seed", 0, "random seed, 0 picks one")
	seedCmd.Flags().BoolVar(&seedOpts.truncate, "truncate", false, "wipe all tables before seeding")
}

func runSeed(ctx context.Context, pool *pgxpool.Pool, opts seedOptions) error {
	if err := db.Migrate(ctx, pool); err != nil {
		return err
	}
	if opts.truncate {
		if err := db.Truncate(ctx, pool); err != nil {
			return err
		}
		color.Yellow("✗ tables truncated")
	}

	passwordHash, err := pkg.HashPassword(seedPassword)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}

	faker := gofakeit.New(opts.seed)
	coachesRepo := auth.NewCoachesRepo(pool)
	athletesRepo := athletes.NewRepo(pool)
	trainingsRepo := trainings.NewRepo(pool, factors.NewRepo(pool))
	faint := color.New(color.Faint)
	now := time.Now()

	for c := 0; c < opts.coaches; c++ {
		coach, err := coachesRepo.Add(ctx, faker.Name(), faker.Email(), passwordHash)
		if err != nil {
			return fmt.Errorf("add coach: %w", err)
		}
		color.Green("✓ coach %s", coach.Email)

		for a := 0; a < opts.athletes; a++ {
			athlete, err := athletesRepo.Create(ctx, fakeAthlete(faker, coach.ID, now))
			if err != nil {
				return fmt.Errorf("add athlete: %w", err)
			}

			for i := 0; i < opts.trainings; i++ {
				if _, err := trainingsRepo.Create(ctx, fakeTraining(faker, coach.ID, athlete.ID, now)); err != nil {
					return fmt.Errorf("add training: %w", err)
				}
			}
			fmt.Printf("  %s %s\n", athlete.FullName(), faint.Sprintf("(%d trainings)", opts.trainings))
		}
	}

	color.Green("✓ seeded %d coaches, %d athletes", opts.coaches, opts.coaches*opts.athletes)
	return nil
}
