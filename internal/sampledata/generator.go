// Package sampledata generates employee CSV files for demos and fixtures.
package sampledata

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"math"
	"math/rand/v2"
	"strconv"

	"github.com/okian/workforce-analyzer/internal/adapters/loader"
	"github.com/okian/workforce-analyzer/internal/domain/skills"
	"github.com/okian/workforce-analyzer/pkg/logger"
)

// Performance bands on the 0..5 scale.
const (
	lowPerformerMin   = 1.0
	lowPerformerRange = 1.5
	avgPerformerMin   = 3.0
	avgPerformerRange = 1.2
	highPerformerMin  = 4.2
	highPerformerMax  = 5.0

	caseLowPerformer  = 0
	caseHighPerformer = 1
	performerCases    = 4
)

const (
	maxCompletedTasks = 60
	maxExperience     = 15
	maxSkills         = 4
	checkInterval     = 1000
)

var (
	firstNames = []string{"Alex", "Maria", "John", "Elena", "David", "Olga", "Ivan", "Anna", "Max", "Sofia", "Tom", "Kate"}
	lastNames  = []string{"Petrov", "Smith", "Ivanova", "Brown", "Sidorov", "Garcia", "Kim", "Novak", "Weber", "Rossi"}
	positions  = []string{"Backend Developer", "Frontend Developer", "Data Scientist", "DevOps Engineer", "QA Engineer", "Mobile Developer", "Team Lead"}
	teams      = []string{"API Team", "Web Team", "AI Team", "Infra Team", "Testing Team", "Mobile Team"}
	skillPool  = []string{"Python", "Go", "Java", "JavaScript", "React", "SQL", "Docker", "Kubernetes", "AWS", "Terraform", "Swift", "Kotlin", "Selenium", "PyTorch"}
	badCounts  = []string{"TEN", "n/a", "", "12.5", "many"}
)

// Generate writes a CSV file with cfg.Count employee rows to w. The header
// carries every column the loader requires.
func Generate(ctx context.Context, w io.Writer, cfg Config) (Stats, error) {
	if err := cfg.Validate(); err != nil {
		return Stats{}, err
	}
	logger.Get().Debug(ctx, "generating sample employees",
		logger.Int("count", cfg.Count),
		logger.Float64("invalidRatio", cfg.InvalidRatio),
	)

	rnd := rand.New(rand.NewPCG(cfg.Seed, cfg.Seed^0x9e3779b97f4a7c15))
	cw := csv.NewWriter(w)
	if err := cw.Write(loader.RequiredColumns); err != nil {
		return Stats{}, fmt.Errorf("write header: %w", err)
	}

	var stats Stats
	for i := range cfg.Count {
		if i%checkInterval == 0 {
			if err := ctx.Err(); err != nil {
				return stats, err
			}
		}
		invalid := cfg.InvalidRatio > 0 && rnd.Float64() < cfg.InvalidRatio
		if err := cw.Write(generateRow(rnd, invalid)); err != nil {
			return stats, fmt.Errorf("write row %d: %w", i+1, err)
		}
		stats.Rows++
		if invalid {
			stats.Invalid++
		}
	}

	cw.Flush()
	if err := cw.Error(); err != nil {
		return stats, fmt.Errorf("flush: %w", err)
	}
	logger.Get().Debug(ctx, "generated sample employees",
		logger.Int("rows", stats.Rows),
		logger.Int("invalid", stats.Invalid),
	)
	return stats, nil
}

// generateRow returns one record in loader.RequiredColumns order.
func generateRow(rnd *rand.Rand, invalid bool) []string {
	tasks := strconv.Itoa(rnd.IntN(maxCompletedTasks + 1))
	if invalid {
		tasks = pick(rnd, badCounts)
	}
	return []string{
		pick(rnd, firstNames) + " " + pick(rnd, lastNames),
		pick(rnd, positions),
		tasks,
		strconv.FormatFloat(generateScore(rnd), 'f', 1, 64),
		skills.Join(pickSkills(rnd)),
		pick(rnd, teams),
		strconv.Itoa(rnd.IntN(maxExperience + 1)),
	}
}

// generateScore draws a performance score, most of them average.
func generateScore(rnd *rand.Rand) float64 {
	var score float64
	switch rnd.IntN(performerCases) {
	case caseLowPerformer:
		score = lowPerformerMin + rnd.Float64()*lowPerformerRange
	case caseHighPerformer:
		score = highPerformerMin + rnd.Float64()*(highPerformerMax-highPerformerMin)
	default:
		score = avgPerformerMin + rnd.Float64()*avgPerformerRange
	}
	return math.Round(score*10) / 10
}

func pickSkills(rnd *rand.Rand) []string {
	n := 1 + rnd.IntN(maxSkills)
	idx := rnd.Perm(len(skillPool))[:n]
	out := make([]string, n)
	for i, j := range idx {
		out[i] = skillPool[j]
	}
	return skills.Parse(skills.Join(out))
}

func pick(rnd *rand.Rand, from []string) string {
	return from[rnd.IntN(len(from))]
}
