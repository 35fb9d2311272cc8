// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package voting

import (
	"context"
	"fmt"
	"time"

	"github.com/danielhkuo/quickly-vote/models"
)

// Results lists every project with its vote count in the given order
// (models.OrderByVotes or models.OrderByName).
func (s *Service) Results(ctx context.Context, order string) ([]models.ProjectResult, error) {
	results, err := s.store.ListProjectsWithVoteCounts(ctx, order)
	if err != nil {
		return nil, fmt.Errorf("aggregate results: %w", err)
	}
	return results, nil
}

// ProjectResult returns one project and its vote count
func (s *Service) ProjectResult(ctx context.Context, id int64) (models.ProjectResult, error) {
	p, err := s.Project(ctx, id)
	if err != nil {
		return models.ProjectResult{}, err
	}

	count, err := s.store.CountVotes(ctx, id)
	if err != nil {
		return models.ProjectResult{}, fmt.Errorf("count votes: %w", err)
	}

	return models.ProjectResult{Project: p, Votes: count}, nil
}

// BuildReport computes the final report: all results by descending votes,
// the total, and the leader. Ties for first place go to the name that sorts
// first. There is no leader while nobody has voted.
func (s *Service) BuildReport(ctx context.Context) (models.Report, error) {
	results, err := s.Results(ctx, models.OrderByVotes)
	if err != nil {
		return models.Report{}, err
	}
	return summarize(results, time.Now().UTC()), nil
}

func summarize(results []models.ProjectResult, now time.Time) models.Report {
	report := models.Report{Results: results, GeneratedAt: now}

	for _, r := range results {
		report.TotalVotes += r.Votes
	}

	for i := range report.Results {
		r := &report.Results[i]
		if report.TotalVotes > 0 {
			r.Percent = float64(r.Votes) * 100 / float64(report.TotalVotes)
		}
		if r.Votes > 0 && (report.Leader == nil || r.Votes > report.Leader.Votes) {
			leader := *r
			report.Leader = &leader
		}
	}

	return report
}
