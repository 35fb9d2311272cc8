// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package voting

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"unicode/utf8"

	"github.com/danielhkuo/quickly-vote/models"
	"github.com/danielhkuo/quickly-vote/store"
)

var (
	ErrInvalidName     = errors.New("invalid project name")
	ErrProjectNotFound = errors.New("project not found")
	ErrDuplicateVote   = errors.New("voter already voted for this project")
)

type Service struct {
	store store.Store
}

func NewService(st store.Store) *Service {
	return &Service{store: st}
}

// CreateProject registers a project after trimming its name
func (s *Service) CreateProject(ctx context.Context, name string) (models.Project, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return models.Project{}, fmt.Errorf("%w: name is required", ErrInvalidName)
	}
	if utf8.RuneCountInString(name) > models.MaxProjectNameLen {
		return models.Project{}, fmt.Errorf("%w: name must be at most %d characters", ErrInvalidName, models.MaxProjectNameLen)
	}

	id, err := s.store.CreateProject(ctx, name)
	if err != nil {
		return models.Project{}, fmt.Errorf("create project: %w", err)
	}

	slog.Info("project created", "project_id", id, "name", name)

	return models.Project{ID: id, Name: name}, nil
}

// Project fetches one project, mapping a missing row to ErrProjectNotFound
func (s *Service) Project(ctx context.Context, id int64) (models.Project, error) {
	p, err := s.store.GetProject(ctx, id)
	if errors.Is(err, store.ErrNotFound) {
		return models.Project{}, fmt.Errorf("project %d: %w", id, ErrProjectNotFound)
	}
	if err != nil {
		return models.Project{}, fmt.Errorf("get project %d: %w", id, err)
	}
	return p, nil
}

// DeleteProject removes a project and, through the cascade, its votes
func (s *Service) DeleteProject(ctx context.Context, id int64) error {
	err := s.store.DeleteProject(ctx, id)
	if errors.Is(err, store.ErrNotFound) {
		return fmt.Errorf("project %d: %w", id, ErrProjectNotFound)
	}
	if err != nil {
		return fmt.Errorf("delete project %d: %w", id, err)
	}

	slog.Info("project deleted", "project_id", id)
	return nil
}

// ClearVotes removes every vote and keeps the projects
func (s *Service) ClearVotes(ctx context.Context) (int64, error) {
	n, err := s.store.DeleteAllVotes(ctx)
	if err != nil {
		return 0, fmt.Errorf("clear votes: %w", err)
	}

	slog.Info("votes cleared", "count", n)
	return n, nil
}

// CastVote records one vote from voterID for the project.
//
// Uniqueness is enforced by the database: the insert either succeeds or
// fails on the (project_id, voter_id) index, so concurrent submissions
// from one voter can't both land.
func (s *Service) CastVote(ctx context.Context, projectID int64, voterID string) (models.Project, error) {
	p, err := s.Project(ctx, projectID)
	if err != nil {
		return models.Project{}, err
	}

	voteID, err := s.store.InsertVote(ctx, projectID, voterID)
	switch {
	case errors.Is(err, store.ErrDuplicate):
		return p, fmt.Errorf("project %d: %w", projectID, ErrDuplicateVote)
	case errors.Is(err, store.ErrConstraint):
		// Project deleted between the lookup and the insert
		return models.Project{}, fmt.Errorf("project %d: %w", projectID, ErrProjectNotFound)
	case err != nil:
		return models.Project{}, fmt.Errorf("cast vote: %w", err)
	}

	slog.Info("vote cast", "project_id", projectID, "vote_id", voteID)

	return p, nil
}

// HasVoted reports whether voterID already has a vote on the project
func (s *Service) HasVoted(ctx context.Context, projectID int64, voterID string) (bool, error) {
	v, err := s.store.FindVote(ctx, projectID, voterID)
	if err != nil {
		return false, fmt.Errorf("find vote: %w", err)
	}
	return v != nil, nil
}
