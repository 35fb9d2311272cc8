// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/danielhkuo/quickly-vote/db"
	"github.com/danielhkuo/quickly-vote/models"
)

// Store is the persistence layer used by every handler.
type Store interface {
	ListProjects(ctx context.Context) ([]models.Project, error)
	ListProjectsWithVoteCounts(ctx context.Context, order string) ([]models.ProjectResult, error)
	GetProject(ctx context.Context, id int64) (models.Project, error)
	CreateProject(ctx context.Context, name string) (int64, error)
	DeleteProject(ctx context.Context, id int64) error
	CountVotes(ctx context.Context, projectID int64) (int, error)
	// FindVote returns nil when the voter has not voted for the project
	FindVote(ctx context.Context, projectID int64, voterID string) (*models.Vote, error)
	InsertVote(ctx context.Context, projectID int64, voterID string) (int64, error)
	DeleteAllVotes(ctx context.Context) (int64, error)
	Ping(ctx context.Context) error
}

const (
	projectsTable = "projects"
	votesTable    = "votes"
)

// SQLStore implements Store on database/sql for both dialects.
type SQLStore struct {
	db      *sql.DB
	sb      sq.StatementBuilderType
	timeout time.Duration
	now     func() time.Time
}

// NewSQLStore wraps an open pool. queryTimeout bounds every call; zero disables it.
func NewSQLStore(conn *sql.DB, dialect db.Dialect, queryTimeout time.Duration) *SQLStore {
	sb := sq.StatementBuilder.PlaceholderFormat(sq.Question)
	if dialect == db.Postgres {
		sb = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)
	}
	return &SQLStore{
		db:      conn,
		sb:      sb,
		timeout: queryTimeout,
		now:     func() time.Time { return time.Now().UTC() },
	}
}

func (s *SQLStore) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if s.timeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, s.timeout)
}

// ListProjects returns every project ordered by id
func (s *SQLStore) ListProjects(ctx context.Context) ([]models.Project, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	query, args, err := s.sb.Select("id", "name", "created_at").
		From(projectsTable).
		OrderBy("id ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list projects: %w", err)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, classify("list projects", err)
	}
	defer rows.Close()

	projects := []models.Project{}
	for rows.Next() {
		var p models.Project
		if err := rows.Scan(&p.ID, &p.Name, &p.CreatedAt); err != nil {
			return nil, classify("scan project", err)
		}
		projects = append(projects, p)
	}
	if err := rows.Err(); err != nil {
		return nil, classify("list projects", err)
	}

	return projects, nil
}

// ListProjectsWithVoteCounts returns all projects with their vote counts.
// Projects without votes are included with a count of 0.
func (s *SQLStore) ListProjectsWithVoteCounts(ctx context.Context, order string) ([]models.ProjectResult, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	builder := s.sb.Select("p.id", "p.name", "p.created_at", "COUNT(v.id) AS vote_count").
		From(projectsTable + " p").
		LeftJoin(votesTable + " v ON v.project_id = p.id").
		GroupBy("p.id", "p.name", "p.created_at")

	switch order {
	case models.OrderByVotes:
		builder = builder.OrderBy("vote_count DESC", "p.name ASC", "p.id ASC")
	case models.OrderByName:
		builder = builder.OrderBy("p.name ASC", "p.id ASC")
	default:
		return nil, fmt.Errorf("unknown result order %q", order)
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build vote counts: %w", err)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, classify("list vote counts", err)
	}
	defer rows.Close()

	results := []models.ProjectResult{}
	for rows.Next() {
		var r models.ProjectResult
		if err := rows.Scan(&r.ID, &r.Name, &r.CreatedAt, &r.Votes); err != nil {
			return nil, classify("scan vote count", err)
		}
		results = append(results, r)
	}
	if err := rows.Err(); err != nil {
		return nil, classify("list vote counts", err)
	}

	return results, nil
}

// GetProject returns ErrNotFound when no project has the id
func (s *SQLStore) GetProject(ctx context.Context, id int64) (models.Project, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	query, args, err := s.sb.Select("id", "name", "created_at").
		From(projectsTable).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return models.Project{}, fmt.Errorf("build get project: %w", err)
	}

	var p models.Project
	err = s.db.QueryRowContext(ctx, query, args...).Scan(&p.ID, &p.Name, &p.CreatedAt)
	if err != nil {
		return models.Project{}, classify("get project", err)
	}

	return p, nil
}

func (s *SQLStore) CreateProject(ctx context.Context, name string) (int64, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	query, args, err := s.sb.Insert(projectsTable).
		Columns("name", "created_at").
		Values(name, s.now()).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("build create project: %w", err)
	}

	var id int64
	if err := s.db.QueryRowContext(ctx, query, args...).Scan(&id); err != nil {
		return 0, classify("create project", err)
	}

	return id, nil
}

// DeleteProject removes a project; its votes go with it (ON DELETE CASCADE)
func (s *SQLStore) DeleteProject(ctx context.Context, id int64) error {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	query, args, err := s.sb.Delete(projectsTable).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build delete project: %w", err)
	}

	res, err := s.db.ExecContext(ctx, query, args...)
	if err != nil {
		return classify("delete project", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return classify("delete project", err)
	}
	if n == 0 {
		return fmt.Errorf("delete project %d: %w", id, ErrNotFound)
	}

	return nil
}

func (s *SQLStore) CountVotes(ctx context.Context, projectID int64) (int, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	query, args, err := s.sb.Select("COUNT(*)").
		From(votesTable).
		Where(sq.Eq{"project_id": projectID}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("build count votes: %w", err)
	}

	var count int
	if err := s.db.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		return 0, classify("count votes", err)
	}

	return count, nil
}

func (s *SQLStore) FindVote(ctx context.Context, projectID int64, voterID string) (*models.Vote, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	query, args, err := s.sb.Select("id", "project_id", "voter_id", "cast_at").
		From(votesTable).
		Where(sq.Eq{"project_id": projectID, "voter_id": voterID}).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build find vote: %w", err)
	}

	var v models.Vote
	err = s.db.QueryRowContext(ctx, query, args...).Scan(&v.ID, &v.ProjectID, &v.VoterID, &v.CastAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, classify("find vote", err)
	}

	return &v, nil
}

// InsertVote returns ErrDuplicate when the voter already voted for the
// project and ErrConstraint when the project does not exist.
func (s *SQLStore) InsertVote(ctx context.Context, projectID int64, voterID string) (int64, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	query, args, err := s.sb.Insert(votesTable).
		Columns("project_id", "voter_id", "cast_at").
		Values(projectID, voterID, s.now()).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("build insert vote: %w", err)
	}

	var id int64
	if err := s.db.QueryRowContext(ctx, query, args...).Scan(&id); err != nil {
		return 0, classify("insert vote", err)
	}

	return id, nil
}

// DeleteAllVotes clears every vote and reports how many were removed
func (s *SQLStore) DeleteAllVotes(ctx context.Context) (int64, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	query, args, err := s.sb.Delete(votesTable).ToSql()
	if err != nil {
		return 0, fmt.Errorf("build delete votes: %w", err)
	}

	res, err := s.db.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, classify("delete votes", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return 0, classify("delete votes", err)
	}

	return n, nil
}

func (s *SQLStore) Ping(ctx context.Context) error {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	if err := s.db.PingContext(ctx); err != nil {
		return classify("ping", err)
	}
	return nil
}
