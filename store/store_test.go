// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store_test

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/danielhkuo/quickly-vote/models"
	"github.com/danielhkuo/quickly-vote/store"
	"github.com/danielhkuo/quickly-vote/testutil"
)

func TestCreateAndGetProject(t *testing.T) {
	st, _ := testutil.SetupTestStore(t)
	ctx := context.Background()

	id, err := st.CreateProject(ctx, "Robot Arm")
	require.NoError(t, err)
	assert.Equal(t, int64(1), id)

	second, err := st.CreateProject(ctx, "Solar Oven")
	require.NoError(t, err)
	assert.Greater(t, second, id, "ids should increase")

	p, err := st.GetProject(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "Robot Arm", p.Name)
	assert.False(t, p.CreatedAt.IsZero())
}

func TestGetProject_NotFound(t *testing.T) {
	st, _ := testutil.SetupTestStore(t)

	_, err := st.GetProject(context.Background(), 999)
	assert.ErrorIs(t, err, store.ErrNotFound)
}

func TestListProjects(t *testing.T) {
	st, _ := testutil.SetupTestStore(t)
	ctx := context.Background()

	projects, err := st.ListProjects(ctx)
	require.NoError(t, err)
	assert.Empty(t, projects)
	assert.NotNil(t, projects, "empty list should not be nil")

	testutil.CreateTestProject(t, st, "B")
	testutil.CreateTestProject(t, st, "A")

	projects, err = st.ListProjects(ctx)
	require.NoError(t, err)
	require.Len(t, projects, 2)
	assert.Equal(t, "B", projects[0].Name, "projects are ordered by id")
	assert.Equal(t, "A", projects[1].Name)
}

func TestInsertVote_Duplicate(t *testing.T) {
	st, conn := testutil.SetupTestStore(t)
	ctx := context.Background()
	projectID := testutil.CreateTestProject(t, st, "Robot Arm")

	_, err := st.InsertVote(ctx, projectID, "voter-a")
	require.NoError(t, err)

	_, err = st.InsertVote(ctx, projectID, "voter-a")
	assert.ErrorIs(t, err, store.ErrDuplicate)

	assert.Equal(t, 1, testutil.CountRows(t, conn, "votes"))
}

func TestInsertVote_MissingProject(t *testing.T) {
	st, _ := testutil.SetupTestStore(t)

	_, err := st.InsertVote(context.Background(), 42, "voter-a")
	assert.ErrorIs(t, err, store.ErrConstraint)
}

func TestFindVote(t *testing.T) {
	st, _ := testutil.SetupTestStore(t)
	ctx := context.Background()
	projectID := testutil.CreateTestProject(t, st, "Robot Arm")

	v, err := st.FindVote(ctx, projectID, "voter-a")
	require.NoError(t, err)
	assert.Nil(t, v)

	testutil.CastTestVote(t, st, projectID, "voter-a")

	v, err = st.FindVote(ctx, projectID, "voter-a")
	require.NoError(t, err)
	require.NotNil(t, v)
	assert.Equal(t, projectID, v.ProjectID)
	assert.Equal(t, "voter-a", v.VoterID)
	assert.False(t, v.CastAt.IsZero())

	other, err := st.FindVote(ctx, projectID, "voter-b")
	require.NoError(t, err)
	assert.Nil(t, other)
}

func TestCountVotesMatchesAggregate(t *testing.T) {
	st, conn := testutil.SetupTestStore(t)
	ctx := context.Background()

	a := testutil.CreateTestProject(t, st, "Alpha")
	b := testutil.CreateTestProject(t, st, "Beta")
	c := testutil.CreateTestProject(t, st, "Gamma")

	for _, voter := range []string{"v1", "v2", "v3"} {
		testutil.CastTestVote(t, st, b, voter)
	}
	testutil.CastTestVote(t, st, a, "v1")

	results, err := st.ListProjectsWithVoteCounts(ctx, models.OrderByVotes)
	require.NoError(t, err)
	require.Len(t, results, 3)

	for _, r := range results {
		count, err := st.CountVotes(ctx, r.ID)
		require.NoError(t, err)
		assert.Equal(t, count, r.Votes, "project %s", r.Name)

		var rows int
		require.NoError(t, conn.QueryRow(`SELECT COUNT(*) FROM votes WHERE project_id = ?`, r.ID).Scan(&rows))
		assert.Equal(t, rows, count)
	}

	assert.Equal(t, b, results[0].ID)
	assert.Equal(t, a, results[1].ID)
	assert.Equal(t, c, results[2].ID)
	assert.Equal(t, 0, results[2].Votes, "projects without votes are listed with 0")
}

func TestListProjectsWithVoteCounts_Ordering(t *testing.T) {
	st, _ := testutil.SetupTestStore(t)
	ctx := context.Background()

	zeta := testutil.CreateTestProject(t, st, "Zeta")
	alpha := testutil.CreateTestProject(t, st, "Alpha")
	mid := testutil.CreateTestProject(t, st, "Mid")

	// Zeta and Alpha tie on 2 votes
	testutil.CastTestVote(t, st, zeta, "v1")
	testutil.CastTestVote(t, st, zeta, "v2")
	testutil.CastTestVote(t, st, alpha, "v1")
	testutil.CastTestVote(t, st, alpha, "v2")
	testutil.CastTestVote(t, st, mid, "v1")

	tests := []struct {
		order string
		want  []int64
	}{
		{models.OrderByVotes, []int64{alpha, zeta, mid}},
		{models.OrderByName, []int64{alpha, mid, zeta}},
	}

	for _, tt := range tests {
		t.Run(tt.order, func(t *testing.T) {
			results, err := st.ListProjectsWithVoteCounts(ctx, tt.order)
			require.NoError(t, err)

			got := make([]int64, len(results))
			for i, r := range results {
				got[i] = r.ID
			}
			assert.Equal(t, tt.want, got)
		})
	}

	t.Run("unknown order", func(t *testing.T) {
		_, err := st.ListProjectsWithVoteCounts(ctx, "random")
		assert.Error(t, err)
	})
}

func TestDeleteProject_Cascades(t *testing.T) {
	st, conn := testutil.SetupTestStore(t)
	ctx := context.Background()

	keep := testutil.CreateTestProject(t, st, "Keep")
	gone := testutil.CreateTestProject(t, st, "Gone")
	testutil.CastTestVote(t, st, gone, "v1")
	testutil.CastTestVote(t, st, gone, "v2")
	testutil.CastTestVote(t, st, keep, "v1")

	require.NoError(t, st.DeleteProject(ctx, gone))

	count, err := st.CountVotes(ctx, gone)
	require.NoError(t, err)
	assert.Equal(t, 0, count)
	assert.Equal(t, 1, testutil.CountRows(t, conn, "votes"))

	projects, err := st.ListProjects(ctx)
	require.NoError(t, err)
	require.Len(t, projects, 1)
	assert.Equal(t, keep, projects[0].ID)

	err = st.DeleteProject(ctx, gone)
	assert.ErrorIs(t, err, store.ErrNotFound, "second delete finds nothing")
}

func TestDeleteAllVotes(t *testing.T) {
	st, conn := testutil.SetupTestStore(t)
	ctx := context.Background()

	p := testutil.CreateTestProject(t, st, "Robot Arm")
	testutil.CastTestVote(t, st, p, "v1")
	testutil.CastTestVote(t, st, p, "v2")

	n, err := st.DeleteAllVotes(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(2), n)
	assert.Equal(t, 0, testutil.CountRows(t, conn, "votes"))
	assert.Equal(t, 1, testutil.CountRows(t, conn, "projects"), "projects survive")

	n, err = st.DeleteAllVotes(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(0), n)
}

// TestConcurrentDuplicateInserts verifies the unique index lets exactly one
// of many simultaneous votes from the same voter through
func TestConcurrentDuplicateInserts(t *testing.T) {
	st, conn := testutil.SetupTestStore(t)
	p := testutil.CreateTestProject(t, st, "Robot Arm")

	var ok, dup atomic.Int32
	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := st.InsertVote(context.Background(), p, "same-voter")
			switch {
			case err == nil:
				ok.Add(1)
			case assert.ErrorIs(t, err, store.ErrDuplicate):
				dup.Add(1)
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, int32(1), ok.Load())
	assert.Equal(t, int32(9), dup.Load())
	assert.Equal(t, 1, testutil.CountRows(t, conn, "votes"))
}

func TestPing(t *testing.T) {
	st, conn := testutil.SetupTestStore(t)
	require.NoError(t, st.Ping(context.Background()))

	conn.Close()
	assert.ErrorIs(t, st.Ping(context.Background()), store.ErrUnavailable)
}
