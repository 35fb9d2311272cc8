// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package voting implements the project and ballot workflows on top of a store.Store.

# Projects

CreateProject trims the submitted name and rejects blank names or names
longer than models.MaxProjectNameLen with ErrInvalidName. Names are not
unique.

# Votes

A voter is the opaque id produced by the identity package. CastVote
accepts at most one vote per (project, voter) pair; a second attempt
returns ErrDuplicateVote together with the project so callers can still
show which project it was. The check is the database's unique index, not
a read before the write.

# Reports

BuildReport orders projects by descending votes (ties by name), sums the
total and picks the leader: the first project with at least one vote.
Each result carries its share of the total as a percentage.
*/
package voting
