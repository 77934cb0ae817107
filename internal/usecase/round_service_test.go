package usecase

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRoundService_EmptyRoundIsNotResolved(t *testing.T) {
	f := newFixture(t)

	created, err := f.rounds.Create(t.Context())
	require.NoError(t, err)
	require.False(t, created.Resolved)
	require.True(t, created.CreatedAt.Equal(fixtureNow))

	items, err := f.rounds.ListMatches(t.Context(), created.ID)
	require.NoError(t, err)
	require.Empty(t, items)
}

func TestRoundService_MembershipRecomputesResolution(t *testing.T) {
	f := newFixture(t)
	ctx := t.Context()
	home, away := instantiatePair(t, f)

	played, err := f.matches.Create(ctx, MatchInput{TeamA: home.ID, TeamB: away.ID})
	require.NoError(t, err)
	_, err = f.matches.RecordResult(ctx, played.ID, ResultInput{GoalsA: 1, GoalsB: 1})
	require.NoError(t, err)
	pending, err := f.matches.Create(ctx, MatchInput{TeamA: away.ID, TeamB: home.ID})
	require.NoError(t, err)

	r, err := f.rounds.Create(ctx)
	require.NoError(t, err)

	r, err = f.rounds.AddMatch(ctx, r.ID, played.ID)
	require.NoError(t, err)
	require.True(t, r.Resolved)

	r, err = f.rounds.AddMatch(ctx, r.ID, pending.ID)
	require.NoError(t, err)
	require.False(t, r.Resolved)

	// adding twice keeps one membership
	_, err = f.rounds.AddMatch(ctx, r.ID, pending.ID)
	require.NoError(t, err)
	items, err := f.rounds.ListMatches(ctx, r.ID)
	require.NoError(t, err)
	require.Len(t, items, 2)

	r, err = f.rounds.RemoveMatch(ctx, r.ID, pending.ID)
	require.NoError(t, err)
	require.True(t, r.Resolved)

	r, err = f.rounds.RemoveMatch(ctx, r.ID, played.ID)
	require.NoError(t, err)
	require.False(t, r.Resolved)
}

func TestRoundService_Errors(t *testing.T) {
	f := newFixture(t)
	ctx := t.Context()

	r, err := f.rounds.Create(ctx)
	require.NoError(t, err)

	if _, err := f.rounds.AddMatch(ctx, r.ID, "missing-match"); !errors.Is(err, ErrReferential) {
		t.Fatalf("expected referential error, got %v", err)
	}
	if _, err := f.rounds.AddMatch(ctx, " ", "m"); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected invalid input, got %v", err)
	}
	if _, err := f.rounds.Get(ctx, "missing-round"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}

	require.NoError(t, f.rounds.Delete(ctx, r.ID))
	if err := f.rounds.Delete(ctx, r.ID); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected not found on second delete, got %v", err)
	}
}

func TestRoundService_CreateFailsWithoutID(t *testing.T) {
	f := newFixture(t)
	f.rounds.idGen = failingIDs{}

	if _, err := f.rounds.Create(t.Context()); err == nil {
		t.Fatalf("expected id generation error")
	}
}
