package entity_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/zafesys/suite/internal/entity"
)

func boardLeads() []entity.Lead {
	now := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

	return []entity.Lead{
		{ID: 1, Name: "Ana", Phone: "+573001", Status: entity.LeadStatusNew, CreatedAt: now},
		{ID: 2, Name: "Luis", Phone: "+573002", Status: entity.LeadStatusNew, CreatedAt: now},
		{ID: 3, Name: "Marta", Phone: "+573003", Status: entity.LeadStatusPotential, CreatedAt: now},
		{ID: 4, Name: "Jorge", Phone: "+573004", Status: entity.LeadStatusNew, CreatedAt: now},
	}
}

func TestNewKanbanBoard(t *testing.T) {
	t.Parallel()

	b := entity.NewKanbanBoard(boardLeads())

	require.Len(t, b, len(entity.LeadStatuses))

	for _, s := range entity.LeadStatuses {
		require.NotNil(t, b[s], s)
	}

	require.Equal(t, 4, b.Count())
	require.Equal(t, []int64{1, 2, 4}, ids(b[entity.LeadStatusNew]))
	require.Equal(t, []int64{3}, ids(b[entity.LeadStatusPotential]))
}

func TestKanbanBoard_Move(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		id       int64
		to       entity.LeadStatus
		wantFrom entity.LeadStatus
		wantErr  error
		want     map[entity.LeadStatus][]int64
	}{
		{
			name:     "middle of column to empty column",
			id:       2,
			to:       entity.LeadStatusWon,
			wantFrom: entity.LeadStatusNew,
			want: map[entity.LeadStatus][]int64{
				entity.LeadStatusNew:       {1, 4},
				entity.LeadStatusPotential: {3},
				entity.LeadStatusWon:       {2},
			},
		},
		{
			name:     "appends to the end of target",
			id:       1,
			to:       entity.LeadStatusPotential,
			wantFrom: entity.LeadStatusNew,
			want: map[entity.LeadStatus][]int64{
				entity.LeadStatusNew:       {2, 4},
				entity.LeadStatusPotential: {3, 1},
			},
		},
		{
			name:     "same column is a no-op",
			id:       2,
			to:       entity.LeadStatusNew,
			wantFrom: entity.LeadStatusNew,
			want: map[entity.LeadStatus][]int64{
				entity.LeadStatusNew:       {1, 2, 4},
				entity.LeadStatusPotential: {3},
			},
		},
		{
			name:    "unknown lead",
			id:      99,
			to:      entity.LeadStatusLost,
			wantErr: entity.ErrNotFound,
		},
		{
			name:    "invalid status",
			id:      1,
			to:      "convertido",
			wantErr: entity.ErrInvalidStatus,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			b := entity.NewKanbanBoard(boardLeads())
			before := b.Clone()

			from, err := b.Move(tt.id, tt.to)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				require.Equal(t, before, b)

				return
			}

			require.NoError(t, err)
			require.Equal(t, tt.wantFrom, from)
			require.Equal(t, before.Count(), b.Count())

			for _, s := range entity.LeadStatuses {
				want := tt.want[s]
				if want == nil {
					want = []int64{}
				}

				require.Equal(t, want, ids(b[s]), s)
			}

			status, _, ok := b.Find(tt.id)
			require.True(t, ok)
			require.Equal(t, tt.to, status)
		})
	}
}

func TestKanbanBoard_MoveNeverDuplicatesOrDrops(t *testing.T) {
	t.Parallel()

	b := entity.NewKanbanBoard(boardLeads())
	moves := []struct {
		id int64
		to entity.LeadStatus
	}{
		{1, entity.LeadStatusInConversation},
		{1, entity.LeadStatusPotential},
		{3, entity.LeadStatusWon},
		{4, entity.LeadStatusLost},
		{1, entity.LeadStatusNew},
		{2, entity.LeadStatusNew},
	}

	for _, m := range moves {
		_, err := b.Move(m.id, m.to)
		require.NoError(t, err)

		seen := map[int64]int{}
		for _, col := range b {
			for _, s := range col {
				seen[s.ID]++
			}
		}

		require.Len(t, seen, 4)

		for id, n := range seen {
			require.Equal(t, 1, n, "lead %d", id)
		}
	}
}

func TestKanbanBoard_CloneIsIndependent(t *testing.T) {
	t.Parallel()

	b := entity.NewKanbanBoard(boardLeads())
	c := b.Clone()

	_, err := c.Move(1, entity.LeadStatusLost)
	require.NoError(t, err)

	require.Equal(t, []int64{1, 2, 4}, ids(b[entity.LeadStatusNew]))
	require.Empty(t, b[entity.LeadStatusLost])
}

func ids(col []entity.LeadSummary) []int64 {
	out := make([]int64, 0, len(col))
	for _, s := range col {
		out = append(out, s.ID)
	}

	return out
}
