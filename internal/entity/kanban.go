package entity

import "fmt"

// KanbanBoard maps every lead status to its ordered column of summaries.
type KanbanBoard map[LeadStatus][]LeadSummary

// NewKanbanBoard groups leads by status, keeping input order inside each column.
// Every status has a column, empty ones included.
func NewKanbanBoard(leads []Lead) KanbanBoard {
	b := make(KanbanBoard, len(LeadStatuses))

	for _, s := range LeadStatuses {
		b[s] = []LeadSummary{}
	}

	for _, l := range leads {
		if !l.Status.IsValid() {
			continue
		}

		b[l.Status] = append(b[l.Status], l.Summary())
	}

	return b
}

// Find returns the column and position of the lead.
func (b KanbanBoard) Find(id int64) (LeadStatus, int, bool) {
	for _, s := range LeadStatuses {
		for i, v := range b[s] {
			if v.ID == id {
				return s, i, true
			}
		}
	}

	return "", 0, false
}

// Move takes the lead out of its column and appends it to the end of column to.
// It returns the column the lead came from. Moving within the same column is a no-op.
func (b KanbanBoard) Move(id int64, to LeadStatus) (LeadStatus, error) {
	if !to.IsValid() {
		return "", fmt.Errorf("%w: %q", ErrInvalidStatus, to)
	}

	from, idx, ok := b.Find(id)
	if !ok {
		return "", fmt.Errorf("lead %d on board: %w", id, ErrNotFound)
	}

	if from == to {
		return from, nil
	}

	src := b[from]
	item := src[idx]
	item.Status = to

	col := make([]LeadSummary, 0, len(src)-1)
	col = append(col, src[:idx]...)
	col = append(col, src[idx+1:]...)
	b[from] = col

	b[to] = append(b[to], item)

	return from, nil
}

// Count is the number of cards on the board.
func (b KanbanBoard) Count() int {
	n := 0
	for _, col := range b {
		n += len(col)
	}

	return n
}

func (b KanbanBoard) Clone() KanbanBoard {
	c := make(KanbanBoard, len(b))
	for s, col := range b {
		c[s] = append(make([]LeadSummary, 0, len(col)), col...)
	}

	return c
}
