package c4

// moveNode pairs a candidate column with its static ordering value.
type moveNode struct {
	column int
	value  int
}

// MoveOrderer is a fixed-capacity (Width) list of candidate columns
// kept in ascending order by value. It exists because the candidate
// set is tiny but its ordering key (new threats created) is dynamic
// per position, so a linear insertion sort beats a general sort.
//
// Columns are inserted in reverse ExplorationOrder by the searcher so
// that ties — equal ActionScore — break toward central columns: a tied
// entry inserted later sits nearer the back, so the central columns,
// inserted last, are popped first by GetNext and therefore tried first.
type MoveOrderer struct {
	moves [Width]moveNode
	size  int
}

// NewMoveOrderer returns an empty orderer.
func NewMoveOrderer() *MoveOrderer {
	return &MoveOrderer{}
}

// Size returns the number of columns currently held.
func (mo *MoveOrderer) Size() int { return mo.size }

// Insert adds column with ordering value, shifting larger-indexed
// entries up until the sorted position is found.
func (mo *MoveOrderer) Insert(column, value int) {
	i := mo.size
	mo.size++
	for i > 0 && mo.moves[i-1].value > value {
		mo.moves[i] = mo.moves[i-1]
		i--
	}
	mo.moves[i] = moveNode{column: column, value: value}
}

// GetNext pops and returns the column with the largest value.
// Undefined if Size() == 0.
func (mo *MoveOrderer) GetNext() int {
	mo.size--
	return mo.moves[mo.size].column
}
