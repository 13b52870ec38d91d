package c4

// Solve is the package's single entry point: given a position and a
// transposition table to search with, it returns the game-theoretic
// score from the side to move's perspective and a column that
// realizes it. The table may be fresh or reused from a prior call.
func Solve(pos Position, tt *TranspositionTable) (score, column int) {
	return NewSearcher(tt).Solve(pos)
}

// Searcher performs the null-window bisection search over a Position.
// It borrows a *TranspositionTable from its caller rather than owning
// one, so a single table can be reused or cleared across calls.
type Searcher struct {
	tt    *TranspositionTable
	nodes uint64
}

// NewSearcher creates a searcher backed by tt.
func NewSearcher(tt *TranspositionTable) *Searcher {
	return &Searcher{tt: tt}
}

// Nodes returns the number of negamax calls made by the last Solve.
func (s *Searcher) Nodes() uint64 { return s.nodes }

// Solve returns the game-theoretic score of pos from the side to
// move's perspective, and a column that realizes it.
//
// It first checks for an immediate win, then narrows [min, max] — the
// full range of theoretically reachable scores from this ply — by
// repeated null-window negamax probes, steering each probe's window
// toward zero to favor the common near-drawn case.
func (s *Searcher) Solve(pos Position) (score, column int) {
	s.nodes = 0

	if pos.CanWinNext() {
		return (Width*Height + 1 - pos.NbMoves()) / 2, pos.WinningMove()
	}

	min := -(Width*Height - pos.NbMoves()) / 2
	max := (Width*Height + 1 - pos.NbMoves()) / 2
	best := -1

	for min < max {
		med := min + (max-min)/2
		switch {
		case med <= 0 && min/2 < med:
			med = min / 2
		case med >= 0 && max/2 > med:
			med = max / 2
		}

		result, action := s.negamax(pos, med, med+1)
		if action >= 0 {
			best = action
		}
		if result <= med {
			max = result
		} else {
			min = result
		}
	}

	return min, best
}

// negamax returns, from the perspective of the side to move in pos, a
// score judged against the window [alpha, beta]: a result strictly
// inside it is exact, one at or below alpha is an upper bound on the
// true score, and one at or above beta is a lower bound. The result may
// lie outside the window. Alongside it comes the column that produced
// it, or -1 if no column raised the score above the window floor.
func (s *Searcher) negamax(pos Position, alpha, beta int) (score, column int) {
	s.nodes++

	possible := pos.NonlosingMoves()
	if possible == 0 {
		// every move hands the opponent an immediate win
		return -(Width*Height - pos.NbMoves()) / 2, pos.anyPossibleCol()
	}

	if pos.NbMoves() >= Width*Height-2 {
		// too few plies remain for either side to complete a line
		return 0, pos.anyPossibleCol()
	}

	minPossible := -(Width*Height - 2 - pos.NbMoves()) / 2
	if alpha < minPossible {
		alpha = minPossible
		if alpha > beta {
			return alpha, -1
		}
	}

	maxPossible := (Width*Height - 1 - pos.NbMoves()) / 2
	if stored, found := s.tt.Get(pos); found {
		maxPossible = int(stored) + MinScore - 1
	}
	if beta > maxPossible {
		beta = maxPossible
		if alpha >= beta {
			return beta, -1
		}
	}

	orderer := NewMoveOrderer()
	for i := Width - 1; i >= 0; i-- {
		col := ExplorationOrder[i]
		action := possible & ColMask(col)
		if action != 0 {
			orderer.Insert(col, pos.ActionScore(action))
		}
	}

	best := -1
	for orderer.Size() > 0 {
		col := orderer.GetNext()

		next := pos
		next.PlayCol(col)

		childScore, _ := s.negamax(next, -beta, -alpha)
		childScore = -childScore

		if childScore >= beta {
			return childScore, col
		}
		if childScore > alpha {
			alpha = childScore
			best = col
		}
	}

	s.tt.Add(pos, int8(alpha-MinScore+1))
	return alpha, best
}
