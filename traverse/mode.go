package traverse

import (
	"strings"

	"github.com/neganovalexey/agenda/codeerrors"
)

// ParseMode accepts "dfs", "depth-first", "bfs" and "breadth-first"
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "dfs", "depth", "depth-first":
		return DepthFirst, nil
	case "bfs", "breadth", "breadth-first":
		return BreadthFirst, nil
	}
	return 0, codeerrors.ErrInvalidState.WithMessage("unknown traversal mode %q", s)
}
