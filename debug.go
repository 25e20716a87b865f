package dancevis

import (
	"time"

	"go.uber.org/zap"
)

// tickStats holds per-tick metrics. Only populated when Stage.debug is true.
type tickStats struct {
	tick     uint64
	now      Time
	duration time.Duration
}

// debugLog logs tick timing and tree size.
func (s *Stage) debugLog(stats tickStats) {
	if !s.debug {
		return
	}
	nodes, dancers := 0, 0
	s.root.Walk(func(n *Node) bool {
		nodes++
		if n.Type == NodeTypeDancer {
			dancers++
		}
		return true
	})
	s.logger.Debug("tick",
		zap.Uint64("tick", stats.tick),
		zap.Float64("time_ms", stats.now.ms),
		zap.Duration("took", stats.duration),
		zap.Int("nodes", nodes),
		zap.Int("dancers", dancers))
}

// debugMaxTreeDepth is the depth above which a warning is logged.
const debugMaxTreeDepth = 32

func debugCheckTreeDepth(logger *zap.Logger, n *Node) {
	depth := 0
	for p := n; p != nil; p = p.Parent {
		depth++
	}
	if depth > debugMaxTreeDepth {
		logger.Warn("tree depth exceeds threshold",
			zap.Int("depth", depth),
			zap.Int("threshold", debugMaxTreeDepth),
			zap.String("node", n.Name))
	}
}

// debugMaxChildCount is the child count above which a warning is logged.
const debugMaxChildCount = 1000

func debugCheckChildCount(logger *zap.Logger, n *Node) {
	if len(n.children) > debugMaxChildCount {
		logger.Warn("node has many children",
			zap.String("node", n.Name),
			zap.Int("children", len(n.children)),
			zap.Int("threshold", debugMaxChildCount))
	}
}
