package rank

import "github.com/poiesic/lexrank/core"

// RankMonitor provides hooks to observe the ranking process.
// Implement this interface to track intermediate steps during ranking.
type RankMonitor interface {
	Start(query string)
	AfterSnapshot(records int, revision core.Revision)
	AfterVectorize(recognized []string)
	AfterScoring(scores []float64)
	Finish(results []*Result)
}

// noopMonitor is a no-op implementation of RankMonitor
type noopMonitor struct{}

var _ RankMonitor = (*noopMonitor)(nil)

func (n *noopMonitor) Start(_ string)                       {}
func (n *noopMonitor) AfterSnapshot(_ int, _ core.Revision) {}
func (n *noopMonitor) AfterVectorize(_ []string)            {}
func (n *noopMonitor) AfterScoring(_ []float64)             {}
func (n *noopMonitor) Finish(_ []*Result)                   {}
