package domain

// BroadcastResult is the per-invocation tally of a broadcast fan-out
type BroadcastResult struct {
	Attempted int
	Succeeded int
	Failed    int
}
