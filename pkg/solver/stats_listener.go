package solver

import "time"

type Stats struct {
	// Distinct states computed (inserted or being inserted to the memo table)
	States uint64
	// Lookups answered by the memo table
	MemoHits uint64
	// States per second
	Sps        uint64
	Elapsed    time.Duration
	StopReason StopReason
}

// Listener function callback, will recieve current solver statistics
type ListenerFunc func(Stats)

type StatsListener struct {
	// called every N computed states
	onProgress ListenerFunc
	nStates    uint64

	// called once, when the solve finishes or is aborted
	onStop ListenerFunc
}

func NewStatsListener() StatsListener {
	return StatsListener{nStates: defaultProgressInterval}
}

// Attach progress callback, called only by the main search thread,
// meaning no need for synchronization here
func (listener *StatsListener) OnProgress(onProgress ListenerFunc) *StatsListener {
	listener.onProgress = onProgress
	return listener
}

func (listener *StatsListener) SetProgressInterval(n uint64) *StatsListener {
	if n < 1 {
		n = 1
	}
	listener.nStates = n
	return listener
}

// Attach 'on solve end' callback, makes 'StopReason' available in the stats
func (listener *StatsListener) OnStop(onStop ListenerFunc) *StatsListener {
	listener.onStop = onStop
	return listener
}

func (listener *StatsListener) invoke(f ListenerFunc, stats Stats) {
	if f != nil {
		f(stats)
	}
}
