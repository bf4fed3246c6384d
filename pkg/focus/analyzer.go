package focus

import "time"

// Analyzer classifies snapshots into attention states. It is stateful:
// it remembers when a face was last seen and whether one has ever been
// seen, which drives the AWAY/UNKNOWN distinction. A new analyzer is the
// only way to reset that history.
//
// Not safe for concurrent use; synchronization belongs to the Pipeline.
type Analyzer struct {
	thresholds Thresholds

	lastFaceSeen time.Time
	everSeenFace bool

	now func() time.Time // injectable for tests
}

// NewAnalyzer creates an analyzer with the given thresholds.
func NewAnalyzer(thresholds Thresholds) *Analyzer {
	return &Analyzer{
		thresholds:   thresholds,
		lastFaceSeen: time.Now(),
		now:          time.Now,
	}
}

// Thresholds returns the active threshold set.
func (a *Analyzer) Thresholds() Thresholds {
	return a.thresholds
}

// triggers holds the precomputed conditions the rule table matches on.
// Evaluating them up front keeps the first-match-wins ordering explicit
// instead of relying on fallthrough.
type triggers struct {
	facePresent bool
	everSeen    bool
	awayTooLong bool // no face now and absence exceeded the timeout
	talking     bool
	gazeAway    bool
	gazeMag     float64
	drowsy      bool
	stressed    bool
}

// rule pairs a state with its trigger predicate and score policy.
type rule struct {
	state State
	match func(t triggers) bool
	score func(t triggers, s Snapshot, th Thresholds) float64
}

// rules is evaluated top to bottom; the first match wins and lower
// priorities are skipped. Ordering: physical absence dominates every
// other signal; talking is flagged early because it is a common false
// positive for drowsy/stress vitals; gaze is the most direct attention
// signal so it outranks vitals; a high blink rate arrives faster than
// the two-factor vitals combination, so drowsy precedes stressed.
var rules = []rule{
	{
		state: StateAway,
		match: func(t triggers) bool { return t.everSeen && t.awayTooLong },
		score: func(triggers, Snapshot, Thresholds) float64 { return 0.0 },
	},
	{
		state: StateTalking,
		match: func(t triggers) bool { return t.facePresent && t.talking },
		score: func(triggers, Snapshot, Thresholds) float64 { return 0.3 },
	},
	{
		state: StateDistracted,
		match: func(t triggers) bool { return t.facePresent && t.gazeAway },
		score: func(t triggers, _ Snapshot, _ Thresholds) float64 {
			return max(0.1, 0.6-t.gazeMag*0.3)
		},
	},
	{
		state: StateDrowsy,
		match: func(t triggers) bool { return t.facePresent && t.drowsy },
		score: func(triggers, Snapshot, Thresholds) float64 { return 0.15 },
	},
	{
		state: StateStressed,
		match: func(t triggers) bool { return t.facePresent && t.stressed },
		score: func(triggers, Snapshot, Thresholds) float64 { return 0.25 },
	},
	{
		state: StateFocused,
		match: func(t triggers) bool { return t.facePresent && t.everSeen },
		score: func(_ triggers, s Snapshot, th Thresholds) float64 {
			if s.HasPulse && s.PulseRateBPM > 0 {
				// A pulse elevated but below the stress threshold still
				// shades the score down.
				return min(1.0, th.PulseStressed/s.PulseRateBPM)
			}
			return 1.0
		},
	},
}

// Analyze classifies the snapshot. It is total: every combination of
// snapshot values yields a state, falling through to UNKNOWN when there
// is not enough evidence. Calling it refreshes the face-absence tracker
// whenever the snapshot shows a face, even if the resulting state is
// AWAY or UNKNOWN.
func (a *Analyzer) Analyze(s Snapshot) Result {
	now := a.now()

	if s.FaceDetected {
		a.lastFaceSeen = now
		a.everSeenFace = true
	}

	t := a.evaluate(s, now)

	for _, r := range rules {
		if r.match(t) {
			return Result{State: r.state, Score: r.score(t, s, a.thresholds), Snapshot: s}
		}
	}

	// No face ever seen, or the face vanished too recently to call AWAY.
	return Result{State: StateUnknown, Score: 0.5, Snapshot: s}
}

// evaluate precomputes the trigger conditions for one classification.
func (a *Analyzer) evaluate(s Snapshot, now time.Time) triggers {
	t := triggers{
		facePresent: s.FaceDetected,
		everSeen:    a.everSeenFace,
		talking:     s.IsTalking,
		drowsy:      s.BlinkRatePerMin > a.thresholds.BlinkRateDrowsy,
	}

	if a.everSeenFace && !s.FaceDetected {
		t.awayTooLong = now.Sub(a.lastFaceSeen) > a.thresholds.FaceAbsenceTimeout
	}

	if s.HasGaze {
		t.gazeMag = Gaze{X: s.GazeX, Y: s.GazeY}.Magnitude()
		t.gazeAway = t.gazeMag > a.thresholds.GazeDistraction
	}

	// Both vitals must be elevated; a single spiked reading (or exercise
	// without a breathing change) is not enough.
	elevatedPulse := s.HasPulse && s.PulseRateBPM > a.thresholds.PulseStressed
	fastBreathing := s.HasBreathing && s.BreathingRateBPM > a.thresholds.BreathingStressed
	t.stressed = elevatedPulse && fastBreathing

	return t
}
