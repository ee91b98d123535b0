// Package entities contains domain entities
package entities

// ProbeOutcome classifies the result of a reachability probe
type ProbeOutcome string

const (
	// ProbeReachable means the URL answered with a status below 400
	ProbeReachable ProbeOutcome = "reachable"
	// ProbeUnreachable means the URL answered with a status of 400 or above
	ProbeUnreachable ProbeOutcome = "unreachable"
	// ProbeFailed means the probe did not complete (timeout, DNS, refused, TLS)
	ProbeFailed ProbeOutcome = "failed"
)

// ProbeResult is the classified outcome of a single reachability probe.
// Network-level failures are folded into Outcome/Err instead of propagating.
type ProbeResult struct {
	Outcome    ProbeOutcome
	StatusCode int
	Err        error
}

// SubmissionOutcome classifies what the dispatcher did with a free-text message
type SubmissionOutcome string

const (
	// SubmissionNotAURL means the text did not parse as an http(s) URL
	SubmissionNotAURL SubmissionOutcome = "not_a_url"
	// SubmissionPosted means the URL was reachable and broadcast to the channel
	SubmissionPosted SubmissionOutcome = "posted"
	// SubmissionRejected means the URL answered with an error status
	SubmissionRejected SubmissionOutcome = "rejected"
	// SubmissionProbeFailed means the probe did not complete
	SubmissionProbeFailed SubmissionOutcome = "probe_failed"
)
