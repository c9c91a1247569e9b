package schema

// Stage names the pipeline state in which a submission currently is, or
// in which it failed. Transitions are strictly sequential: Validating →
// FetchingOffer → Pricing → Authorizing → Committing → Succeeded, with
// no revisits and no retries.
type Stage string

const (
	StageValidating    Stage = "Validating"
	StageFetchingOffer Stage = "FetchingOffer"
	StagePricing       Stage = "Pricing"
	StageAuthorizing   Stage = "Authorizing"
	StageCommitting    Stage = "Committing"
	StageSucceeded     Stage = "Succeeded"
)
