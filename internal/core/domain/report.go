package domain

// Scoring category names, in the fixed report order.
const (
	CategoryTitle              = "Title"
	CategoryDescription        = "Description"
	CategoryPhotos             = "Photos"
	CategoryAmenities          = "Amenities"
	CategoryReviews            = "Reviews"
	CategoryCancellationPolicy = "CancellationPolicy"
)

// Categories lists the scoring categories in report order.
func Categories() []string {
	return []string{
		CategoryTitle,
		CategoryDescription,
		CategoryPhotos,
		CategoryAmenities,
		CategoryReviews,
		CategoryCancellationPolicy,
	}
}

// CategoryStatus is a per-category health tag. Title, Description and
// Photos use the error/warning/success set; Amenities, Reviews and
// CancellationPolicy use the poor/average/good/excellent set.
type CategoryStatus string

const (
	StatusError   CategoryStatus = "error"
	StatusWarning CategoryStatus = "warning"
	StatusSuccess CategoryStatus = "success"

	StatusPoor      CategoryStatus = "poor"
	StatusAverage   CategoryStatus = "average"
	StatusGood      CategoryStatus = "good"
	StatusExcellent CategoryStatus = "excellent"
)

// SummaryTier buckets the overall score.
type SummaryTier string

const (
	TierPoor      SummaryTier = "poor"
	TierAverage   SummaryTier = "average"
	TierGood      SummaryTier = "good"
	TierExcellent SummaryTier = "excellent"
)

// TierForScore maps an overall score to its summary tier.
func TierForScore(score int) SummaryTier {
	switch {
	case score >= 80:
		return TierExcellent
	case score >= 60:
		return TierGood
	case score >= 40:
		return TierAverage
	default:
		return TierPoor
	}
}

// CategoryResult is the output of one sub-scorer.
type CategoryResult struct {
	Category        string         `json:"category"`
	Score           int            `json:"score"`
	MaxScore        int            `json:"maxScore"`
	Status          CategoryStatus `json:"status"`
	Message         string         `json:"message"`
	Recommendations []string       `json:"recommendations"`
}

// ScoreReport is the aggregated scoring output. It is immutable once
// produced; enrichment returns a new report rather than mutating one.
type ScoreReport struct {
	// OverallScore is the clamped sum of all category scores, 0-100.
	OverallScore int `json:"overallScore"`

	// SummaryTier is derived from OverallScore via fixed thresholds.
	SummaryTier SummaryTier `json:"summaryTier"`

	// CategoryScores holds one result per category in fixed order:
	// Title, Description, Photos, Amenities, Reviews, CancellationPolicy.
	CategoryScores []CategoryResult `json:"categoryScores"`

	// AIInsights is optional per-category commentary attached by the
	// enrichment merger. It never influences any numeric score.
	AIInsights map[string]map[string]any `json:"aiInsights,omitempty"`
}
