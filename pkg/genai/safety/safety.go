// Package safety defines the harm categories and block thresholds attached
// to every generate request.
package safety

// Category identifies a class of harmful content the provider can filter.
type Category string

const (
	Harassment       Category = "HARM_CATEGORY_HARASSMENT"
	HateSpeech       Category = "HARM_CATEGORY_HATE_SPEECH"
	SexuallyExplicit Category = "HARM_CATEGORY_SEXUALLY_EXPLICIT"
	DangerousContent Category = "HARM_CATEGORY_DANGEROUS_CONTENT"
)

// Threshold selects how aggressively the provider blocks a category.
type Threshold string

const (
	BlockNone           Threshold = "BLOCK_NONE"
	BlockOnlyHigh       Threshold = "BLOCK_ONLY_HIGH"
	BlockMediumAndAbove Threshold = "BLOCK_MEDIUM_AND_ABOVE"
	BlockLowAndAbove    Threshold = "BLOCK_LOW_AND_ABOVE"
)

// Setting pairs a category with its block threshold, in the provider's wire
// shape.
type Setting struct {
	Category  Category  `json:"category"`
	Threshold Threshold `json:"threshold"`
}

// Defaults returns the thresholds sent with every request: block only
// high-severity content in all four categories.
func Defaults() []Setting {
	return []Setting{
		{Category: Harassment, Threshold: BlockOnlyHigh},
		{Category: HateSpeech, Threshold: BlockOnlyHigh},
		{Category: SexuallyExplicit, Threshold: BlockOnlyHigh},
		{Category: DangerousContent, Threshold: BlockOnlyHigh},
	}
}
