package insight

// Reflection is the generated commentary on one result.
type Reflection struct {
	Code       string
	Headline   string
	Body       string
	GrowthTips []string
	Model      string
}
