package types

// Bucket capacity limits. Caps apply after deduplication, truncating the
// discovery-ordered sequence.
const (
	MaxCoreKeywords      = 20
	MaxToolKeywords      = 25
	MaxSecondaryKeywords = 20
)

// KeywordBucket is the three-tier categorization of terms extracted from a
// job posting. Order within each tier is first-discovery order.
type KeywordBucket struct {
	Core      []string `json:"core_keywords"`
	Tools     []string `json:"tool_keywords"`
	Secondary []string `json:"secondary_keywords"`
}

// ParsedJD is the structured form of a job description returned by the
// Generator and validated against schemas/parsed_jd.schema.json.
type ParsedJD struct {
	Skills          []string `json:"skills"`
	Requirements    []string `json:"requirements"`
	Keywords        []string `json:"keywords"`
	ExperienceYears *int     `json:"experience_years"`
	Education       *string  `json:"education"`
	Location        *string  `json:"location"`
	EmploymentType  *string  `json:"employment_type"`
}
