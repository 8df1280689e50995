package domain

type Proficiency string

const (
	ProficiencyExpert       Proficiency = "Expert"
	ProficiencyAdvanced     Proficiency = "Advanced"
	ProficiencyIntermediate Proficiency = "Intermediate"
)

func (p Proficiency) Valid() bool {
	switch p {
	case ProficiencyExpert, ProficiencyAdvanced, ProficiencyIntermediate:
		return true
	}
	return false
}

type RelatedTech struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type LearningResource struct {
	Title string `json:"title"`
	Type  string `json:"type"`
	URL   string `json:"url"`
}

type CodeExample struct {
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	Code        string `json:"code"`
}

// Skill is the static definition; Content holds markdown.
type Skill struct {
	ID          string
	Name        string
	Icon        string
	URL         string
	Category    string
	Proficiency Proficiency
	Description string
	Preferred   bool

	YearStarted int
	Details     []string
	Features    []string
	RelatedTech []RelatedTech
	Resources   []LearningResource
	Examples    []CodeExample
	Content     string
}

type SkillSummary struct {
	ID          string      `json:"id"`
	Name        string      `json:"name"`
	Icon        string      `json:"icon"`
	URL         string      `json:"url,omitempty"`
	Category    string      `json:"category,omitempty"`
	Proficiency Proficiency `json:"proficiency,omitempty"`
	Description string      `json:"description,omitempty"`
}

func (s Skill) Summary() SkillSummary {
	return SkillSummary{
		ID:          s.ID,
		Name:        s.Name,
		Icon:        s.Icon,
		URL:         s.URL,
		Category:    s.Category,
		Proficiency: s.Proficiency,
		Description: s.Description,
	}
}

// SkillDetail is the detail view; ContentHTML is rendered from Skill.Content.
type SkillDetail struct {
	ID          string             `json:"id"`
	Name        string             `json:"name"`
	Icon        string             `json:"icon"`
	URL         string             `json:"url,omitempty"`
	Category    string             `json:"category,omitempty"`
	Level       Proficiency        `json:"level,omitempty"`
	Description string             `json:"description,omitempty"`
	YearStarted int                `json:"yearStarted,omitempty"`
	Details     []string           `json:"details,omitempty"`
	Features    []string           `json:"features,omitempty"`
	RelatedTech []RelatedTech      `json:"relatedTech,omitempty"`
	Resources   []LearningResource `json:"resources,omitempty"`
	Examples    []CodeExample      `json:"examples,omitempty"`
	ContentHTML string             `json:"contentHtml,omitempty"`
}

type SkillListing struct {
	PreferredSkills   []SkillSummary `json:"preferredSkills"`
	ExperiencedSkills []SkillSummary `json:"experiencedSkills"`
	Skills            []SkillSummary `json:"skills"`
}
