package domain

// ProjectTag is a technology badge shown on a project card.
type ProjectTag struct {
	Name  string `json:"name"`
	Icon  string `json:"icon,omitempty"`
	URL   string `json:"url,omitempty"`
	Color string `json:"color,omitempty"`
}

type Metric struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

// Project is the full record served by the detail view.
type Project struct {
	Slug        string       `json:"slug"`
	Title       string       `json:"title"`
	Description string       `json:"description"`
	Link        string       `json:"link"`
	LinkLabel   string       `json:"linkLabel,omitempty"`
	Tags        []ProjectTag `json:"tags"`
	Categories  []string     `json:"categories"`
	Status      string       `json:"status"`
	Year        string       `json:"year"`
	Featured    bool         `json:"featured"`

	CoverImage       string   `json:"coverImage,omitempty"`
	LongDescription  string   `json:"longDescription,omitempty"`
	Features         []string `json:"features,omitempty"`
	Metrics          []Metric `json:"metrics,omitempty"`
	Gallery          []string `json:"gallery,omitempty"`
	Roles            []string `json:"roles,omitempty"`
	Responsibilities []string `json:"responsibilities,omitempty"`
	Repo             string   `json:"repo,omitempty"`
	Demo             string   `json:"demo,omitempty"`
	Company          string   `json:"company,omitempty"`
	Highlights       []string `json:"highlights,omitempty"`
	Timeline         string   `json:"timeline,omitempty"`
}

// ProjectSummary is the card-sized view used by listings.
type ProjectSummary struct {
	Slug        string       `json:"slug"`
	Title       string       `json:"title"`
	Description string       `json:"description"`
	Link        string       `json:"link"`
	LinkLabel   string       `json:"linkLabel,omitempty"`
	Tags        []ProjectTag `json:"tags"`
	Categories  []string     `json:"categories"`
	Status      string       `json:"status"`
	Year        string       `json:"year"`
}

func (p Project) Summary() ProjectSummary {
	return ProjectSummary{
		Slug:        p.Slug,
		Title:       p.Title,
		Description: p.Description,
		Link:        p.Link,
		LinkLabel:   p.LinkLabel,
		Tags:        p.Tags,
		Categories:  p.Categories,
		Status:      p.Status,
		Year:        p.Year,
	}
}

// TechStackEntry decorates project tags by technology display name.
type TechStackEntry struct {
	Icon string `json:"icon"`
	URL  string `json:"url"`
}

type ProjectListing struct {
	TechStackData map[string]TechStackEntry `json:"techStackData"`
	Projects      []ProjectSummary          `json:"projects"`
	AllProjects   []ProjectSummary          `json:"allProjects"`
}
