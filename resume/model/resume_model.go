package model

// ResumeDocument is the canonical résumé payload. Sequence order is display
// order and is never re-sorted.
type ResumeDocument struct {
	Name       string            `json:"name"`
	Subtitle   string            `json:"subtitle"`
	Contact    Contact           `json:"contact"`
	Experience []ExperienceEntry `json:"experience"`
	Projects   []ProjectEntry    `json:"projects"`
	Education  []EducationEntry  `json:"education"`
	Skills     []SkillGroup      `json:"skills"`
}

// Contact holds the sidebar contact details.
type Contact struct {
	Website string `json:"website"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
}

// ExperienceEntry represents a work history entry.
type ExperienceEntry struct {
	ID        string   `json:"id"`
	Title     string   `json:"title"`
	Company   string   `json:"company"`
	Location  string   `json:"location"`
	StartDate string   `json:"start_date"`
	EndDate   string   `json:"end_date"`
	Bullets   []string `json:"bullets"`
}

// ProjectEntry represents a notable project.
type ProjectEntry struct {
	ID        string   `json:"id"`
	Title     string   `json:"title"`
	Subtitle  string   `json:"subtitle"`
	StartDate string   `json:"start_date"`
	EndDate   string   `json:"end_date"`
	Bullets   []string `json:"bullets"`
}

// EducationEntry represents a degree or certification.
type EducationEntry struct {
	ID        string `json:"id"`
	Degree    string `json:"degree"`
	School    string `json:"school"`
	Location  string `json:"location"`
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
	Notes     string `json:"notes"`
}

// SkillGroup is a labelled, comma-separated list of skills kept as free text.
type SkillGroup struct {
	ID       string `json:"id"`
	Category string `json:"category"`
	Skills   string `json:"skills"`
}

// New returns an empty document with every section initialised.
func New() *ResumeDocument {
	return &ResumeDocument{
		Experience: []ExperienceEntry{},
		Projects:   []ProjectEntry{},
		Education:  []EducationEntry{},
		Skills:     []SkillGroup{},
	}
}

// Clone returns a deep copy of the document.
func (d *ResumeDocument) Clone() *ResumeDocument {
	if d == nil {
		return nil
	}
	out := *d
	if d.Experience != nil {
		out.Experience = make([]ExperienceEntry, len(d.Experience))
		for i, e := range d.Experience {
			e.Bullets = cloneStrings(e.Bullets)
			out.Experience[i] = e
		}
	}
	if d.Projects != nil {
		out.Projects = make([]ProjectEntry, len(d.Projects))
		for i, p := range d.Projects {
			p.Bullets = cloneStrings(p.Bullets)
			out.Projects[i] = p
		}
	}
	if d.Education != nil {
		out.Education = append([]EducationEntry{}, d.Education...)
	}
	if d.Skills != nil {
		out.Skills = append([]SkillGroup{}, d.Skills...)
	}
	return &out
}

func cloneStrings(in []string) []string {
	if in == nil {
		return nil
	}
	return append([]string{}, in...)
}
