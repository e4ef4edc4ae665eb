package domain

import "time"

// ProjectStatus represents the delivery state advertised for a project.
type ProjectStatus string

const (
	ProjectCompleted  ProjectStatus = "completed"
	ProjectInProgress ProjectStatus = "in-progress"
	ProjectPlanned    ProjectStatus = "planned"
)

// Valid reports whether s is one of the known statuses.
func (s ProjectStatus) Valid() bool {
	switch s {
	case ProjectCompleted, ProjectInProgress, ProjectPlanned:
		return true
	}
	return false
}

// Skill is a technology or competency shown on the site.
// Level is a 0-100 proficiency; Icon holds either a URL or an icon name.
type Skill struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Level       int       `json:"level"`
	Category    string    `json:"category"`
	Icon        string    `json:"icon,omitempty"`
	OrderIndex  int       `json:"order_index"`
	IsPublished bool      `json:"is_published"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// Experience is a work-history entry. Description is a list of bullet points.
type Experience struct {
	ID          string    `json:"id"`
	Role        string    `json:"role"`
	Company     string    `json:"company"`
	Period      string    `json:"period"`
	Description []string  `json:"description"`
	CompanyLogo string    `json:"company_logo,omitempty"`
	Location    string    `json:"location,omitempty"`
	OrderIndex  int       `json:"order_index"`
	IsPublished bool      `json:"is_published"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// Project is a portfolio entry.
type Project struct {
	ID              string        `json:"id"`
	Title           string        `json:"title"`
	Description     string        `json:"description"`
	FullDescription string        `json:"full_description"`
	MyRole          string        `json:"my_role"`
	Image           string        `json:"image"`
	Tags            []string      `json:"tags"`
	Link            string        `json:"link,omitempty"`
	GitHub          string        `json:"github,omitempty"`
	DemoVideo       string        `json:"demo_video,omitempty"`
	Status          ProjectStatus `json:"status"`
	Featured        bool          `json:"featured"`
	OrderIndex      int           `json:"order_index"`
	IsPublished     bool          `json:"is_published"`
	CreatedAt       time.Time     `json:"created_at"`
	UpdatedAt       time.Time     `json:"updated_at"`
}

// ContactMessage is a submission from the public contact form.
type ContactMessage struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Subject   string    `json:"subject,omitempty"`
	Message   string    `json:"message"`
	IsRead    bool      `json:"is_read"`
	CreatedAt time.Time `json:"created_at"`
}

// ContactStats summarises the contact inbox for the admin dashboard.
type ContactStats struct {
	Total  int `json:"total"`
	Read   int `json:"read"`
	Unread int `json:"unread"`
}
