package models

import (
	"fmt"
	"sort"
	"time"
)

// Icon is a known UI icon identifier. Unknown names are rejected on write.
type Icon string

const (
	IconAward       Icon = "Award"
	IconBarChart    Icon = "BarChart"
	IconBuilding2   Icon = "Building2"
	IconCalculator  Icon = "Calculator"
	IconCheckCircle Icon = "CheckCircle"
	IconDollarSign  Icon = "DollarSign"
	IconFileText    Icon = "FileText"
	IconGavel       Icon = "Gavel"
	IconGlobe       Icon = "Globe"
	IconLineChart   Icon = "LineChart"
	IconPalette     Icon = "Palette"
	IconPenTool     Icon = "PenTool"
	IconRocket      Icon = "Rocket"
	IconSearch      Icon = "Search"
	IconShield      Icon = "Shield"
	IconTarget      Icon = "Target"
	IconTrendingUp  Icon = "TrendingUp"
	IconTruck       Icon = "Truck"
	IconUsers       Icon = "Users"
)

var knownIcons = map[Icon]struct{}{
	IconAward: {}, IconBarChart: {}, IconBuilding2: {}, IconCalculator: {}, IconCheckCircle: {},
	IconDollarSign: {}, IconFileText: {}, IconGavel: {}, IconGlobe: {}, IconLineChart: {},
	IconPalette: {}, IconPenTool: {}, IconRocket: {}, IconSearch: {}, IconShield: {},
	IconTarget: {}, IconTrendingUp: {}, IconTruck: {}, IconUsers: {},
}

// Valid reports whether the icon is known. The empty icon is allowed.
func (i Icon) Valid() bool {
	if i == "" {
		return true
	}
	_, ok := knownIcons[i]
	return ok
}

// Audience is a business segment a service is relevant for.
type Audience string

const (
	AudienceStartup Audience = "startup"
	AudienceMSME    Audience = "msme"
)

func (a Audience) Valid() bool {
	return a == AudienceStartup || a == AudienceMSME
}

// DefaultAudiences is applied when a service does not name any.
func DefaultAudiences() []Audience {
	return []Audience{AudienceStartup, AudienceMSME}
}

// Stage is an ordered phase of the business journey grouping services.
type Stage struct {
	ID        int       `bson:"id" json:"id"`
	Title     string    `bson:"title" json:"title"`
	Subtitle  string    `bson:"subtitle" json:"subtitle"`
	Phase     string    `bson:"phase" json:"phase"`
	Services  []Service `bson:"services" json:"services"`
	CreatedAt time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time `bson:"updated_at" json:"updated_at"`
}

// Service is a catalog entry embedded in a Stage.
type Service struct {
	ServiceID   string     `bson:"service_id" json:"service_id"`
	Name        string     `bson:"name" json:"name"`
	Description string     `bson:"description" json:"description"`
	Icon        Icon       `bson:"icon,omitempty" json:"icon,omitempty"`
	Details     string     `bson:"details,omitempty" json:"details,omitempty"`
	RelevantFor []Audience `bson:"relevant_for" json:"relevant_for"`
	Price       string     `bson:"price,omitempty" json:"price,omitempty"`
	Duration    string     `bson:"duration,omitempty" json:"duration,omitempty"`
	Features    []string   `bson:"features" json:"features"`

	ContentSections []ContentSection `bson:"content_sections" json:"content_sections"`

	CreatedAt time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time `bson:"updated_at" json:"updated_at"`
}

// ContentSection is one rich-text block of a service detail page.
type ContentSection struct {
	Heading string `bson:"heading" json:"heading"`
	Content string `bson:"content" json:"content"`
	Order   int    `bson:"order" json:"order"`
}

// Validate checks the closed enums and required fields.
func (s *Service) Validate() error {
	if s.Name == "" || s.Description == "" {
		return fmt.Errorf("%w: service name and description are required", ErrValidation)
	}
	if !s.Icon.Valid() {
		return fmt.Errorf("%w: unknown icon %q", ErrValidation, s.Icon)
	}
	for _, a := range s.RelevantFor {
		if !a.Valid() {
			return fmt.Errorf("%w: unknown audience %q", ErrValidation, a)
		}
	}
	return nil
}

// Normalize fills defaults for records written before the enums existed.
func (s *Service) Normalize() {
	if len(s.RelevantFor) == 0 {
		s.RelevantFor = DefaultAudiences()
	}
	if s.Features == nil {
		s.Features = []string{}
	}
	if s.ContentSections == nil {
		s.ContentSections = []ContentSection{}
	}
	sort.SliceStable(s.ContentSections, func(i, j int) bool {
		return s.ContentSections[i].Order < s.ContentSections[j].Order
	})
}

type StageRequest struct {
	ID       int       `json:"id"`
	Title    string    `json:"title"`
	Subtitle string    `json:"subtitle"`
	Phase    string    `json:"phase"`
	Services []Service `json:"services"`
}

type StageUpdate struct {
	Title    *string `json:"title"`
	Subtitle *string `json:"subtitle"`
	Phase    *string `json:"phase"`
}

type ServiceUpdate struct {
	Name        *string     `json:"name"`
	Description *string     `json:"description"`
	Icon        *Icon       `json:"icon"`
	Details     *string     `json:"details"`
	RelevantFor *[]Audience `json:"relevant_for"`
	Price       *string     `json:"price"`
	Duration    *string     `json:"duration"`
	Features    *[]string   `json:"features"`

	ContentSections *[]ContentSection `json:"content_sections"`
}

// Apply copies the set fields onto s.
func (u ServiceUpdate) Apply(s *Service) {
	if u.Name != nil {
		s.Name = *u.Name
	}
	if u.Description != nil {
		s.Description = *u.Description
	}
	if u.Icon != nil {
		s.Icon = *u.Icon
	}
	if u.Details != nil {
		s.Details = *u.Details
	}
	if u.RelevantFor != nil {
		s.RelevantFor = *u.RelevantFor
	}
	if u.Price != nil {
		s.Price = *u.Price
	}
	if u.Duration != nil {
		s.Duration = *u.Duration
	}
	if u.Features != nil {
		s.Features = *u.Features
	}
	if u.ContentSections != nil {
		s.ContentSections = *u.ContentSections
	}
}
