package domain

import "time"

// Origin describes how a campaign draft was started
type Origin string

const (
	OriginScratch  Origin = "scratch"
	OriginTemplate Origin = "template"
	OriginClone    Origin = "clone"
)

// LocalizedContent maps a locale to the authored fields of a section
type LocalizedContent map[string]map[string]any

// CampaignDraft represents a stored campaign landing page draft
type CampaignDraft struct {
	ID              string                      `json:"id" firestore:"-"`
	CampaignName    string                      `json:"campaign_name" firestore:"campaign_name" validate:"required"`
	Origin          Origin                      `json:"origin" firestore:"origin" validate:"omitempty,oneof=scratch template clone"`
	StructureConfig StructureConfig             `json:"structure_config" firestore:"structure_config"`
	LayoutConfig    []LayoutSection             `json:"layout_config" firestore:"layout_config" validate:"dive"`
	ThemeConfig     ThemeConfig                 `json:"theme_config" firestore:"theme_config"`
	ContentData     map[string]LocalizedContent `json:"content_data" firestore:"content_data"` // section -> locale -> fields
	CreatedAt       time.Time                   `json:"created_at,omitempty" firestore:"created_at,omitempty"`
	UpdatedAt       time.Time                   `json:"updated_at,omitempty" firestore:"updated_at,omitempty"`
}

// StructureConfig toggles the shared page chrome
type StructureConfig struct {
	Header Chrome `json:"header" firestore:"header"`
	Footer Chrome `json:"footer" firestore:"footer"`
}

// Chrome is a header or footer choice
type Chrome struct {
	Enabled   bool   `json:"enabled" firestore:"enabled"`
	Component string `json:"component,omitempty" firestore:"component,omitempty"`
}

// LayoutSection is one entry of the ordered page layout
type LayoutSection struct {
	Name string `json:"name" firestore:"name" validate:"required"`
}

// ThemeConfig holds the preset identifiers picked in the editor
type ThemeConfig struct {
	ColorPreset  string `json:"color_preset" firestore:"color_preset"`
	FontPreset   string `json:"font_preset" firestore:"font_preset"`
	RadiusPreset string `json:"radius_preset" firestore:"radius_preset"`
}

// DraftSummary is the listing view of a stored draft
type DraftSummary struct {
	ID           string    `json:"id"`
	CampaignName string    `json:"campaign_name"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// Theme is an assembled theme. Values are normally strings; anything else
// is ignored by the generators.
type Theme struct {
	Colors   map[string]any `json:"colors"`
	Fonts    map[string]any `json:"fonts"`
	Geometry map[string]any `json:"geometry"`
}

// BuildContext is shared by every generator of a single build
type BuildContext struct {
	Draft   *CampaignDraft
	Theme   Theme
	TempDir string
	Locales []string
	TraceID string
}

// BuildRequest selects the draft and the destination of a build
type BuildRequest struct {
	DraftFile  string // Path to a draft file; takes precedence over DraftID
	DraftID    string // Draft id in the draft store
	OutputPath string // Archive path; derived from OutputDir when empty
	OutputDir  string
	Upload     bool
	KeepTemp   bool
}

// BuildResult describes a finished build
type BuildResult struct {
	TraceID     string
	DraftID     string
	ArchivePath string
	ObjectURL   string
	TempDir     string // Only set when the temp dir was kept
}
