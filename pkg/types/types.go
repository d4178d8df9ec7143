// Package types defines the shared domain types for the Studi API:
// identities, user profiles, the documentation catalog, and the agent
// request/response shapes.
package types

// Identity is the resolved representation of an authenticated caller.
// It is produced by the identity gate and treated as opaque and
// trustworthy by downstream handlers.
type Identity struct {
	Username string `json:"username"`
	Email    string `json:"email,omitempty"`
	FullName string `json:"full_name,omitempty"`
	Disabled bool   `json:"disabled"`
}

// ProfileRecord is a user's stored profile. Optional fields serialize as
// null when unset, matching the API contract.
type ProfileRecord struct {
	Username    string      `json:"username"`
	Email       *string     `json:"email"`
	FullName    *string     `json:"full_name"`
	Bio         *string     `json:"bio"`
	AvatarURL   *string     `json:"avatar_url"`
	Preferences Preferences `json:"preferences"`
}

// ProfileUpdate is a partial profile update. Nil fields are left untouched;
// a non-nil Preferences map is merged key-by-key into the existing
// preferences rather than replacing them.
type ProfileUpdate struct {
	Email       *string     `json:"email"`
	FullName    *string     `json:"full_name"`
	Bio         *string     `json:"bio"`
	AvatarURL   *string     `json:"avatar_url"`
	Preferences Preferences `json:"preferences"`
}

// DocCategory is a top-level documentation category.
type DocCategory struct {
	ID          string `json:"id" yaml:"id"`
	Name        string `json:"name" yaml:"name"`
	Description string `json:"description" yaml:"description"`
	Icon        string `json:"icon" yaml:"icon"`
}

// DocItem is a single documentation entry within a category.
type DocItem struct {
	ID         string `json:"id" yaml:"id"`
	CategoryID string `json:"category_id" yaml:"category_id"`
	Title      string `json:"title" yaml:"title"`
	Path       string `json:"path" yaml:"path"`
	Summary    string `json:"summary,omitempty" yaml:"summary"`
}

// TOCEntry is one entry in a document's table of contents.
type TOCEntry struct {
	Level  int    `json:"level" yaml:"level"`
	Title  string `json:"title" yaml:"title"`
	Anchor string `json:"id" yaml:"anchor"`
}

// DocContent is the full content of a documentation item. The content
// table is a strict subset of the item table: a valid DocItem ID may have
// no stored content.
type DocContent struct {
	ID          string     `json:"id" yaml:"id"`
	Title       string     `json:"title" yaml:"title"`
	Content     string     `json:"content" yaml:"content"`
	TOC         []TOCEntry `json:"toc" yaml:"toc"`
	LastUpdated string     `json:"last_updated" yaml:"last_updated"`
}

// AgentQuery is a free-text query sent to the agent facade, over either
// the REST endpoint or the WebSocket channel.
type AgentQuery struct {
	Query   string         `json:"query"`
	Context map[string]any `json:"context,omitempty"`
}

// Source is a reference cited by an agent response.
type Source struct {
	Title string `json:"title"`
	URL   string `json:"url"`
}

// AgentResponse is a synthesized agent reply. Sources is always present
// in the JSON body, empty for generic responses.
type AgentResponse struct {
	Response string         `json:"response"`
	Sources  []Source       `json:"sources"`
	Context  map[string]any `json:"context,omitempty"`
}

// PlanStep is one step of a generated plan.
type PlanStep struct {
	StepID      string `json:"step_id"`
	Description string `json:"description"`
	Status      string `json:"status"`
}

// Plan step statuses.
const (
	StepPending    = "pending"
	StepInProgress = "in_progress"
	StepCompleted  = "completed"
)

// AgentPlan is an ordered plan for a complex task.
type AgentPlan struct {
	Steps   []PlanStep     `json:"steps"`
	Context map[string]any `json:"context,omitempty"`
}

// AgentTask reports the status of a long-running task. Result is null
// until the task completes.
type AgentTask struct {
	TaskID   string         `json:"task_id"`
	Status   string         `json:"status"`
	Progress float64        `json:"progress"`
	Result   map[string]any `json:"result"`
}
