package models

// AdvisorRequest is the payload shared by /validate, /roadmap and /viva.
type AdvisorRequest struct {
	Abstract  string `json:"abstract" binding:"required"`
	Duration  string `json:"duration"`
	TechStack string `json:"tech_stack"`
}

// StackRequest is the payload for /suggest.
type StackRequest struct {
	Abstract     string `json:"abstract" binding:"required"`
	Difficulty   string `json:"difficulty" binding:"required"`
	Duration     string `json:"duration" binding:"required"`
	Requirements string `json:"requirements"`
}

// SearchItem is one web search result used as evidence.
type SearchItem struct {
	Title   string
	Snippet string
	Link    string
}

// EvidenceRef is the trimmed evidence record returned to the caller.
type EvidenceRef struct {
	Title string `json:"title"`
	Link  string `json:"link"`
}

// ValidationVerdict is the model's scoring of the original abstract.
// Scores are expected to be 0-100 but come straight from the model.
type ValidationVerdict struct {
	NoveltyScore     int    `json:"novelty_score"`
	ComplexityScore  int    `json:"complexity_score"`
	FeasibilityScore int    `json:"feasibility_score"`
	Verdict          string `json:"verdict"`
	Reason           string `json:"reason"`
}

// Variant is a suggested pivot of the original idea.
type Variant struct {
	Title      string `json:"title"`
	Desc       string `json:"desc"`
	Novelty    int    `json:"novelty"`
	Complexity int    `json:"complexity"`
}

type ValidateResponse struct {
	Original ValidationVerdict `json:"original"`
	Variants []Variant         `json:"variants"`
	Evidence []EvidenceRef     `json:"evidence"`
}

// RoadmapWeek is one entry of the generated plan.
type RoadmapWeek struct {
	Week  string   `json:"week"`
	Phase string   `json:"phase"`
	Tasks []string `json:"tasks"`
}

// Tutorial is a display-ready video search result.
type Tutorial struct {
	Title     string `json:"title"`
	Thumbnail string `json:"thumbnail"`
	Link      string `json:"link"`
	Channel   string `json:"channel"`
}

type RoadmapResponse struct {
	Stack     []string      `json:"stack"`
	Roadmap   []RoadmapWeek `json:"roadmap"`
	Tutorials []Tutorial    `json:"tutorials"`
}

// StackSuggestion is one proposed tech stack.
type StackSuggestion struct {
	Name         string   `json:"name"`
	Technologies []string `json:"technologies"`
	Reason       string   `json:"reason"`
	Pros         []string `json:"pros"`
	Cons         []string `json:"cons"`
}

type SuggestResponse struct {
	Suggestions []StackSuggestion `json:"suggestions"`
}

// VivaQuestion is one mock examiner question with its expected answer.
type VivaQuestion struct {
	Q string `json:"q"`
	A string `json:"a"`
}

type VivaResponse struct {
	Questions []VivaQuestion `json:"questions"`
}
