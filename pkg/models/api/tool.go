package api

type ToolCapabilities struct {
	Scanning      float64 `json:"scanning"`
	ManualTesting float64 `json:"manual_testing"`
	Automation    float64 `json:"automation"`
	Reporting     float64 `json:"reporting"`
	EaseOfUse     float64 `json:"ease_of_use"`
}

type Tool struct {
	ID           string           `json:"id"`
	Name         string           `json:"name"`
	Category     string           `json:"category"`
	Description  string           `json:"description"`
	Website      string           `json:"website,omitempty"`
	Pricing      string           `json:"pricing,omitempty"`
	Tags         []string         `json:"tags,omitempty"`
	Capabilities ToolCapabilities `json:"capabilities"`
}
