package domain

// ToolCapabilities rates a tool 0-10 on the five comparison axes.
type ToolCapabilities struct {
	Scanning      float64
	ManualTesting float64
	Automation    float64
	Reporting     float64
	EaseOfUse     float64
}

type Tool struct {
	ID           string
	Name         string
	Category     string
	Description  string
	Website      string
	Pricing      string
	Tags         []string
	Capabilities ToolCapabilities
}
