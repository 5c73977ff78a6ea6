package assessment

// benchmarks hold per-industry category averages. Unknown industries fall
// back to "general".
var benchmarks = map[string]map[string]int{
	"fintech": {
		"access_control":     85,
		"data_protection":    90,
		"network_security":   82,
		"incident_response":  80,
		"compliance":         95,
		"security_awareness": 75,
	},
	"healthcare": {
		"access_control":     80,
		"data_protection":    95,
		"network_security":   78,
		"incident_response":  82,
		"compliance":         92,
		"security_awareness": 70,
	},
	"saas": {
		"access_control":     82,
		"data_protection":    85,
		"network_security":   80,
		"incident_response":  78,
		"compliance":         75,
		"security_awareness": 72,
	},
	"ecommerce": {
		"access_control":     75,
		"data_protection":    88,
		"network_security":   76,
		"incident_response":  70,
		"compliance":         80,
		"security_awareness": 68,
	},
	"general": {
		"access_control":     70,
		"data_protection":    75,
		"network_security":   72,
		"incident_response":  65,
		"compliance":         70,
		"security_awareness": 60,
	},
}
