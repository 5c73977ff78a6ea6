package assessment

import "github.com/risk-digest/risk-digest/pkg/models/domain"

// categoryOrder fixes the presentation order of assessment categories and
// of the posture radar axes derived from them.
var categoryOrder = []string{
	"access_control",
	"data_protection",
	"network_security",
	"incident_response",
	"compliance",
	"security_awareness",
}

// categoryTitles map category keys to their display names.
var categoryTitles = map[string]string{
	"access_control":     "Access Control",
	"data_protection":    "Data Protection",
	"network_security":   "Network Security",
	"incident_response":  "Incident Response",
	"compliance":         "Compliance",
	"security_awareness": "Security Awareness",
}

// questions holds the weighted yes/no assessment, four per category.
var questions = map[string][]domain.Question{
	"access_control": {
		{ID: "ac1", Text: "Do you enforce multi-factor authentication (MFA) for all users?", Weight: 10},
		{ID: "ac2", Text: "Do you have role-based access control (RBAC) implemented?", Weight: 8},
		{ID: "ac3", Text: "Do you regularly review and revoke unnecessary access permissions?", Weight: 7},
		{ID: "ac4", Text: "Do you use single sign-on (SSO) for application access?", Weight: 6},
	},
	"data_protection": {
		{ID: "dp1", Text: "Is all sensitive data encrypted at rest?", Weight: 10},
		{ID: "dp2", Text: "Is all data encrypted in transit (TLS/SSL)?", Weight: 10},
		{ID: "dp3", Text: "Do you have a data classification policy in place?", Weight: 7},
		{ID: "dp4", Text: "Do you perform regular data backups?", Weight: 8},
	},
	"network_security": {
		{ID: "ns1", Text: "Do you have a firewall protecting your network perimeter?", Weight: 9},
		{ID: "ns2", Text: "Do you use network segmentation to isolate sensitive systems?", Weight: 8},
		{ID: "ns3", Text: "Do you have intrusion detection/prevention systems (IDS/IPS)?", Weight: 7},
		{ID: "ns4", Text: "Do you monitor network traffic for anomalies?", Weight: 7},
	},
	"incident_response": {
		{ID: "ir1", Text: "Do you have a documented incident response plan?", Weight: 9},
		{ID: "ir2", Text: "Do you conduct regular incident response drills?", Weight: 7},
		{ID: "ir3", Text: "Do you have 24/7 security monitoring?", Weight: 8},
		{ID: "ir4", Text: "Do you maintain audit logs for security events?", Weight: 8},
	},
	"compliance": {
		{ID: "cm1", Text: "Do you comply with relevant industry regulations (SOC 2, ISO 27001, GDPR, etc.)?", Weight: 10},
		{ID: "cm2", Text: "Do you conduct regular compliance audits?", Weight: 8},
		{ID: "cm3", Text: "Do you have documented security policies and procedures?", Weight: 7},
		{ID: "cm4", Text: "Do you track and remediate compliance gaps?", Weight: 7},
	},
	"security_awareness": {
		{ID: "sa1", Text: "Do you provide regular security awareness training to employees?", Weight: 8},
		{ID: "sa2", Text: "Do you conduct phishing simulation exercises?", Weight: 7},
		{ID: "sa3", Text: "Do you have a security champion program?", Weight: 6},
		{ID: "sa4", Text: "Do you have a clear security incident reporting process?", Weight: 8},
	},
}
