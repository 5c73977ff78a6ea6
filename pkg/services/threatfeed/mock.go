package threatfeed

import "github.com/risk-digest/risk-digest/pkg/models/domain"

// mockSet keeps the site functional when the NVD API is unreachable or
// rate-limited.
var mockSet = []domain.Threat{
	{
		ID:          "CVE-2024-12345",
		Description: "Critical SQL injection vulnerability in web application framework allowing remote attackers to execute arbitrary SQL commands",
		CVSSScore:   9.8,
		Severity:    "CRITICAL",
		Published:   "2024-12-13T10:00:00.000",
		References: []domain.ThreatReference{
			{URL: "https://nvd.nist.gov/vuln/detail/CVE-2024-12345", Source: "NVD"},
		},
	},
	{
		ID:          "CVE-2024-12346",
		Description: "Remote code execution vulnerability in popular CMS platform affecting versions 3.0 to 3.5",
		CVSSScore:   9.1,
		Severity:    "CRITICAL",
		Published:   "2024-12-12T15:30:00.000",
		References: []domain.ThreatReference{
			{URL: "https://nvd.nist.gov/vuln/detail/CVE-2024-12346", Source: "NVD"},
		},
	},
	{
		ID:          "CVE-2024-12347",
		Description: "Cross-site scripting (XSS) vulnerability in authentication module",
		CVSSScore:   7.5,
		Severity:    "HIGH",
		Published:   "2024-12-11T09:15:00.000",
		References: []domain.ThreatReference{
			{URL: "https://nvd.nist.gov/vuln/detail/CVE-2024-12347", Source: "NVD"},
		},
	},
	{
		ID:          "CVE-2024-12348",
		Description: "Privilege escalation vulnerability in Linux kernel affecting multiple distributions",
		CVSSScore:   8.4,
		Severity:    "HIGH",
		Published:   "2024-12-10T14:20:00.000",
		References: []domain.ThreatReference{
			{URL: "https://nvd.nist.gov/vuln/detail/CVE-2024-12348", Source: "NVD"},
		},
	},
	{
		ID:          "CVE-2024-12349",
		Description: "Information disclosure vulnerability in API endpoint exposing sensitive user data",
		CVSSScore:   5.3,
		Severity:    "MEDIUM",
		Published:   "2024-12-09T11:45:00.000",
		References: []domain.ThreatReference{
			{URL: "https://nvd.nist.gov/vuln/detail/CVE-2024-12349", Source: "NVD"},
		},
	},
	{
		ID:          "CVE-2024-12350",
		Description: "Denial of service vulnerability in network service allowing resource exhaustion",
		CVSSScore:   6.5,
		Severity:    "MEDIUM",
		Published:   "2024-12-08T16:00:00.000",
		References: []domain.ThreatReference{
			{URL: "https://nvd.nist.gov/vuln/detail/CVE-2024-12350", Source: "NVD"},
		},
	},
}

func mockThreats(limit int) []domain.Threat {
	threats := mockSet
	if limit < len(threats) {
		threats = threats[:limit]
	}
	return append([]domain.Threat(nil), threats...)
}
