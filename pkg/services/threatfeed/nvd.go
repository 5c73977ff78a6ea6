package threatfeed

// Response shapes for the NVD CVE API 2.0. Only the fields this service
// consumes are mapped.

type nvdResponse struct {
	Vulnerabilities []nvdVulnerability `json:"vulnerabilities"`
}

type nvdVulnerability struct {
	CVE nvdCVE `json:"cve"`
}

type nvdCVE struct {
	ID           string          `json:"id"`
	Published    string          `json:"published"`
	Descriptions []nvdText       `json:"descriptions"`
	Metrics      nvdMetrics      `json:"metrics"`
	References   []nvdReference  `json:"references"`
}

type nvdText struct {
	Lang  string `json:"lang"`
	Value string `json:"value"`
}

type nvdMetrics struct {
	CVSSMetricV31 []nvdCVSSMetric `json:"cvssMetricV31"`
	CVSSMetricV30 []nvdCVSSMetric `json:"cvssMetricV30"`
	CVSSMetricV2  []nvdCVSSMetric `json:"cvssMetricV2"`
}

type nvdCVSSMetric struct {
	CVSSData nvdCVSSData `json:"cvssData"`
	// BaseSeverity sits outside cvssData for CVSS v2 records.
	BaseSeverity string `json:"baseSeverity"`
}

type nvdCVSSData struct {
	BaseScore    float64 `json:"baseScore"`
	BaseSeverity string  `json:"baseSeverity"`
}

type nvdReference struct {
	URL    string `json:"url"`
	Source string `json:"source"`
}

// score extracts the base score and severity, preferring CVSS v3.1, then
// v3.0, then v2.
func (m nvdMetrics) score() (float64, string) {
	for _, metrics := range [][]nvdCVSSMetric{m.CVSSMetricV31, m.CVSSMetricV30, m.CVSSMetricV2} {
		if len(metrics) == 0 {
			continue
		}
		metric := metrics[0]
		severity := metric.CVSSData.BaseSeverity
		if severity == "" {
			severity = metric.BaseSeverity
		}
		return metric.CVSSData.BaseScore, severity
	}
	return 0, "UNKNOWN"
}
