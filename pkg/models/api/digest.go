package api

type DigestItem struct {
	Type  string `json:"type"`
	Title string `json:"title"`
	Why   string `json:"why"`
	Fix   string `json:"fix"`
}

type Digest struct {
	Date     string       `json:"date"`
	Headline string       `json:"headline"`
	Items    []DigestItem `json:"digest_items"`
}

type DigestSummary struct {
	Date     string `json:"date"`
	Headline string `json:"headline"`
}
