package domain

// ItemType classifies a digest item.
type ItemType string

const (
	ItemTip     ItemType = "tip"
	ItemCheck   ItemType = "check"
	ItemPattern ItemType = "pattern"
)

type DigestItem struct {
	Type  ItemType
	Title string
	Why   string
	Fix   string
}

// Digest is one dated document of curated security content.
type Digest struct {
	Date     string // YYYY-MM-DD
	Headline string
	Items    []DigestItem
}

type DigestSummary struct {
	Date     string
	Headline string
}

// DigestActivity is the per-date item count plotted on the timeline.
type DigestActivity struct {
	Date  string
	Items int
}
