package algorithms

import "strings"

// Region groups. Every fine-grained region falls into exactly one.
const (
	RegionCapital = "capital"
	RegionDarkhan = "darkhan"
	RegionErdenet = "erdenet"
	RegionOther   = "other"
)

var regionGroupKeywords = []struct {
	group    string
	keywords []string
}{
	{RegionCapital, []string{"улаанбаатар", "ulaanbaatar", "ulan bator", "ulaan baatar"}},
	{RegionDarkhan, []string{"дархан", "darkhan"}},
	{RegionErdenet, []string{"эрдэнэт", "erdenet"}},
}

// RegionGroup buckets a raw region string into one of the four coarse groups.
func RegionGroup(region string) string {
	r := strings.ToLower(strings.TrimSpace(region))
	if r == "ub" || r == "уб" {
		return RegionCapital
	}
	for _, g := range regionGroupKeywords {
		for _, kw := range g.keywords {
			if strings.Contains(r, kw) {
				return g.group
			}
		}
	}
	return RegionOther
}

var colorBuckets = []struct {
	bucket   string
	keywords []string
}{
	{"white", []string{"white", "pearl", "цагаан", "сувдан"}},
	{"black", []string{"black", "хар"}},
	{"silver", []string{"silver", "gray", "grey", "мөнгөлөг", "саарал"}},
	{"red", []string{"red", "maroon", "улаан", "бордо"}},
	{"blue", []string{"blue", "navy", "цэнхэр", "хөх"}},
}

// ColorBucket maps a free-form color to a coarse bucket. Empty input has no bucket.
func ColorBucket(color string) string {
	c := strings.ToLower(strings.TrimSpace(color))
	if c == "" {
		return ""
	}
	for _, b := range colorBuckets {
		for _, kw := range b.keywords {
			if strings.Contains(c, kw) {
				return b.bucket
			}
		}
	}
	return "other"
}
