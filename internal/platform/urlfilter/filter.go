package urlfilter

import (
	"sort"
)

// Result describes what Select kept.
type Result struct {
	URLs      []string
	Input     int
	Collapsed int // descartadas por firma repetida
	Dropped   int // descartadas por el límite
}

// Select returns at most limit URLs. When urls already fit they are returned
// untouched. Otherwise structurally duplicated URLs are collapsed and the
// survivors are ranked by Score, keeping input order among equal scores.
// limit <= 0 disables it.
func Select(urls []string, limit int, w ScoreWeights) Result {
	res := Result{Input: len(urls)}
	if limit <= 0 || len(urls) <= limit {
		res.URLs = urls
		return res
	}

	unique := Collapse(urls)
	res.Collapsed = len(urls) - len(unique)

	scored := make([]ScoredURL, len(unique))
	for i, u := range unique {
		scored[i] = Score(u, w)
	}
	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].Score > scored[j].Score
	})

	if len(scored) > limit {
		res.Dropped = len(scored) - limit
		scored = scored[:limit]
	}

	res.URLs = make([]string, len(scored))
	for i, s := range scored {
		res.URLs[i] = s.URL
	}
	return res
}
