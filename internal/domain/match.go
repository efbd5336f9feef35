package domain

// Match pairs an eligible interpreter with the subset of a job's needed
// languages they speak.
type Match struct {
	Interpreter      Interpreter `json:"interpreter"`
	MatchedLanguages []Language  `json:"matched_languages"`
}

// MatchResult is the outcome of an eligibility query. A job posted with
// no needed languages yields NoLanguagesNeeded=true and an empty match
// list; that is signal, not an error.
type MatchResult struct {
	NoLanguagesNeeded bool    `json:"no_languages_needed"`
	Matches           []Match `json:"matches"`
}
