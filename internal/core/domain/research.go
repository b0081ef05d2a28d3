package domain

import "time"

// NewsItem is a single news article headline relevant to a contact's
// industry or company.
type NewsItem struct {
	// Title is the article headline.
	Title string

	// Description is a short teaser or summary.
	Description string

	// URL is the article link.
	URL string

	// PublishedAt is the publication timestamp as reported by the source.
	PublishedAt string
}

// Snippet renders the item as a one-line bullet for the brief prompt.
func (n NewsItem) Snippet() string {
	switch {
	case n.Title == "":
		return n.Description
	case n.Description == "":
		return n.Title
	default:
		return n.Title + ": " + n.Description
	}
}

// WebSnippet is a web search result used as supplementary research input.
type WebSnippet struct {
	Title   string
	URL     string
	Snippet string
}

// RepoActivity is a recently active repository of a company's public
// GitHub organisation.
type RepoActivity struct {
	Name        string
	Description string
	Language    string
	Stars       int
	PushedAt    time.Time
}

// OrgProfile is the public GitHub presence of a company.
type OrgProfile struct {
	// Login is the organisation slug on GitHub.
	Login string

	// Name is the display name.
	Name string

	// Description is the organisation's self-description.
	Description string

	// Blog is the organisation's website as listed on GitHub.
	Blog string

	// PublicRepos is the number of public repositories.
	PublicRepos int

	// RecentRepos are the most recently pushed public repositories.
	RecentRepos []RepoActivity
}

// Brief is the outcome of a research run for one contact.
type Brief struct {
	// ContactName identifies the researched contact.
	ContactName string

	// Summary is the networking brief text.
	Summary string

	// NewsLinks are the article URLs gathered during the run.
	NewsLinks []string

	// Sources names the research inputs that contributed (website, news,
	// github, websearch). Failed or unconfigured sources are absent.
	Sources []string

	// Generated reports whether the summary came from the LLM. False means
	// the manual-notes fallback was used.
	Generated bool

	// CreatedAt is when the brief was produced.
	CreatedAt time.Time
}
