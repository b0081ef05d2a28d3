package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/meridian-labs/rolo-cli/internal/core/domain"
	"github.com/meridian-labs/rolo-cli/internal/core/ports/driven"
	"github.com/meridian-labs/rolo-cli/internal/core/ports/driving"
	"github.com/meridian-labs/rolo-cli/internal/logger"
)

// Ensure ResearchService implements the interface.
var _ driving.ResearchService = (*ResearchService)(nil)

// newsLimit is how many articles a research run gathers.
const newsLimit = 5

// ResearchService gathers background material about a contact's company and
// condenses it into a networking brief. Every research source is optional:
// a nil provider means the source is disabled, and a provider error skips
// that source with a warning. Only a missing contact or a failed store
// write aborts the run.
type ResearchService struct {
	contacts  driven.ContactStore
	summarise driven.Summariser
	news      driven.NewsProvider
	pages     driven.PageExtractor
	profiler  driven.CompanyProfiler
	search    driven.WebSearcher
}

// NewResearchService creates a new research service. Only the contact store
// is required; all research providers may be nil.
func NewResearchService(contacts driven.ContactStore) *ResearchService {
	return &ResearchService{contacts: contacts}
}

// SetSummariser sets the LLM used to write the brief.
func (s *ResearchService) SetSummariser(llm driven.Summariser) {
	s.summarise = llm
}

// SetNewsProvider sets the news source.
func (s *ResearchService) SetNewsProvider(p driven.NewsProvider) {
	s.news = p
}

// SetPageExtractor sets the website text source.
func (s *ResearchService) SetPageExtractor(p driven.PageExtractor) {
	s.pages = p
}

// SetCompanyProfiler sets the GitHub organisation source.
func (s *ResearchService) SetCompanyProfiler(p driven.CompanyProfiler) {
	s.profiler = p
}

// SetWebSearcher sets the web search source.
func (s *ResearchService) SetWebSearcher(w driven.WebSearcher) {
	s.search = w
}

// material is everything one run gathered, section by section.
type material struct {
	sections  []string
	sources   []string
	newsLinks []string
}

func (m *material) add(source, section string) {
	m.sections = append(m.sections, section)
	m.sources = append(m.sources, source)
}

// Research runs the pipeline for a stored contact and saves the resulting
// summary and news links back onto the record.
func (s *ResearchService) Research(ctx context.Context, name string) (*domain.Brief, error) {
	if s.contacts == nil {
		return nil, domain.ErrNotImplemented
	}

	contact, err := s.contacts.Get(ctx, name)
	if err != nil {
		return nil, fmt.Errorf("research %q: %w", name, err)
	}

	logger.Section("Research: " + contact.Name)
	gathered := s.gather(ctx, contact)

	brief := &domain.Brief{
		ContactName: contact.Name,
		NewsLinks:   gathered.newsLinks,
		Sources:     gathered.sources,
		CreatedAt:   time.Now().UTC(),
	}

	summary, generated := s.writeBrief(ctx, contact, gathered)
	brief.Summary = summary
	brief.Generated = generated

	_, err = s.contacts.Upsert(ctx, contact.Name, domain.ContactFields{
		Summary:   summary,
		NewsLinks: gathered.newsLinks,
	})
	if err != nil {
		return nil, fmt.Errorf("save brief for %q: %w", contact.Name, err)
	}
	return brief, nil
}

// gather collects one section of raw text per configured source. Failures
// are logged and skipped.
func (s *ResearchService) gather(ctx context.Context, contact *domain.Contact) *material {
	m := &material{}

	if s.pages != nil && contact.Website != "" {
		text, err := s.pages.Extract(ctx, contact.Website)
		if err != nil {
			logger.Warn("website skipped: %v", err)
		} else if text != "" {
			m.add("website", "Company website content:\n"+text)
		}
	}

	if s.news != nil {
		query := newsQuery(contact)
		items, err := s.news.Fetch(ctx, query, newsLimit)
		if err != nil {
			logger.Warn("news skipped: %v", err)
		} else if len(items) > 0 {
			var lines []string
			for _, item := range items {
				lines = append(lines, "- "+item.Snippet())
				if item.URL != "" {
					m.newsLinks = append(m.newsLinks, item.URL)
				}
			}
			m.add("news", "Recent news:\n"+strings.Join(lines, "\n"))
		}
	}

	if s.profiler != nil && contact.Company != "" {
		profile, err := s.profiler.Profile(ctx, contact.Company)
		if err != nil {
			logger.Warn("github skipped: %v", err)
		} else {
			m.add("github", formatOrgProfile(profile))
		}
	}

	if s.search != nil && contact.Company != "" {
		results, err := s.search.Search(ctx, contact.Company+" company news", 3)
		if err != nil {
			logger.Warn("web search skipped: %v", err)
		} else if len(results) > 0 {
			var lines []string
			for _, r := range results {
				lines = append(lines, fmt.Sprintf("- %s: %s", r.Title, r.Snippet))
			}
			m.add("websearch", "Web search results:\n"+strings.Join(lines, "\n"))
		}
	}

	logger.Info("Gathered %d research sections", len(m.sections))
	return m
}

// writeBrief asks the LLM for a summary, falling back to manual notes when
// the LLM is unconfigured or fails.
func (s *ResearchService) writeBrief(
	ctx context.Context, contact *domain.Contact, gathered *material,
) (summary string, generated bool) {
	if s.summarise != nil && len(gathered.sections) > 0 {
		text, err := s.summarise.Summarise(ctx, buildBriefPrompt(contact, gathered.sections))
		if err != nil {
			logger.Warn("summariser unavailable, writing manual notes: %v", err)
		} else if strings.TrimSpace(text) != "" {
			return strings.TrimSpace(text), true
		}
	}
	return manualNotes(contact, gathered), false
}

// newsQuery prefers the company, then the industry, then the bare name.
func newsQuery(contact *domain.Contact) string {
	switch {
	case contact.Company != "":
		return contact.Company
	case contact.Industry != "":
		return contact.Industry
	default:
		return contact.Name
	}
}

// buildBriefPrompt frames the gathered material as a meeting-prep request.
func buildBriefPrompt(contact *domain.Contact, sections []string) string {
	var b strings.Builder
	b.WriteString("You are a networking assistant. Using the research material below, ")
	b.WriteString("write a concise brief to prepare for a conversation with ")
	b.WriteString(contact.Name)
	if contact.Role != "" {
		b.WriteString(", " + contact.Role)
	}
	if contact.Company != "" {
		b.WriteString(" at " + contact.Company)
	}
	b.WriteString(".\n\nCover:\n")
	b.WriteString("1. Who they are and what their role involves\n")
	b.WriteString("2. What their company has been doing recently\n")
	b.WriteString("3. Relevant industry trends\n")
	b.WriteString("4. Two or three conversation starters\n")
	b.WriteString("5. Ways I could be useful to them\n\n")
	b.WriteString("Research material:\n\n")
	b.WriteString(strings.Join(sections, "\n\n"))
	return b.String()
}

// manualNotes assembles a plain brief from the raw material so research
// still produces something useful without an LLM.
func manualNotes(contact *domain.Contact, gathered *material) string {
	var b strings.Builder
	b.WriteString("Notes on " + contact.Name)
	if contact.Company != "" {
		b.WriteString(" (" + contact.Company + ")")
	}
	b.WriteString(":\n")
	if len(gathered.sections) == 0 {
		b.WriteString("No research sources were available. Add an API key with " +
			"'rolo config set-key' or set a feed URL to enable research.")
		return b.String()
	}
	b.WriteString("\n" + strings.Join(gathered.sections, "\n\n"))
	return b.String()
}

func formatOrgProfile(p *domain.OrgProfile) string {
	var b strings.Builder
	b.WriteString("Public GitHub presence:\n")
	fmt.Fprintf(&b, "- Organisation: %s", p.Login)
	if p.Name != "" && p.Name != p.Login {
		fmt.Fprintf(&b, " (%s)", p.Name)
	}
	b.WriteString("\n")
	if p.Description != "" {
		fmt.Fprintf(&b, "- About: %s\n", p.Description)
	}
	fmt.Fprintf(&b, "- Public repositories: %d\n", p.PublicRepos)
	for _, r := range p.RecentRepos {
		fmt.Fprintf(&b, "- Recently active: %s", r.Name)
		if r.Description != "" {
			fmt.Fprintf(&b, " - %s", r.Description)
		}
		b.WriteString("\n")
	}
	return strings.TrimSuffix(b.String(), "\n")
}
