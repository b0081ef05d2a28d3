package mcp

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/meridian-labs/rolo-cli/internal/core/domain"
)

// SearchContactsInput is the input schema for the search_contacts tool.
type SearchContactsInput struct {
	Query string `json:"query" jsonschema:"substring to match against contact names, companies, and roles; empty returns everyone"`
}

// SearchContactsOutput is the output schema for the search_contacts tool.
type SearchContactsOutput struct {
	Contacts []ContactOutput `json:"contacts"`
	Count    int             `json:"count"`
}

// ContactOutput represents a single contact.
type ContactOutput struct {
	Name      string   `json:"name"`
	Role      string   `json:"role,omitempty"`
	Company   string   `json:"company,omitempty"`
	Industry  string   `json:"industry,omitempty"`
	LinkedIn  string   `json:"linkedin,omitempty"`
	Website   string   `json:"website,omitempty"`
	Summary   string   `json:"summary,omitempty"`
	NewsLinks []string `json:"news_links,omitempty"`
}

// GetContactInput is the input schema for the get_contact tool.
type GetContactInput struct {
	Name string `json:"name" jsonschema:"exact contact name"`
}

// SaveContactInput is the input schema for the save_contact tool.
type SaveContactInput struct {
	Name     string `json:"name" jsonschema:"contact name, used as the unique key"`
	Role     string `json:"role,omitempty" jsonschema:"job title"`
	Company  string `json:"company,omitempty" jsonschema:"company name"`
	Industry string `json:"industry,omitempty" jsonschema:"industry keyword"`
	LinkedIn string `json:"linkedin,omitempty" jsonschema:"LinkedIn profile URL"`
	Website  string `json:"website,omitempty" jsonschema:"company or personal website URL"`
}

// ResearchContactInput is the input schema for the research_contact tool.
type ResearchContactInput struct {
	Name string `json:"name" jsonschema:"exact name of an existing contact"`
}

// ResearchContactOutput is the output schema for the research_contact tool.
type ResearchContactOutput struct {
	Summary   string   `json:"summary"`
	NewsLinks []string `json:"news_links,omitempty"`
	Sources   []string `json:"sources,omitempty"`
	Generated bool     `json:"generated"`
}

// registerTools registers all tool handlers with the MCP server.
func (s *Server) registerTools() {
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "search_contacts",
		Description: "Search the contact book by name, company, or role",
	}, s.handleSearchContacts)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "get_contact",
		Description: "Get a contact's full record including the latest research brief",
	}, s.handleGetContact)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "save_contact",
		Description: "Add a contact or merge fields into an existing one",
	}, s.handleSaveContact)

	if s.ports.Research != nil {
		mcp.AddTool(s.server, &mcp.Tool{
			Name:        "research_contact",
			Description: "Research a contact's company and produce a networking brief",
		}, s.handleResearchContact)
	}
}

// handleSearchContacts handles the search_contacts tool invocation.
func (s *Server) handleSearchContacts(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input SearchContactsInput,
) (*mcp.CallToolResult, SearchContactsOutput, error) {
	matches, err := s.ports.Contacts.Find(ctx, input.Query)
	if err != nil {
		return nil, SearchContactsOutput{}, err
	}

	output := SearchContactsOutput{Contacts: []ContactOutput{}}
	for c := range matches {
		output.Contacts = append(output.Contacts, contactOutput(c))
	}
	output.Count = len(output.Contacts)
	return nil, output, nil
}

// handleGetContact handles the get_contact tool invocation.
func (s *Server) handleGetContact(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input GetContactInput,
) (*mcp.CallToolResult, ContactOutput, error) {
	contact, err := s.ports.Contacts.Get(ctx, input.Name)
	if err != nil {
		return nil, ContactOutput{}, err
	}
	return nil, contactOutput(*contact), nil
}

// handleSaveContact handles the save_contact tool invocation.
func (s *Server) handleSaveContact(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input SaveContactInput,
) (*mcp.CallToolResult, ContactOutput, error) {
	contact, err := s.ports.Contacts.Upsert(ctx, input.Name, domain.ContactFields{
		Role:     input.Role,
		Company:  input.Company,
		Industry: input.Industry,
		LinkedIn: input.LinkedIn,
		Website:  input.Website,
	})
	if err != nil {
		return nil, ContactOutput{}, err
	}
	return nil, contactOutput(contact), nil
}

// handleResearchContact handles the research_contact tool invocation.
func (s *Server) handleResearchContact(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input ResearchContactInput,
) (*mcp.CallToolResult, ResearchContactOutput, error) {
	brief, err := s.ports.Research.Research(ctx, input.Name)
	if err != nil {
		return nil, ResearchContactOutput{}, err
	}
	return nil, ResearchContactOutput{
		Summary:   brief.Summary,
		NewsLinks: brief.NewsLinks,
		Sources:   brief.Sources,
		Generated: brief.Generated,
	}, nil
}

func contactOutput(c domain.Contact) ContactOutput {
	return ContactOutput{
		Name:      c.Name,
		Role:      c.Role,
		Company:   c.Company,
		Industry:  c.Industry,
		LinkedIn:  c.LinkedIn,
		Website:   c.Website,
		Summary:   c.Summary,
		NewsLinks: c.NewsLinks,
	}
}
