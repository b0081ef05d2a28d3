package driving

import (
	"context"

	"github.com/meridian-labs/rolo-cli/internal/core/domain"
)

// ResearchService runs the research pipeline for a stored contact and
// saves the resulting brief back onto the record.
type ResearchService interface {
	// Research gathers material about the contact's company (website text,
	// news, public GitHub presence, web search) and produces a networking
	// brief. The contact must already exist.
	Research(ctx context.Context, name string) (*domain.Brief, error)
}
