package interfaces

import (
	"context"

	"github.com/secmon-lab/issuereport/pkg/domain/model"
)

// IssueSource loads the base table of issues
type IssueSource interface {
	// Load reads and normalizes every issue of the source
	Load(ctx context.Context) (*model.Table, error)

	// Name returns a human readable identifier of the source
	Name() string
}
