package model

import (
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/issuereport/pkg/domain/types"
)

// Session is the loaded data set: the immutable base table and the catalogs
// derived from it. It is created once by NewSession and only read afterwards.
type Session struct {
	ID       types.SessionID
	Source   string
	LoadedAt time.Time
	Location *time.Location

	base     *Table
	catalogs Catalogs
}

// NewSession wraps a loaded base table and builds its catalogs. loc is the
// time zone used to cut timestamps into calendar days.
func NewSession(source string, base *Table, loc *time.Location) (*Session, error) {
	if base == nil {
		return nil, goerr.New("base table is nil", goerr.V("source", source))
	}
	if loc == nil {
		loc = time.UTC
	}

	id, err := types.NewSessionID()
	if err != nil {
		return nil, goerr.Wrap(err, "failed to generate session ID")
	}

	return &Session{
		ID:       id,
		Source:   source,
		LoadedAt: time.Now(),
		Location: loc,
		base:     base,
		catalogs: BuildCatalogs(base),
	}, nil
}

// Base returns the base table
func (s *Session) Base() *Table {
	return s.base
}

// Catalogs returns the catalogs built from the base table
func (s *Session) Catalogs() Catalogs {
	return s.catalogs
}
