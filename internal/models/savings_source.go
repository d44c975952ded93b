package models

import (
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"golang.org/x/text/unicode/norm"
)

// NASourceID is the well-known ID of the fallback savings source.
const NASourceID = "na-source"

// NASourceName is the name of the fallback savings source.
const NASourceName = "NA"

const (
	SourceNameMinLength = 2
	SourceNameMaxLength = 100
)

var ErrSourceNameLength = fmt.Errorf("the name of a savings source must be between %d and %d characters long", SourceNameMinLength, SourceNameMaxLength)

// SavingsSource is a named bucket of money that is tracked over time,
// e.g. a bank account or a brokerage depot.
type SavingsSource struct {
	DefaultModel
	Name string `json:"name" example:"Savings account"` // Name of the savings source
	IsNA bool   `json:"isNA" example:"false"`           // Marks the fallback source that absorbs values of deleted sources
}

// NewNASource returns the fallback savings source.
func NewNASource(now time.Time) SavingsSource {
	return SavingsSource{
		DefaultModel: DefaultModel{
			ID: NASourceID,
			Timestamps: Timestamps{
				CreatedAt: now,
				UpdatedAt: now,
			},
		},
		Name: NASourceName,
		IsNA: true,
	}
}

// Normalize converts all timestamps of the savings source to UTC.
func (s *SavingsSource) Normalize() {
	s.normalize()
}

// CleanName trims whitespace and normalizes the unicode representation
// of a name so that its length can be measured in characters.
func CleanName(name string) string {
	return norm.NFC.String(strings.TrimSpace(name))
}

// ValidateSourceName verifies that a cleaned name has an acceptable length.
func ValidateSourceName(name string) error {
	length := utf8.RuneCountInString(name)
	if length < SourceNameMinLength || length > SourceNameMaxLength {
		return ErrSourceNameLength
	}

	return nil
}
