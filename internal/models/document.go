package models

import (
	"encoding/json"
	"errors"
	"time"

	"github.com/shopspring/decimal"
	"golang.org/x/exp/slices"
)

var ErrInvalidDocument = errors.New("invalid file format. Expected 'financialRecords' and 'savingsSources' arrays")

// Document contains all data of an instance. It is the format used for
// exports and imports.
type Document struct {
	FinancialRecords []FinancialRecord `json:"financialRecords"`
	SavingsSources   []SavingsSource   `json:"savingsSources"`
}

// ParseDocument decodes an exported document.
//
// Both collections must be present as JSON arrays. The timestamps of all
// entities are normalized.
func ParseDocument(data []byte) (Document, error) {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return Document{}, errors.Join(ErrInvalidDocument, err)
	}

	var doc Document
	for key, target := range map[string]any{
		"financialRecords": &doc.FinancialRecords,
		"savingsSources":   &doc.SavingsSources,
	} {
		value, ok := raw[key]
		if !ok || !isArray(value) {
			return Document{}, ErrInvalidDocument
		}

		if err := json.Unmarshal(value, target); err != nil {
			return Document{}, errors.Join(ErrInvalidDocument, err)
		}
	}

	for i := range doc.FinancialRecords {
		doc.FinancialRecords[i].Normalize()
	}
	for i := range doc.SavingsSources {
		doc.SavingsSources[i].Normalize()
	}

	return doc, nil
}

// isArray reports whether a raw JSON value is an array.
func isArray(value json.RawMessage) bool {
	for _, c := range value {
		switch c {
		case ' ', '\t', '\n', '\r':
			continue
		case '[':
			return true
		default:
			return false
		}
	}

	return false
}

// Reconcile aligns the values of every financial record with the savings
// sources of the document.
//
// A record that does not have exactly one value per savings source is
// rebuilt in the order of the savings sources. Amounts for savings sources
// that are not part of the document are added to the fallback source, which
// is added to the document if needed. Duplicate values are summed up. The
// total of every record is unchanged.
//
// It returns the number of records that were rebuilt.
func (d *Document) Reconcile(now time.Time) int {
	known := make(map[string]bool, len(d.SavingsSources))
	for _, s := range d.SavingsSources {
		known[s.ID] = true
	}

	orphaned := slices.ContainsFunc(d.FinancialRecords, func(r FinancialRecord) bool {
		return slices.ContainsFunc(r.Values, func(v SavingsSourceValue) bool {
			return !known[v.SavingsSource.ID]
		})
	})

	fallback := slices.IndexFunc(d.SavingsSources, func(s SavingsSource) bool { return s.IsNA })
	if fallback == -1 {
		fallback = slices.IndexFunc(d.SavingsSources, func(s SavingsSource) bool { return s.ID == NASourceID })
	}

	if orphaned && fallback == -1 {
		d.SavingsSources = append(d.SavingsSources, NewNASource(now))
		fallback = len(d.SavingsSources) - 1
	}

	rebuilt := 0
	for i := range d.FinancialRecords {
		if d.FinancialRecords[i].covers(d.SavingsSources) {
			continue
		}

		d.FinancialRecords[i].rebuild(d.SavingsSources, fallback)
		rebuilt++
	}

	return rebuilt
}

// covers reports whether the record has exactly one value per savings
// source, each embedding the current copy of its source.
func (r FinancialRecord) covers(sources []SavingsSource) bool {
	if len(r.Values) != len(sources) {
		return false
	}

	for _, source := range sources {
		v, ok := r.Value(source.ID)
		if !ok || v.SavingsSource != source {
			return false
		}
	}

	return true
}

// rebuild replaces the values of the record with one value per savings
// source. Amounts of unknown sources go to the source at index fallback.
func (r *FinancialRecord) rebuild(sources []SavingsSource, fallback int) {
	amounts := make(map[string]decimal.Decimal, len(sources))
	for _, v := range r.Values {
		id := v.SavingsSource.ID
		if !slices.ContainsFunc(sources, func(s SavingsSource) bool { return s.ID == id }) {
			id = sources[fallback].ID
		}

		if amount, ok := amounts[id]; ok {
			amounts[id] = amount.Add(v.Amount)
			continue
		}
		amounts[id] = v.Amount
	}

	values := make([]SavingsSourceValue, 0, len(sources))
	for _, source := range sources {
		amount, ok := amounts[source.ID]
		if !ok {
			amount = decimal.Zero
		}

		values = append(values, SavingsSourceValue{
			SavingsSource: source,
			Amount:        amount,
		})
	}

	r.Values = values
}
