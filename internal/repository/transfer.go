package repository

import (
	"context"

	"github.com/envelope-zero/networth/internal/models"
	"github.com/rs/zerolog/log"
)

// Transfer exports and imports all data of an instance.
type Transfer struct {
	store *Store
}

// NewTransfer returns the import and export repository for a store.
func NewTransfer(store *Store) *Transfer {
	return &Transfer{store: store}
}

// Export returns all savings sources and financial records as they are
// stored.
func (r *Transfer) Export(ctx context.Context) (models.Document, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	sources, err := r.store.loadSources(ctx)
	if err != nil {
		return models.Document{}, err
	}

	records, err := r.store.loadRecords(ctx)
	if err != nil {
		return models.Document{}, err
	}

	return models.Document{
		FinancialRecords: records,
		SavingsSources:   sources,
	}, nil
}

// Import replaces all savings sources and financial records with the
// contents of an exported document.
//
// The document is validated completely before anything is written. The
// values of the imported financial records are aligned with the imported
// savings sources, see models.Document.Reconcile.
func (r *Transfer) Import(ctx context.Context, data []byte) (models.Document, error) {
	doc, err := models.ParseDocument(data)
	if err != nil {
		return models.Document{}, invalidInput(err)
	}

	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	rebuilt := doc.Reconcile(r.store.timestamp())
	if rebuilt > 0 {
		log.Warn().Int("financialRecords", rebuilt).Msg("imported financial records did not match the savings sources and were rebuilt")
	}

	err = r.store.save(ctx, doc.SavingsSources, doc.FinancialRecords)
	if err != nil {
		return models.Document{}, err
	}

	log.Info().
		Int("savingsSources", len(doc.SavingsSources)).
		Int("financialRecords", len(doc.FinancialRecords)).
		Msg("data imported")

	return doc, nil
}
