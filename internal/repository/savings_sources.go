package repository

import (
	"context"

	"github.com/envelope-zero/networth/internal/models"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"golang.org/x/exp/slices"
)

// SavingsSources manages the savings sources.
//
// Every change to a savings source is propagated to the values of all
// financial records.
type SavingsSources struct {
	store *Store
}

// NewSavingsSources returns the savings source repository for a store.
func NewSavingsSources(store *Store) *SavingsSources {
	return &SavingsSources{store: store}
}

// List returns all savings sources in the order they were created.
//
// On first access, the fallback source is created.
func (r *SavingsSources) List(ctx context.Context) ([]models.SavingsSource, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	return r.store.loadSources(ctx)
}

// Get returns a single savings source.
func (r *SavingsSources) Get(ctx context.Context, id string) (models.SavingsSource, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	sources, err := r.store.loadSources(ctx)
	if err != nil {
		return models.SavingsSource{}, err
	}

	idx := sourceIndex(sources, id)
	if idx == -1 {
		return models.SavingsSource{}, notFound("savings source", Params{"id": id})
	}

	return sources[idx], nil
}

// Create adds a new savings source and a zero value for it to every
// financial record.
func (r *SavingsSources) Create(ctx context.Context, name string) (models.SavingsSource, error) {
	name = models.CleanName(name)
	if err := models.ValidateSourceName(name); err != nil {
		return models.SavingsSource{}, invalidInput(err)
	}

	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	sources, err := r.store.loadSources(ctx)
	if err != nil {
		return models.SavingsSource{}, err
	}

	records, err := r.store.loadRecords(ctx)
	if err != nil {
		return models.SavingsSource{}, err
	}

	now := r.store.timestamp()
	source := models.SavingsSource{
		DefaultModel: models.DefaultModel{
			ID: uuid.NewString(),
			Timestamps: models.Timestamps{
				CreatedAt: now,
				UpdatedAt: now,
			},
		},
		Name: name,
	}

	sources = append(sources, source)
	for i := range records {
		records[i].AppendSource(source)
	}

	err = r.store.save(ctx, sources, records)
	if err != nil {
		return models.SavingsSource{}, err
	}

	log.Debug().Str("id", source.ID).Int("records", len(records)).Msg("savings source created")
	return source, nil
}

// Update renames a savings source and replaces its copy in all financial
// records.
//
// A nil or blank name keeps the current name, only the modification time
// is updated.
func (r *SavingsSources) Update(ctx context.Context, id string, name *string) (models.SavingsSource, error) {
	var cleaned string
	if name != nil {
		cleaned = models.CleanName(*name)
		if cleaned != "" {
			if err := models.ValidateSourceName(cleaned); err != nil {
				return models.SavingsSource{}, invalidInput(err)
			}
		}
	}

	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	sources, err := r.store.loadSources(ctx)
	if err != nil {
		return models.SavingsSource{}, err
	}

	idx := sourceIndex(sources, id)
	if idx == -1 {
		return models.SavingsSource{}, notFound("savings source", Params{"id": id})
	}

	if err := r.checkProtected(sources[idx], "update"); err != nil {
		return models.SavingsSource{}, err
	}

	records, err := r.store.loadRecords(ctx)
	if err != nil {
		return models.SavingsSource{}, err
	}

	source := sources[idx]
	if cleaned != "" {
		source.Name = cleaned
	}
	source.Touch(r.store.timestamp())
	sources[idx] = source

	for i := range records {
		records[i].ReplaceSource(source)
	}

	err = r.store.save(ctx, sources, records)
	if err != nil {
		return models.SavingsSource{}, err
	}

	log.Debug().Str("id", source.ID).Msg("savings source updated")
	return source, nil
}

// Delete removes a savings source.
//
// The amounts held in the savings source are added to the fallback source
// in every financial record, so the totals of all records stay the same.
func (r *SavingsSources) Delete(ctx context.Context, id string) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	sources, err := r.store.loadSources(ctx)
	if err != nil {
		return err
	}

	idx := sourceIndex(sources, id)
	if idx == -1 {
		return notFound("savings source", Params{"id": id})
	}

	if err := r.checkProtected(sources[idx], "delete"); err != nil {
		return err
	}

	records, err := r.store.loadRecords(ctx)
	if err != nil {
		return err
	}

	fallback := models.NewNASource(r.store.timestamp())
	if na := slices.IndexFunc(sources, func(s models.SavingsSource) bool { return s.IsNA }); na != -1 {
		fallback = sources[na]
	}

	// Without protection, the fallback source itself can be deleted. There
	// is nothing left to fold its amounts into, they are dropped.
	if sources[idx].IsNA {
		log.Warn().Str("id", id).Msg("deleting the fallback savings source, its amounts are discarded")
	}

	folded := 0
	for i := range records {
		if sources[idx].IsNA {
			records[i].RemoveSource(id)
			continue
		}

		if records[i].FoldSource(id, fallback) {
			folded++
		}
	}

	// The fallback source has been deleted before. It is recreated as soon as
	// amounts are folded into it again.
	if folded > 0 && sourceIndex(sources, fallback.ID) == -1 {
		sources = append(sources, fallback)
	}

	sources = slices.Delete(sources, idx, idx+1)

	err = r.store.save(ctx, sources, records)
	if err != nil {
		return err
	}

	log.Debug().Str("id", id).Int("records", folded).Msg("savings source deleted")
	return nil
}

// checkProtected rejects changes to the fallback source if protection
// is enabled.
func (r *SavingsSources) checkProtected(source models.SavingsSource, operation string) error {
	if !r.store.protectNA || !source.IsNA {
		return nil
	}

	return newError(CodeForbidden, "the fallback savings source cannot be changed", Params{"id": source.ID, "operation": operation}, nil)
}

func sourceIndex(sources []models.SavingsSource, id string) int {
	return slices.IndexFunc(sources, func(s models.SavingsSource) bool {
		return s.ID == id
	})
}
