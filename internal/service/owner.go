package service

import (
	"strings"

	"agenkas/internal/model"
	"agenkas/internal/store"
)

// OwnerInput is what the CLI collects for a capital contribution entry.
type OwnerInput struct {
	Name   string
	Amount int64
	Note   string
}

// OwnerService manages owner capital entries. These are plain records with
// no effect on the derived ledger.
type OwnerService struct {
	repo store.Repository
}

func NewOwnerService(repo store.Repository) *OwnerService {
	return &OwnerService{repo: repo}
}

func (os *OwnerService) Create(input OwnerInput) (*model.Owner, error) {
	o := buildOwner(model.NewID("own"), nowISO(), input)
	if err := o.Validate(); err != nil {
		return nil, err
	}
	if err := os.repo.InsertOwner(o); err != nil {
		return nil, err
	}
	return &o, nil
}

func (os *OwnerService) Update(id string, input OwnerInput) (*model.Owner, error) {
	existing, err := os.repo.GetOwner(id)
	if err != nil {
		return nil, err
	}

	o := buildOwner(existing.ID, existing.CreatedAt, input)
	if err := o.Validate(); err != nil {
		return nil, err
	}
	if err := os.repo.ReplaceOwner(o); err != nil {
		return nil, err
	}
	return &o, nil
}

func (os *OwnerService) Delete(id string) error {
	return os.repo.DeleteOwner(id)
}

func (os *OwnerService) Get(id string) (*model.Owner, error) {
	return os.repo.GetOwner(id)
}

// List returns owners sorted by name (the store orders them).
func (os *OwnerService) List() ([]model.Owner, error) {
	return os.repo.ListOwners()
}

func buildOwner(id, createdAt string, input OwnerInput) model.Owner {
	return model.Owner{
		ID:        id,
		Name:      strings.TrimSpace(input.Name),
		Amount:    model.Clamp(input.Amount),
		Note:      strings.TrimSpace(input.Note),
		CreatedAt: createdAt,
	}
}
