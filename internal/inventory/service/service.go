package service

import (
	"context"
	"errors"
	"strings"

	"inventory/internal/inventory/model"
	"inventory/internal/inventory/repository"
	"inventory/internal/inventory/util"
)

var (
	ErrUnauthorized = errors.New("unauthorized")
	ErrConflict     = errors.New("conflict: item name already exists")
	ErrNotFound     = errors.New("item not found")
	ErrBadRequest   = errors.New("bad request")
)

type ItemService interface {
	CreateItem(ctx context.Context, callerID string, req model.CreateItemReq) (*model.Item, error)
	GetItem(ctx context.Context, name string) (*model.Item, error)
	ListItems(ctx context.Context, filter model.ItemFilter) ([]*model.Item, error)
	UpdateItem(ctx context.Context, callerID, name string, req model.UpdateItemReq) (*model.Item, error)
	DeleteItem(ctx context.Context, callerID, name string) error
}

type Service struct {
	Repo repository.ItemRepository
}

func NewService(repo repository.ItemRepository) *Service {
	return &Service{Repo: repo}
}

func (s *Service) CreateItem(ctx context.Context, callerID string, req model.CreateItemReq) (*model.Item, error) {
	callerID = strings.TrimSpace(callerID)
	req.Name = strings.TrimSpace(req.Name)

	if callerID == "" {
		return nil, ErrUnauthorized
	}
	if req.Name == "" {
		return nil, ErrBadRequest
	}

	status := req.Status
	if status == "" {
		status = model.StatusActive
	}

	item := &model.Item{
		Name:        req.Name,
		Description: req.Description,
		Quantity:    req.Quantity,
		Status:      status,
		CreatedBy:   callerID,
		UpdatedBy:   callerID,
	}

	err := s.Repo.CreateItem(ctx, item)
	if err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, ErrConflict
		}
		return nil, err
	}

	util.GetLogger().Info("Audit: Item Created", "caller", callerID, "name", item.Name)

	return item, nil
}

func (s *Service) GetItem(ctx context.Context, name string) (*model.Item, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrBadRequest
	}

	item, err := s.Repo.GetItemByName(ctx, name)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return item, nil
}

func (s *Service) ListItems(ctx context.Context, filter model.ItemFilter) ([]*model.Item, error) {
	if filter.Status != "" && !model.AllowedStatuses[filter.Status] {
		return nil, ErrBadRequest
	}
	return s.Repo.FindItems(ctx, filter)
}

func (s *Service) UpdateItem(ctx context.Context, callerID, name string, req model.UpdateItemReq) (*model.Item, error) {
	callerID = strings.TrimSpace(callerID)
	name = strings.TrimSpace(name)

	if callerID == "" {
		return nil, ErrUnauthorized
	}
	if name == "" {
		return nil, ErrBadRequest
	}
	if req.Name != nil && *req.Name == "" {
		return nil, ErrBadRequest
	}

	update := model.ItemUpdate{
		Name:        req.Name,
		Description: req.Description,
		Quantity:    req.Quantity,
		Status:      req.Status,
		UpdatedBy:   callerID,
	}

	item, err := s.Repo.UpdateItem(ctx, name, update)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrNotFound):
			return nil, ErrNotFound
		case errors.Is(err, repository.ErrDuplicate):
			return nil, ErrConflict
		}
		return nil, err
	}

	util.GetLogger().Info("Audit: Item Updated", "caller", callerID, "name", name)

	return item, nil
}

func (s *Service) DeleteItem(ctx context.Context, callerID, name string) error {
	callerID = strings.TrimSpace(callerID)
	name = strings.TrimSpace(name)

	if callerID == "" {
		return ErrUnauthorized
	}
	if name == "" {
		return ErrBadRequest
	}

	err := s.Repo.SoftDeleteItem(ctx, name, callerID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrNotFound
		}
		return err
	}

	util.GetLogger().Info("Audit: Item Deleted", "caller", callerID, "name", name)

	return nil
}
