package service

import (
	"context"
	"fmt"

	"github.com/janellefernandes2005/tool-rental-system/internal/docstore"
	"github.com/janellefernandes2005/tool-rental-system/internal/domain"
	"github.com/janellefernandes2005/tool-rental-system/internal/errs"
	"github.com/janellefernandes2005/tool-rental-system/internal/logger"
)

type catalogService struct {
	store docstore.Store
}

func NewCatalogService(store docstore.Store) CatalogService {
	return &catalogService{store: store}
}

func (s *catalogService) CreateTool(ctx context.Context, input ToolInput) (*domain.Tool, error) {
	if err := validateToolInput(input); err != nil {
		return nil, err
	}

	id := domain.SlugFromName(input.Name)
	if id == "" {
		return nil, fmt.Errorf("%w: tool name must contain letters or digits", errs.ErrValidation)
	}

	var created domain.Tool
	err := s.store.Update(ctx, func(doc *domain.Document) error {
		if doc.FindTool(id) != nil {
			return errs.ErrDuplicateTool
		}
		created = domain.Tool{
			ID:          id,
			Name:        input.Name,
			Price:       input.Price,
			Quantity:    input.Quantity,
			Rented:      0,
			Available:   input.Quantity,
			Description: input.Description,
			Specs:       input.Specs,
		}
		doc.Tools = append(doc.Tools, created)
		return nil
	})
	if err != nil {
		return nil, err
	}

	logger.Info("Tool created", "tool_id", created.ID, "quantity", created.Quantity)
	return &created, nil
}

func (s *catalogService) UpdateTool(ctx context.Context, id string, input ToolInput) (*domain.Tool, error) {
	if err := validateToolInput(input); err != nil {
		return nil, err
	}

	var updated domain.Tool
	err := s.store.Update(ctx, func(doc *domain.Document) error {
		tool := doc.FindTool(id)
		if tool == nil {
			return errs.ErrToolNotFound
		}
		if input.Quantity < tool.Rented {
			return errs.ErrQuantityBelowRented
		}
		// The slug never changes, even when the name does.
		tool.Name = input.Name
		tool.Price = input.Price
		tool.Quantity = input.Quantity
		tool.Available = tool.Quantity - tool.Rented
		tool.Description = input.Description
		tool.Specs = input.Specs
		updated = *tool
		return nil
	})
	if err != nil {
		return nil, err
	}

	logger.Info("Tool updated", "tool_id", updated.ID, "quantity", updated.Quantity)
	return &updated, nil
}

// DeleteTool removes the tool by id. Existing rentals are not cascaded; their
// tool_id dangles and display-time joins resolve it to "Unknown Tool".
func (s *catalogService) DeleteTool(ctx context.Context, id string) error {
	err := s.store.Update(ctx, func(doc *domain.Document) error {
		for i := range doc.Tools {
			if doc.Tools[i].ID == id {
				doc.Tools = append(doc.Tools[:i], doc.Tools[i+1:]...)
				return nil
			}
		}
		return errs.ErrToolNotFound
	})
	if err != nil {
		return err
	}

	logger.Info("Tool deleted", "tool_id", id)
	return nil
}

func (s *catalogService) GetTool(ctx context.Context, id string) (*domain.Tool, error) {
	doc, err := s.store.Load(ctx)
	if err != nil {
		return nil, err
	}
	tool := doc.FindTool(id)
	if tool == nil {
		return nil, errs.ErrToolNotFound
	}
	out := *tool
	return &out, nil
}

func (s *catalogService) ListTools(ctx context.Context) ([]domain.Tool, error) {
	doc, err := s.store.Load(ctx)
	if err != nil {
		return nil, err
	}
	return doc.Tools, nil
}

func (s *catalogService) SetBeforeImage(ctx context.Context, toolID, imageRef string) error {
	return s.store.Update(ctx, func(doc *domain.Document) error {
		tool := doc.FindTool(toolID)
		if tool == nil {
			return errs.ErrToolNotFound
		}
		tool.BeforeImageRef = imageRef
		return nil
	})
}

func validateToolInput(input ToolInput) error {
	if input.Name == "" {
		return fmt.Errorf("%w: tool name is required", errs.ErrValidation)
	}
	if input.Price < 0 {
		return fmt.Errorf("%w: price cannot be negative", errs.ErrValidation)
	}
	if input.Quantity < 0 {
		return fmt.Errorf("%w: quantity cannot be negative", errs.ErrValidation)
	}
	return nil
}
