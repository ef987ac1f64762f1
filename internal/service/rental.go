package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/janellefernandes2005/tool-rental-system/internal/docstore"
	"github.com/janellefernandes2005/tool-rental-system/internal/domain"
	"github.com/janellefernandes2005/tool-rental-system/internal/errs"
	"github.com/janellefernandes2005/tool-rental-system/internal/logger"
)

const unknownToolName = "Unknown Tool"

type rentalService struct {
	store docstore.Store
}

func NewRentalService(store docstore.Store) RentalService {
	return &rentalService{store: store}
}

func (s *rentalService) RentTool(ctx context.Context, userID int, toolID string, rentDays int) (*domain.Rental, error) {
	if rentDays <= 0 {
		return nil, fmt.Errorf("%w: rent days must be positive", errs.ErrValidation)
	}

	var rental domain.Rental
	err := s.store.Update(ctx, func(doc *domain.Document) error {
		tool := doc.FindTool(toolID)
		if tool == nil {
			return errs.ErrToolNotFound
		}
		if tool.Available <= 0 {
			return errs.ErrToolUnavailable
		}

		userName, userEmail := doc.Admin.Name, doc.Admin.Email
		if userID != 0 {
			user := doc.FindUserByID(userID)
			if user == nil {
				return fmt.Errorf("%w: user not found", errs.ErrNotFound)
			}
			userName, userEmail = user.Name, user.Email
		}

		tool.Rented++
		tool.Available--

		rental = domain.Rental{
			ID:         uuid.New().String(),
			ToolID:     tool.ID,
			UserID:     userID,
			UserName:   userName,
			UserEmail:  userEmail,
			RentDays:   rentDays,
			TotalPrice: tool.Price * float64(rentDays),
			RentalDate: time.Now().UTC().Format(time.RFC3339),
			Status:     domain.RentalStatusRented,
		}
		doc.Rentals = append(doc.Rentals, rental)
		return nil
	})
	if err != nil {
		return nil, err
	}

	logger.Info("Tool rented", "rental_id", rental.ID, "tool_id", rental.ToolID, "user_id", userID)
	return &rental, nil
}

func (s *rentalService) ListRentals(ctx context.Context, userID int, includeAll bool) ([]RentalView, error) {
	doc, err := s.store.Load(ctx)
	if err != nil {
		return nil, err
	}

	views := make([]RentalView, 0, len(doc.Rentals))
	for _, rental := range doc.Rentals {
		if !includeAll && rental.UserID != userID {
			continue
		}
		name := unknownToolName
		if tool := doc.FindTool(rental.ToolID); tool != nil {
			name = tool.Name
		}
		views = append(views, RentalView{Rental: rental, ToolName: name})
	}
	return views, nil
}
