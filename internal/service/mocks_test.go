package service

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/janellefernandes2005/tool-rental-system/internal/domain"
	"github.com/janellefernandes2005/tool-rental-system/internal/scorer"
)

// MockAuthenticityScorer
type MockAuthenticityScorer struct {
	mock.Mock
}

func (m *MockAuthenticityScorer) Score(ctx context.Context, path, fileName string, fileSize int64) (scorer.AuthenticityResult, error) {
	args := m.Called(ctx, path, fileName, fileSize)
	return args.Get(0).(scorer.AuthenticityResult), args.Error(1)
}

// MockSimilarityScorer
type MockSimilarityScorer struct {
	mock.Mock
}

func (m *MockSimilarityScorer) Compare(ctx context.Context, referencePath, candidatePath string) (scorer.SimilarityResult, error) {
	args := m.Called(ctx, referencePath, candidatePath)
	return args.Get(0).(scorer.SimilarityResult), args.Error(1)
}

// MockEmailService
type MockEmailService struct {
	mock.Mock
}

func (m *MockEmailService) SendReviewAlert(ctx context.Context, entry domain.LogEntry, toolName string) error {
	args := m.Called(ctx, entry, toolName)
	return args.Error(0)
}

func (m *MockEmailService) SendOverdueSummary(ctx context.Context, rentals []RentalView) error {
	args := m.Called(ctx, rentals)
	return args.Error(0)
}
