// Package setup contains the one-time initial setup wizard use cases.
package setup

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/financas-app/backend/internal/application/adapter"
	"github.com/financas-app/backend/internal/domain/entity"
	domainerror "github.com/financas-app/backend/internal/domain/error"
	"github.com/financas-app/backend/internal/domain/valueobject"
)

// CompleteSetupInput represents the input for confirming the setup wizard.
// Values is the accumulated field map, keyed by wizard field key, with
// masked money strings as values.
type CompleteSetupInput struct {
	OwnerID uuid.UUID
	Values  map[string]string
}

// CompleteSetupOutput represents the output of the setup confirmation.
type CompleteSetupOutput struct {
	SeededCount int
}

// CompleteSetupUseCase finishes the one-time setup: it marks the user's
// initial-setup flag and writes one transaction record per populated field
// into the field's collection, partitioned by the current real-world month.
// Seeding is sparse: zero or empty fields produce no record. Seeded amounts
// are baselines, stored as planned values.
type CompleteSetupUseCase struct {
	userRepo        adapter.UserRepository
	transactionRepo adapter.TransactionRepository
	now             func() time.Time
}

// NewCompleteSetupUseCase creates a new CompleteSetupUseCase instance.
func NewCompleteSetupUseCase(
	userRepo adapter.UserRepository,
	transactionRepo adapter.TransactionRepository,
) *CompleteSetupUseCase {
	return &CompleteSetupUseCase{
		userRepo:        userRepo,
		transactionRepo: transactionRepo,
		now:             time.Now,
	}
}

// Execute performs the setup confirmation.
func (uc *CompleteSetupUseCase) Execute(ctx context.Context, input CompleteSetupInput) (*CompleteSetupOutput, error) {
	if input.OwnerID == uuid.Nil {
		return nil, domainerror.NewTransactionError(
			domainerror.ErrCodeMissingOwner,
			"owner identity is required",
			domainerror.ErrMissingOwner,
		)
	}

	if err := uc.userRepo.MarkInitialSetupDone(ctx, input.OwnerID); err != nil {
		return nil, fmt.Errorf("failed to mark initial setup: %w", err)
	}

	now := uc.now().UTC()
	seeded := 0

	for _, spec := range seedSpecs {
		amount := valueobject.ParseAmount(input.Values[spec.Key])
		if !amount.IsPositive() {
			continue
		}

		date := now
		record := entity.NewTransaction(
			input.OwnerID,
			spec.Kind,
			spec.Name,
			spec.Subtype,
			spec.CategoryID,
			amount,
			decimal.Zero,
			&date,
			nil,
		)

		if err := uc.transactionRepo.Create(ctx, record); err != nil {
			return nil, fmt.Errorf("failed to seed %s record: %w", spec.Kind, err)
		}
		seeded++
	}

	return &CompleteSetupOutput{SeededCount: seeded}, nil
}
