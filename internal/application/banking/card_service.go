package banking

import (
	"context"

	"github.com/google/uuid"
	"github.com/onuroner/pk-vkf/internal/domain/banking"
)

// CardService handles card management operations
type CardService struct {
	cardRepo    banking.CardRepository
	accountRepo banking.AccountRepository
}

// NewCardService creates a new CardService
func NewCardService(cardRepo banking.CardRepository, accountRepo banking.AccountRepository) *CardService {
	return &CardService{
		cardRepo:    cardRepo,
		accountRepo: accountRepo,
	}
}

// Create issues a card for an existing account
func (s *CardService) Create(ctx context.Context, req CreateCardRequest) (*CardResponse, error) {
	account, err := s.accountRepo.FindByID(ctx, req.AccountID)
	if err != nil {
		return nil, err
	}

	card, err := banking.NewCard(account.ID, req.CardNumber, req.CardHolderName, req.ExpiryMonth, req.ExpiryYear)
	if err != nil {
		return nil, err
	}

	if err := s.cardRepo.Create(ctx, card); err != nil {
		return nil, err
	}

	return NewCardResponse(card), nil
}

// Update changes the mutable fields of an existing card
func (s *CardService) Update(ctx context.Context, id uuid.UUID, req UpdateCardRequest) (*CardResponse, error) {
	card, err := s.cardRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := card.Update(req.CardHolderName, req.ExpiryMonth, req.ExpiryYear, req.IsActive); err != nil {
		return nil, err
	}

	if err := s.cardRepo.Update(ctx, card); err != nil {
		return nil, err
	}

	return NewCardResponse(card), nil
}

// GetByID finds a card by ID
func (s *CardService) GetByID(ctx context.Context, id uuid.UUID) (*CardResponse, error) {
	card, err := s.cardRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return NewCardResponse(card), nil
}

// GetByAccount finds the card bound to an account
func (s *CardService) GetByAccount(ctx context.Context, accountID uuid.UUID) (*CardResponse, error) {
	card, err := s.cardRepo.FindByAccountID(ctx, accountID)
	if err != nil {
		return nil, err
	}
	return NewCardResponse(card), nil
}

// ListByCustomer lists the cards of all accounts owned by a customer
func (s *CardService) ListByCustomer(ctx context.Context, customerID uuid.UUID) ([]*CardResponse, error) {
	cards, err := s.cardRepo.FindByCustomerID(ctx, customerID)
	if err != nil {
		return nil, err
	}
	return newCardResponses(cards), nil
}

// List lists all cards
func (s *CardService) List(ctx context.Context) ([]*CardResponse, error) {
	cards, err := s.cardRepo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	return newCardResponses(cards), nil
}

// Delete removes a card
func (s *CardService) Delete(ctx context.Context, id uuid.UUID) error {
	return s.cardRepo.Delete(ctx, id)
}

func newCardResponses(cards []*banking.Card) []*CardResponse {
	responses := make([]*CardResponse, len(cards))
	for i, card := range cards {
		responses[i] = NewCardResponse(card)
	}
	return responses
}
