// Package ledger holds the in-memory source of truth for the finance data
// and writes every mutation through to persistent storage.
package ledger

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/pocketledger/pocketledger/internal/common"
	"github.com/pocketledger/pocketledger/internal/model"
)

// Persister is the storage surface the Store writes through to.
type Persister interface {
	LoadTransactions(ctx context.Context) ([]model.Transaction, error)
	SaveTransactions(ctx context.Context, transactions []model.Transaction) error
	LoadCategories(ctx context.Context) ([]model.Category, error)
	SaveCategories(ctx context.Context, categories []model.Category) error
	LoadPaymentMethods(ctx context.Context) ([]model.PaymentMethod, error)
	SavePaymentMethods(ctx context.Context, methods []model.PaymentMethod) error
}

// TransactionDraft carries the caller-supplied fields of a transaction; the
// store assigns the id.
type TransactionDraft struct {
	Date          time.Time
	Type          model.TransactionType
	Notes         string
	Category      model.Category
	PaymentMethod model.PaymentMethod
	Amount        float64
}

// CategoryDraft carries the caller-supplied fields of a category.
type CategoryDraft struct {
	Name     string
	Icon     string
	Color    string
	Type     model.TransactionType
	ParentID string
}

// PaymentMethodDraft carries the caller-supplied fields of a payment method.
type PaymentMethodDraft struct {
	Name string
	Type model.PaymentMethodType
	Icon string
}

// Store is the single owner of the in-memory collections. All mutations are
// serialized under one mutex; the in-memory state is authoritative the
// moment a mutation returns, with the durable write trailing best-effort.
type Store struct {
	persist        Persister
	transactions   []model.Transaction
	categories     []model.Category
	paymentMethods []model.PaymentMethod
	mu             sync.Mutex
}

// NewStore creates a store seeded with the built-in defaults. Call Load to
// hydrate it from persistence.
func NewStore(persist Persister) *Store {
	return &Store{
		persist:        persist,
		transactions:   []model.Transaction{},
		categories:     defaultCategories(),
		paymentMethods: defaultPaymentMethods(),
	}
}

// Load hydrates the store from persistence. The three collections load
// concurrently; a non-empty loaded collection replaces the seed data, an
// empty one keeps it.
func (s *Store) Load(ctx context.Context) error {
	var (
		transactions []model.Transaction
		categories   []model.Category
		methods      []model.PaymentMethod
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		transactions, err = s.persist.LoadTransactions(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		categories, err = s.persist.LoadCategories(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		methods, err = s.persist.LoadPaymentMethods(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return fmt.Errorf("failed to load ledger: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if len(transactions) > 0 {
		s.transactions = transactions
	}
	if len(categories) > 0 {
		s.categories = categories
	}
	if len(methods) > 0 {
		s.paymentMethods = methods
	}

	common.LogDebug("ledger hydrated", common.Fields{
		"transactions":    len(s.transactions),
		"categories":      len(s.categories),
		"payment_methods": len(s.paymentMethods),
	})
	return nil
}

// Transactions returns a copy of the transaction collection, newest-created
// first.
func (s *Store) Transactions() []model.Transaction {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]model.Transaction, len(s.transactions))
	copy(out, s.transactions)
	return out
}

// Categories returns a copy of the category collection.
func (s *Store) Categories() []model.Category {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]model.Category, len(s.categories))
	copy(out, s.categories)
	return out
}

// PaymentMethods returns a copy of the payment method collection.
func (s *Store) PaymentMethods() []model.PaymentMethod {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]model.PaymentMethod, len(s.paymentMethods))
	copy(out, s.paymentMethods)
	return out
}

// CategoryByID returns the category with the given id, if present.
func (s *Store) CategoryByID(id string) (model.Category, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, c := range s.categories {
		if c.ID == id {
			return c, true
		}
	}
	return model.Category{}, false
}

// PaymentMethodByID returns the payment method with the given id, if present.
func (s *Store) PaymentMethodByID(id string) (model.PaymentMethod, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, m := range s.paymentMethods {
		if m.ID == id {
			return m, true
		}
	}
	return model.PaymentMethod{}, false
}

// AddTransaction validates the draft, assigns an id and prepends the new
// transaction so the collection stays newest-created-first.
func (s *Store) AddTransaction(ctx context.Context, draft TransactionDraft) (model.Transaction, error) {
	if err := validateTransactionDraft(draft); err != nil {
		return model.Transaction{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	txn := model.Transaction{
		ID:            uuid.NewString(),
		Type:          draft.Type,
		Amount:        draft.Amount,
		Category:      draft.Category,
		PaymentMethod: draft.PaymentMethod,
		Date:          draft.Date,
		Notes:         draft.Notes,
	}
	s.transactions = append([]model.Transaction{txn}, s.transactions...)
	s.saveTransactions(ctx)
	return txn, nil
}

// UpdateTransaction replaces every field of the matching transaction except
// its id, keeping its position. A missing id is a no-op reported via found.
func (s *Store) UpdateTransaction(ctx context.Context, id string, draft TransactionDraft) (model.Transaction, bool, error) {
	if err := validateTransactionDraft(draft); err != nil {
		return model.Transaction{}, false, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for i, txn := range s.transactions {
		if txn.ID != id {
			continue
		}
		updated := model.Transaction{
			ID:            id,
			Type:          draft.Type,
			Amount:        draft.Amount,
			Category:      draft.Category,
			PaymentMethod: draft.PaymentMethod,
			Date:          draft.Date,
			Notes:         draft.Notes,
		}
		s.transactions[i] = updated
		s.saveTransactions(ctx)
		return updated, true, nil
	}
	return model.Transaction{}, false, nil
}

// DeleteTransaction removes the matching transaction. Deleting an unknown
// id is a no-op, so the call is idempotent.
func (s *Store) DeleteTransaction(ctx context.Context, id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, txn := range s.transactions {
		if txn.ID == id {
			s.transactions = append(s.transactions[:i:i], s.transactions[i+1:]...)
			s.saveTransactions(ctx)
			return true
		}
	}
	return false
}

// AddCategory validates the draft and appends a new category with a
// generated id distinct from the seed ids.
func (s *Store) AddCategory(ctx context.Context, draft CategoryDraft) (model.Category, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.validateCategoryDraft(draft); err != nil {
		return model.Category{}, err
	}

	cat := model.Category{
		ID:       "custom-" + uuid.NewString(),
		Name:     draft.Name,
		Icon:     draft.Icon,
		Color:    draft.Color,
		Type:     draft.Type,
		ParentID: draft.ParentID,
	}
	s.categories = append(s.categories, cat)
	s.saveCategories(ctx)
	return cat, nil
}

// DeleteCategory removes the category and, when it is a main category, all
// of its subcategories in the same operation with a single persist.
// Historical transactions keep their embedded category snapshots.
func (s *Store) DeleteCategory(ctx context.Context, id string) int {
	// Main categories carry an empty ParentID, so an empty id would cascade
	// into every one of them.
	if id == "" {
		return 0
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	removed := 0
	kept := s.categories[:0:0]
	for _, c := range s.categories {
		if c.ID == id || c.ParentID == id {
			removed++
			continue
		}
		kept = append(kept, c)
	}
	if removed == 0 {
		return 0
	}

	s.categories = kept
	s.saveCategories(ctx)
	return removed
}

// AddPaymentMethod validates the draft and appends a new payment method.
// The operation surface is add-only: payment methods are never updated or
// deleted.
func (s *Store) AddPaymentMethod(ctx context.Context, draft PaymentMethodDraft) (model.PaymentMethod, error) {
	if strings.TrimSpace(draft.Name) == "" {
		return model.PaymentMethod{}, fmt.Errorf("%w: payment method name is required", common.ErrInvalidInput)
	}
	if !draft.Type.Valid() {
		return model.PaymentMethod{}, fmt.Errorf("%w: unknown payment method type %q", common.ErrInvalidInput, draft.Type)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	method := model.PaymentMethod{
		ID:   "custom-" + uuid.NewString(),
		Name: draft.Name,
		Type: draft.Type,
		Icon: draft.Icon,
	}
	s.paymentMethods = append(s.paymentMethods, method)
	s.savePaymentMethods(ctx)
	return method, nil
}

// saveTransactions writes the collection through to storage. Persistence is
// best-effort: a failed write is logged and retried implicitly by the next
// mutation, which rewrites the whole collection.
func (s *Store) saveTransactions(ctx context.Context) {
	if err := s.persist.SaveTransactions(ctx, s.transactions); err != nil {
		common.LogWarn("failed to persist transactions", common.Fields{"error": err})
	}
}

func (s *Store) saveCategories(ctx context.Context) {
	if err := s.persist.SaveCategories(ctx, s.categories); err != nil {
		common.LogWarn("failed to persist categories", common.Fields{"error": err})
	}
}

func (s *Store) savePaymentMethods(ctx context.Context) {
	if err := s.persist.SavePaymentMethods(ctx, s.paymentMethods); err != nil {
		common.LogWarn("failed to persist payment methods", common.Fields{"error": err})
	}
}

func validateTransactionDraft(draft TransactionDraft) error {
	if draft.Amount <= 0 {
		return fmt.Errorf("%w: got %v", common.ErrInvalidAmount, draft.Amount)
	}
	if !draft.Type.Valid() {
		return fmt.Errorf("%w: unknown transaction type %q", common.ErrInvalidInput, draft.Type)
	}
	if draft.Category.ID == "" {
		return fmt.Errorf("%w: category is required", common.ErrInvalidInput)
	}
	if draft.Type != draft.Category.Type {
		return fmt.Errorf("%w: %s transaction in %s category", common.ErrTypeMismatch, draft.Type, draft.Category.Type)
	}
	if draft.PaymentMethod.ID == "" {
		return fmt.Errorf("%w: payment method is required", common.ErrInvalidInput)
	}
	if draft.Date.IsZero() {
		return fmt.Errorf("%w: date is required", common.ErrInvalidInput)
	}
	return nil
}

// validateCategoryDraft must run with the mutex held: subcategory parents
// are checked against the live collection.
func (s *Store) validateCategoryDraft(draft CategoryDraft) error {
	if strings.TrimSpace(draft.Name) == "" {
		return fmt.Errorf("%w: category name is required", common.ErrInvalidInput)
	}
	if !draft.Type.Valid() {
		return fmt.Errorf("%w: unknown transaction type %q", common.ErrInvalidInput, draft.Type)
	}
	if draft.ParentID == "" {
		return nil
	}

	for _, c := range s.categories {
		if c.ID != draft.ParentID {
			continue
		}
		if !c.IsMain() {
			return fmt.Errorf("%w: %q is itself a subcategory", common.ErrInvalidParent, draft.ParentID)
		}
		if c.Type != draft.Type {
			return fmt.Errorf("%w: %q is a %s category", common.ErrInvalidParent, draft.ParentID, c.Type)
		}
		return nil
	}
	return fmt.Errorf("%w: %q does not exist", common.ErrInvalidParent, draft.ParentID)
}
