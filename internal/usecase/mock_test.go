package usecase

import (
	"context"

	"github.com/mzw111/Streamix/internal/domain/model"
	"github.com/mzw111/Streamix/internal/domain/repository"
)

// Mock repositories shared across service tests.

type mockProfileRepository struct {
	createFn            func(ctx context.Context, profile *model.Profile) error
	getByOwnerAndNameFn func(ctx context.Context, accountID int64, name string) (*model.Profile, error)
	listByAccountFn     func(ctx context.Context, accountID int64) ([]*model.Profile, error)
	countByAccountFn    func(ctx context.Context, accountID int64) (int, error)
	ownedByAccountFn    func(ctx context.Context, profileID, accountID int64) (bool, error)
	deleteFn            func(ctx context.Context, profileID, accountID int64) error

	createCalls int
}

func (m *mockProfileRepository) Create(ctx context.Context, profile *model.Profile) error {
	m.createCalls++
	if m.createFn != nil {
		return m.createFn(ctx, profile)
	}
	return nil
}

func (m *mockProfileRepository) GetByOwnerAndName(ctx context.Context, accountID int64, name string) (*model.Profile, error) {
	if m.getByOwnerAndNameFn != nil {
		return m.getByOwnerAndNameFn(ctx, accountID, name)
	}
	return nil, repository.ErrProfileNotFound
}

func (m *mockProfileRepository) ListByAccount(ctx context.Context, accountID int64) ([]*model.Profile, error) {
	if m.listByAccountFn != nil {
		return m.listByAccountFn(ctx, accountID)
	}
	return nil, nil
}

func (m *mockProfileRepository) CountByAccount(ctx context.Context, accountID int64) (int, error) {
	if m.countByAccountFn != nil {
		return m.countByAccountFn(ctx, accountID)
	}
	return 0, nil
}

func (m *mockProfileRepository) OwnedByAccount(ctx context.Context, profileID, accountID int64) (bool, error) {
	if m.ownedByAccountFn != nil {
		return m.ownedByAccountFn(ctx, profileID, accountID)
	}
	return false, nil
}

func (m *mockProfileRepository) Delete(ctx context.Context, profileID, accountID int64) error {
	if m.deleteFn != nil {
		return m.deleteFn(ctx, profileID, accountID)
	}
	return nil
}

type mockSubscriptionRepository struct {
	createFn         func(ctx context.Context, sub *model.Subscription) error
	listByAccountFn  func(ctx context.Context, accountID int64) ([]*model.Subscription, error)
	latestFn         func(ctx context.Context, accountID int64) (*model.Subscription, error)
	ownedByAccountFn func(ctx context.Context, subscriptionID, accountID int64) (bool, error)
}

func (m *mockSubscriptionRepository) Create(ctx context.Context, sub *model.Subscription) error {
	if m.createFn != nil {
		return m.createFn(ctx, sub)
	}
	return nil
}

func (m *mockSubscriptionRepository) ListByAccount(ctx context.Context, accountID int64) ([]*model.Subscription, error) {
	if m.listByAccountFn != nil {
		return m.listByAccountFn(ctx, accountID)
	}
	return nil, nil
}

func (m *mockSubscriptionRepository) Latest(ctx context.Context, accountID int64) (*model.Subscription, error) {
	if m.latestFn != nil {
		return m.latestFn(ctx, accountID)
	}
	return nil, repository.ErrSubscriptionNotFound
}

func (m *mockSubscriptionRepository) OwnedByAccount(ctx context.Context, subscriptionID, accountID int64) (bool, error) {
	if m.ownedByAccountFn != nil {
		return m.ownedByAccountFn(ctx, subscriptionID, accountID)
	}
	return false, nil
}

type mockPaymentRepository struct {
	createFn             func(ctx context.Context, payment *model.Payment) error
	listBySubscriptionFn func(ctx context.Context, subscriptionID int64) ([]*model.Payment, error)
	listByAccountFn      func(ctx context.Context, accountID int64) ([]*model.Payment, error)
}

func (m *mockPaymentRepository) Create(ctx context.Context, payment *model.Payment) error {
	if m.createFn != nil {
		return m.createFn(ctx, payment)
	}
	return nil
}

func (m *mockPaymentRepository) ListBySubscription(ctx context.Context, subscriptionID int64) ([]*model.Payment, error) {
	if m.listBySubscriptionFn != nil {
		return m.listBySubscriptionFn(ctx, subscriptionID)
	}
	return nil, nil
}

func (m *mockPaymentRepository) ListByAccount(ctx context.Context, accountID int64) ([]*model.Payment, error) {
	if m.listByAccountFn != nil {
		return m.listByAccountFn(ctx, accountID)
	}
	return nil, nil
}

type mockWatchlistRepository struct {
	addFn           func(ctx context.Context, entry *model.WatchlistEntry) error
	removeFn        func(ctx context.Context, profileID int64, contentType model.ContentType, contentID int64) error
	listByProfileFn func(ctx context.Context, profileID int64) ([]*model.WatchlistEntry, error)

	addCalls int
}

func (m *mockWatchlistRepository) Add(ctx context.Context, entry *model.WatchlistEntry) error {
	m.addCalls++
	if m.addFn != nil {
		return m.addFn(ctx, entry)
	}
	return nil
}

func (m *mockWatchlistRepository) Remove(ctx context.Context, profileID int64, contentType model.ContentType, contentID int64) error {
	if m.removeFn != nil {
		return m.removeFn(ctx, profileID, contentType, contentID)
	}
	return nil
}

func (m *mockWatchlistRepository) ListByProfile(ctx context.Context, profileID int64) ([]*model.WatchlistEntry, error) {
	if m.listByProfileFn != nil {
		return m.listByProfileFn(ctx, profileID)
	}
	return nil, nil
}

type mockRatingRepository struct {
	addFn           func(ctx context.Context, rating *model.Rating) error
	listByContentFn func(ctx context.Context, contentType model.ContentType, contentID int64) ([]*model.Rating, error)
	listByProfileFn func(ctx context.Context, profileID int64) ([]*model.Rating, error)
}

func (m *mockRatingRepository) Add(ctx context.Context, rating *model.Rating) error {
	if m.addFn != nil {
		return m.addFn(ctx, rating)
	}
	return nil
}

func (m *mockRatingRepository) ListByContent(ctx context.Context, contentType model.ContentType, contentID int64) ([]*model.Rating, error) {
	if m.listByContentFn != nil {
		return m.listByContentFn(ctx, contentType, contentID)
	}
	return nil, nil
}

func (m *mockRatingRepository) ListByProfile(ctx context.Context, profileID int64) ([]*model.Rating, error) {
	if m.listByProfileFn != nil {
		return m.listByProfileFn(ctx, profileID)
	}
	return nil, nil
}

type mockHistoryRepository struct {
	addFn            func(ctx context.Context, entry *model.HistoryEntry) error
	listByProfileFn  func(ctx context.Context, profileID int64) ([]*model.HistoryEntry, error)
	ownedByAccountFn func(ctx context.Context, historyID, accountID int64) (bool, error)
	deleteFn         func(ctx context.Context, historyID int64) error

	deleteCalls int
}

func (m *mockHistoryRepository) Add(ctx context.Context, entry *model.HistoryEntry) error {
	if m.addFn != nil {
		return m.addFn(ctx, entry)
	}
	return nil
}

func (m *mockHistoryRepository) ListByProfile(ctx context.Context, profileID int64) ([]*model.HistoryEntry, error) {
	if m.listByProfileFn != nil {
		return m.listByProfileFn(ctx, profileID)
	}
	return nil, nil
}

func (m *mockHistoryRepository) OwnedByAccount(ctx context.Context, historyID, accountID int64) (bool, error) {
	if m.ownedByAccountFn != nil {
		return m.ownedByAccountFn(ctx, historyID, accountID)
	}
	return false, nil
}

func (m *mockHistoryRepository) Delete(ctx context.Context, historyID int64) error {
	m.deleteCalls++
	if m.deleteFn != nil {
		return m.deleteFn(ctx, historyID)
	}
	return nil
}
