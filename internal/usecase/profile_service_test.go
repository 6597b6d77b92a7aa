package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/mzw111/Streamix/internal/domain/model"
	"github.com/mzw111/Streamix/internal/domain/repository"
)

func TestProfileService_CreateProfile(t *testing.T) {
	tests := []struct {
		name            string
		input           CreateProfileInput
		setupMock       func(m *mockProfileRepository)
		wantErr         error
		wantCreateCalls int
	}{
		{
			name:  "successful creation with defaults",
			input: CreateProfileInput{AccountID: 7, Name: "Kids"},
			setupMock: func(m *mockProfileRepository) {
				m.countByAccountFn = func(ctx context.Context, accountID int64) (int, error) {
					return 2, nil
				}
				m.getByOwnerAndNameFn = func(ctx context.Context, accountID int64, name string) (*model.Profile, error) {
					return &model.Profile{
						ID:             104,
						AccountID:      accountID,
						Name:           name,
						Picture:        model.DefaultProfilePicture,
						Language:       model.DefaultLanguage,
						AgeRestriction: model.DefaultAgeRestriction,
						CreatedAt:      time.Now(),
					}, nil
				}
			},
			wantErr:         nil,
			wantCreateCalls: 1,
		},
		{
			name:  "pre-check rejects fourth profile without insert",
			input: CreateProfileInput{AccountID: 7, Name: "Kids"},
			setupMock: func(m *mockProfileRepository) {
				m.countByAccountFn = func(ctx context.Context, accountID int64) (int, error) {
					return 3, nil
				}
			},
			wantErr:         repository.ErrProfileLimitReached,
			wantCreateCalls: 0,
		},
		{
			name:  "trigger rejection under race maps to same error",
			input: CreateProfileInput{AccountID: 7, Name: "Kids"},
			setupMock: func(m *mockProfileRepository) {
				// The pre-check saw 2 but a concurrent insert won the race.
				m.countByAccountFn = func(ctx context.Context, accountID int64) (int, error) {
					return 2, nil
				}
				m.createFn = func(ctx context.Context, profile *model.Profile) error {
					return repository.ErrProfileLimitReached
				}
			},
			wantErr:         repository.ErrProfileLimitReached,
			wantCreateCalls: 1,
		},
		{
			name:            "blank name rejected before any repository call",
			input:           CreateProfileInput{AccountID: 7, Name: "   "},
			setupMock:       func(m *mockProfileRepository) {},
			wantErr:         model.ErrEmptyProfileName,
			wantCreateCalls: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mock := &mockProfileRepository{}
			tt.setupMock(mock)

			svc := NewProfileService(mock)
			profile, err := svc.CreateProfile(context.Background(), tt.input)

			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Errorf("expected error %v, got %v", tt.wantErr, err)
				}
			} else {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				if profile.ID == 0 {
					t.Error("expected re-read profile with assigned id")
				}
				if profile.Picture != model.DefaultProfilePicture {
					t.Errorf("expected default picture, got %s", profile.Picture)
				}
			}

			if mock.createCalls != tt.wantCreateCalls {
				t.Errorf("expected %d create calls, got %d", tt.wantCreateCalls, mock.createCalls)
			}
		})
	}
}

func TestProfileService_DeleteProfile(t *testing.T) {
	tests := []struct {
		name      string
		setupMock func(m *mockProfileRepository)
		wantErr   error
	}{
		{
			name: "successful delete",
			setupMock: func(m *mockProfileRepository) {
				m.deleteFn = func(ctx context.Context, profileID, accountID int64) error {
					return nil
				}
			},
			wantErr: nil,
		},
		{
			name: "foreign profile surfaces as not owned",
			setupMock: func(m *mockProfileRepository) {
				m.deleteFn = func(ctx context.Context, profileID, accountID int64) error {
					return repository.ErrProfileNotFound
				}
			},
			wantErr: ErrNotOwned,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mock := &mockProfileRepository{}
			tt.setupMock(mock)

			svc := NewProfileService(mock)
			err := svc.DeleteProfile(context.Background(), 7, 101)

			if !errors.Is(err, tt.wantErr) {
				t.Errorf("expected error %v, got %v", tt.wantErr, err)
			}
		})
	}
}
