package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"linkboard-api/internal/domain"
	"linkboard-api/internal/dto"
	"linkboard-api/internal/response"
)

func TestProfileService_UpdateProfile(t *testing.T) {
	userID := uuid.New()
	image := "https://cdn.example.com/avatar.png"

	tests := []struct {
		name        string
		req         *dto.UpdateProfileRequest
		wantErr     bool
		wantErrCode string
		wantColumns map[string]interface{}
	}{
		{
			name:        "name only leaves image untouched",
			req:         &dto.UpdateProfileRequest{Name: "New Name"},
			wantColumns: map[string]interface{}{"name": "New Name"},
		},
		{
			name: "explicit null clears the image",
			req:  &dto.UpdateProfileRequest{Name: "New Name", Image: dto.NullableString{Set: true, Value: nil}},
			wantColumns: map[string]interface{}{
				"name":  "New Name",
				"image": (*string)(nil),
			},
		},
		{
			name: "image value is written",
			req:  &dto.UpdateProfileRequest{Name: "New Name", Image: dto.NullableString{Set: true, Value: &image}},
			wantColumns: map[string]interface{}{
				"name":  "New Name",
				"image": &image,
			},
		},
		{
			name:        "empty name is rejected before any write",
			req:         &dto.UpdateProfileRequest{Name: "   "},
			wantErr:     true,
			wantErrCode: response.ErrCodeValidation,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var written map[string]interface{}
			userRepo := &MockUserRepository{
				UpdateProfileColumnsFunc: func(ctx context.Context, id uuid.UUID, columns map[string]interface{}) error {
					written = columns
					return nil
				},
				FindByIDFunc: func(ctx context.Context, id uuid.UUID) (*domain.User, error) {
					user := &domain.User{Email: "user@example.com", Name: "New Name"}
					user.ID = userID
					return user, nil
				},
			}

			service := NewProfileService(userRepo, &MockTokenIssuer{}, zap.NewNop())

			got, err := service.UpdateProfile(context.Background(), userID, tt.req)

			if tt.wantErr {
				if err == nil {
					t.Fatal("UpdateProfile() error = nil, want error")
				}
				if appErr, ok := err.(*response.AppError); ok && appErr.Code != tt.wantErrCode {
					t.Errorf("UpdateProfile() error code = %v, want %v", appErr.Code, tt.wantErrCode)
				}
				if written != nil {
					t.Error("UpdateProfile() wrote columns despite validation failure")
				}
				return
			}
			if err != nil {
				t.Fatalf("UpdateProfile() unexpected error = %v", err)
			}
			if got.Token == "" {
				t.Error("UpdateProfile() returned empty session token")
			}
			if len(written) != len(tt.wantColumns) {
				t.Fatalf("UpdateProfile() wrote %d columns, want %d", len(written), len(tt.wantColumns))
			}
			if written["name"] != tt.wantColumns["name"] {
				t.Errorf("UpdateProfile() name column = %v, want %v", written["name"], tt.wantColumns["name"])
			}
			if want, ok := tt.wantColumns["image"]; ok {
				if got, ok := written["image"]; !ok {
					t.Error("UpdateProfile() image column missing")
				} else if wantPtr, _ := want.(*string); wantPtr == nil {
					if gotPtr, _ := got.(*string); gotPtr != nil {
						t.Errorf("UpdateProfile() image column = %v, want nil", gotPtr)
					}
				}
			}
		})
	}
}

func TestProfileService_UpdateProfile_TrimsName(t *testing.T) {
	var written map[string]interface{}
	userRepo := &MockUserRepository{
		UpdateProfileColumnsFunc: func(ctx context.Context, id uuid.UUID, columns map[string]interface{}) error {
			written = columns
			return nil
		},
		FindByIDFunc: func(ctx context.Context, id uuid.UUID) (*domain.User, error) {
			return &domain.User{Email: "user@example.com", Name: "Padded"}, nil
		},
	}

	service := NewProfileService(userRepo, &MockTokenIssuer{}, zap.NewNop())

	if _, err := service.UpdateProfile(context.Background(), uuid.New(), &dto.UpdateProfileRequest{Name: "  Padded  "}); err != nil {
		t.Fatalf("UpdateProfile() unexpected error = %v", err)
	}
	if written["name"] != "Padded" {
		t.Errorf("UpdateProfile() name column = %q, want trimmed", written["name"])
	}
}
