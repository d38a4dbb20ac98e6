package service

import (
	"context"
	"strings"
	"testing"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"linkboard-api/internal/client"
	"linkboard-api/internal/dto"
	"linkboard-api/internal/response"
)

func TestUploadService_GeneratePresignedUpload(t *testing.T) {
	userID := uuid.New()

	tests := []struct {
		name        string
		req         *dto.PresignedUploadRequest
		wantErrCode string
	}{
		{
			name: "png avatar accepted",
			req:  &dto.PresignedUploadRequest{FileName: "avatar.png", ContentType: "image/png", Kind: "avatar"},
		},
		{
			name: "content type match is case insensitive",
			req:  &dto.PresignedUploadRequest{FileName: "avatar.png", ContentType: "IMAGE/PNG", Kind: "avatar"},
		},
		{
			name:        "non-image rejected",
			req:         &dto.PresignedUploadRequest{FileName: "report.pdf", ContentType: "application/pdf", Kind: "timeline"},
			wantErrCode: response.ErrCodeValidation,
		},
		{
			name:        "html rejected",
			req:         &dto.PresignedUploadRequest{FileName: "page.html", ContentType: "text/html", Kind: "timeline"},
			wantErrCode: response.ErrCodeValidation,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			presignCalled := false
			s3 := &client.MockS3Client{
				Bucket: "linkboard-uploads",
				Region: "ap-northeast-2",
				GeneratePresignedURLFunc: func(ctx context.Context, kind, ownerID, fileName, contentType string) (string, string, error) {
					presignCalled = true
					if ownerID != userID.String() {
						t.Errorf("expected owner %s, got %s", userID, ownerID)
					}
					return "https://bucket.example.com/presigned", kind + "/" + ownerID + "/file.png", nil
				},
			}

			svc := NewUploadService(s3, zap.NewNop())

			resp, err := svc.GeneratePresignedUpload(context.Background(), userID, tt.req)

			if tt.wantErrCode != "" {
				appErr, ok := err.(*response.AppError)
				if !ok {
					t.Fatalf("expected AppError, got %v", err)
				}
				if appErr.Code != tt.wantErrCode {
					t.Errorf("expected code %s, got %s", tt.wantErrCode, appErr.Code)
				}
				if presignCalled {
					t.Error("expected no presign call for a rejected content type")
				}
				return
			}

			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if resp.UploadURL != "https://bucket.example.com/presigned" {
				t.Errorf("unexpected upload URL %q", resp.UploadURL)
			}
			if !strings.Contains(resp.FileURL, tt.req.Kind+"/") {
				t.Errorf("expected file URL to carry the key, got %q", resp.FileURL)
			}
		})
	}
}
