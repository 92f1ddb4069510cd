package handlers

import (
	"net/http"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	apperrors "spendwise/internal/errors"
	"spendwise/internal/services"
)

type mockBackupService struct {
	exportFn func(userID string) (*services.BackupFile, error)
	importFn func(userID string, data []byte) (*services.ImportSummary, error)
}

func (m *mockBackupService) Export(userID string) (*services.BackupFile, error) {
	if m.exportFn != nil {
		return m.exportFn(userID)
	}
	return &services.BackupFile{}, nil
}

func (m *mockBackupService) Import(userID string, data []byte) (*services.ImportSummary, error) {
	if m.importFn != nil {
		return m.importFn(userID, data)
	}
	return &services.ImportSummary{}, nil
}

func setupBackupRouter(handler *BackupHandler) *gin.Engine {
	r := gin.New()
	r.Use(injectUser("u-1", "hash-1"))
	r.GET("/backup/export", handler.ExportBackup)
	r.POST("/backup/import", handler.ImportBackup)
	return r
}

func TestBackupHandler_ExportBackup(t *testing.T) {
	svc := &mockBackupService{
		exportFn: func(_ string) (*services.BackupFile, error) {
			return &services.BackupFile{
				DailyExpenses: []services.BackupDaily{
					{Date: "2024-05-02", Category: "Spesa", Description: "Mercato", Amount: 12.50},
				},
				Username: "tester",
			}, nil
		},
	}
	handler := NewBackupHandler(svc, &mockAuditService{})
	r := setupBackupRouter(handler)

	rec := doRequest(r, "GET", "/backup/export", "")

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	disposition := rec.Header().Get("Content-Disposition")
	if !strings.Contains(disposition, "attachment") || !strings.Contains(disposition, "spendwise_backup_tester_") {
		t.Errorf("unexpected Content-Disposition: %q", disposition)
	}

	body := rec.Body.String()
	for _, key := range []string{"spese_giornaliere", "importo", "Mercato"} {
		if !strings.Contains(body, key) {
			t.Errorf("expected body to contain %q", key)
		}
	}
}

func TestBackupHandler_ImportBackup(t *testing.T) {
	t.Run("accepts a raw JSON body", func(t *testing.T) {
		var gotData []byte
		svc := &mockBackupService{
			importFn: func(_ string, data []byte) (*services.ImportSummary, error) {
				gotData = data
				return &services.ImportSummary{Accounts: 1, DailyExpenses: 2}, nil
			},
		}
		handler := NewBackupHandler(svc, &mockAuditService{})
		r := setupBackupRouter(handler)

		rec := doRequest(r, "POST", "/backup/import", `{"conti":[{"nome":"Cash"}]}`)

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
		}
		if !strings.Contains(string(gotData), "Cash") {
			t.Error("expected the raw body to reach the service")
		}
		summary := parseJSON(t, rec)["summary"].(map[string]interface{})
		if summary["daily_expenses"].(float64) != 2 {
			t.Errorf("unexpected summary: %v", summary)
		}
	})

	t.Run("returns 400 on empty body", func(t *testing.T) {
		handler := NewBackupHandler(&mockBackupService{}, &mockAuditService{})
		r := setupBackupRouter(handler)

		rec := doRequest(r, "POST", "/backup/import", "")

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
	})

	t.Run("returns 400 on malformed backup", func(t *testing.T) {
		svc := &mockBackupService{
			importFn: func(_ string, _ []byte) (*services.ImportSummary, error) {
				return nil, apperrors.ErrMalformedBackup
			},
		}
		handler := NewBackupHandler(svc, &mockAuditService{})
		r := setupBackupRouter(handler)

		rec := doRequest(r, "POST", "/backup/import", `{bad`)

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
		assertErrorCode(t, parseJSON(t, rec), "MALFORMED_BACKUP")
	})
}
