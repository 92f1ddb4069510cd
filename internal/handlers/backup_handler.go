package handlers

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	apperrors "spendwise/internal/errors"
	"spendwise/internal/middleware"
	"spendwise/internal/services"
)

// maxBackupSize caps accepted backup uploads at 10 MiB.
const maxBackupSize = 10 << 20

// BackupHandler handles backup export and import requests.
type BackupHandler struct {
	backupService services.BackupServicer
	auditService  services.AuditServicer
}

// NewBackupHandler creates a new BackupHandler.
func NewBackupHandler(backupService services.BackupServicer, auditService services.AuditServicer) *BackupHandler {
	return &BackupHandler{backupService: backupService, auditService: auditService}
}

// ExportBackup downloads the user's data as a JSON document
// @Summary     Export backup
// @Description Download the authenticated user's accounts and expenses as a JSON backup file
// @Tags        backup
// @Produce     json
// @Security    BearerAuth
// @Success     200 {object} services.BackupFile "Backup document"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /backup/export [get]
func (h *BackupHandler) ExportBackup(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	backup, err := h.backupService.Export(userID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	payload, err := json.MarshalIndent(backup, "", "  ")
	if err != nil {
		respondWithError(c, apperrors.Wrap(apperrors.ErrInternalServer, err))
		return
	}

	username := c.GetString(middleware.ContextUsername)
	filename := sanitizeFilename(fmt.Sprintf("spendwise_backup_%s_%s.json", username, time.Now().UTC().Format("2006-01-02")))

	h.auditService.Log(userID, "EXPORT_BACKUP", "backup", "", c.ClientIP(), nil)

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, "application/json", payload)
}

// ImportBackup replaces the user's data with an uploaded backup
// @Summary     Import backup
// @Description Replace all of the authenticated user's accounts and expenses with the contents of a backup document. The backup may be sent as a multipart "file" field or as the raw request body.
// @Tags        backup
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       file formData file false "Backup file"
// @Success     200 {object} services.ImportSummary "Import summary"
// @Failure     400 {object} ErrorResponse "Malformed backup"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /backup/import [post]
func (h *BackupHandler) ImportBackup(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	data, err := readBackupPayload(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	summary, err := h.backupService.Import(userID, data)
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(userID, "IMPORT_BACKUP", "backup", "", c.ClientIP(),
		map[string]interface{}{
			"accounts":           summary.Accounts,
			"daily_expenses":     summary.DailyExpenses,
			"recurring_expenses": summary.RecurringExpenses,
		})

	c.JSON(http.StatusOK, gin.H{"summary": summary})
}

// readBackupPayload accepts either a multipart upload or a raw JSON body.
func readBackupPayload(c *gin.Context) ([]byte, error) {
	if file, err := c.FormFile("file"); err == nil {
		if file.Size > maxBackupSize {
			return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "backup file exceeds the 10 MiB limit")
		}
		f, err := file.Open()
		if err != nil {
			return nil, apperrors.Wrap(apperrors.ErrInvalidInput, err)
		}
		defer f.Close()
		data, err := io.ReadAll(io.LimitReader(f, maxBackupSize+1))
		if err != nil {
			return nil, apperrors.Wrap(apperrors.ErrInvalidInput, err)
		}
		return data, nil
	}

	data, err := io.ReadAll(io.LimitReader(c.Request.Body, maxBackupSize+1))
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInvalidInput, err)
	}
	if len(data) == 0 {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "request body is empty")
	}
	if len(data) > maxBackupSize {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "backup exceeds the 10 MiB limit")
	}
	return data, nil
}
