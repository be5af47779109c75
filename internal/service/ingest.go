package service

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"claims-analytics-backend/internal/database/models"
	"claims-analytics-backend/internal/logger"
	"claims-analytics-backend/internal/repository"

	"github.com/google/uuid"
)

// IngestService parses uploaded claims CSVs into claim records, driving the
// upload session through processing -> completed|failed.
type IngestService struct {
	sessionRepo repository.UploadSessionRepositoryInterface
	claimRepo   repository.ClaimRepositoryInterface
}

// NewIngestService creates a new ingest service
func NewIngestService(sessionRepo repository.UploadSessionRepositoryInterface, claimRepo repository.ClaimRepositoryInterface) *IngestService {
	return &IngestService{
		sessionRepo: sessionRepo,
		claimRepo:   claimRepo,
	}
}

// Expected CSV columns, in order. A header row using these names is skipped.
var claimCSVColumns = []string{"claimant_id", "claim_date", "amount", "service_type"}

const ingestBatchSize = 500

// ProcessCSV creates an upload session and ingests the file's claim rows.
// Malformed rows are counted as failed without aborting the run; a file with
// no valid rows, or a read error, ends the session as failed with the error
// recorded on the session row.
func (s *IngestService) ProcessCSV(orgID, profileID uuid.UUID, fileName string, r io.Reader) (*models.UploadSession, error) {
	session := &models.UploadSession{
		OrganizationID: orgID,
		ProfileID:      profileID,
		FileName:       fileName,
		Status:         models.UploadStatusProcessing,
	}
	if err := s.sessionRepo.Create(session); err != nil {
		return nil, fmt.Errorf("failed to create upload session: %w", err)
	}

	log := logger.New().WithFields(map[string]interface{}{
		"upload_session": session.ID,
		"file":           fileName,
	})

	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	var batch []models.ClaimRecord
	flush := func() error {
		if len(batch) == 0 {
			return nil
		}
		if err := s.claimRepo.CreateBatch(batch); err != nil {
			return err
		}
		batch = batch[:0]
		return nil
	}

	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return s.fail(session, fmt.Sprintf("malformed CSV: %v", err))
		}

		if session.TotalRows == 0 && isHeaderRow(row) {
			continue
		}
		session.TotalRows++

		record, err := parseClaimRow(row, orgID, session.ID)
		if err != nil {
			session.FailedRows++
			log.Debugf("skipping row %d: %v", session.TotalRows, err)
			continue
		}

		batch = append(batch, *record)
		session.ProcessedRows++

		if len(batch) >= ingestBatchSize {
			if err := flush(); err != nil {
				return s.fail(session, "failed to store claim records")
			}
		}
	}

	if session.TotalRows == 0 {
		return s.fail(session, "uploaded file contains no claim rows")
	}
	if session.ProcessedRows == 0 {
		return s.fail(session, "no valid claim rows in uploaded file")
	}
	if err := flush(); err != nil {
		return s.fail(session, "failed to store claim records")
	}

	session.Status = models.UploadStatusCompleted
	if err := s.sessionRepo.Update(session); err != nil {
		return nil, fmt.Errorf("failed to finalize upload session: %w", err)
	}

	log.Infof("ingested %d/%d rows", session.ProcessedRows, session.TotalRows)
	return session, nil
}

// fail marks the session terminally failed, preserving counters gathered so
// far. The stored message is what the progress stream later surfaces.
func (s *IngestService) fail(session *models.UploadSession, message string) (*models.UploadSession, error) {
	session.Status = models.UploadStatusFailed
	session.ErrorMessage = message
	if err := s.sessionRepo.Update(session); err != nil {
		return nil, fmt.Errorf("failed to record upload failure: %w", err)
	}
	return session, nil
}

func isHeaderRow(row []string) bool {
	if len(row) != len(claimCSVColumns) {
		return false
	}
	for i, col := range claimCSVColumns {
		if !strings.EqualFold(strings.TrimSpace(row[i]), col) {
			return false
		}
	}
	return true
}

func parseClaimRow(row []string, orgID, sessionID uuid.UUID) (*models.ClaimRecord, error) {
	if len(row) < len(claimCSVColumns) {
		return nil, fmt.Errorf("expected %d columns, got %d", len(claimCSVColumns), len(row))
	}

	claimantID := strings.TrimSpace(row[0])
	if claimantID == "" {
		return nil, fmt.Errorf("claimant_id is empty")
	}

	claimDate, err := time.Parse("2006-01-02", strings.TrimSpace(row[1]))
	if err != nil {
		return nil, fmt.Errorf("invalid claim_date %q", row[1])
	}

	amount, err := strconv.ParseFloat(strings.TrimSpace(row[2]), 64)
	if err != nil {
		return nil, fmt.Errorf("invalid amount %q", row[2])
	}
	if amount < 0 {
		return nil, fmt.Errorf("amount must not be negative")
	}

	serviceType := strings.TrimSpace(row[3])
	if serviceType == "" {
		return nil, fmt.Errorf("service_type is empty")
	}

	return &models.ClaimRecord{
		OrganizationID:  orgID,
		UploadSessionID: sessionID,
		ClaimantID:      claimantID,
		ClaimDate:       claimDate,
		MonthKey:        claimDate.Format("2006-01"),
		ServiceType:     serviceType,
		Amount:          amount,
	}, nil
}
