package api

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"path/filepath"
	"strings"
	"time"

	"oilevels/workbook"
)

const maxUploadBytes = 64 << 20

// Health check handler
func (s *Server) handleHealthCheck(w http.ResponseWriter, r *http.Request) {
	SendSuccess(w, map[string]interface{}{
		"status": "ok",
		"time":   time.Now().Format(time.RFC3339),
	}, "API server is running")
}

// handleProcessWorkbook accepts a multipart upload ("file"), runs the full
// levels pipeline, and streams back the augmented workbook. The response
// is either the complete processed file or a JSON error, never a partial
// workbook.
func (s *Server) handleProcessWorkbook(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		SendValidationError(w, "Invalid multipart upload: "+err.Error())
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		SendValidationError(w, "Missing uploaded file field 'file'")
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		s.log.Error("Failed to read upload", map[string]interface{}{
			"error": err.Error(),
		})
		SendInternalServerError(w)
		return
	}

	result, err := s.processor.Run(data)
	if err != nil {
		if errors.Is(err, workbook.ErrNoDayData) {
			SendValidationError(w, "Uploaded workbook has no valid day sheets")
			return
		}
		s.log.Error("Workbook processing failed", map[string]interface{}{
			"file":  header.Filename,
			"error": err.Error(),
		})
		SendError(w, http.StatusBadRequest, err.Error(), "Processing failed")
		return
	}

	s.export(header.Filename, result)

	name := strings.TrimSuffix(filepath.Base(header.Filename), filepath.Ext(header.Filename))
	if name == "" {
		name = "workbook"
	}
	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", name+"_processed.xlsx"))
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(result.Output); err != nil {
		s.log.Error("Failed to stream processed workbook", map[string]interface{}{
			"error": err.Error(),
		})
	}
}

// export archives the processed workbook, writes the CSV report and pushes
// the Telegram copy when those side channels are configured. Failures are
// logged, never surfaced.
func (s *Server) export(name string, result *workbook.Result) {
	if s.notifier != nil {
		base := strings.TrimSuffix(filepath.Base(name), filepath.Ext(name))
		if err := s.notifier.SendDocument(base+"_processed.xlsx", result.Output); err != nil {
			s.log.Error("Telegram delivery failed", map[string]interface{}{
				"error": err.Error(),
			})
		}
	}
	if s.store == nil {
		return
	}
	if s.cfg.Export.Archive {
		if _, err := s.store.ArchiveWorkbook(name, result.Output); err != nil {
			s.log.Error("Workbook archival failed", map[string]interface{}{
				"error": err.Error(),
			})
		}
	}
	if s.cfg.Export.CSV {
		if _, err := s.store.ExportLevelsCSV(result.Snapshots, s.cfg.Levels.TopN); err != nil {
			s.log.Error("CSV export failed", map[string]interface{}{
				"error": err.Error(),
			})
		}
	}
}

func (s *Server) handleGiftNifty(w http.ResponseWriter, r *http.Request) {
	quote, err := s.quotes.Fetch(r.Context())
	if err != nil {
		s.log.Error("GIFT Nifty fetch failed", map[string]interface{}{
			"error": err.Error(),
		})
		SendError(w, http.StatusBadGateway, err.Error(), "Quote fetch failed")
		return
	}
	SendSuccess(w, quote, "GIFT Nifty quote")
}
