package ui

import (
	stderrors "errors"
	"net/http"

	"univar/domain/core"
	"univar/internal/errors"
	"univar/ui/middleware"
	"univar/ui/templates/fragments"

	"github.com/gin-gonic/gin"
)

// handleFileUpload reads the multipart "dataset" file and makes it the
// session's dataset. Bad uploads re-render the page with the reason.
func (s *Server) handleFileUpload(c *gin.Context) {
	maxBytes := s.cfg.Upload.MaxBytes()
	// Leave room for the multipart envelope around the file itself
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxBytes+1<<20)

	file, header, err := c.Request.FormFile("dataset")
	if err != nil {
		var tooLarge *http.MaxBytesError
		if stderrors.As(err, &tooLarge) {
			s.uploadFailed(c, errors.PayloadTooLarge(s.cfg.Upload.MaxMB))
			return
		}
		s.uploadFailed(c, errors.InvalidInput("no file uploaded"))
		return
	}
	defer file.Close()

	if header.Size > maxBytes {
		s.uploadFailed(c, errors.PayloadTooLarge(s.cfg.Upload.MaxMB))
		return
	}
	if header.Size == 0 {
		s.uploadFailed(c, core.ErrEmptyUpload)
		return
	}

	ds, err := s.reader.Read(c.Request.Context(), header.Filename, file)
	if err != nil {
		s.uploadFailed(c, err)
		return
	}

	s.store.Put(middleware.SessionID(c), ds)
	s.logger.Info("session %s loaded %s (%d rows, %d columns)",
		middleware.SessionID(c), ds.Name, ds.RowCount, len(ds.Columns))
	c.Redirect(http.StatusSeeOther, "/")
}

// handleReset forgets the session's dataset
func (s *Server) handleReset(c *gin.Context) {
	s.store.Delete(middleware.SessionID(c))
	c.Redirect(http.StatusSeeOther, "/")
}

// uploadFailed shows the upload form again with an error banner. Anything
// the user can fix is a 400.
func (s *Server) uploadFailed(c *gin.Context, err error) {
	status := errors.HTTPStatus(err)
	if status < http.StatusInternalServerError {
		status = http.StatusBadRequest
		s.logger.Info("upload rejected: %v", err)
	} else {
		s.logger.Error("upload failed: %v", err)
	}

	page := s.newPage()
	page.Error = err.Error()
	s.renderTemplate(c, status, fragments.IndexPage, page)
}
