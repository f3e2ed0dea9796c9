package logging

import (
	"errors"
	"log"
	"strings"
)

// Service records pipeline failures with enough context to recover a
// submission by hand later.
type Service struct {
	logger *log.Logger
}

// NewService wraps the given logger. A nil logger disables output.
func NewService(logger *log.Logger) *Service {
	return &Service{logger: logger}
}

// LogException logs err together with the payload that triggered it,
// then walks the wrapped cause chain until it runs out.
func (s *Service) LogException(err error, payload string) {
	if s.logger == nil || err == nil {
		return
	}
	s.logger.Printf("exception: %v. payload: %s", err, payload)
	for cause := errors.Unwrap(err); cause != nil; cause = errors.Unwrap(cause) {
		s.logger.Printf("caused by: %v", cause)
	}
}

// LogError logs the accumulated error messages for a submission.
func (s *Service) LogError(errs []string, submissionID string) {
	if s.logger == nil || len(errs) == 0 {
		return
	}
	s.logger.Printf("submission %s completed with errors: %s", submissionID, strings.Join(errs, "; "))
}
