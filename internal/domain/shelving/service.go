package shelving

import (
	"log/slog"

	"github.com/phrazzld/kdc-shelver/internal/domain"
)

// Service defines the comparator operations consumed by the front ends
type Service interface {
	// Compare returns -1, 0 or 1 for the shelving order of a and b
	Compare(a, b domain.CallNumber) int

	// Explain names the rule that decides the order of a and b
	Explain(a, b domain.CallNumber) string

	// Judge returns the full verdict, rejecting a pair of blank call numbers
	Judge(a, b domain.CallNumber) (Verdict, error)
}

// defaultService is the standard implementation of the Service interface
type defaultService struct {
	logger *slog.Logger
}

// NewDefaultService creates a comparator service that logs to slog.Default
func NewDefaultService() Service {
	return NewService(slog.Default())
}

// NewService creates a comparator service with the given logger
func NewService(logger *slog.Logger) Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &defaultService{
		logger: logger.With("component", "shelving_service"),
	}
}

// Compare implements the Service interface
func (s *defaultService) Compare(a, b domain.CallNumber) int {
	return Compare(a, b)
}

// Explain implements the Service interface
func (s *defaultService) Explain(a, b domain.CallNumber) string {
	return Explain(a, b)
}

// Judge implements the Service interface
func (s *defaultService) Judge(a, b domain.CallNumber) (Verdict, error) {
	v, err := Judge(a, b)
	if err != nil {
		s.logger.Debug("comparison rejected", "error", err)
		return Verdict{}, err
	}

	s.logger.Debug("call numbers compared",
		"a", a.String(),
		"b", b.String(),
		"order", v.Order,
		"stage", int(v.Stage),
		"field", v.Field)
	return v, nil
}
