package service

import (
	"github.com/ardhian127/bike-rental-analyst/internal/domain"
)

// TableRepository is re-exported from domain for convenience
type TableRepository = domain.TableRepository
