package usecase

import "github.com/riskibarqy/football-manager/internal/domain/integrity"

var (
	ErrInvalidInput = integrity.ErrInvalid
	ErrNotFound     = integrity.ErrNotFound
	ErrReferential  = integrity.ErrReferential
	ErrConflict     = integrity.ErrConflict
)
