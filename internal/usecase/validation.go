package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/riskibarqy/football-manager/internal/domain/team"
)

var inputValidator = validator.New(validator.WithRequiredStructEnabled())

// validateInput checks struct tags and reports every failed field in one
// ErrInvalidInput.
func validateInput(ctx context.Context, input any) error {
	err := inputValidator.StructCtx(ctx, input)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	parts := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		if fe.Param() != "" {
			parts = append(parts, fmt.Sprintf("%s must satisfy %s=%s", fe.Field(), fe.Tag(), fe.Param()))
			continue
		}
		parts = append(parts, fmt.Sprintf("%s is %s", fe.Field(), fe.Tag()))
	}
	return fmt.Errorf("%w: %s", ErrInvalidInput, strings.Join(parts, "; "))
}

// invalid wraps a domain validation failure.
func invalid(err error) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%w: %v", ErrInvalidInput, err)
}

func requireID(label, value string) (string, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return "", fmt.Errorf("%w: %s id is required", ErrInvalidInput, label)
	}
	return value, nil
}

func parseRelation(raw team.Relation) (team.Relation, error) {
	rel := team.Relation(strings.ToLower(strings.TrimSpace(string(raw))))
	if !rel.Valid() {
		return "", fmt.Errorf("%w: unknown relation %q", ErrInvalidInput, raw)
	}
	return rel, nil
}
