// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"unicode"

	"github.com/MKhiriev/rsd-tui/models"
)

const FieldName = "name"

type CredentialValidator struct {
}

func NewCredentialValidator() Validator {
	return &CredentialValidator{}
}

// Validate accepts a models.Credential or a []models.Credential (and
// pointers to either). With no fields every rule applies.
func (v *CredentialValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.Credential:
		return v.validateCredential(ctx, value, fields...)
	case *models.Credential:
		return v.validateCredential(ctx, *value, fields...)

	case []models.Credential:
		return v.validateCredentials(ctx, value, fields...)
	case *[]models.Credential:
		return v.validateCredentials(ctx, *value, fields...)

	default:
		return ErrUnsupportedType
	}
}

func (v *CredentialValidator) validateCredential(_ context.Context, c models.Credential, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldName}
	}

	for _, field := range fields {
		switch field {
		case FieldName:
			if strings.TrimSpace(c.Name) == "" {
				return ErrEmptyName
			}
			if strings.ContainsFunc(c.Name, unicode.IsControl) {
				return ErrInvalidName
			}
		default:
			return fmt.Errorf("%w: %s", ErrUnknownField, field)
		}
	}

	return nil
}

// validateCredentials reports every invalid record, not just the first. An
// empty list is valid: it seals an empty vault.
func (v *CredentialValidator) validateCredentials(ctx context.Context, list []models.Credential, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldName}
	}

	var errs []error
	for _, field := range fields {
		switch field {
		case FieldName:
			for i, c := range list {
				if err := v.validateCredential(ctx, c, FieldName); err != nil {
					errs = append(errs, fmt.Errorf("record %d: %w", i, err))
				}
			}
		default:
			return fmt.Errorf("%w: %s", ErrUnknownField, field)
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("%w: %w", ErrInvalidCredentials, errors.Join(errs...))
	}
	return nil
}
