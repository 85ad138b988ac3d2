package shopify

import (
	"errors"
	"fmt"
	"strings"

	"delivery-profile-assigner/internal/adapters/shopify/dto"
)

// GraphQLErrorsError is returned when a response carries top-level errors,
// i.e. the document was rejected or could not be executed.
type GraphQLErrorsError struct {
	Errors []dto.GraphQLError
}

func (e *GraphQLErrorsError) Error() string {
	return fmt.Sprintf("shopify graphql errors: %s", formatGraphQLErrors(e.Errors))
}

type UserErrorDetail struct {
	Field   string
	Message string
}

// UserErrorsError carries the userErrors of a mutation that executed but was refused.
type UserErrorsError struct {
	Action string
	Errors []UserErrorDetail
}

func (e *UserErrorsError) Error() string {
	if e == nil {
		return "shopify user errors"
	}
	parts := make([]string, 0, len(e.Errors))
	for _, err := range e.Errors {
		field := strings.TrimSpace(err.Field)
		message := strings.TrimSpace(err.Message)
		if field == "" {
			parts = append(parts, message)
			continue
		}
		parts = append(parts, fmt.Sprintf("%s: %s", field, message))
	}
	if len(parts) == 0 {
		return fmt.Sprintf("shopify %s failed with user errors", e.Action)
	}
	return fmt.Sprintf("shopify %s failed: %s", e.Action, strings.Join(parts, "; "))
}

func IsUserErrors(err error) (*UserErrorsError, bool) {
	if err == nil {
		return nil, false
	}
	var typed *UserErrorsError
	if errors.As(err, &typed) {
		return typed, true
	}
	return nil, false
}

func userErrorsToDetailedError(action string, errs []dto.ShopifyUserError) error {
	if len(errs) == 0 {
		return nil
	}
	details := make([]UserErrorDetail, 0, len(errs))
	for _, e := range errs {
		message := strings.TrimSpace(e.Message)
		if message == "" {
			continue
		}
		field := ""
		if len(e.Field) > 0 {
			field = strings.Join(e.Field, ".")
		}
		details = append(details, UserErrorDetail{Field: field, Message: message})
	}
	if len(details) == 0 {
		return &UserErrorsError{Action: action, Errors: []UserErrorDetail{{Message: "user errors returned"}}}
	}
	return &UserErrorsError{Action: action, Errors: details}
}

func formatGraphQLErrors(errs []dto.GraphQLError) string {
	parts := make([]string, 0, len(errs))
	for _, e := range errs {
		msg := strings.TrimSpace(e.Message)
		if msg == "" {
			continue
		}
		if len(e.Path) > 0 {
			msg = fmt.Sprintf("%s (path: %v)", msg, e.Path)
		}
		parts = append(parts, msg)
	}
	if len(parts) == 0 {
		return "unknown graphql error"
	}
	return strings.Join(parts, "; ")
}
