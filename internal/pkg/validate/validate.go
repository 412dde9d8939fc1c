// internal/pkg/validate/validate.go
package validate

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/sirupsen/logrus"
)

// Error reports a remote response that does not match its declared shape.
// A shape mismatch is always fatal for the caller: the gateway never feeds
// an unvalidated payload into the composition pipeline.
type Error struct {
	Schema string
	Issues []string
}

// Error implements the error interface
func (e *Error) Error() string {
	return fmt.Sprintf("response for %q failed validation: %s", e.Schema, strings.Join(e.Issues, "; "))
}

// Gate validates decoded remote responses before they enter application state
type Gate struct {
	validate *validator.Validate
	logger   *logrus.Logger
}

// NewGate creates a new validation gate
func NewGate(logger *logrus.Logger) *Gate {
	return &Gate{
		validate: validator.New(validator.WithRequiredStructEnabled()),
		logger:   logger,
	}
}

// Struct validates value against its struct tags. On mismatch it logs the
// schema name with the field issues and returns a *Error; it never swallows.
func (g *Gate) Struct(schema string, value any) error {
	err := g.validate.Struct(value)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		// Non-struct input is a programming error, not a remote failure
		return fmt.Errorf("validate %q: %w", schema, err)
	}

	issues := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		issues = append(issues, fmt.Sprintf("%s: failed %q", fe.Namespace(), fe.Tag()))
	}

	g.logger.WithFields(logrus.Fields{
		"schema": schema,
		"issues": issues,
	}).Error("Remote response failed shape validation")

	return &Error{Schema: schema, Issues: issues}
}

// Var validates a single value against a tag expression, for responses whose
// top level is not a struct (for example a bare list of ids).
func (g *Gate) Var(schema string, value any, tag string) error {
	err := g.validate.Var(value, tag)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	issues := []string{err.Error()}
	if errors.As(err, &fieldErrs) {
		issues = issues[:0]
		for _, fe := range fieldErrs {
			issues = append(issues, fmt.Sprintf("value: failed %q", fe.Tag()))
		}
	}

	g.logger.WithFields(logrus.Fields{
		"schema": schema,
		"issues": issues,
	}).Error("Remote response failed shape validation")

	return &Error{Schema: schema, Issues: issues}
}
