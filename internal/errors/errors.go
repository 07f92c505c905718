package errors

import (
	"errors"
	"fmt"
)

// NotFoundError represents an error when an entity is not found
type NotFoundError struct {
	Entity string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found", e.Entity)
}

// Is enables errors.Is() comparison for NotFoundError
func (e *NotFoundError) Is(target error) bool {
	t, ok := target.(*NotFoundError)
	if !ok {
		return false
	}
	return e.Entity == t.Entity
}

// AlreadyExistsError represents an error when an entity already exists
type AlreadyExistsError struct {
	Entity  string
	Context string // Additional context like "with this name"
}

func (e *AlreadyExistsError) Error() string {
	if e.Context != "" {
		return fmt.Sprintf("%s already exists %s", e.Entity, e.Context)
	}
	return fmt.Sprintf("%s already exists", e.Entity)
}

// Is enables errors.Is() comparison for AlreadyExistsError
func (e *AlreadyExistsError) Is(target error) bool {
	t, ok := target.(*AlreadyExistsError)
	if !ok {
		return false
	}
	return e.Entity == t.Entity
}

// ValidationError represents a validation error
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("validation error: %s - %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation error: %s", e.Message)
}

// RuleCode identifies an inventory or assembly rule violation
type RuleCode string

const (
	CodeIncompatibleTeam   RuleCode = "incompatible_team"
	CodeIncompatiblePart   RuleCode = "incompatible_part"
	CodeOutOfStock         RuleCode = "out_of_stock"
	CodeInsufficientStock  RuleCode = "insufficient_stock"
	CodeQuotaExceeded      RuleCode = "quota_exceeded"
	CodeIncompleteAircraft RuleCode = "incomplete_aircraft"
	CodeAlreadyCompleted   RuleCode = "already_completed"
	CodeAlreadyAttached    RuleCode = "already_attached"
	CodePartInUse          RuleCode = "part_in_use"
	CodeTeamInUse          RuleCode = "team_in_use"
	CodeAlreadyClaimed     RuleCode = "already_claimed"
)

// DomainRuleError is returned when a request is well formed but violates a
// stock, compatibility or completion rule. Nothing is persisted when it is returned.
type DomainRuleError struct {
	Code    RuleCode
	Message string
}

func (e *DomainRuleError) Error() string {
	return e.Message
}

// Is matches any DomainRuleError carrying the same code
func (e *DomainRuleError) Is(target error) bool {
	t, ok := target.(*DomainRuleError)
	if !ok {
		return false
	}
	return e.Code == t.Code
}

// AuthenticationError represents authentication-related errors
type AuthenticationError struct {
	Message string
}

func (e *AuthenticationError) Error() string {
	return e.Message
}

// AuthorizationError represents authorization-related errors
type AuthorizationError struct {
	Message string
}

func (e *AuthorizationError) Error() string {
	return e.Message
}

// ConfigurationError represents configuration-related errors
type ConfigurationError struct {
	Message string
}

func (e *ConfigurationError) Error() string {
	return e.Message
}

// Entity Not Found Errors
var (
	ErrTeamNotFound         = &NotFoundError{Entity: "team"}
	ErrPartNotFound         = &NotFoundError{Entity: "part"}
	ErrProductionNotFound   = &NotFoundError{Entity: "production"}
	ErrAircraftNotFound     = &NotFoundError{Entity: "aircraft"}
	ErrAircraftPartNotFound = &NotFoundError{Entity: "aircraft part"}
	ErrTeamMemberNotFound   = &NotFoundError{Entity: "team member"}
)

// Already Exists Errors
var (
	ErrTeamExists       = &AlreadyExistsError{Entity: "team", Context: "with this name"}
	ErrTeamMemberExists = &AlreadyExistsError{Entity: "team member", Context: "in this team"}
)

// Validation Errors
var (
	ErrInvalidQuantity      = &ValidationError{Field: "quantity", Message: "must be a positive integer"}
	ErrInvalidAircraftType  = &ValidationError{Field: "aircraft_type", Message: "unknown aircraft type"}
	ErrInvalidTeamType      = &ValidationError{Field: "team_type", Message: "unknown team type"}
	ErrInvalidPartCategory  = &ValidationError{Field: "team_type", Message: "not a part category for this aircraft type"}
	ErrInvalidMinimumStock  = &ValidationError{Field: "minimum_stock", Message: "must not be negative"}
	ErrNotAnAssemblyTeam    = &ValidationError{Field: "assembly_team_id", Message: "team is not an assembly team"}
	ErrInvalidAircraftState = &ValidationError{Field: "status", Message: "must be in_production or completed"}
)

// Inventory and Assembly Rule Errors
var (
	ErrIncompatibleTeam         = &DomainRuleError{Code: CodeIncompatibleTeam, Message: "team cannot produce this part"}
	ErrIncompatiblePart         = &DomainRuleError{Code: CodeIncompatiblePart, Message: "part is not compatible with this aircraft type"}
	ErrOutOfStock               = &DomainRuleError{Code: CodeOutOfStock, Message: "part is out of stock"}
	ErrInsufficientStock        = &DomainRuleError{Code: CodeInsufficientStock, Message: "insufficient stock"}
	ErrQuotaExceeded            = &DomainRuleError{Code: CodeQuotaExceeded, Message: "aircraft already has all required parts of this category"}
	ErrIncompleteAircraft       = &DomainRuleError{Code: CodeIncompleteAircraft, Message: "aircraft is missing required parts"}
	ErrAircraftAlreadyCompleted = &DomainRuleError{Code: CodeAlreadyCompleted, Message: "aircraft is already completed"}
	ErrPartAlreadyAttached      = &DomainRuleError{Code: CodeAlreadyAttached, Message: "part is already attached to this aircraft"}
	ErrPartInUse                = &DomainRuleError{Code: CodePartInUse, Message: "part is referenced by productions or aircraft"}
	ErrTeamInUse                = &DomainRuleError{Code: CodeTeamInUse, Message: "team is referenced by productions or aircraft"}
	ErrAircraftAlreadyClaimed   = &DomainRuleError{Code: CodeAlreadyClaimed, Message: "aircraft is already assigned to another assembly team"}
)

// Authentication Errors
var (
	ErrMissingActor  = &AuthenticationError{Message: "actor not found in context"}
	ErrInvalidToken  = &AuthenticationError{Message: "invalid token"}
	ErrTokenDisabled = &AuthorizationError{Message: "token issuing is disabled in production"}
)

// Helper Functions

// IsNotFound checks if an error is a NotFoundError
func IsNotFound(err error) bool {
	var notFoundErr *NotFoundError
	return errors.As(err, &notFoundErr)
}

// IsAlreadyExists checks if an error is an AlreadyExistsError
func IsAlreadyExists(err error) bool {
	var existsErr *AlreadyExistsError
	return errors.As(err, &existsErr)
}

// IsValidation checks if an error is a ValidationError
func IsValidation(err error) bool {
	var validationErr *ValidationError
	return errors.As(err, &validationErr)
}

// IsDomainRule checks if an error is a DomainRuleError
func IsDomainRule(err error) bool {
	var ruleErr *DomainRuleError
	return errors.As(err, &ruleErr)
}

// RuleCodeOf returns the rule code of a DomainRuleError, or "" for other errors
func RuleCodeOf(err error) RuleCode {
	var ruleErr *DomainRuleError
	if errors.As(err, &ruleErr) {
		return ruleErr.Code
	}
	return ""
}

// IsAuthentication checks if an error is an AuthenticationError
func IsAuthentication(err error) bool {
	var authErr *AuthenticationError
	return errors.As(err, &authErr)
}

// IsAuthorization checks if an error is an AuthorizationError
func IsAuthorization(err error) bool {
	var authzErr *AuthorizationError
	return errors.As(err, &authzErr)
}

// IsConfiguration checks if an error is a ConfigurationError
func IsConfiguration(err error) bool {
	var configErr *ConfigurationError
	return errors.As(err, &configErr)
}

// NewNotFoundError creates a new NotFoundError for a custom entity
func NewNotFoundError(entity string) error {
	return &NotFoundError{Entity: entity}
}

// NewAlreadyExistsError creates a new AlreadyExistsError for a custom entity
func NewAlreadyExistsError(entity, context string) error {
	return &AlreadyExistsError{Entity: entity, Context: context}
}

// NewValidationError creates a new ValidationError
func NewValidationError(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}

// NewInsufficientStockError reports the stock a decrease was refused against
func NewInsufficientStockError(partName string, available, requested int) error {
	return &DomainRuleError{
		Code:    CodeInsufficientStock,
		Message: fmt.Sprintf("insufficient stock for %s: available %d, requested %d", partName, available, requested),
	}
}

// NewQuotaExceededError reports the category whose quota is already filled
func NewQuotaExceededError(category string, required int) error {
	return &DomainRuleError{
		Code:    CodeQuotaExceeded,
		Message: fmt.Sprintf("aircraft already has the required %d %s part(s)", required, category),
	}
}

// NewAuthenticationError creates a new AuthenticationError
func NewAuthenticationError(message string) error {
	return &AuthenticationError{Message: message}
}

// NewAuthorizationError creates a new AuthorizationError
func NewAuthorizationError(message string) error {
	return &AuthorizationError{Message: message}
}

// NewConfigurationError creates a new ConfigurationError
func NewConfigurationError(message string) error {
	return &ConfigurationError{Message: message}
}
