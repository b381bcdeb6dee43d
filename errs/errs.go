// Package errs defines the typed, structured error taxonomy used across the
// rules engine. Validation failures are recoverable and leave state
// untouched; pipeline failures trigger a rollback; configuration errors are
// caller bugs that are never swallowed.
package errs

import "fmt"

// ValidationCode enumerates the recoverable, pre-commit validation denials.
type ValidationCode string

const (
	InvalidSystem             ValidationCode = "invalid_system"
	CommandTokenBlocksExit    ValidationCode = "command_token_blocks_exit"
	EnemyShipBlocksPath       ValidationCode = "enemy_ship_blocks_path"
	NoPathExists              ValidationCode = "no_path_exists"
	InsufficientMovement      ValidationCode = "insufficient_movement"
	InsufficientTransport     ValidationCode = "insufficient_transport"
	FleetSupplyExceeded       ValidationCode = "fleet_supply_exceeded"
	AnomalyBlocksMovement     ValidationCode = "anomaly_blocks_movement"
	NebulaRequiresActiveSystem ValidationCode = "nebula_requires_active_system"
	InsufficientResources     ValidationCode = "insufficient_resources"
	InsufficientReinforcements ValidationCode = "insufficient_reinforcements"
	BlockadedProduction       ValidationCode = "blockaded_production"
	InvalidPlacement          ValidationCode = "invalid_placement"
	AlreadyControls           ValidationCode = "already_controls"
	DirectPlanetTransfer      ValidationCode = "direct_planet_transfer"
	InsufficientTacticPool    ValidationCode = "insufficient_tactic_pool"
)

// ValidationError is recoverable: the caller sees it, state is unchanged.
type ValidationError struct {
	Code ValidationCode
	// System, Unit and Tag carry context for the handful of codes that need
	// it (AnomalyBlocksMovement needs System+Tag, EnemyShipBlocksPath needs
	// System, InsufficientMovement/InsufficientTransport need Shortfall).
	System    string
	Unit      string
	Tag       string
	Shortfall int
}

func (e *ValidationError) Error() string {
	switch e.Code {
	case AnomalyBlocksMovement:
		return fmt.Sprintf("%s: system %s has anomaly tag %s", e.Code, e.System, e.Tag)
	case EnemyShipBlocksPath:
		return fmt.Sprintf("%s: enemy ship present in system %s", e.Code, e.System)
	case InsufficientMovement, InsufficientTransport:
		return fmt.Sprintf("%s: shortfall of %d for unit %s", e.Code, e.Shortfall, e.Unit)
	default:
		if e.System != "" {
			return fmt.Sprintf("%s: %s", e.Code, e.System)
		}
		return string(e.Code)
	}
}

// NewValidationError builds a bare validation error for codes that carry no
// extra context.
func NewValidationError(code ValidationCode) *ValidationError {
	return &ValidationError{Code: code}
}

// PipelineStep names the tactical-action step a PipelineError originated in.
type PipelineStep string

const (
	StepActivation   PipelineStep = "activation"
	StepMovement     PipelineStep = "movement"
	StepSpaceCannon  PipelineStep = "space_cannon"
	StepInvasion     PipelineStep = "invasion"
	StepProduction   PipelineStep = "production"
)

// PipelineError is post-commit: it triggers a rollback to the pre-action
// snapshot. Cause is the underlying error (often a *ValidationError raised
// mid-execution, or an InvariantViolated).
type PipelineError struct {
	Step  PipelineStep
	Cause error
}

func (e *PipelineError) Error() string {
	return fmt.Sprintf("step %s failed: %v", e.Step, e.Cause)
}

func (e *PipelineError) Unwrap() error { return e.Cause }

// InvariantViolated marks a programming error detected at a step boundary:
// the action aborts with rollback, same as any other PipelineError cause.
type InvariantViolated struct {
	Description string
}

func (e *InvariantViolated) Error() string {
	return fmt.Sprintf("invariant violated: %s", e.Description)
}

// ConfigurationErrorCode enumerates caller bugs — never swallowed.
type ConfigurationErrorCode string

const (
	UnknownUnitType   ConfigurationErrorCode = "unknown_unit_type"
	UnknownTechnology ConfigurationErrorCode = "unknown_technology"
	PlayerNotInGame   ConfigurationErrorCode = "player_not_in_game"
)

type ConfigurationError struct {
	Code  ConfigurationErrorCode
	Value string
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Value)
}
