package generation

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/culinarycode/backend/internal/types"
)

// refusalSentinel is the model's refusal convention: raw output opening with
// this marker (optionally behind a leading quote) declines the request.
const refusalSentinel = "NOT_POSSIBLE"

// OutcomeKind tags the result of validating raw model output.
type OutcomeKind int

const (
	// OutcomeValid means the text parsed and satisfies the recipe contract.
	OutcomeValid OutcomeKind = iota
	// OutcomeRefused means the model declined the request. Fatal for the
	// whole generation, never retried.
	OutcomeRefused
	// OutcomeInvalid means malformed JSON or a schema violation. Transient;
	// the caller may retry.
	OutcomeInvalid
)

// Outcome is the tagged result of Validate.
type Outcome struct {
	Kind       OutcomeKind
	Payload    *GeneratedRecipePayload // set when Kind == OutcomeValid
	Reason     string                  // set when Kind == OutcomeRefused
	Violations []string                // set when Kind == OutcomeInvalid
}

var structValidator = validator.New()

// Validate checks raw model text against the refusal convention and the
// fixed recipe JSON contract.
func Validate(raw string) Outcome {
	trimmed := strings.TrimSpace(raw)

	if reason, refused := refusalReason(trimmed); refused {
		return Outcome{Kind: OutcomeRefused, Reason: reason}
	}

	var payload GeneratedRecipePayload
	if err := json.Unmarshal([]byte(trimmed), &payload); err != nil {
		return Outcome{Kind: OutcomeInvalid, Violations: []string{fmt.Sprintf("malformed JSON: %v", err)}}
	}

	var violations []string
	if err := structValidator.Struct(&payload); err != nil {
		if errs, ok := err.(validator.ValidationErrors); ok {
			for _, fe := range errs {
				violations = append(violations, fmt.Sprintf("field %s failed %s", fe.Namespace(), fe.Tag()))
			}
		} else {
			violations = append(violations, err.Error())
		}
	}

	violations = append(violations, enumViolations(&payload)...)

	if len(violations) > 0 {
		return Outcome{Kind: OutcomeInvalid, Violations: violations}
	}

	return Outcome{Kind: OutcomeValid, Payload: &payload}
}

// refusalReason extracts the reason text from a refusal. The model sometimes
// wraps the sentinel in quotes, so both forms are honored.
func refusalReason(text string) (string, bool) {
	stripped := strings.TrimPrefix(text, `"`)
	if !strings.HasPrefix(stripped, refusalSentinel) {
		return "", false
	}

	reason := strings.TrimPrefix(stripped, refusalSentinel)
	reason = strings.Trim(reason, `"`)
	reason = strings.TrimLeft(reason, ":, ")
	return strings.TrimSpace(reason), true
}

func enumViolations(p *GeneratedRecipePayload) []string {
	var violations []string

	if t, err := types.ParseRecipeType(p.RecipeType); err != nil || t == types.RecipeTypeNotAvailable {
		violations = append(violations, fmt.Sprintf("recipeType %q is not a valid value", p.RecipeType))
	}
	if _, err := types.ParseDifficulty(p.Difficulty); err != nil {
		violations = append(violations, fmt.Sprintf("difficulty %q is not a valid value", p.Difficulty))
	}
	for i, ing := range p.Ingredients {
		if _, err := types.ParseMeasurementType(ing.MeasurementType); err != nil {
			violations = append(violations, fmt.Sprintf("ingredients[%d].measurementType %q is not a valid value", i, ing.MeasurementType))
		}
	}

	return violations
}
