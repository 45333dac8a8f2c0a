package generation

import (
	"errors"
	"fmt"
)

// ErrRecipeRefused marks a model refusal. Refusals are inherent to the
// request (non-edible ingredients and the like) and are never retried.
var ErrRecipeRefused = errors.New("recipe request refused")

// ErrGenerationExhausted is returned when the model failed to produce valid
// output within the attempt bound. Callers should treat it as "no result,
// try again later", not as a hard failure.
var ErrGenerationExhausted = errors.New("no recipe produced after maximum attempts")

// RefusalError carries the model-supplied refusal reason verbatim.
type RefusalError struct {
	Reason string
}

func (e *RefusalError) Error() string {
	return fmt.Sprintf("recipe request refused: %s", e.Reason)
}

func (e *RefusalError) Unwrap() error {
	return ErrRecipeRefused
}
