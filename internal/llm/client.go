// Package llm contains the model-client contract and its adapters. The
// generation pipeline only depends on the Client interface, so the backing
// model can be swapped between a hosted API and a local server.
package llm

import "context"

// Client produces raw model output for a recipe prompt. The returned text is
// possibly-non-JSON; validation is the caller's concern.
type Client interface {
	GenerateRecipe(ctx context.Context, prompt string) (string, error)
}

// ImageGenerator produces an image for a recipe. An empty URI with a nil
// error means the backend has no image capability configured.
type ImageGenerator interface {
	GenerateRecipeImage(ctx context.Context, prompt string) (string, error)
}

// systemPrompt pins the wire format the validator expects. Field names and
// enum values must not change: they are the de-facto contract with the model.
const systemPrompt = `You are a professional chef. Respond ONLY with a JSON object in exactly this structure:
{
    "recipeName": "Name of the recipe",
    "description": "Short description",
    "diet": "Dietary tag such as Vegetarian, or an empty string",
    "recipeType": "One of: Breakfast, Lunch, Dinner, Dessert, Snack",
    "cookingTime": 30,
    "difficulty": "One of: NotAvailable, Easy, Intermediate, Difficult",
    "amount_of_people": 4,
    "ingredients": [
        {"name": "flour", "amount": 500, "measurementType": "Gram"}
    ],
    "recipeSteps": [
        {"stepNumber": 1, "instruction": "Mix the dry ingredients"}
    ]
}

measurementType MUST be one of: Kilogram, Litre, Pound, Ounce, Teaspoon, Tablespoon, Piece, Millilitre, Gram, Pinch, ToTaste, Clove.
cookingTime is in minutes and must be a number.
If the request cannot be turned into an edible recipe, respond with exactly: "NOT_POSSIBLE followed by the reason.`
