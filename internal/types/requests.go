package types

// RecipeFilterRequest narrows what the generated recipe should look like.
// Every field is optional; the zero value means "surprise me".
type RecipeFilterRequest struct {
	RecipeName  string     `json:"recipe_name"`
	Ingredients []string   `json:"ingredients"`
	Difficulty  Difficulty `json:"difficulty"`
	MealType    RecipeType `json:"meal_type"`
	CookTime    int        `json:"cook_time"`
}

// TokenClaims carries the identity extracted from a Keycloak-issued token.
type TokenClaims struct {
	UserID   string `json:"sub"`
	Username string `json:"preferred_username"`
	Email    string `json:"email"`
}
