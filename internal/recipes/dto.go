package recipes

import "recipe-backend/internal/domain"

const createdMessage = "Recipe added successfully"

// CreateResponse is returned by POST /recipes.
type CreateResponse struct {
	Message string        `json:"message"`
	Recipe  domain.Recipe `json:"recipe"`
}

// errorMessage maps service errors to the messages shown to clients.
func errorMessage(err error) string {
	switch ErrorCode(err) {
	case "missing_fields":
		return "Missing required fields: title, ingredients, steps, and prepTime are required"
	case "invalid_title":
		return "Title must be a non-empty string"
	case "invalid_ingredients":
		return "Ingredients must be a non-empty array"
	case "invalid_steps":
		return "Steps must be a non-empty array"
	case "invalid_prep_time":
		return "Prep time must be a valid positive number"
	case "duplicate_title":
		return "A recipe with this title already exists"
	default:
		return "Failed to add recipe"
	}
}
