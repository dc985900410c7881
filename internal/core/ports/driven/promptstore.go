package driven

// Prompt names understood by the prompt store.
const (
	// PromptCommentarySystem is the system prompt handed to the AI
	// collaborator when asking for listing commentary.
	PromptCommentarySystem = "commentary_system"
)

// PromptStore provides access to AI prompt templates.
// Implementations may load prompts from user-editable files with
// embedded defaults as fallback.
type PromptStore interface {
	// Load returns the prompt template for the given name.
	Load(name string) (string, error)

	// Reload clears any cached prompts, forcing fresh loads.
	Reload()
}
