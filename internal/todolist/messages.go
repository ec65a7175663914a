package todolist

// User facing texts.
const (
	// EmptyMarker is rendered instead of the list when there is nothing to show.
	EmptyMarker = "Nothing TO DO, let's plan something!"
	// ConfirmPrompt is the question asked before a todo is deleted.
	ConfirmPrompt = "Are you sure that you are done with that TODO?"

	MsgFetchFailed  = "Fail to fetch todos!"
	MsgCreateFailed = "Fail to create todo!"
	MsgDeleteFailed = "Fail to delete todo!"
	MsgNameRequired = "Name is required!"
)
