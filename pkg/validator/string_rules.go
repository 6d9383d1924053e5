package validator

const MsgNameEmpty = "Name field cannot be empty."

// Name validates a display name. Only emptiness is checked; whitespace counts as content.
func Name(name string) Result {
	if name == "" {
		return Invalid(MsgNameEmpty)
	}
	return Valid()
}
