package app

// feedbackDoneMsg is sent when the learner dismisses the feedback view.
type feedbackDoneMsg struct{}

// sessionEndMsg is sent to trigger the session end flow.
type sessionEndMsg struct{}

// progressSavedMsg is sent when progress persistence completes.
type progressSavedMsg struct {
	Err error
}
