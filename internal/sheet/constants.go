package sheet

// Error messages
const (
	ErrMsgInvalidJSON     = "invalid JSON"
	ErrMsgNotAnArray      = "sheet must be a JSON array of rows"
	ErrMsgReadSheetFailed = "failed to read sheet"
)
