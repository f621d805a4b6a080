package port

type Sink interface {
	// Result line: labelled response, "null" when there is no usable response
	WriteResult(label string, res *Result) error
	// Command line: previewed command, printed verbatim
	WriteCommand(line string) error
}
