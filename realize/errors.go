package realize

import (
	"fmt"

	"github.com/typstlab/layoutcore/content"
)

// Diagnostic is a span-carrying error, the realization subsystem's only
// error type. Mirrors the span-carrying error types already used
// elsewhere (ConstructorError, SetRuleError, ShowRuleError in eval/).
type Diagnostic struct {
	Span    content.Span
	Message string
}

func (d *Diagnostic) Error() string {
	if d.Span.IsDetached() {
		return d.Message
	}
	return fmt.Sprintf("%s: %s", d.Span, d.Message)
}

// diagErr builds a Diagnostic with a formatted message, the single choke
// point every driver/interrupt error is raised through so the wording
// stays centralized.
func diagErr(span content.Span, format string, args ...any) error {
	return &Diagnostic{Span: span, Message: fmt.Sprintf(format, args...)}
}
