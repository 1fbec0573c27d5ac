package detector

import (
	"fmt"

	"github.com/ElsiKora/Setup-Wizard-sub001/pkg/capability"
)

// EvidenceError reports a failed evidence lookup. Detection treats the
// indicator as absent and carries on.
type EvidenceError struct {
	Framework capability.FrameworkID // empty when the lookup is shared by all frameworks
	Indicator string
	Err       error
}

func (e *EvidenceError) Error() string {
	if e.Framework == "" {
		return fmt.Sprintf("evidence lookup %q failed: %v", e.Indicator, e.Err)
	}
	return fmt.Sprintf("evidence lookup %q for %s failed: %v", e.Indicator, e.Framework, e.Err)
}

func (e *EvidenceError) Unwrap() error {
	return e.Err
}
