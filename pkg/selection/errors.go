package selection

import (
	"errors"
	"fmt"
	"strings"

	"github.com/ElsiKora/Setup-Wizard-sub001/pkg/capability"
)

// ErrAborted is returned by a Prompter when the user cancels.
var ErrAborted = errors.New("selection aborted")

// UnknownFeatureError reports a saved selection that references feature ids
// the registry does not know.
type UnknownFeatureError struct {
	IDs []capability.FeatureID
}

func (e *UnknownFeatureError) Error() string {
	names := make([]string, len(e.IDs))
	for i, id := range e.IDs {
		names[i] = string(id)
	}
	return fmt.Sprintf("saved selection references unknown features: %s", strings.Join(names, ", "))
}
