package output

import (
	"encoding/json"

	"github.com/taxfolio/taxcalc/internal/domain"
)

// JSONFormatter renders the combined result as JSON for downstream
// tooling.
type JSONFormatter struct {
	Pretty bool
}

func (JSONFormatter) Name() string { return "json" }

func (f JSONFormatter) Format(result *domain.CombinedResult) ([]byte, error) {
	if f.Pretty {
		return json.MarshalIndent(result, "", "  ")
	}
	return json.Marshal(result)
}
