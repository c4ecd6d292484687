package assert

import (
	"fmt"
	"sort"
	"strings"
)

// Fields the contextual key/values printed next to a failed assertion
type Fields map[string]interface{}

func (f Fields) String() string {
	if len(f) == 0 {
		return ""
	}
	keys := make([]string, 0, len(f))
	for k := range f {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, fmt.Sprintf("%v:%v", k, f[k]))
	}
	return strings.Join(parts, ",")
}
