package prefabs

import (
	"context"
	"fmt"

	"github.com/d5/tengo/v2"
	"github.com/d5/tengo/v2/stdlib"
	"gopkg.in/yaml.v3"
)

// RunScript runs a tengo spawn script and returns the bodies it appended to
// the global `bodies` array. The script sees `side` (scene side length) and
// `seed` and may import the math, rand and fmt modules.
func RunScript(ctx context.Context, name string, side float64, seed int64) ([]BodySpec, error) {
	src, err := LoadScript(name)
	if err != nil {
		return nil, err
	}

	script := tengo.NewScript(src)
	script.SetImports(stdlib.GetModuleMap("math", "rand", "fmt"))
	if err := script.Add("side", side); err != nil {
		return nil, err
	}
	if err := script.Add("seed", seed); err != nil {
		return nil, err
	}
	if err := script.Add("bodies", []any{}); err != nil {
		return nil, err
	}

	compiled, err := script.RunContext(ctx)
	if err != nil {
		return nil, err
	}

	raw := compiled.Get("bodies").Array()
	out := make([]BodySpec, 0, len(raw))
	for i, item := range raw {
		body, err := decodeBody(item)
		if err != nil {
			return nil, fmt.Errorf("bodies[%d]: %w", i, err)
		}
		out = append(out, body)
	}
	return out, nil
}

// decodeBody converts a script value into a BodySpec by round-tripping it
// through yaml, so scripts use the same keys as scene files.
func decodeBody(raw any) (BodySpec, error) {
	var body BodySpec
	if _, ok := raw.(map[string]any); !ok {
		return body, fmt.Errorf("expected a map, got %T", raw)
	}
	b, err := yaml.Marshal(raw)
	if err != nil {
		return body, err
	}
	if err := yaml.Unmarshal(b, &body); err != nil {
		return body, err
	}
	if err := body.normalize(); err != nil {
		return body, err
	}
	return body, nil
}
