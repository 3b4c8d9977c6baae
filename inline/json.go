package inline

import (
	"encoding/json"

	"github.com/invopop/jsonschema"

	"github.com/drumtake-cli/drumtake/video"
)

type Track struct {
	// Source is the name of the provider that found the track.
	Source string `json:"source" jsonschema:"description=Name of the source that found the track."`
	// Track is the track object from the source.
	Track *video.Track `json:"track" jsonschema:"description=The discovered track."`
	// Duration is the track length in seconds, when the source reports one.
	Duration *float64 `json:"duration,omitempty" jsonschema:"description=Track length in seconds if the source reports one."`
}

type Output struct {
	Query  string   `json:"query" jsonschema:"description=The search query that produced the result."`
	Result []*Track `json:"result" jsonschema:"description=Discovered tracks in rank order."`
}

func asJson(tracks []*video.Track, query string) ([]byte, error) {
	var result = make([]*Track, len(tracks))
	for i, t := range tracks {
		var sourceName string
		if t.Source != nil {
			sourceName = t.Source.Name()
		}

		result[i] = &Track{
			Source:   sourceName,
			Track:    t,
			Duration: t.Duration.ToPointer(),
		}
	}

	return json.Marshal(&Output{
		Query:  query,
		Result: result,
	})
}

// JsonSchema renders the JSON schema of the inline output format.
func JsonSchema() ([]byte, error) {
	reflector := new(jsonschema.Reflector)
	schema := reflector.Reflect(&Output{})
	return json.MarshalIndent(schema, "", "  ")
}
