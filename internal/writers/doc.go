// Package writers turns pipeline hits into serialized output.
//
// Each format registers a sink in the registry. Sinks either stream hits
// as they arrive or, with Options.Sort, buffer and order them first.
// JSON and JSONL go through pkg/api (v1) for a stable wire format.
package writers
