package model

import "maps"

const SettingsUpdatedAtKey = "updated_at"

// Settings is a schemaless document. Only updated_at is maintained by the service.
type Settings map[string]any

func (s Settings) Clone() Settings {
	if s == nil {
		return Settings{}
	}
	return maps.Clone(s)
}
