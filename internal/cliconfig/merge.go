package cliconfig

// MergeConfig merges source config into target, updating sources tracking.
// Only non-zero values from source are applied.
func MergeConfig(target, source *Config, sourceType string) {
	if source == nil {
		return
	}
	if target.Sources == nil {
		target.Sources = make(map[string]string)
	}

	if source.APIURL != "" {
		target.APIURL = source.APIURL
		target.Sources[FieldAPIURL] = sourceType
	}
	// A plain key and a sealed key replace each other.
	if source.APIKey != "" {
		target.APIKey = source.APIKey
		target.APIKeySealed = ""
		target.Sources[FieldAPIKey] = sourceType
	} else if source.APIKeySealed != "" {
		target.APIKeySealed = source.APIKeySealed
		target.APIKey = ""
		target.Sources[FieldAPIKey] = sourceType
	}
	if source.LogLevel != "" {
		target.LogLevel = source.LogLevel
		target.Sources[FieldLogLevel] = sourceType
	}
	if source.Timeout != 0 {
		target.Timeout = source.Timeout
		target.Sources[FieldTimeout] = sourceType
	}
	if source.Output != "" {
		target.Output = source.Output
		target.Sources[FieldOutput] = sourceType
	}
	if source.VaultPassphrase != "" {
		target.VaultPassphrase = source.VaultPassphrase
		target.Sources[FieldVaultPassphrase] = sourceType
	}
}
