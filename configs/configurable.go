package configs

// Configurable is implemented by typed config values that know their own
// lookup path in the cue files.
type Configurable interface {
	ConfigKey() string
}
