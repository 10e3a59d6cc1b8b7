package domain

// Config mirrors ~/.cyberdeck/config.yaml.
type Config struct {
	ConfigFormatVersion string          `yaml:"config_format_version"`
	Preferences         Preferences     `yaml:"preferences"`
	Storage             StorageSettings `yaml:"storage"`
	Console             ConsoleSettings `yaml:"console"`
}

// Preferences captures user level toggles.
type Preferences struct {
	Operator     string `yaml:"operator"`
	DefaultTheme string `yaml:"default_theme"`
}

// StorageSettings locates the on-disk data files.
type StorageSettings struct {
	DataDir      string `yaml:"data_dir"`
	DatabaseFile string `yaml:"database_file"`
	StateFile    string `yaml:"state_file"`
}

// ConsoleSettings tunes the embedded command console.
type ConsoleSettings struct {
	HistoryKeep    int `yaml:"history_keep"`
	TranscriptRows int `yaml:"transcript_rows"`
}
