package config

// ApplyDefaults sets default values for any zero values in cfg.
func ApplyDefaults(cfg *Config) {
	if cfg.Server.Host == "" {
		cfg.Server.Host = "localhost"
	}
	if cfg.Server.Port == 0 {
		cfg.Server.Port = 8080
	}
	if cfg.Cache.DatabasePath == "" {
		cfg.Cache.DatabasePath = "/usr/local/var/canond/data/answers.db"
	}
	if cfg.Cache.TTLSeconds == 0 {
		cfg.Cache.TTLSeconds = 7 * 24 * 3600
	}
	if cfg.Extract.MinOptions == 0 {
		cfg.Extract.MinOptions = 2
	}
	if cfg.Extract.MaxOptions == 0 {
		cfg.Extract.MaxOptions = 8
	}
	if cfg.Extract.MaxOptionLength == 0 {
		cfg.Extract.MaxOptionLength = 500
	}
	if cfg.Extract.MinValidLabelRatio == 0 {
		cfg.Extract.MinValidLabelRatio = 0.5
	}
	if cfg.Classify.ShortAnswerMaxLen == 0 {
		cfg.Classify.ShortAnswerMaxLen = 300
	}
}
