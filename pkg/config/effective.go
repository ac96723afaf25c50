package config

// Effective is the merged runtime configuration after flags, env and
// file have been resolved. Source records where the winning values came
// from, for the startup banner.
type Effective struct {
	Config *Config
	Addr   string
	DBPath string
	Source string
}

// Resolve merges flag values onto the loaded config. Flags explicitly
// set on the command line win over env, which wins over the file.
func Resolve(flagAddr, flagDB string, setFlags map[string]bool, cfgPath string) Effective {
	cfg, err := Load(cfgPath)
	fileUsed := err == nil
	if cfg == nil {
		cfg = &Config{}
	}
	envUsed := LoadEnvOverrides(cfg)

	addr := cfg.Addr()
	if setFlags["addr"] {
		addr = flagAddr
	}
	dbPath := cfg.Storage.DBPath
	if dbPath == "" || setFlags["db"] {
		dbPath = flagDB
	}

	src := "defaults"
	switch {
	case len(setFlags) > 0 && envUsed && fileUsed:
		src = "flags+env+file"
	case len(setFlags) > 0 && envUsed:
		src = "flags+env"
	case len(setFlags) > 0 && fileUsed:
		src = "flags+file"
	case envUsed && fileUsed:
		src = "env+file"
	case len(setFlags) > 0:
		src = "flags"
	case envUsed:
		src = "env"
	case fileUsed:
		src = "file"
	}

	return Effective{Config: cfg, Addr: addr, DBPath: dbPath, Source: src}
}
