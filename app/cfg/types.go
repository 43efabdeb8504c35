package cfg

type Cfg struct {
	// Storage configuration
	DBPath string

	// Application configuration
	InputFile    string
	OutputDir    string
	Port         string
	APIAccessKey string

	// Application metadata
	Debug   bool
	Version string
}
