package cli

import (
	"time"

	"codeberg.org/snonux/quintus/internal/cts"
	"codeberg.org/snonux/quintus/internal/speeches"
)

// Flags holds all command-line flag values
type Flags struct {
	// General flags
	CfgFile    string
	ListSounds bool
	Archive    bool
	LogLevel   string
	LogFormat  string

	// Output flags
	OutputDir  string
	CSVFile    string
	SQLiteFile string

	// Text source flags
	URN         string
	CTSEndpoint string
	TEIFile     string
	CacheDir    string
	Timeout     time.Duration

	// Speech flags
	DICESURL     string
	Author       string
	SpeechesFile string

	// Analysis flags
	RulesFile string
	Workers   int
	CacheSize int
}

// NewFlags creates a new Flags instance with default values
func NewFlags() *Flags {
	return &Flags{
		LogLevel:    "info",
		LogFormat:   "text",
		OutputDir:   "data",
		CSVFile:     "sounds.csv",
		URN:         cts.DefaultURN,
		CTSEndpoint: cts.DefaultEndpoint,
		Timeout:     60 * time.Second,
		DICESURL:    speeches.DefaultBaseURL,
		Author:      speeches.DefaultAuthor,
		Workers:     4,
		CacheSize:   4096,
	}
}
