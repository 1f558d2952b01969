package app

import "flag"

// CLIArgs holds all command-line arguments passed to the application.
type CLIArgs struct {
	Input    string
	Settings string
	LogDir   string
	Verbose  bool
}

// ParseCLIArgs parses the command-line flags and returns a populated CLIArgs struct.
func ParseCLIArgs() *CLIArgs {
	args := &CLIArgs{}

	flag.StringVar(&args.Input, "input", "", "Pre-fill the workbook path on startup.")
	flag.StringVar(&args.Settings, "settings", "excel-i18n-tool.json5", "Path to the optional settings file.")
	flag.StringVar(&args.LogDir, "log-dir", ".", "Specifies the directory to store log files.")
	flag.BoolVar(&args.Verbose, "verbose", false, "Enable verbose (debug) logging.")
	flag.Parse()

	return args
}
