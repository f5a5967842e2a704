package common

import "flag"

var Version = "v0.3.0"
var SystemName = "PCB Research Tool"

var (
	Port         = flag.Int("port", 3000, "the listening port")
	PrintVersion = flag.Bool("version", false, "print version and exit")
	PrintHelp    = flag.Bool("help", false, "print help and exit")
	LogDir       = flag.String("log-dir", "", "specify the log directory")
)

// DatabasePath is the location of the persisted PCB collection, a single
// JSON array file rewritten wholesale on every mutation.
var DatabasePath = "data/pcb_database.json"

var EnableGzip = true

func PrintHelpText() {
	println(SystemName + " " + Version)
	println("Usage: pcb-research [--port <port>] [--log-dir <log dir>]")
	flag.PrintDefaults()
}
