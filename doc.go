// File: argsparser/doc.go

// Package argsparser declares, parses and retrieves command-line arguments of
// the form --name=value.
//
// Features:
//   - Mandatory arguments and optional arguments with typed defaults
//   - Strict token validation with reproducible error messages
//   - Generic typed retrieval for strings, booleans, characters and all numeric types
//   - List retrieval with arbitrary (multi-character) separators
//   - Builder pattern for one-call initialization
//   - Struct decoding and TOML/YAML/JSON export of the parsed values
//
// Quick Start:
//
//	p := argsparser.New()
//	p.Add("log_path", "Log file path for app", false)
//	argsparser.AddDefault(p, "timeout", 60, "Timeout for the app (seconds)")
//	p.Add("ids", "Allowed ids", true)
//
//	args, err := p.Parse(os.Args)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	logPath, _ := argsparser.Get[string](args, "log_path")
//	timeout, _ := argsparser.Get[int](args, "timeout")
//	ids, _ := argsparser.GetList[int](args, "ids", ",")
//
// Help:
// Passing exactly one of "help", "--help" or "-h" prints every registered
// argument and exits with status 0. Both the output and the exit action can be
// replaced with SetOutput and SetExitFunc.
//
// Thread Safety:
// A Parser and the Args it returns are meant for use by a single goroutine.
// Args is never modified after Parse returns, so concurrent reads are safe.
package argsparser
