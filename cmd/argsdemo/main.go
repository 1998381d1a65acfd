// File: argsparser/cmd/argsdemo/main.go

package main

import (
	"fmt"
	"log"
	"os"
	"time"

	argsparser "github.com/aniliitb10/ArgsParser"
)

// DemoArgs is filled by Scan after parsing
type DemoArgs struct {
	LogPath string        `arg:"log_path"`
	Timeout int           `arg:"timeout"`
	IDs     []int         `arg:"ids"`
	Verbose bool          `arg:"verbose"`
	Delay   time.Duration `arg:"delay"`
}

// Try:
//
//	argsdemo --log_path=/tmp/app.log --ids=2,3,4 --delay=1m30s
//	argsdemo --help
func main() {
	p := argsparser.New()

	// Mandatory, no default
	p.Add("log_path", "Log file path for app", false)
	// Optional with typed defaults
	argsparser.AddDefault(p, "timeout", 60, "Timeout for the app (seconds)")
	argsparser.AddDefault(p, "verbose", false, "Print every parsed value")
	argsparser.AddDefault(p, "delay", "5s", "Delay before start")
	// Optional, no default; holds a list
	p.Add("ids", "Allowed ids", true)

	args, err := p.Parse(os.Args)
	if err != nil {
		log.Fatal(err)
	}

	logPath, _ := argsparser.Get[string](args, "log_path")
	timeout, _ := argsparser.Get[int](args, "timeout")
	fmt.Printf("log_path is:[%s]\n", logPath)
	fmt.Printf("timeout is:[%d]\n", timeout)

	if args.Has("ids") {
		ids, err := argsparser.GetList[int](args, "ids", argsparser.DefaultSeparator)
		if err != nil {
			log.Fatal(err)
		}
		fmt.Println("Allowed ids:")
		for _, id := range ids {
			fmt.Println(id)
		}
	}

	var demo DemoArgs
	if err := args.Scan(&demo); err != nil {
		log.Fatal(err)
	}
	if demo.Verbose {
		fmt.Print(args.Debug())
		if err := args.Encode(os.Stdout, argsparser.FormatYAML); err != nil {
			log.Fatal(err)
		}
	}
	fmt.Printf("starting in %s\n", demo.Delay)
}
