package main

import (
	"fmt"
	"log"
	"os"
	"regexp"
	"runtime"
	"strconv"
	"time"
)

var Version = "development"

func init() {
	runtime.LockOSThread()
}

// Checks if error is not null, if there is an error it displays a error dialogue box and crashes the program.
func chk(err error) {
	if err != nil {
		ShowErrorDialog(err.Error())
		panic(err)
	}
}

func main() {
	// Make save directories, if they don't exist
	os.Mkdir("save", os.ModeSticky|0755)
	os.Mkdir("save/screenshots", os.ModeSticky|0755)

	cmdFlags := processCommandLine(os.Args[1:])

	// Config file path
	if _, ok := cmdFlags["-config"]; !ok {
		cmdFlags["-config"] = "save/config.ini"
	}
	cfg, err := loadConfig(cmdFlags["-config"])
	chk(err)
	// Not saved: only this session starts windowed.
	if _, ok := cmdFlags["-windowed"]; ok {
		cfg.General.FullscreenMode = int(Windowed)
	}
	script := cfg.Config.Script
	if v, ok := cmdFlags["-script"]; ok {
		script = v
	}

	errLog := log.New(NewLogWriter(), "", log.LstdFlags)
	errLog.Printf("Park Engine %s", Version)

	driver, err := newSDLDriver()
	chk(err)
	s := newSystem(cfg, driver, errLog)
	defer s.Close()
	chk(exitOnFatal(s, s.Init()))

	host := newScriptHost(s)
	defer host.Close()
	if err := host.load(script); err != nil {
		chk(fmt.Errorf("failed to load script %q: %w", script, err))
	}

	ticker := time.NewTicker(time.Second / time.Duration(cfg.Config.Framerate))
	defer ticker.Stop()
	for !s.shouldClose() {
		if err := exitOnFatal(s, s.ProcessMessages()); err != nil {
			errLog.Println(err)
		}
		if err := exitOnFatal(s, host.update()); err != nil {
			errLog.Printf("Script error: %v", err)
			ShowErrorDialog(err.Error())
			return
		}
		if err := exitOnFatal(s, s.fb.Draw()); err != nil {
			errLog.Println(err)
		}
		s.layout.ClearDirty()
		<-ticker.C
	}
}

const helpText = `Options (case sensitive):
-h -?                   Help
-config <file>          Loads configuration from <file> (default save/config.ini)
-script <file>          Runs the Lua script <file> instead of the built-in one
-windowed               Starts in windowed mode (not saved)`

// Loops through given command line arguments and processes them for later use.
func processCommandLine(args []string) map[string]string {
	cmdFlags := make(map[string]string)
	boolFlags := map[string]bool{
		"-windowed": true,
	}
	key := ""
	r1 := regexp.MustCompile("^-[h%?]$")
	r2 := regexp.MustCompile("^-")
	for _, a := range args {
		_, err := strconv.ParseFloat(a, 64)
		isNumber := err == nil

		// If there was a flag 'key' expecting a value, and 'a' is a number or not a flag
		if key != "" && (isNumber || !r2.MatchString(a)) {
			cmdFlags[key] = a
			key = ""
		} else if r2.MatchString(a) {
			if r1.MatchString(a) {
				fmt.Printf("Park Engine command line options\n\n%s\n", helpText)
				os.Exit(0)
			}
			if boolFlags[a] {
				cmdFlags[a] = "true"
				key = ""
			} else {
				cmdFlags[a] = ""
				key = a
			}
		}
	}
	// After the loop, if a key is still waiting for a value, set it to "true".
	if key != "" {
		cmdFlags[key] = "true"
	}
	return cmdFlags
}
