// Command logviewer prints the task manager's JSON log files in a compact,
// colored form and optionally keeps following them.
package main

import (
	"bufio"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"sort"
	"strings"
	"syscall"
	"time"
)

const (
	colorReset   = "\033[0m"
	colorRed     = "\033[31m"
	colorGreen   = "\033[32m"
	colorYellow  = "\033[33m"
	colorBlue    = "\033[34m"
	colorMagenta = "\033[35m"
	colorCyan    = "\033[36m"
	colorWhite   = "\033[37m"
)

type LogEntry map[string]interface{}

type viewer struct {
	dir       string
	filter    string
	color     bool
	out       io.Writer
	positions map[string]int64
}

func printHelp() {
	fmt.Println("Usage: logviewer [-f <filter>] [-follow] [-r <refresh rate in seconds>] [log directory]")
	fmt.Println("\nOptions:")
	fmt.Println("  [log directory]  Path to the directory containing log files (default: ./logs/)")
	fmt.Println("  -f               Only show entries containing this text (case insensitive)")
	fmt.Println("  -follow          Keep watching the files for new entries")
	fmt.Println("  -r               Refresh rate in seconds when following (default: 1)")
	fmt.Println("  -no-color        Disable colored output")
}

func formatTimestamp(timestamp string) string {
	t, err := time.Parse(time.RFC3339Nano, timestamp)
	if err != nil {
		return timestamp
	}
	return t.Format("06-01-02 15:04:05.000")
}

func (v *viewer) paint(s, color string) string {
	if !v.color {
		return s
	}
	return color + s + colorReset
}

func levelColor(level string) string {
	switch level {
	case "DEBUG":
		return colorBlue
	case "INFO":
		return colorGreen
	case "WARN":
		return colorYellow
	case "ERROR":
		return colorRed
	default:
		return colorWhite
	}
}

// formatEntry renders time, level and message on one line and every other
// field, sorted by key, on its own indented line.
func (v *viewer) formatEntry(entry LogEntry) string {
	timestamp, _ := entry["time"].(string)
	level, _ := entry["level"].(string)
	msg, _ := entry["msg"].(string)
	level = strings.ToUpper(level)

	var b strings.Builder
	fmt.Fprintf(&b, "%s %s %s",
		v.paint(formatTimestamp(timestamp), colorMagenta),
		v.paint(fmt.Sprintf("%-5s", level), levelColor(level)),
		msg)

	keys := make([]string, 0, len(entry))
	for key := range entry {
		if key != "time" && key != "level" && key != "msg" {
			keys = append(keys, key)
		}
	}
	sort.Strings(keys)
	for _, key := range keys {
		fmt.Fprintf(&b, "\n    %s %v", v.paint(key+":", colorCyan), entry[key])
	}
	return b.String()
}

func (v *viewer) matches(formatted string) bool {
	return v.filter == "" || strings.Contains(strings.ToLower(formatted), strings.ToLower(v.filter))
}

// scan prints the entries appended to every *.log file since the last scan.
func (v *viewer) scan() error {
	logFiles, err := filepath.Glob(filepath.Join(v.dir, "*.log"))
	if err != nil {
		return fmt.Errorf("failed to list log files: %w", err)
	}
	for _, path := range logFiles {
		if err := v.scanFile(path); err != nil {
			fmt.Fprintln(v.out, v.paint(err.Error(), colorRed))
		}
	}
	return nil
}

func (v *viewer) scanFile(path string) error {
	file, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("failed to open %s: %w", filepath.Base(path), err)
	}
	defer file.Close()

	stat, err := file.Stat()
	if err != nil {
		return fmt.Errorf("failed to stat %s: %w", filepath.Base(path), err)
	}
	if stat.Size() < v.positions[path] {
		fmt.Fprintln(v.out, v.paint(filepath.Base(path)+" has been truncated, starting from beginning", colorYellow))
		v.positions[path] = 0
	}
	if _, err := file.Seek(v.positions[path], io.SeekStart); err != nil {
		return fmt.Errorf("failed to seek in %s: %w", filepath.Base(path), err)
	}

	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		var entry LogEntry
		if err := json.Unmarshal(scanner.Bytes(), &entry); err != nil {
			fmt.Fprintln(v.out, v.paint(fmt.Sprintf("Error parsing log entry in %s: %v", filepath.Base(path), err), colorRed))
			continue
		}
		if formatted := v.formatEntry(entry); v.matches(formatted) {
			fmt.Fprintln(v.out, formatted)
		}
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("failed to read %s: %w", filepath.Base(path), err)
	}

	pos, err := file.Seek(0, io.SeekCurrent)
	if err != nil {
		return fmt.Errorf("failed to get position in %s: %w", filepath.Base(path), err)
	}
	v.positions[path] = pos
	return nil
}

func main() {
	var (
		help        bool
		follow      bool
		noColor     bool
		refreshRate int
		filter      string
	)
	flag.BoolVar(&help, "h", false, "Show help")
	flag.BoolVar(&follow, "follow", false, "Keep watching for new entries")
	flag.BoolVar(&noColor, "no-color", false, "Disable colored output")
	flag.IntVar(&refreshRate, "r", 1, "Refresh rate in seconds")
	flag.StringVar(&filter, "f", "", "Filter text")
	flag.Parse()

	if help {
		printHelp()
		return
	}

	logDir := "./logs/"
	if args := flag.Args(); len(args) > 0 {
		logDir = args[0]
	}
	if info, err := os.Stat(logDir); err != nil || !info.IsDir() {
		fmt.Printf("Log directory '%s' does not exist. Please specify a valid directory.\n", logDir)
		os.Exit(1)
	}

	v := &viewer{
		dir:       logDir,
		filter:    filter,
		color:     !noColor,
		out:       os.Stdout,
		positions: make(map[string]int64),
	}
	if err := v.scan(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
	if !follow {
		return
	}

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	ticker := time.NewTicker(time.Duration(refreshRate) * time.Second)
	defer ticker.Stop()

	for {
		select {
		case <-sigChan:
			fmt.Println("\nExiting...")
			return
		case <-ticker.C:
			if err := v.scan(); err != nil {
				fmt.Println(err)
			}
		}
	}
}
