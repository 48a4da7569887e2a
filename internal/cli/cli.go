// Package cli implements the interactive shell: login, the main menu and the
// prompts that feed the tracker operations.
package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/chzyer/readline"

	"taskmanager/local-app/internal/log"
	"taskmanager/local-app/internal/report"
	"taskmanager/local-app/internal/tracker"
	"taskmanager/local-app/internal/ui"
)

// errExit ends the main loop.
var errExit = errors.New("exit requested")

// LineReader is the part of *readline.Instance the shell uses.
type LineReader interface {
	Readline() (string, error)
	ReadPassword(prompt string) ([]byte, error)
	SetPrompt(prompt string)
	Close() error
}

var _ LineReader = (*readline.Instance)(nil)

type CLI struct {
	Manager *tracker.Manager
	RL      LineReader
	UI      *ui.UI
	Tasks   *ui.TaskUI
	Reports *report.Writer
	Logger  *log.Logger
	User    string
}

func NewCLI(m *tracker.Manager, rl LineReader, u *ui.UI, reports *report.Writer, logger *log.Logger) *CLI {
	return &CLI{
		Manager: m,
		RL:      rl,
		UI:      u,
		Tasks:   ui.NewTaskUI(u),
		Reports: reports,
		Logger:  logger,
	}
}

// Run logs a user in and serves the main menu until the user exits or input
// ends.
func (c *CLI) Run() error {
	if err := c.Login(); err != nil {
		if errors.Is(err, io.EOF) {
			return nil
		}
		return err
	}

	for {
		c.printMenu()
		line, err := c.prompt(c.UI.PromptString(c.User))
		if err != nil {
			if errors.Is(err, readline.ErrInterrupt) {
				c.UI.Info("Use 'e' to exit the program.")
				continue
			}
			if errors.Is(err, io.EOF) {
				return nil
			}
			return err
		}

		command := strings.ToLower(strings.TrimSpace(line))
		if command == "" {
			continue
		}
		c.Logger.Command(context.Background(), c.User, command)

		err = c.ExecuteCommand(command)
		switch {
		case err == nil:
		case errors.Is(err, errExit), errors.Is(err, io.EOF):
			return nil
		case errors.Is(err, readline.ErrInterrupt):
			c.UI.Warning("Cancelled.")
		default:
			c.UI.Error(err.Error())
			c.Logger.Error(context.Background(), "Command failed", log.Fields{"command": command, "user": c.User, "error": err})
		}
	}
}

// ExecuteCommand runs one main menu option.
func (c *CLI) ExecuteCommand(command string) error {
	entry, ok := menuEntry(command)
	if !ok {
		return fmt.Errorf("unknown option: %s", command)
	}
	if entry.admin && c.User != c.Manager.AdminUser() {
		return fmt.Errorf("only the admin can use option '%s'", command)
	}

	switch command {
	case "r":
		return c.UserRegister()
	case "a":
		return c.TaskAdd()
	case "va":
		return c.TaskViewAll()
	case "vm":
		return c.TaskViewMine()
	case "gr":
		return c.ReportGenerate()
	case "ds":
		return c.ReportDisplay()
	case "e":
		c.UI.Println("Goodbye!")
		return errExit
	default:
		return fmt.Errorf("unknown option: %s", command)
	}
}

func (c *CLI) prompt(p string) (string, error) {
	c.RL.SetPrompt(p)
	return c.RL.Readline()
}

func (c *CLI) promptPassword(p string) (string, error) {
	password, err := c.RL.ReadPassword(p)
	if err != nil {
		return "", err
	}
	return string(password), nil
}
