package cli

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"taskmanager/local-app/internal/log"
	"taskmanager/local-app/internal/tracker"
)

// Login asks for credentials until a registered user authenticates.
func (c *CLI) Login() error {
	c.UI.Println("LOGIN")
	for {
		username, err := c.prompt("Username: ")
		if err != nil {
			return err
		}
		username = strings.TrimSpace(username)
		password, err := c.promptPassword("Password: ")
		if err != nil {
			return err
		}

		if !c.Manager.UserExists(username) {
			c.UI.Error("User does not exist")
			continue
		}
		ok, err := c.Manager.UserAuthenticate(username, password)
		if err != nil {
			return err
		}
		if !ok {
			c.UI.Error("Wrong password")
			continue
		}

		c.User = username
		c.UI.Success("Login Successful!")
		c.Logger.Info(context.Background(), "User logged in", log.Fields{"user": username})
		return nil
	}
}

// UserRegister handles the 'r' option.
func (c *CLI) UserRegister() error {
	for {
		username, err := c.prompt("New Username: ")
		if err != nil {
			return err
		}
		username = strings.TrimSpace(username)
		if c.Manager.UserExists(username) {
			c.UI.Error("Username already exists. Please try a different username.")
			continue
		}

		password, err := c.promptPassword("New Password: ")
		if err != nil {
			return err
		}
		confirm, err := c.promptPassword("Confirm Password: ")
		if err != nil {
			return err
		}
		if password != confirm {
			c.UI.Error("Passwords do not match. Please try again.")
			continue
		}

		err = c.Manager.UserAdd(username, password)
		if errors.Is(err, tracker.ErrEmptyUsername) || errors.Is(err, tracker.ErrInvalidText) {
			c.UI.Error(err.Error())
			continue
		}
		if err != nil {
			return fmt.Errorf("failed to register user: %w", err)
		}

		c.UI.Success("New user added")
		return nil
	}
}
