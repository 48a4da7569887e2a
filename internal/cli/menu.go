package cli

type menuItem struct {
	key         string
	description string
	admin       bool
}

// menu lists the main menu options in display order.
var menu = []menuItem{
	{"r", "Registering a user", true},
	{"a", "Adding a task", false},
	{"va", "View all tasks", false},
	{"vm", "View my tasks", false},
	{"gr", "Generate reports", true},
	{"ds", "Display statistics", true},
	{"e", "Exit", false},
}

func menuEntry(key string) (menuItem, bool) {
	for _, item := range menu {
		if item.key == key {
			return item, true
		}
	}
	return menuItem{}, false
}

// printMenu shows the options available to the logged in user.
func (c *CLI) printMenu() {
	isAdmin := c.User == c.Manager.AdminUser()
	c.UI.Println("")
	c.UI.Println("Select one of the following options below:")
	for _, item := range menu {
		if item.admin && !isAdmin {
			continue
		}
		c.UI.Printf("%-3s - %s\n", item.key, item.description)
	}
}
