package cli

import (
	"errors"

	"taskmanager/local-app/internal/report"
)

// ReportGenerate handles the 'gr' option.
func (c *CLI) ReportGenerate() error {
	written, err := c.Reports.Write(c.Manager.ReportBuild())
	if err != nil {
		return err
	}
	c.UI.Success("Reports generated successfully.")
	for _, path := range written {
		c.UI.Info("  " + path)
	}
	return nil
}

// ReportDisplay handles the 'ds' option, generating the reports first when
// they do not exist yet.
func (c *CLI) ReportDisplay() error {
	taskOverview, userOverview, err := c.Reports.Read()
	if errors.Is(err, report.ErrNoReports) {
		if err := c.ReportGenerate(); err != nil {
			return err
		}
		taskOverview, userOverview, err = c.Reports.Read()
	}
	if err != nil {
		return err
	}

	c.UI.Println("")
	c.UI.Print(taskOverview)
	c.UI.Println("")
	c.UI.Print(userOverview)
	return nil
}
