package main

import (
	"github.com/robfig/cron/v3"
)

// initCron schedules the execution sweep and the midnight reset of the
// daily loss counters.
func (a *App) initCron(execCycle, resetCounters func()) error {
	a.Cron = cron.New()

	if _, err := a.Cron.AddFunc(a.Config.ExecCron, execCycle); err != nil {
		return err
	}

	if _, err := a.Cron.AddFunc("0 0 * * *", resetCounters); err != nil {
		return err
	}

	a.Cron.Start()

	return nil
}
