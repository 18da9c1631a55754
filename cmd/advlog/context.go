package main

import (
	"strings"
	"sync"

	"advlog"
)

type commandContext struct {
	configFlag *string

	optsOnce sync.Once
	opts     advlog.SessionOptions
	optsErr  error
}

func newCommandContext(configFlag *string) *commandContext {
	return &commandContext{configFlag: configFlag}
}

// sessionOptions resolves the session configuration once per invocation:
// from the --config file when given, otherwise built-in defaults.
func (c *commandContext) sessionOptions() (advlog.SessionOptions, error) {
	c.optsOnce.Do(func() {
		var path string
		if c.configFlag != nil {
			path = strings.TrimSpace(*c.configFlag)
		}
		if path == "" {
			c.opts = advlog.SessionOptions{
				OutputDir:   ".",
				SessionName: "advlog",
				Level:       "info",
			}
			return
		}
		c.opts, c.optsErr = advlog.LoadSessionOptions(path)
	})
	return c.opts, c.optsErr
}
