package main

import (
	"errors"
	"fmt"
	"strings"
)

// MatchCmd prints, for every TOPIC argument, the handles FindMatches returns.
type MatchCmd struct {
	TreeSource
}

func (c *MatchCmd) Execute(args []string) error {
	if len(args) == 0 {
		return errors.New("match: at least one TOPIC is required")
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	v, err := buildVault(cfg, c.TreeSource)
	if err != nil {
		return err
	}

	for _, topic := range args {
		fmt.Fprintf(stdout, "%s\t%s\n", topic, strings.Join(v.FindMatches(topic), ","))
	}

	return nil
}
